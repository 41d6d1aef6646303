package gym

import "context"

type Repository interface {
	Create(ctx context.Context, g *Gym) (*Gym, error)
	List(ctx context.Context) ([]Gym, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id string) (*Gym, error)
	Update(ctx context.Context, id string, patch UpdateGymRequest) (*Gym, error)
	Delete(ctx context.Context, id string) (*Gym, error)
}
