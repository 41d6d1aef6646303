package membership

import "context"

type Repository interface {
	Create(ctx context.Context, ms *Membership) (*Membership, error)
	ListByGym(ctx context.Context, gymID string) ([]Membership, error)
	CountByGym(ctx context.Context, gymID string) (int, error)
	GetByID(ctx context.Context, id string) (*Membership, error)
	Update(ctx context.Context, id string, patch Patch) (*Membership, error)
	Delete(ctx context.Context, id string) (*Membership, error)
}
