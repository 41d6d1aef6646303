package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) (*Member, error)
	ListByGym(ctx context.Context, gymID string) ([]Member, error)
	CountByGym(ctx context.Context, gymID string) (int, error)
	GetByID(ctx context.Context, id string) (*Member, error)
	Update(ctx context.Context, id string, patch UpdateMemberRequest) (*Member, error)
	Delete(ctx context.Context, id string) (*Member, error)
}
