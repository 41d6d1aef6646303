package plan

import "context"

type Repository interface {
	Create(ctx context.Context, p *Plan) (*Plan, error)
	ListByGym(ctx context.Context, gymID string) ([]Plan, error)
	CountByGym(ctx context.Context, gymID string) (int, error)
	GetByID(ctx context.Context, id string) (*Plan, error)
	Update(ctx context.Context, id string, patch UpdatePlanRequest) (*Plan, error)
	Delete(ctx context.Context, id string) (*Plan, error)
}
