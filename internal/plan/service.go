package plan

import (
	"context"
	"database/sql"
	"errors"

	"github.com/DGymBook/be-starter-project/internal/db"
	"github.com/DGymBook/be-starter-project/internal/gym"

	"github.com/google/uuid"
)

var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrGymNotFound  = errors.New("gym not found")
	ErrPlanInUse    = errors.New("plan is referenced by existing memberships")
)

type Service interface {
	ListByGym(ctx context.Context, gymID string) ([]Plan, int, error)
	GetByID(ctx context.Context, id string) (*Plan, error)
	Create(ctx context.Context, gymID string, req CreatePlanRequest) (*Plan, error)
	Update(ctx context.Context, id string, req UpdatePlanRequest) (*Plan, error)
	Delete(ctx context.Context, id string) (*Plan, error)
}

type service struct {
	repo Repository
	gyms gym.Repository
}

func NewService(repo Repository, gyms gym.Repository) Service {
	return &service{repo: repo, gyms: gyms}
}

func (s *service) ListByGym(ctx context.Context, gymID string) ([]Plan, int, error) {
	plans, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.repo.CountByGym(ctx, gymID)
	if err != nil {
		return nil, 0, err
	}

	return plans, count, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Plan, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrPlanNotFound
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	return p, nil
}

func (s *service) Create(ctx context.Context, gymID string, req CreatePlanRequest) (*Plan, error) {
	if _, err := s.gyms.GetByID(ctx, gymID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	status := StatusActive
	if req.Status != nil {
		status = *req.Status
	}

	return s.repo.Create(ctx, &Plan{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		GymID:       gymID,
		Status:      status,
	})
}

func (s *service) Update(ctx context.Context, id string, req UpdatePlanRequest) (*Plan, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrPlanNotFound
	}

	if req.GymID != nil {
		if _, err := s.gyms.GetByID(ctx, *req.GymID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrGymNotFound
			}
			return nil, err
		}
	}

	p, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) (*Plan, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrPlanNotFound
	}

	p, err := s.repo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrPlanNotFound
		case db.IsForeignKeyViolation(err):
			return nil, ErrPlanInUse
		}
		return nil, err
	}

	return p, nil
}
