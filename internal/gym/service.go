package gym

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

var ErrGymNotFound = errors.New("gym not found")

type Service interface {
	List(ctx context.Context) ([]Gym, int, error)
	GetByID(ctx context.Context, id string) (*Gym, error)
	Create(ctx context.Context, req CreateGymRequest) (*Gym, error)
	Update(ctx context.Context, id string, req UpdateGymRequest) (*Gym, error)
	Delete(ctx context.Context, id string) (*Gym, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Gym, int, error) {
	gyms, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return gyms, count, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Gym, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrGymNotFound
	}

	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	return g, nil
}

func (s *service) Create(ctx context.Context, req CreateGymRequest) (*Gym, error) {
	status := StatusActive
	if req.Status != nil {
		status = *req.Status
	}

	return s.repo.Create(ctx, &Gym{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
		Status:  status,
	})
}

func (s *service) Update(ctx context.Context, id string, req UpdateGymRequest) (*Gym, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrGymNotFound
	}

	g, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	return g, nil
}

func (s *service) Delete(ctx context.Context, id string) (*Gym, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrGymNotFound
	}

	g, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	return g, nil
}
