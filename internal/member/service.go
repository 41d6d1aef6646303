package member

import (
	"context"
	"database/sql"
	"errors"

	"github.com/DGymBook/be-starter-project/internal/gym"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrGymNotFound    = errors.New("gym not found")
)

type Service interface {
	ListByGym(ctx context.Context, gymID string) ([]Member, int, error)
	GetByID(ctx context.Context, id string) (*Member, error)
	Create(ctx context.Context, gymID string, req CreateMemberRequest) (*Member, error)
	Update(ctx context.Context, id string, req UpdateMemberRequest) (*Member, error)
	Delete(ctx context.Context, id string) (*Member, error)
}

type service struct {
	repo Repository
	gyms gym.Repository
}

func NewService(repo Repository, gyms gym.Repository) Service {
	return &service{repo: repo, gyms: gyms}
}

func (s *service) ListByGym(ctx context.Context, gymID string) ([]Member, int, error) {
	members, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.repo.CountByGym(ctx, gymID)
	if err != nil {
		return nil, 0, err
	}

	return members, count, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Member, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMemberNotFound
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return m, nil
}

func (s *service) Create(ctx context.Context, gymID string, req CreateMemberRequest) (*Member, error) {
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

	return s.repo.Create(ctx, &Member{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		DateOfBirth:      req.DateOfBirth,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		GymID:            gymID,
		Status:           status,
	})
}

func (s *service) Update(ctx context.Context, id string, req UpdateMemberRequest) (*Member, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMemberNotFound
	}

	// Moving a member to another gym requires that gym to exist.
	if req.GymID != nil {
		if _, err := s.gyms.GetByID(ctx, *req.GymID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrGymNotFound
			}
			return nil, err
		}
	}

	m, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return m, nil
}

func (s *service) Delete(ctx context.Context, id string) (*Member, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMemberNotFound
	}

	m, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return m, nil
}
