package membership

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/DGymBook/be-starter-project/internal/member"
	"github.com/DGymBook/be-starter-project/internal/plan"

	"github.com/google/uuid"
)

var (
	ErrMembershipNotFound  = errors.New("membership not found")
	ErrMemberOrPlanMissing = errors.New("member or plan not found")
	ErrInvalidDate         = errors.New("invalid date")
)

type Service interface {
	ListByGym(ctx context.Context, gymID string) ([]Membership, int, error)
	GetByID(ctx context.Context, id string) (*Membership, error)
	Create(ctx context.Context, req CreateMembershipRequest) (*Membership, error)
	Update(ctx context.Context, id string, req UpdateMembershipRequest) (*Membership, error)
	Delete(ctx context.Context, id string) (*Membership, error)
}

type service struct {
	repo    Repository
	members member.Repository
	plans   plan.Repository
}

func NewService(repo Repository, members member.Repository, plans plan.Repository) Service {
	return &service{repo: repo, members: members, plans: plans}
}

func (s *service) ListByGym(ctx context.Context, gymID string) ([]Membership, int, error) {
	memberships, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.repo.CountByGym(ctx, gymID)
	if err != nil {
		return nil, 0, err
	}

	return memberships, count, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Membership, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMembershipNotFound
	}

	ms, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}

	return ms, nil
}

// Create derives end date and amount from the plan at creation time.
// Later plan edits leave existing memberships untouched, and nothing
// flips a membership to expired when the end date passes.
func (s *service) Create(ctx context.Context, req CreateMembershipRequest) (*Membership, error) {
	if _, err := uuid.Parse(req.MemberID); err != nil {
		return nil, ErrMemberOrPlanMissing
	}
	if _, err := uuid.Parse(req.PlanID); err != nil {
		return nil, ErrMemberOrPlanMissing
	}

	if _, err := s.members.GetByID(ctx, req.MemberID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberOrPlanMissing
		}
		return nil, err
	}

	p, err := s.plans.GetByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberOrPlanMissing
		}
		return nil, err
	}

	startDate := time.Now().UTC()
	if req.StartDate != nil {
		startDate, err = parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
	}

	// The existence checks and the insert are not transactional; a plan
	// deleted in between is caught by the restrict rule on plan_id.
	return s.repo.Create(ctx, &Membership{
		MemberID:  req.MemberID,
		PlanID:    req.PlanID,
		StartDate: startDate,
		EndDate:   startDate.AddDate(0, 0, p.Duration),
		Amount:    p.Price,
		Status:    StatusActive,
	})
}

// Update patches status and dates as given. End date is never
// recomputed from the plan here.
func (s *service) Update(ctx context.Context, id string, req UpdateMembershipRequest) (*Membership, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMembershipNotFound
	}

	patch := Patch{Status: req.Status}
	if req.StartDate != nil {
		t, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		patch.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		patch.EndDate = &t
	}

	ms, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}

	return ms, nil
}

func (s *service) Delete(ctx context.Context, id string) (*Membership, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMembershipNotFound
	}

	ms, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}

	return ms, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}
