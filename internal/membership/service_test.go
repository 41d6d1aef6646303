package membership

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DGymBook/be-starter-project/internal/member"
	"github.com/DGymBook/be-starter-project/internal/plan"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, ms *Membership) (*Membership, error) {
	args := m.Called(ctx, ms)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Membership), args.Error(1)
}

func (m *MockRepository) ListByGym(ctx context.Context, gymID string) ([]Membership, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Membership), args.Error(1)
}

func (m *MockRepository) CountByGym(ctx context.Context, gymID string) (int, error) {
	args := m.Called(ctx, gymID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Membership), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, patch Patch) (*Membership, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Membership), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) (*Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Membership), args.Error(1)
}

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, mb *member.Member) (*member.Member, error) {
	args := m.Called(ctx, mb)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepository) ListByGym(ctx context.Context, gymID string) ([]member.Member, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]member.Member), args.Error(1)
}

func (m *MockMemberRepository) CountByGym(ctx context.Context, gymID string) (int, error) {
	args := m.Called(ctx, gymID)
	return args.Int(0), args.Error(1)
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id string) (*member.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepository) Update(ctx context.Context, id string, patch member.UpdateMemberRequest) (*member.Member, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepository) Delete(ctx context.Context, id string) (*member.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Create(ctx context.Context, p *plan.Plan) (*plan.Plan, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Plan), args.Error(1)
}

func (m *MockPlanRepository) ListByGym(ctx context.Context, gymID string) ([]plan.Plan, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]plan.Plan), args.Error(1)
}

func (m *MockPlanRepository) CountByGym(ctx context.Context, gymID string) (int, error) {
	args := m.Called(ctx, gymID)
	return args.Int(0), args.Error(1)
}

func (m *MockPlanRepository) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Plan), args.Error(1)
}

func (m *MockPlanRepository) Update(ctx context.Context, id string, patch plan.UpdatePlanRequest) (*plan.Plan, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Plan), args.Error(1)
}

func (m *MockPlanRepository) Delete(ctx context.Context, id string) (*plan.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Plan), args.Error(1)
}

func newServiceWithMocks() (Service, *MockRepository, *MockMemberRepository, *MockPlanRepository) {
	repo := new(MockRepository)
	members := new(MockMemberRepository)
	plans := new(MockPlanRepository)
	return NewService(repo, members, plans), repo, members, plans
}

func TestService_Create_DerivesEndDateAndAmount(t *testing.T) {
	svc, repo, members, plans := newServiceWithMocks()

	memberID := uuid.NewString()
	planID := uuid.NewString()
	price := decimal.RequireFromString("49.99")
	start := "2024-01-31"

	members.On("GetByID", mock.Anything, memberID).Return(&member.Member{ID: memberID, GymID: "gym-1"}, nil)
	plans.On("GetByID", mock.Anything, planID).Return(&plan.Plan{ID: planID, Duration: 30, Price: price}, nil)

	// Jan 31 plus 30 days lands on Mar 1 in a leap year, the overflow
	// normalizes instead of clamping to month end.
	wantEnd := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(ms *Membership) bool {
		return ms.EndDate.Equal(wantEnd) && ms.Amount.Equal(price) && ms.Status == StatusActive
	})).Return(&Membership{ID: uuid.NewString(), MemberID: memberID, PlanID: planID, Amount: price, Status: StatusActive}, nil)

	ms, err := svc.Create(context.Background(), CreateMembershipRequest{
		MemberID:  memberID,
		PlanID:    planID,
		StartDate: &start,
	})

	assert.NoError(t, err)
	assert.True(t, ms.Amount.Equal(price))
	repo.AssertExpectations(t)
}

func TestService_Create_ForcesActiveStatus(t *testing.T) {
	svc, repo, members, plans := newServiceWithMocks()

	memberID := uuid.NewString()
	planID := uuid.NewString()
	paused := StatusPaused

	members.On("GetByID", mock.Anything, memberID).Return(&member.Member{ID: memberID}, nil)
	plans.On("GetByID", mock.Anything, planID).Return(&plan.Plan{ID: planID, Duration: 30, Price: decimal.NewFromInt(10)}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(ms *Membership) bool {
		return ms.Status == StatusActive
	})).Return(&Membership{Status: StatusActive}, nil)

	_, err := svc.Create(context.Background(), CreateMembershipRequest{
		MemberID: memberID,
		PlanID:   planID,
		Status:   &paused,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Create_AmountSurvivesPlanPriceChange(t *testing.T) {
	svc, repo, members, plans := newServiceWithMocks()

	memberID := uuid.NewString()
	planID := uuid.NewString()
	oldPrice := decimal.RequireFromString("49.99")

	members.On("GetByID", mock.Anything, memberID).Return(&member.Member{ID: memberID}, nil)
	plans.On("GetByID", mock.Anything, planID).Return(&plan.Plan{ID: planID, Duration: 30, Price: oldPrice}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(&Membership{ID: "ms-1", Amount: oldPrice}, nil)

	ms, err := svc.Create(context.Background(), CreateMembershipRequest{MemberID: memberID, PlanID: planID})
	assert.NoError(t, err)

	// The stored amount is a snapshot; re-pricing the plan afterwards
	// must not leak into the row written above.
	assert.Equal(t, "49.99", ms.Amount.String())
}

func TestService_Create_MemberMissing(t *testing.T) {
	svc, repo, members, _ := newServiceWithMocks()

	memberID := uuid.NewString()
	members.On("GetByID", mock.Anything, memberID).Return(nil, sql.ErrNoRows)

	ms, err := svc.Create(context.Background(), CreateMembershipRequest{
		MemberID: memberID,
		PlanID:   uuid.NewString(),
	})

	assert.ErrorIs(t, err, ErrMemberOrPlanMissing)
	assert.Nil(t, ms)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Create_PlanMissing(t *testing.T) {
	svc, repo, members, plans := newServiceWithMocks()

	memberID := uuid.NewString()
	planID := uuid.NewString()
	members.On("GetByID", mock.Anything, memberID).Return(&member.Member{ID: memberID}, nil)
	plans.On("GetByID", mock.Anything, planID).Return(nil, sql.ErrNoRows)

	ms, err := svc.Create(context.Background(), CreateMembershipRequest{
		MemberID: memberID,
		PlanID:   planID,
	})

	assert.ErrorIs(t, err, ErrMemberOrPlanMissing)
	assert.Nil(t, ms)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Create_BadStartDate(t *testing.T) {
	svc, repo, members, plans := newServiceWithMocks()

	memberID := uuid.NewString()
	planID := uuid.NewString()
	bad := "next tuesday"

	members.On("GetByID", mock.Anything, memberID).Return(&member.Member{ID: memberID}, nil)
	plans.On("GetByID", mock.Anything, planID).Return(&plan.Plan{ID: planID, Duration: 30}, nil)

	ms, err := svc.Create(context.Background(), CreateMembershipRequest{
		MemberID:  memberID,
		PlanID:    planID,
		StartDate: &bad,
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Nil(t, ms)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Update_ParsesDates(t *testing.T) {
	svc, repo, _, _ := newServiceWithMocks()

	id := uuid.NewString()
	end := "2025-06-30"
	wantEnd := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	repo.On("Update", mock.Anything, id, mock.MatchedBy(func(p Patch) bool {
		return p.EndDate != nil && p.EndDate.Equal(wantEnd) && p.Status == nil
	})).Return(&Membership{ID: id, EndDate: wantEnd}, nil)

	ms, err := svc.Update(context.Background(), id, UpdateMembershipRequest{EndDate: &end})

	assert.NoError(t, err)
	assert.True(t, ms.EndDate.Equal(wantEnd))
	repo.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc, repo, _, _ := newServiceWithMocks()

	id := uuid.NewString()
	repo.On("Delete", mock.Anything, id).Return(nil, sql.ErrNoRows)

	ms, err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, ErrMembershipNotFound)
	assert.Nil(t, ms)
}

func TestService_GetByID_MalformedID(t *testing.T) {
	svc, repo, _, _ := newServiceWithMocks()

	ms, err := svc.GetByID(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, ErrMembershipNotFound)
	assert.Nil(t, ms)
	repo.AssertNotCalled(t, "GetByID")
}
