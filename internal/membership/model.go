package membership

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

type Membership struct {
	ID        string          `db:"id" json:"id"`
	MemberID  string          `db:"member_id" json:"memberId"`
	PlanID    string          `db:"plan_id" json:"planId"`
	StartDate time.Time       `db:"start_date" json:"startDate"`
	EndDate   time.Time       `db:"end_date" json:"endDate"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	Status    Status          `db:"status" json:"status"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

// Status is accepted on create for wire compatibility but every new
// membership starts out active.
type CreateMembershipRequest struct {
	MemberID  string  `json:"memberId" validate:"required"`
	PlanID    string  `json:"planId" validate:"required"`
	StartDate *string `json:"startDate"`
	Status    *Status `json:"status" validate:"omitempty,oneof=active expired paused cancelled"`
}

type UpdateMembershipRequest struct {
	Status    *Status `json:"status" validate:"omitempty,oneof=active expired paused cancelled"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// Patch carries parsed update values down to the repository.
type Patch struct {
	Status    *Status
	StartDate *time.Time
	EndDate   *time.Time
}
