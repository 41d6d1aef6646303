package plan

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Plan struct {
	ID          string          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description *string         `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Duration    int             `db:"duration" json:"duration"` // contract period in days
	GymID       string          `db:"gym_id" json:"gymId"`
	Status      Status          `db:"status" json:"status"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}

// Price is bound as a decimal so "49.99" stays 49.99 all the way to the
// numeric(10,2) column, never a float.
type CreatePlanRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required,gt=0"`
	Duration    int             `json:"duration" validate:"required,gt=0"`
	Status      *Status         `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdatePlanRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
	Duration    *int             `json:"duration" validate:"omitempty,gt=0"`
	GymID       *string          `json:"gymId" validate:"omitempty,uuid"`
	Status      *Status          `json:"status" validate:"omitempty,oneof=active inactive"`
}
