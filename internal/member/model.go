package member

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Member struct {
	ID               string    `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Email            *string   `db:"email" json:"email"`
	Phone            string    `db:"phone" json:"phone"`
	DateOfBirth      *string   `db:"date_of_birth" json:"dateOfBirth"`
	Address          *string   `db:"address" json:"address"`
	EmergencyContact *string   `db:"emergency_contact" json:"emergencyContact"`
	GymID            string    `db:"gym_id" json:"gymId"`
	Status           Status    `db:"status" json:"status"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateMemberRequest struct {
	Name             string  `json:"name" validate:"required"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Phone            string  `json:"phone" validate:"required,min=10"`
	DateOfBirth      *string `json:"dateOfBirth"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergencyContact"`
	Status           *Status `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateMemberRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Phone            *string `json:"phone" validate:"omitempty,min=10"`
	DateOfBirth      *string `json:"dateOfBirth"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergencyContact"`
	GymID            *string `json:"gymId" validate:"omitempty,uuid"`
	Status           *Status `json:"status" validate:"omitempty,oneof=active inactive"`
}
