package membership

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const membershipColumns = "id, member_id, plan_id, start_date, end_date, amount, status, created_at, updated_at"

// Memberships carry no gym_id of their own; tenant filtering goes
// through the owning member.
const membershipJoinColumns = "ms.id, ms.member_id, ms.plan_id, ms.start_date, ms.end_date, ms.amount, ms.status, ms.created_at, ms.updated_at"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ms *Membership) (*Membership, error) {
	query := `
		INSERT INTO memberships (id, member_id, plan_id, start_date, end_date, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + membershipColumns

	var created Membership
	err := r.db.GetContext(ctx, &created, query,
		uuid.NewString(), ms.MemberID, ms.PlanID, ms.StartDate, ms.EndDate, ms.Amount, ms.Status)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID string) ([]Membership, error) {
	query := `
		SELECT ` + membershipJoinColumns + `
		FROM memberships ms
		JOIN members m ON ms.member_id = m.id
		WHERE m.gym_id = $1
		ORDER BY ms.created_at DESC
	`

	memberships := []Membership{}
	err := r.db.SelectContext(ctx, &memberships, query, gymID)
	if err != nil {
		return nil, err
	}

	return memberships, nil
}

func (r *repository) CountByGym(ctx context.Context, gymID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM memberships ms
		JOIN members m ON ms.member_id = m.id
		WHERE m.gym_id = $1
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, gymID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Membership, error) {
	query := `
		SELECT ` + membershipColumns + `
		FROM memberships
		WHERE id = $1
	`

	var ms Membership
	err := r.db.GetContext(ctx, &ms, query, id)
	if err != nil {
		return nil, err
	}

	return &ms, nil
}

func (r *repository) Update(ctx context.Context, id string, patch Patch) (*Membership, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if patch.Status != nil {
		sets = append(sets, "status = "+arg(*patch.Status))
	}
	if patch.StartDate != nil {
		sets = append(sets, "start_date = "+arg(*patch.StartDate))
	}
	if patch.EndDate != nil {
		sets = append(sets, "end_date = "+arg(*patch.EndDate))
	}

	query := fmt.Sprintf(
		"UPDATE memberships SET %s WHERE id = %s RETURNING %s",
		strings.Join(sets, ", "), arg(id), membershipColumns)

	var ms Membership
	err := r.db.GetContext(ctx, &ms, query, args...)
	if err != nil {
		return nil, err
	}

	return &ms, nil
}

func (r *repository) Delete(ctx context.Context, id string) (*Membership, error) {
	query := `
		DELETE FROM memberships
		WHERE id = $1
		RETURNING ` + membershipColumns

	var ms Membership
	err := r.db.GetContext(ctx, &ms, query, id)
	if err != nil {
		return nil, err
	}

	return &ms, nil
}
