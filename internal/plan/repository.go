package plan

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const planColumns = "id, name, description, price, duration, gym_id, status, created_at, updated_at"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Plan) (*Plan, error) {
	query := `
		INSERT INTO plans (id, name, description, price, duration, gym_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + planColumns

	var created Plan
	err := r.db.GetContext(ctx, &created, query,
		uuid.NewString(), p.Name, p.Description, p.Price, p.Duration, p.GymID, p.Status)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID string) ([]Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM plans
		WHERE gym_id = $1
		ORDER BY created_at DESC
	`

	plans := []Plan{}
	err := r.db.SelectContext(ctx, &plans, query, gymID)
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *repository) CountByGym(ctx context.Context, gymID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM plans WHERE gym_id = $1`, gymID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM plans
		WHERE id = $1
	`

	var p Plan
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Update(ctx context.Context, id string, patch UpdatePlanRequest) (*Plan, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if patch.Name != nil {
		sets = append(sets, "name = "+arg(*patch.Name))
	}
	if patch.Description != nil {
		sets = append(sets, "description = "+arg(*patch.Description))
	}
	if patch.Price != nil {
		sets = append(sets, "price = "+arg(*patch.Price))
	}
	if patch.Duration != nil {
		sets = append(sets, "duration = "+arg(*patch.Duration))
	}
	if patch.GymID != nil {
		sets = append(sets, "gym_id = "+arg(*patch.GymID))
	}
	if patch.Status != nil {
		sets = append(sets, "status = "+arg(*patch.Status))
	}

	query := fmt.Sprintf(
		"UPDATE plans SET %s WHERE id = %s RETURNING %s",
		strings.Join(sets, ", "), arg(id), planColumns)

	var p Plan
	err := r.db.GetContext(ctx, &p, query, args...)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// Delete fails with a foreign-key violation while memberships still
// reference the plan; the restrict rule lives in the schema, not here.
func (r *repository) Delete(ctx context.Context, id string) (*Plan, error) {
	query := `
		DELETE FROM plans
		WHERE id = $1
		RETURNING ` + planColumns

	var p Plan
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
