package gym

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const gymColumns = "id, name, address, phone, email, status, created_at, updated_at"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, g *Gym) (*Gym, error) {
	query := `
		INSERT INTO gyms (id, name, address, phone, email, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + gymColumns

	var created Gym
	err := r.db.GetContext(ctx, &created, query,
		uuid.NewString(), g.Name, g.Address, g.Phone, g.Email, g.Status)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) List(ctx context.Context) ([]Gym, error) {
	query := `
		SELECT ` + gymColumns + `
		FROM gyms
		ORDER BY created_at DESC
	`

	gyms := []Gym{}
	err := r.db.SelectContext(ctx, &gyms, query)
	if err != nil {
		return nil, err
	}

	return gyms, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM gyms`)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Gym, error) {
	query := `
		SELECT ` + gymColumns + `
		FROM gyms
		WHERE id = $1
	`

	var g Gym
	err := r.db.GetContext(ctx, &g, query, id)
	if err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *repository) Update(ctx context.Context, id string, patch UpdateGymRequest) (*Gym, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if patch.Name != nil {
		sets = append(sets, "name = "+arg(*patch.Name))
	}
	if patch.Address != nil {
		sets = append(sets, "address = "+arg(*patch.Address))
	}
	if patch.Phone != nil {
		sets = append(sets, "phone = "+arg(*patch.Phone))
	}
	if patch.Email != nil {
		sets = append(sets, "email = "+arg(*patch.Email))
	}
	if patch.Status != nil {
		sets = append(sets, "status = "+arg(*patch.Status))
	}

	query := fmt.Sprintf(
		"UPDATE gyms SET %s WHERE id = %s RETURNING %s",
		strings.Join(sets, ", "), arg(id), gymColumns)

	var g Gym
	err := r.db.GetContext(ctx, &g, query, args...)
	if err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *repository) Delete(ctx context.Context, id string) (*Gym, error) {
	query := `
		DELETE FROM gyms
		WHERE id = $1
		RETURNING ` + gymColumns

	var g Gym
	err := r.db.GetContext(ctx, &g, query, id)
	if err != nil {
		return nil, err
	}

	return &g, nil
}
