package member

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const memberColumns = "id, name, email, phone, date_of_birth, address, emergency_contact, gym_id, status, created_at, updated_at"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Member) (*Member, error) {
	query := `
		INSERT INTO members (id, name, email, phone, date_of_birth, address, emergency_contact, gym_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + memberColumns

	var created Member
	err := r.db.GetContext(ctx, &created, query,
		uuid.NewString(), m.Name, m.Email, m.Phone, m.DateOfBirth, m.Address,
		m.EmergencyContact, m.GymID, m.Status)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID string) ([]Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE gym_id = $1
		ORDER BY created_at DESC
	`

	members := []Member{}
	err := r.db.SelectContext(ctx, &members, query, gymID)
	if err != nil {
		return nil, err
	}

	return members, nil
}

func (r *repository) CountByGym(ctx context.Context, gymID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM members WHERE gym_id = $1`, gymID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE id = $1
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) Update(ctx context.Context, id string, patch UpdateMemberRequest) (*Member, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if patch.Name != nil {
		sets = append(sets, "name = "+arg(*patch.Name))
	}
	if patch.Email != nil {
		sets = append(sets, "email = "+arg(*patch.Email))
	}
	if patch.Phone != nil {
		sets = append(sets, "phone = "+arg(*patch.Phone))
	}
	if patch.DateOfBirth != nil {
		sets = append(sets, "date_of_birth = "+arg(*patch.DateOfBirth))
	}
	if patch.Address != nil {
		sets = append(sets, "address = "+arg(*patch.Address))
	}
	if patch.EmergencyContact != nil {
		sets = append(sets, "emergency_contact = "+arg(*patch.EmergencyContact))
	}
	if patch.GymID != nil {
		sets = append(sets, "gym_id = "+arg(*patch.GymID))
	}
	if patch.Status != nil {
		sets = append(sets, "status = "+arg(*patch.Status))
	}

	query := fmt.Sprintf(
		"UPDATE members SET %s WHERE id = %s RETURNING %s",
		strings.Join(sets, ", "), arg(id), memberColumns)

	var m Member
	err := r.db.GetContext(ctx, &m, query, args...)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) Delete(ctx context.Context, id string) (*Member, error) {
	query := `
		DELETE FROM members
		WHERE id = $1
		RETURNING ` + memberColumns

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}
