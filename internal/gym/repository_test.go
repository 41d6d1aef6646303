package gym

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

var gymRows = []string{"id", "name", "address", "phone", "email", "status", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dbx := sqlx.NewDb(db, "sqlmock")
	return NewRepository(dbx), mock, func() { db.Close() }
}

func TestRepository_Create(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO gyms.*RETURNING`).
		WithArgs(sqlmock.AnyArg(), "Iron Gym", nil, nil, nil, StatusActive).
		WillReturnRows(sqlmock.NewRows(gymRows).
			AddRow("5b2d64c1-0000-0000-0000-000000000001", "Iron Gym", nil, nil, nil, "active", now, now))

	g, err := repo.Create(context.Background(), &Gym{Name: "Iron Gym", Status: StatusActive})
	assert.NoError(t, err)
	assert.Equal(t, "Iron Gym", g.Name)
	assert.Equal(t, StatusActive, g.Status)
	assert.NotEmpty(t, g.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, name, address, phone, email, status, created_at, updated_at\s+FROM gyms`).
		WillReturnRows(sqlmock.NewRows(gymRows).
			AddRow("id-1", "Gym A", nil, nil, nil, "active", now, now).
			AddRow("id-2", "Gym B", nil, nil, nil, "inactive", now, now))

	gyms, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, gyms, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Count(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM gyms`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM gyms\s+WHERE id = \$1`).
		WithArgs("missing-id").
		WillReturnError(sql.ErrNoRows)

	g, err := repo.GetByID(context.Background(), "missing-id")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, g)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_PartialFields(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	now := time.Now()
	name := "Renamed Gym"
	status := StatusInactive

	// Only the supplied fields show up in SET, id is the last arg.
	mock.ExpectQuery(`UPDATE gyms SET updated_at = NOW\(\), name = \$1, status = \$2 WHERE id = \$3 RETURNING`).
		WithArgs("Renamed Gym", StatusInactive, "id-1").
		WillReturnRows(sqlmock.NewRows(gymRows).
			AddRow("id-1", "Renamed Gym", nil, nil, nil, "inactive", now, now))

	g, err := repo.Update(context.Background(), "id-1", UpdateGymRequest{Name: &name, Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed Gym", g.Name)
	assert.Equal(t, StatusInactive, g.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`DELETE FROM gyms\s+WHERE id = \$1\s+RETURNING`).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows(gymRows).
			AddRow("id-1", "Gym A", nil, nil, nil, "active", now, now))

	g, err := repo.Delete(context.Background(), "id-1")
	assert.NoError(t, err)
	assert.Equal(t, "id-1", g.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
