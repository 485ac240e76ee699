package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort/infras/otel/mocks"
	"resort/infras/postgres"
	"resort/internal/domains/dashboard/repository"
	roomModel "resort/internal/domains/room/model"
	"resort/shared/failure"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newRepository(t *testing.T) (repository.Dashboard, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return repository.New(postgres.NewWithDB(sqlx.NewDb(db, "sqlmock")), mocks.NewOtel()), mock
}

func TestDashboardRepository_CountRooms(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(id\) FROM rooms WHERE status = \$1`).
		WithArgs("occupied").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountRooms(context.Background(), roomModel.StatusOccupied)

	assert.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_SumPayments(t *testing.T) {
	repo, mock := newRepository(t)

	from := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM payments`).
		WithArgs("paid", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(340.0))

	sum, err := repo.SumPayments(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Equal(t, 340.0, sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_CountGuestsStoreError(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(id\) FROM guests`).WillReturnError(errors.New("connection reset"))

	_, err := repo.CountGuests(context.Background())

	assert.True(t, failure.Is(err, failure.KindStore))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_CountGuests(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(id\) FROM guests`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountGuests(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
