package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort/infras/otel/mocks"
	"resort/infras/postgres"
	"resort/internal/domains/room/repository"
	"resort/shared/failure"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newRepository(t *testing.T) (repository.Room, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return repository.New(postgres.NewWithDB(sqlx.NewDb(db, "sqlmock")), mocks.NewOtel()), mock
}

func TestRoomRepository_CountOverlapping(t *testing.T) {
	repo, mock := newRepository(t)

	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(id\) FROM reservations`).
		WithArgs("r-1", "confirmed", "checked-in", checkIn, checkOut).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountOverlapping(context.Background(), "r-1", checkIn, checkOut)

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_CountBlockingReservations(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(id\) FROM reservations WHERE room_id = \$1 AND status <> \$2`).
		WithArgs("r-1", "cancelled").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CountBlockingReservations(context.Background(), "r-1")

	assert.True(t, failure.Is(err, failure.KindStore))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_ServiceRequests(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`FROM reservation_amenities ra`).
		WithArgs("r-1").
		WillReturnRows(sqlmock.NewRows([]string{"reservation_id", "guest_name", "amenity_name", "quantity", "unit_rate"}).
			AddRow("res-1", "Ana Cruz", "Kayak", 1, 20.0))

	requests, err := repo.ServiceRequests(context.Background(), "r-1")

	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.Equal(t, "Ana Cruz", requests[0].GuestName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
