package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort/infras/otel/mocks"
	"resort/infras/postgres"
	"resort/internal/domains/report/model"
	"resort/internal/domains/report/repository"
	"resort/shared/failure"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newRepository(t *testing.T) (repository.Report, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return repository.New(postgres.NewWithDB(sqlx.NewDb(db, "sqlmock")), mocks.NewOtel()), mock
}

var june = model.NewPeriod(2025, time.June)

func TestReportRepository_Occupancy(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`FROM rooms rm\s+LEFT JOIN reservations r`).
		WithArgs(june.From, june.To, "cancelled").
		WillReturnRows(sqlmock.NewRows([]string{"room_code", "room_type", "days_reserved"}).
			AddRow("A-101", "Deluxe", 15).
			AddRow("B-201", "Suite", 0))

	rows, err := repo.Occupancy(context.Background(), june)

	assert.NoError(t, err)
	assert.Equal(t, []model.Occupancy{
		{RoomCode: "A-101", RoomType: "Deluxe", DaysReserved: 15},
		{RoomCode: "B-201", RoomType: "Suite", DaysReserved: 0},
	}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_Revenue(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`AS total_revenue`).
		WithArgs(june.From, june.To, "checked-in", "checked-out").
		WillReturnRows(sqlmock.NewRows([]string{"room_code", "room_type", "rate_per_night", "nights_sold", "total_revenue"}).
			AddRow("A-101", "Deluxe", 100.0, 3, 300.0))

	rows, err := repo.Revenue(context.Background(), june)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 300.0, rows[0].TotalRevenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_Inventory(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`FROM inventory_items ii`).
		WithArgs(june.From, june.To).
		WillReturnRows(sqlmock.NewRows([]string{"name", "supplier", "total_restocked", "current_quantity"}).
			AddRow("Beach Towel", "Linen Co", 30, 42))

	rows, err := repo.Inventory(context.Background(), june)

	assert.NoError(t, err)
	assert.Equal(t, 30, rows[0].TotalRestocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_AmenitiesStoreError(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`FROM amenities a`).
		WithArgs(june.From, june.To).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Amenities(context.Background(), june)

	assert.True(t, failure.Is(err, failure.KindStore))
	assert.NoError(t, mock.ExpectationsWereMet())
}
