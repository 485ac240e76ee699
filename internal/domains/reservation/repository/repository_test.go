package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"resort/infras/otel/mocks"
	"resort/infras/postgres"
	"resort/internal/domains/reservation/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overlapQuery = `SELECT COUNT(id) FROM reservations
	WHERE room_id = $1 AND status IN ($2, $3)
	AND NOT (check_out <= $4 OR check_in >= $5)`

func TestReservationRepository_CountOverlappingTx(t *testing.T) {
	existingCheckOut := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		rows     int
	}{
		{
			name:     "stay starting on the day another ends does not overlap",
			checkIn:  existingCheckOut,
			checkOut: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
			rows:     0,
		},
		{
			name:     "stay ending on the day another starts does not overlap",
			checkIn:  time.Date(2025, 5, 28, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			rows:     0,
		},
		{
			name:     "stay sharing a night overlaps",
			checkIn:  time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
			rows:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)

			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "sqlmock")
			repo := repository.New(postgres.NewWithDB(sqlxDB), mocks.NewOtel())

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(overlapQuery)).
				WithArgs("r-1", "confirmed", "checked-in", tt.checkIn, tt.checkOut).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.rows))

			tx, err := sqlxDB.Beginx()
			require.NoError(t, err)

			count, err := repo.CountOverlappingTx(context.Background(), tx, "r-1", tt.checkIn, tt.checkOut)

			assert.NoError(t, err)
			assert.Equal(t, tt.rows, count)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
