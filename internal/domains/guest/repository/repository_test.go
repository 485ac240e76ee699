package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"resort/infras/otel/mocks"
	"resort/infras/postgres"
	"resort/internal/domains/guest/model"
	"resort/internal/domains/guest/repository"
	gModel "resort/shared/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var metadataColumns = []string{"created_at", "modified_at", "created_by", "modified_by"}

func newRepository(t *testing.T) (repository.Guest, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return repository.New(postgres.NewWithDB(sqlx.NewDb(db, "sqlmock")), mocks.NewOtel()), mock
}

func TestGuestRepository_Preferences(t *testing.T) {
	repo, mock := newRepository(t)
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM guest_preferences WHERE guest_id = $1 ORDER BY pref_key")).
		WithArgs("g-1").
		WillReturnRows(sqlmock.NewRows(append([]string{"guest_id", "pref_key", "pref_value"}, metadataColumns...)).
			AddRow("g-1", "pillow", "firm", now, now, "desk-1", "desk-1").
			AddRow("g-1", "view", "ocean", now, now, "desk-1", "desk-1"))

	prefs, err := repo.Preferences(context.Background(), "g-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"pillow", "view"}, []string{prefs[0].Key, prefs[1].Key})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuestRepository_UpsertPreference(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (guest_id, pref_key) DO UPDATE")).
		WithArgs("g-1", "pillow", "soft", sqlmock.AnyArg(), sqlmock.AnyArg(), "desk-1", "desk-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertPreference(context.Background(), model.Preference{GuestID: "g-1", Key: "pillow", Value: "soft", Metadata: gModel.Metadata{CreatedBy: "desk-1", ModifiedBy: "desk-1"}})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuestRepository_Feedback(t *testing.T) {
	repo, mock := newRepository(t)
	newer := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	older := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM feedback WHERE guest_id = $1 ORDER BY created_at DESC")).
		WithArgs("g-1").
		WillReturnRows(sqlmock.NewRows(append([]string{"id", "guest_id", "reservation_id", "rating", "comments"}, metadataColumns...)).
			AddRow("f-2", "g-1", nil, 5, "", newer, newer, "desk-1", "desk-1").
			AddRow("f-1", "g-1", "r-1", 3, "noisy", older, older, "desk-1", "desk-1"))

	feedback, err := repo.Feedback(context.Background(), "g-1")

	require.NoError(t, err)
	require.Len(t, feedback, 2)
	assert.Nil(t, feedback[0].ReservationID)
	assert.Equal(t, "r-1", *feedback[1].ReservationID)
	assert.Equal(t, 3, feedback[1].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuestRepository_OwnsReservation(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1 AND guest_id = $2)")).
		WithArgs("r-1", "g-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	owns, err := repo.OwnsReservation(context.Background(), "g-1", "r-1")

	assert.NoError(t, err)
	assert.False(t, owns)
	assert.NoError(t, mock.ExpectationsWereMet())
}
