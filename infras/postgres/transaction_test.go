package postgres_test

import (
	"context"
	"errors"
	"testing"

	"resort/config"
	"resort/infras/otel"
	"resort/infras/otel/mocks"
	"resort/infras/postgres"
	"resort/shared/failure"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTransactor(t *testing.T) (postgres.Transactor, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.DB.Postgres.TxTimeoutSeconds = 5

	return postgres.NewTransactorWithDB(sqlx.NewDb(db, "sqlmock"), cfg, mocks.NewOtel()), mock
}

func TestTransactor_WithinTransaction(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		fn        postgres.TxFunc
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "commits when the scope succeeds",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE rooms SET status").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				_, err := tx.ExecContext(ctx, "UPDATE rooms SET status = 'reserved'")

				return err
			},
		},
		{
			name: "rolls back and keeps the failure kind",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(_ context.Context, _ *sqlx.Tx) error {
				return failure.InvalidState("Guest is already checked in!")
			},
			wantErr:  true,
			wantKind: failure.KindInvalidState,
		},
		{
			name: "rolls back and translates exclusion violations",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO reservations").
					WillReturnError(&pq.Error{Code: "23P01", Constraint: "reservations_room_stay_excl"})
				mock.ExpectRollback()
			},
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				_, err := tx.ExecContext(ctx, "INSERT INTO reservations (id) VALUES ('r-1')")

				return err
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "begin failure is a store error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			fn: func(_ context.Context, _ *sqlx.Tx) error {
				t.Fatal("scope must not run when begin fails")

				return nil
			},
			wantErr:  true,
			wantKind: failure.KindStore,
		},
		{
			name: "commit failure is reported",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})
			},
			fn: func(_ context.Context, _ *sqlx.Tx) error {
				return nil
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactor, mock := newTransactor(t)
			tt.setupMock(mock)

			err := transactor.WithinTransaction(context.Background(), "test", tt.fn)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected failure.Kind
	}{
		{name: "guest email", err: &pq.Error{Code: "23505", Constraint: "guests_email_key"}, expected: failure.KindDuplicateEmail},
		{name: "amenity name", err: &pq.Error{Code: "23505", Constraint: "amenities_name_key"}, expected: failure.KindDuplicateName},
		{name: "transaction reference", err: &pq.Error{Code: "23505", Constraint: "payments_transaction_reference_key"}, expected: failure.KindConflict},
		{name: "foreign key", err: &pq.Error{Code: "23503"}, expected: failure.KindReferentialIntegrity},
		{name: "check constraint", err: &pq.Error{Code: "23514"}, expected: failure.KindValidation},
		{name: "serialization", err: &pq.Error{Code: "40001"}, expected: failure.KindConflict},
		{name: "deadline", err: context.DeadlineExceeded, expected: failure.KindStore},
		{name: "unknown", err: errors.New("broken pipe"), expected: failure.KindStore},
		{name: "failure passthrough", err: failure.NotFound("room not found"), expected: failure.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetKind(postgres.TranslateError(tt.err)))
		})
	}

	assert.NoError(t, postgres.TranslateError(nil))
}

func TestTransactor_WithinTransaction_RecordsFailureOnSpan(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	defer db.Close()

	recorder := tracetest.NewSpanRecorder()
	tracer := otel.NewWithProvider(trace.NewTracerProvider(trace.WithSpanProcessor(recorder)))

	transactor := postgres.NewTransactorWithDB(sqlx.NewDb(db, "sqlmock"), &config.Config{}, tracer)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = transactor.WithinTransaction(context.Background(), "reservation.CheckIn", func(_ context.Context, _ *sqlx.Tx) error {
		return failure.InvalidState("Guest is already checked in!")
	})
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "Guest is already checked in!", spans[0].Status().Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}
