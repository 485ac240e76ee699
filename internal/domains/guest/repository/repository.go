package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/guest/model"
	rentalModel "resort/internal/domains/rental/model"
	resModel "resort/internal/domains/reservation/model"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/logger"
	gRepo "resort/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	queryCountActiveReservations = `SELECT COUNT(id) FROM reservations WHERE guest_id = $1 AND status IN ($2, $3)`

	queryStats = `SELECT
		COUNT(r.id) AS total_reservations,
		COUNT(r.id) FILTER (WHERE r.status IN ($2, $3)) AS active_reservations,
		COUNT(r.id) FILTER (WHERE r.status = $4) AS completed_reservations,
		COUNT(r.id) FILTER (WHERE r.status = $5) AS cancelled_reservations,
		COALESCE(SUM(r.check_out - r.check_in) FILTER (WHERE r.status = $4), 0) AS nights_stayed,
		COALESCE((SELECT SUM(p.amount) FROM payments p JOIN reservations pr ON pr.id = p.reservation_id WHERE pr.guest_id = $1), 0) AS total_paid,
		(SELECT COUNT(ar.id) FROM amenity_rentals ar WHERE ar.guest_id = $1 AND ar.status = $6) AS active_rentals
	FROM reservations r
	WHERE r.guest_id = $1`

	queryPreferences = `SELECT guest_id, pref_key, pref_value, created_at, modified_at, created_by, modified_by
	FROM guest_preferences WHERE guest_id = $1 ORDER BY pref_key`

	queryUpsertPreference = `INSERT INTO guest_preferences (guest_id, pref_key, pref_value, created_at, modified_at, created_by, modified_by)
	VALUES (:guest_id, :pref_key, :pref_value, :created_at, :modified_at, :created_by, :modified_by)
	ON CONFLICT (guest_id, pref_key) DO UPDATE
	SET pref_value = EXCLUDED.pref_value, modified_at = EXCLUDED.modified_at, modified_by = EXCLUDED.modified_by`

	queryFeedback = `SELECT id, guest_id, reservation_id, rating, comments, created_at, modified_at, created_by, modified_by
	FROM feedback WHERE guest_id = $1 ORDER BY created_at DESC`

	queryOwnsReservation = `SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1 AND guest_id = $2)`
)

type Guest interface {
	Insert(ctx context.Context, model model.Guest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CountActiveReservations(ctx context.Context, guestID string) (int, error)
	Stats(ctx context.Context, guestID string) (model.Stats, error)
	Preferences(ctx context.Context, guestID string) ([]model.Preference, error)
	UpsertPreference(ctx context.Context, pref model.Preference) error
	Feedback(ctx context.Context, guestID string) ([]model.Feedback, error)
	InsertFeedback(ctx context.Context, feedback model.Feedback) error
	OwnsReservation(ctx context.Context, guestID, reservationID string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	feedback gRepo.Repository[model.Feedback]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
		feedback:   gRepo.NewRepository[model.Feedback](model.FeedbackEntityName, model.FeedbackTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CountActiveReservations counts the guest's reservations that are confirmed or checked in.
func (r *repositoryImpl) CountActiveReservations(ctx context.Context, guestID string) (count int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.CountActiveReservations")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCountActiveReservations)

	err = r.db.Read.GetContext(ctx, &count, queryCountActiveReservations,
		guestID, resModel.StatusConfirmed, resModel.StatusCheckedIn)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count active reservations: %w", postgres.TranslateError(err))
	}

	return count, nil
}

func (r *repositoryImpl) Stats(ctx context.Context, guestID string) (stats model.Stats, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryStats)

	err = r.db.Read.GetContext(ctx, &stats, queryStats, guestID,
		resModel.StatusConfirmed, resModel.StatusCheckedIn, resModel.StatusCheckedOut, resModel.StatusCancelled,
		rentalModel.StatusActive)
	if err != nil {
		logger.ErrorWithStack(err)

		return stats, fmt.Errorf("failed to get guest stats: %w", postgres.TranslateError(err))
	}

	return stats, nil
}

func (r *repositoryImpl) Preferences(ctx context.Context, guestID string) (prefs []model.Preference, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.Preferences")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryPreferences)

	prefs = []model.Preference{}

	err = r.db.Read.SelectContext(ctx, &prefs, queryPreferences, guestID)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get guest preferences: %w", postgres.TranslateError(err))
	}

	return prefs, nil
}

// UpsertPreference writes the value for the guest's key, replacing any earlier value.
func (r *repositoryImpl) UpsertPreference(ctx context.Context, pref model.Preference) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.UpsertPreference")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryUpsertPreference)

	_, err = r.db.Write.NamedExecContext(ctx, queryUpsertPreference, pref)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to save guest preference: %w", postgres.TranslateError(err))
	}

	return nil
}

// Feedback lists the guest's feedback, newest first.
func (r *repositoryImpl) Feedback(ctx context.Context, guestID string) (feedback []model.Feedback, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.Feedback")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryFeedback)

	feedback = []model.Feedback{}

	err = r.db.Read.SelectContext(ctx, &feedback, queryFeedback, guestID)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get guest feedback: %w", postgres.TranslateError(err))
	}

	return feedback, nil
}

func (r *repositoryImpl) InsertFeedback(ctx context.Context, feedback model.Feedback) error {
	return r.feedback.Insert(ctx, feedback)
}

func (r *repositoryImpl) OwnsReservation(ctx context.Context, guestID, reservationID string) (owns bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.OwnsReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryOwnsReservation)

	err = r.db.Read.GetContext(ctx, &owns, queryOwnsReservation, reservationID, guestID)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check reservation owner: %w", postgres.TranslateError(err))
	}

	return owns, nil
}
