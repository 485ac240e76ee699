package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/reservation/model"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/logger"
	gRepo "resort/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	queryCountOverlapping = `SELECT COUNT(id) FROM reservations
	WHERE room_id = $1 AND status IN ($2, $3)
	AND NOT (check_out <= $4 OR check_in >= $5)`

	queryCountActiveForRoom = `SELECT COUNT(id) FROM reservations
	WHERE room_id = $1 AND status IN ($2, $3)`
)

type Reservation interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	ExistTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	CountOverlappingTx(ctx context.Context, tx *sqlx.Tx, roomID string, checkIn, checkOut time.Time) (int, error)
	CountActiveForRoomTx(ctx context.Context, tx *sqlx.Tx, roomID string) (int, error)
	GetOverview(ctx context.Context, filter gDto.FilterGroup) (model.Overview, error)
	GetOverviews(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Overview, error)
	CountOverviews(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type Amenity interface {
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []model.Amenity) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Amenity, error)
}

type Log interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Log) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Log, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	overviews gRepo.Repository[model.Overview]
	otel      otel.Otel
}

type amenityRepositoryImpl struct {
	gRepo.Repository[model.Amenity]
}

type logRepositoryImpl struct {
	gRepo.Repository[model.Log]
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		overviews:  gRepo.NewRepository[model.Overview](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func NewAmenity(db *postgres.Connection, otel otel.Otel) Amenity {
	return &amenityRepositoryImpl{
		Repository: gRepo.NewRepository[model.Amenity](model.AmenityEntityName, model.AmenityTableName, model.FieldID, db, otel),
	}
}

func NewLog(db *postgres.Connection, otel otel.Otel) Log {
	return &logRepositoryImpl{
		Repository: gRepo.NewRepository[model.Log](model.LogEntityName, model.LogTableName, model.FieldID, db, otel),
	}
}

// CountOverlappingTx counts confirmed or checked-in stays of the room that overlap [checkIn, checkOut).
func (r *repositoryImpl) CountOverlappingTx(ctx context.Context, tx *sqlx.Tx, roomID string, checkIn, checkOut time.Time) (count int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.CountOverlappingTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCountOverlapping)

	err = tx.GetContext(ctx, &count, queryCountOverlapping, roomID,
		model.StatusConfirmed, model.StatusCheckedIn, checkIn, checkOut)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count overlapping reservations: %w", postgres.TranslateError(err))
	}

	return count, nil
}

func (r *repositoryImpl) CountActiveForRoomTx(ctx context.Context, tx *sqlx.Tx, roomID string) (count int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.CountActiveForRoomTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCountActiveForRoom)

	err = tx.GetContext(ctx, &count, queryCountActiveForRoom, roomID, model.StatusConfirmed, model.StatusCheckedIn)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count active room reservations: %w", postgres.TranslateError(err))
	}

	return count, nil
}

func (r *repositoryImpl) GetOverview(ctx context.Context, filter gDto.FilterGroup) (model.Overview, error) {
	return r.overviews.Get(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetOverviews(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Overview, error) {
	return r.overviews.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountOverviews(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.overviews.Count(ctx, filter) //nolint:wrapcheck
}
