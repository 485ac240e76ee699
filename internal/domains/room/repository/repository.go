package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"resort/infras/otel"
	"resort/infras/postgres"
	resModel "resort/internal/domains/reservation/model"
	"resort/internal/domains/room/model"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/logger"
	gRepo "resort/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	queryCountBlockingReservations = `SELECT COUNT(id) FROM reservations WHERE room_id = $1 AND status <> $2`

	queryCountOverlapping = `SELECT COUNT(id) FROM reservations
	WHERE room_id = $1 AND status IN ($2, $3)
	AND NOT (check_out <= $4 OR check_in >= $5)`

	queryGuestStats = `SELECT
		COUNT(id) AS total_reservations,
		COUNT(DISTINCT guest_id) AS unique_guests,
		COALESCE(SUM(check_out - check_in), 0) AS nights_booked
	FROM reservations
	WHERE room_id = $1 AND status <> $2`

	queryServiceRequests = `SELECT ra.reservation_id, g.first_name || ' ' || g.last_name AS guest_name,
		a.name AS amenity_name, ra.quantity, ra.unit_rate
	FROM reservation_amenities ra
	JOIN reservations r ON r.id = ra.reservation_id
	JOIN guests g ON g.id = r.guest_id
	JOIN amenities a ON a.id = ra.amenity_id
	WHERE r.room_id = $1
	ORDER BY r.check_in DESC, a.name`
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CountBlockingReservations(ctx context.Context, roomID string) (int, error)
	CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error)
	GuestStats(ctx context.Context, roomID string) (model.GuestStats, error)
	ServiceRequests(ctx context.Context, roomID string) ([]model.ServiceRequest, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CountBlockingReservations counts non-cancelled reservations that still reference the room.
func (r *repositoryImpl) CountBlockingReservations(ctx context.Context, roomID string) (count int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.CountBlockingReservations")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCountBlockingReservations)

	if err = r.db.Read.GetContext(ctx, &count, queryCountBlockingReservations, roomID, resModel.StatusCancelled); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count room reservations: %w", postgres.TranslateError(err))
	}

	return count, nil
}

// CountOverlapping counts confirmed or checked-in reservations whose stay overlaps [checkIn, checkOut).
func (r *repositoryImpl) CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (count int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.CountOverlapping")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCountOverlapping)

	err = r.db.Read.GetContext(ctx, &count, queryCountOverlapping, roomID,
		resModel.StatusConfirmed, resModel.StatusCheckedIn, checkIn, checkOut)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count overlapping reservations: %w", postgres.TranslateError(err))
	}

	return count, nil
}

func (r *repositoryImpl) GuestStats(ctx context.Context, roomID string) (stats model.GuestStats, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GuestStats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGuestStats)

	if err = r.db.Read.GetContext(ctx, &stats, queryGuestStats, roomID, resModel.StatusCancelled); err != nil {
		logger.ErrorWithStack(err)

		return stats, fmt.Errorf("failed to get room guest stats: %w", postgres.TranslateError(err))
	}

	return stats, nil
}

func (r *repositoryImpl) ServiceRequests(ctx context.Context, roomID string) (requests []model.ServiceRequest, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ServiceRequests")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryServiceRequests)

	if err = r.db.Read.SelectContext(ctx, &requests, queryServiceRequests, roomID); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get room service requests: %w", postgres.TranslateError(err))
	}

	return requests, nil
}
