package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"resort/infras/otel"
	"resort/infras/postgres"
	billingModel "resort/internal/domains/billing/model"
	rentalModel "resort/internal/domains/rental/model"
	resModel "resort/internal/domains/reservation/model"
	roomModel "resort/internal/domains/room/model"
	"resort/shared/constant"
	"resort/shared/logger"
)

const (
	queryCountGuests         = `SELECT COUNT(id) FROM guests`
	queryCountRooms          = `SELECT COUNT(id) FROM rooms WHERE status = $1`
	querySumPayments         = `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = $1 AND payment_time >= $2 AND payment_time < $3`
	queryCountRentals        = `SELECT COUNT(id) FROM amenity_rentals WHERE status = $1`
	queryCountInventoryItems = `SELECT COUNT(id) FROM inventory_items`
	queryCountReservations   = `SELECT COUNT(id) FROM reservations WHERE status = $1`
)

type Dashboard interface {
	CountGuests(ctx context.Context) (int, error)
	CountRooms(ctx context.Context, status roomModel.Status) (int, error)
	SumPayments(ctx context.Context, from, to time.Time) (float64, error)
	CountActiveRentals(ctx context.Context) (int, error)
	CountInventoryItems(ctx context.Context) (int, error)
	CountReservations(ctx context.Context, status resModel.Status) (int, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Dashboard {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) CountGuests(ctx context.Context) (count int, err error) {
	err = r.scalar(ctx, "CountGuests", &count, queryCountGuests)

	return count, err
}

func (r *repositoryImpl) CountRooms(ctx context.Context, status roomModel.Status) (count int, err error) {
	err = r.scalar(ctx, "CountRooms", &count, queryCountRooms, status)

	return count, err
}

func (r *repositoryImpl) SumPayments(ctx context.Context, from, to time.Time) (sum float64, err error) {
	err = r.scalar(ctx, "SumPayments", &sum, querySumPayments, billingModel.PaymentStatusPaid, from, to)

	return sum, err
}

func (r *repositoryImpl) CountActiveRentals(ctx context.Context) (count int, err error) {
	err = r.scalar(ctx, "CountActiveRentals", &count, queryCountRentals, rentalModel.StatusActive)

	return count, err
}

func (r *repositoryImpl) CountInventoryItems(ctx context.Context) (count int, err error) {
	err = r.scalar(ctx, "CountInventoryItems", &count, queryCountInventoryItems)

	return count, err
}

func (r *repositoryImpl) CountReservations(ctx context.Context, status resModel.Status) (count int, err error) {
	err = r.scalar(ctx, "CountReservations", &count, queryCountReservations, status)

	return count, err
}

func (r *repositoryImpl) scalar(ctx context.Context, name string, dest any, query string, args ...any) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard."+name)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.GetContext(ctx, dest, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to query %s: %w", name, postgres.TranslateError(err))
	}

	return nil
}
