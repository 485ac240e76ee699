package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/report/model"
	resModel "resort/internal/domains/reservation/model"
	"resort/shared/constant"
	"resort/shared/logger"
)

// Stays are clipped to the month: overlap = LEAST(check_out, $2) - GREATEST(check_in, $1) days.
const (
	queryOccupancy = `SELECT rm.code AS room_code, rm.room_type,
		COALESCE(SUM(LEAST(r.check_out, $2::date) - GREATEST(r.check_in, $1::date)), 0) AS days_reserved
	FROM rooms rm
	LEFT JOIN reservations r ON r.room_id = rm.id
		AND r.status <> $3
		AND r.check_in < $2 AND r.check_out > $1
	GROUP BY rm.id, rm.code, rm.room_type
	ORDER BY rm.code`

	queryRevenue = `SELECT rm.code AS room_code, rm.room_type, rm.rate_per_night,
		COALESCE(SUM(LEAST(r.check_out, $2::date) - GREATEST(r.check_in, $1::date)), 0) AS nights_sold,
		COALESCE(SUM((LEAST(r.check_out, $2::date) - GREATEST(r.check_in, $1::date)) * rm.rate_per_night), 0) AS total_revenue
	FROM rooms rm
	LEFT JOIN reservations r ON r.room_id = rm.id
		AND r.status IN ($3, $4)
		AND r.check_in < $2 AND r.check_out > $1
	GROUP BY rm.id, rm.code, rm.room_type, rm.rate_per_night
	ORDER BY total_revenue DESC, rm.code`

	queryInventory = `SELECT ii.name, ii.supplier,
		COALESCE(SUM(rs.quantity), 0) AS total_restocked,
		ii.quantity AS current_quantity
	FROM inventory_items ii
	LEFT JOIN restocks rs ON rs.item_id = ii.id
		AND rs.restock_date >= $1 AND rs.restock_date < $2
	GROUP BY ii.id, ii.name, ii.supplier, ii.quantity
	ORDER BY ii.name`

	queryAmenities = `SELECT a.name, a.rate,
		COUNT(ar.id) AS times_rented,
		COALESCE(SUM(ar.quantity), 0) AS total_quantity,
		COALESCE(SUM(ar.quantity * ar.rate_per_unit), 0) AS total_revenue
	FROM amenities a
	LEFT JOIN amenity_rentals ar ON ar.amenity_id = a.id
		AND ar.rent_start >= $1 AND ar.rent_start < $2
	GROUP BY a.id, a.name, a.rate
	ORDER BY times_rented DESC, a.name`
)

type Report interface {
	Occupancy(ctx context.Context, period model.Period) ([]model.Occupancy, error)
	Revenue(ctx context.Context, period model.Period) ([]model.Revenue, error)
	Inventory(ctx context.Context, period model.Period) ([]model.Inventory, error)
	Amenities(ctx context.Context, period model.Period) ([]model.Amenity, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) Occupancy(ctx context.Context, period model.Period) (rows []model.Occupancy, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.Occupancy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryOccupancy)

	if err = r.db.Read.SelectContext(ctx, &rows, queryOccupancy, period.From, period.To, resModel.StatusCancelled); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get occupancy report: %w", postgres.TranslateError(err))
	}

	return rows, nil
}

func (r *repositoryImpl) Revenue(ctx context.Context, period model.Period) (rows []model.Revenue, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.Revenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRevenue)

	err = r.db.Read.SelectContext(ctx, &rows, queryRevenue, period.From, period.To,
		resModel.StatusCheckedIn, resModel.StatusCheckedOut)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get revenue report: %w", postgres.TranslateError(err))
	}

	return rows, nil
}

func (r *repositoryImpl) Inventory(ctx context.Context, period model.Period) (rows []model.Inventory, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.Inventory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryInventory)

	if err = r.db.Read.SelectContext(ctx, &rows, queryInventory, period.From, period.To); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get inventory report: %w", postgres.TranslateError(err))
	}

	return rows, nil
}

func (r *repositoryImpl) Amenities(ctx context.Context, period model.Period) (rows []model.Amenity, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.Amenities")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryAmenities)

	if err = r.db.Read.SelectContext(ctx, &rows, queryAmenities, period.From, period.To); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get amenities report: %w", postgres.TranslateError(err))
	}

	return rows, nil
}
