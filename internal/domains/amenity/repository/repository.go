package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/amenity/model"
	rentalModel "resort/internal/domains/rental/model"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/logger"
	gRepo "resort/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	queryCountActiveRentals = `SELECT COUNT(id) FROM amenity_rentals WHERE amenity_id = $1 AND status = $2`

	queryRequestStats = `SELECT
		COUNT(id) AS total_rentals,
		COUNT(id) FILTER (WHERE status = $2) AS active_rentals,
		COUNT(DISTINCT guest_id) AS unique_guests,
		COALESCE(SUM(quantity), 0) AS total_quantity,
		COALESCE(SUM(quantity * rate_per_unit), 0) AS total_revenue
	FROM amenity_rentals
	WHERE amenity_id = $1`
)

type Amenity interface {
	Insert(ctx context.Context, model model.Amenity) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Amenity, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Amenity, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Amenity, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Amenity, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CountActiveRentals(ctx context.Context, amenityID string) (int, error)
	RequestStats(ctx context.Context, amenityID string) (model.RequestStats, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Amenity]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Amenity {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Amenity](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) CountActiveRentals(ctx context.Context, amenityID string) (count int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".amenity.CountActiveRentals")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCountActiveRentals)

	if err = r.db.Read.GetContext(ctx, &count, queryCountActiveRentals, amenityID, rentalModel.StatusActive); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count active rentals: %w", postgres.TranslateError(err))
	}

	return count, nil
}

func (r *repositoryImpl) RequestStats(ctx context.Context, amenityID string) (stats model.RequestStats, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".amenity.RequestStats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRequestStats)

	if err = r.db.Read.GetContext(ctx, &stats, queryRequestStats, amenityID, rentalModel.StatusActive); err != nil {
		logger.ErrorWithStack(err)

		return stats, fmt.Errorf("failed to get amenity request stats: %w", postgres.TranslateError(err))
	}

	return stats, nil
}
