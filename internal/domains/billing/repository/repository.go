package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/billing/model"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/logger"
	gRepo "resort/shared/repository"

	"github.com/jmoiron/sqlx"
)

const queryTotals = `SELECT
	(SELECT COALESCE(SUM(quantity * unit_rate), 0) FROM reservation_amenities WHERE reservation_id = $1) AS amenities,
	(SELECT COALESCE(SUM(quantity * unit_price), 0) FROM charge_items WHERE reservation_id = $1) AS extras`

type Charge interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.ChargeItem) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ChargeItem, error)
	Totals(ctx context.Context, reservationID string) (model.Totals, error)
	TotalsTx(ctx context.Context, tx *sqlx.Tx, reservationID string) (model.Totals, error)
}

type Payment interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Payment) error
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
}

type chargeRepositoryImpl struct {
	gRepo.Repository[model.ChargeItem]
	db   *postgres.Connection
	otel otel.Otel
}

type paymentRepositoryImpl struct {
	gRepo.Repository[model.Payment]
}

func NewCharge(db *postgres.Connection, otel otel.Otel) Charge {
	return &chargeRepositoryImpl{
		Repository: gRepo.NewRepository[model.ChargeItem](model.ChargeEntityName, model.ChargeTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func NewPayment(db *postgres.Connection, otel otel.Otel) Payment {
	return &paymentRepositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.PaymentEntityName, model.PaymentTableName, model.FieldID, db, otel),
	}
}

func (r *chargeRepositoryImpl) Totals(ctx context.Context, reservationID string) (model.Totals, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billing.Totals")
	defer scope.End()

	return r.totals(ctx, r.db.Read, reservationID)
}

func (r *chargeRepositoryImpl) TotalsTx(ctx context.Context, tx *sqlx.Tx, reservationID string) (model.Totals, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billing.TotalsTx")
	defer scope.End()

	return r.totals(ctx, tx, reservationID)
}

func (r *chargeRepositoryImpl) totals(ctx context.Context, q sqlx.QueryerContext, reservationID string) (totals model.Totals, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billing.totals")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryTotals)

	if err = sqlx.GetContext(ctx, q, &totals, queryTotals, reservationID); err != nil {
		logger.ErrorWithStack(err)

		return totals, fmt.Errorf("failed to sum reservation charges: %w", postgres.TranslateError(err))
	}

	return totals, nil
}
