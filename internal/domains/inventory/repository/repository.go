package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/inventory/model"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/logger"
	gRepo "resort/shared/repository"

	"github.com/jmoiron/sqlx"
)

const queryRestockStats = `SELECT
	COUNT(id) AS total_restocks,
	COALESCE(SUM(quantity), 0) AS total_restocked,
	MAX(restock_date) AS last_restock
FROM restocks
WHERE item_id = $1`

type Item interface {
	Insert(ctx context.Context, model model.Item) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Item, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Item, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Item, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	RestockStats(ctx context.Context, itemID string) (model.RestockStats, error)
}

type Restock interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Restock) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Restock, error)
}

type itemRepositoryImpl struct {
	gRepo.Repository[model.Item]
	db   *postgres.Connection
	otel otel.Otel
}

type restockRepositoryImpl struct {
	gRepo.Repository[model.Restock]
}

func NewItem(db *postgres.Connection, otel otel.Otel) Item {
	return &itemRepositoryImpl{
		Repository: gRepo.NewRepository[model.Item](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func NewRestock(db *postgres.Connection, otel otel.Otel) Restock {
	return &restockRepositoryImpl{
		Repository: gRepo.NewRepository[model.Restock](model.RestockEntityName, model.RestockTableName, model.FieldID, db, otel),
	}
}

func (r *itemRepositoryImpl) RestockStats(ctx context.Context, itemID string) (stats model.RestockStats, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.RestockStats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRestockStats)

	if err = r.db.Read.GetContext(ctx, &stats, queryRestockStats, itemID); err != nil {
		logger.ErrorWithStack(err)

		return stats, fmt.Errorf("failed to get restock stats: %w", postgres.TranslateError(err))
	}

	return stats, nil
}
