package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/rental/model"
	gDto "resort/shared/dto"
	gRepo "resort/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Rental interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Rental) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Rental, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetActive(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ActiveRental, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Rental]
	active gRepo.Repository[model.ActiveRental]
}

func New(db *postgres.Connection, otel otel.Otel) Rental {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Rental](model.EntityName, model.TableName, model.FieldID, db, otel),
		active:     gRepo.NewRepository[model.ActiveRental](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetActive(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ActiveRental, error) {
	return r.active.GetAll(ctx, params, filter) //nolint:wrapcheck
}
