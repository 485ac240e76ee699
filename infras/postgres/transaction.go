package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./transaction.go -destination=./mocks/transaction_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"resort/config"
	"resort/infras/otel"
	"resort/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const defaultTxTimeoutSeconds = 10

// TxFunc is the body of an atomic scope. Returning an error rolls the scope back.
type TxFunc func(ctx context.Context, tx *sqlx.Tx) error

// Transactor opens one serializable transaction per call and commits it only when fn succeeds.
type Transactor interface {
	WithinTransaction(ctx context.Context, name string, fn TxFunc) error
}

type transactorImpl struct {
	db      *sqlx.DB
	otel    otel.Otel
	timeout time.Duration
}

func NewTransactor(conn *Connection, cfg *config.Config, otl otel.Otel) Transactor {
	return NewTransactorWithDB(conn.Write, cfg, otl)
}

func NewTransactorWithDB(db *sqlx.DB, cfg *config.Config, otl otel.Otel) Transactor {
	timeout := cfg.DB.Postgres.TxTimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTxTimeoutSeconds
	}

	return &transactorImpl{
		db:      db,
		otel:    otl,
		timeout: time.Duration(timeout) * time.Second,
	}
}

func (t *transactorImpl) WithinTransaction(ctx context.Context, name string, fn TxFunc) (err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelTxScopeName, constant.OtelTxScopeName+"."+name)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	tx, err := t.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		log.Error().Err(err).Str("tx", name).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", TranslateError(err))
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Str("tx", name).Msg("failed to rollback transaction")
		}

		return TranslateError(err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Str("tx", name).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", TranslateError(err))
	}

	scope.AddEvent("transaction committed")

	return nil
}
