package mocks

import (
	"context"

	"resort/infras/postgres"
)

// RunInline runs a scope body without a database so services can be tested against mocked repositories.
// Errors are translated the same way the real transactor translates them.
func RunInline(ctx context.Context, _ string, fn postgres.TxFunc) error {
	return postgres.TranslateError(fn(ctx, nil))
}
