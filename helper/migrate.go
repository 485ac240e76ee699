package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"resort/config"
	"resort/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

type action func(*migrate.Migrate) error

func open(cfg *config.Config) (*migrate.Migrate, error) {
	dsn, err := url.Parse(postgres.DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("invalid database url: %w", err)
	}

	query := dsn.Query()
	query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	dsn.RawQuery = query.Encode()

	mig, err := migrate.New(cfg.DB.Postgres.MigrationPath, dsn.String())
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func run(cfg *config.Config, name string, fn action) error {
	mig, err := open(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err = fn(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", name, err)
	}

	version, dirty, verr := mig.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", verr)
	}

	log.Info().Str("action", name).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

// Up applies every pending migration.
func Up(cfg *config.Config) error {
	return run(cfg, "up", (*migrate.Migrate).Up)
}

// StepUp applies the next pending migration only.
func StepUp(cfg *config.Config) error {
	return run(cfg, "step-up", func(m *migrate.Migrate) error { return m.Steps(1) })
}

// Down rolls back the latest migration.
func Down(cfg *config.Config) error {
	return run(cfg, "down", func(m *migrate.Migrate) error { return m.Steps(-1) })
}

// Drop rolls back every migration, leaving an empty schema.
func Drop(cfg *config.Config) error {
	return run(cfg, "drop", (*migrate.Migrate).Down)
}

// Force marks version as applied and clears the dirty flag after a failed run was fixed by hand.
func Force(cfg *config.Config, version int) error {
	return run(cfg, "force", func(m *migrate.Migrate) error { return m.Force(version) })
}
