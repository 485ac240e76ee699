package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"resort/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection splits reads from writes. Transactions always run on Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// endpoint mirrors the Read and Write config blocks field for field.
type endpoint struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	Timezone string
	SSLMode  string
}

func New(config *config.Config) *Connection {
	write := config.DB.Postgres.Write
	read := config.DB.Postgres.Read

	return &Connection{
		Read:  connect(config, "read", endpoint(read)),
		Write: connect(config, "write", endpoint(write)),
	}
}

// NewWithDB wraps a single pool used for both reads and writes.
func NewWithDB(db *sqlx.DB) *Connection {
	return &Connection{
		Read:  db,
		Write: db,
	}
}

// DSN renders a postgres URL for the write endpoint, honouring the database prefix.
func DSN(config *config.Config) string {
	return endpoint(config.DB.Postgres.Write).dsn(config.DB.Postgres.Prefix)
}

func (e endpoint) dsn(prefix string) string {
	query := url.Values{}
	query.Set("sslmode", e.SSLMode)

	if e.Timezone != "" {
		query.Set("timezone", e.Timezone)
	}

	return (&url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     prefix + e.Name,
		RawQuery: query.Encode(),
	}).String()
}

func connect(config *config.Config, name string, target endpoint) *sqlx.DB {
	pg := config.DB.Postgres
	dbName := pg.Prefix + target.Name

	attempts := max(pg.MaxRetry, 1)

	for attempt := range attempts {
		db, err := sqlx.Connect(driverName, target.dsn(pg.Prefix))
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetime) * time.Minute)

			log.Info().
				Str("name", name).
				Str("host", target.Host).
				Str("dbName", dbName).
				Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("name", name).
			Str("host", target.Host).
			Str("dbName", dbName).
			Int("attempt", attempt+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	log.Fatal().Str("name", name).Msgf("Giving up on database after %d attempts", attempts)

	return nil
}
