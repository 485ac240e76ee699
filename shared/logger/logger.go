package logger

import (
	"io"
	"os"
	"resort/config"
	"resort/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a human readable console logger until the configuration is known.
func InitLogger() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies LOG_LEVEL and, outside development, switches to JSON lines on stdout.
func SetLogLevel(config *config.Config) {
	Configure(config, os.Stdout)
}

// Configure is SetLogLevel with an explicit sink.
func Configure(config *config.Config, out io.Writer) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || config.Server.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)

	if config.Server.Env == constant.ServerEnvDevelopment {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(out).With().
			Timestamp().
			Str("service", config.App.Name).
			Str("env", config.Server.Env).
			Logger()
	}

	log.Debug().Str("level", level.String()).Msg("Logger configured")
}
