package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"resort/config"
	"resort/di"
	_ "resort/docs"
	"resort/helper"
	"resort/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Resort API
// @version 1.0
// @description Front-desk administration for a beach resort.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	app := di.InitializeApp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go app.Subscriber.Run(ctx)

	app.HTTP.Serve()
}
