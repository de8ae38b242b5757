package main

import (
	"context"
	"marketplace/config"
	"marketplace/di"
	"marketplace/helper"
	"marketplace/shared/logger"
	"time"

	"github.com/rs/zerolog/log"
)

const closeTimeout = 5 * time.Second

func main() {
	cfg := config.Get()

	logger.Init(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Migrate(cfg, helper.ActionUp, helper.MigrateOptions{}); err != nil {
			log.Fatal().Err(err).Msg("failed to apply migrations")
		}
	}

	app := di.InitializeApp()

	ctx, cancel := context.WithCancel(context.Background())

	go app.Delivery.Run(ctx)

	app.HTTP.OnShutdown(func() {
		cancel()

		closeCtx, closeCancel := context.WithTimeout(context.Background(), closeTimeout)
		defer closeCancel()

		if err := app.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("failed to release resources")
		}
	})

	app.HTTP.Serve()
}
