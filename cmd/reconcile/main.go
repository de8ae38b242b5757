package main

import (
	"context"
	"marketplace/config"
	"marketplace/di"
	"marketplace/internal/domains/reconciliation/model/dto"
	"marketplace/shared/event"
	"marketplace/shared/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	sweep := pflag.StringP("sweep", "s", dto.SweepAll, "sweep to run: all, acceptance, payment or completion")
	timeout := pflag.Duration("timeout", 5*time.Minute, "abort the run after this long")
	pflag.Parse()

	cfg := config.Get()

	logger.Init(cfg)

	if err := run(*sweep, *timeout); err != nil {
		log.Fatal().Err(err).Str("sweep", *sweep).Msg("reconciliation failed")
	}
}

func run(sweep string, timeout time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reconciler := di.InitializeReconciler()

	_, err := reconciler.Service.Run(ctx, sweep)

	event.Wait(reconciler.Bus)

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer closeCancel()

	if closeErr := reconciler.Close(closeCtx); closeErr != nil {
		log.Error().Err(closeErr).Msg("failed to release resources")
	}

	return err //nolint:wrapcheck
}
