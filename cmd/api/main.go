package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/georgemunganga/pcstore/internal/app"
	"github.com/georgemunganga/pcstore/internal/platform/config"
	"github.com/georgemunganga/pcstore/internal/platform/logx"
)

func main() {
	cfg, loaded, err := config.Load()
	logx.Init(logx.LoggerOpts{Environment: cfg.Environment()})
	if err != nil {
		logx.Fatal().Err(err).Msg("invalid configuration")
	}
	if !loaded {
		logx.Warn().Msg("no .env file found, using process environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to open storage")
	}
	defer a.Close()

	if err := a.Serve(ctx); err != nil {
		logx.Error().Err(err).Msg("server stopped")
	}
}
