package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/authapi/internal/logging"
	"github.com/dmitrijs2005/authapi/internal/server"
	"github.com/dmitrijs2005/authapi/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.NewJSONLogger(os.Stderr, "info").Error(ctx, "config error", "error", err)
		os.Exit(1)
	}

	logger := logging.NewJSONLogger(os.Stdout, cfg.LogLevel).With("service", "authapi")

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}
}
