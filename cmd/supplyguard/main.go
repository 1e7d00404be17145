package main

import (
	"context"
	"os"

	"github.com/theUtkarshRaj/SupplyGuard/internal/app"
	"github.com/theUtkarshRaj/SupplyGuard/internal/config"
	"github.com/theUtkarshRaj/SupplyGuard/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logging.New("info", "text").Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("application setup failed", "error", err)
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		logger.Error("pipeline run failed", "error", err)
		os.Exit(1)
	}
}
