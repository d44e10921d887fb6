// Package main implements the entry point for the Tasker API server,
// an HTTP service for managing task boards, lists, and cards.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	"github.com/taskerhq/tasker-api/internal/config"
	"github.com/taskerhq/tasker-api/internal/platform/logger"
	"github.com/taskerhq/tasker-api/internal/platform/postgres"
)

func main() {
	migrate := flag.Bool("migrate", false, "apply pending database migrations and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	if *migrate {
		if err := postgres.Migrate(cfg.Database.URL); err != nil {
			appLogger.Error("Migrations failed", "error", err)
			log.Fatalf("Migrations failed: %v", err)
		}
		appLogger.Info("Migrations applied")
		return
	}

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize application", "error", err)
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		appLogger.Error("Server exited with error", "error", err)
		log.Fatalf("Server exited with error: %v", err)
	}
}
