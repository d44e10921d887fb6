package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskerhq/tasker-api/internal/config"
	"github.com/taskerhq/tasker-api/internal/platform/postgres"
	"github.com/taskerhq/tasker-api/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool

	boardStore store.BoardStore
	listStore  store.BoardListStore
	cardStore  store.CardStore
}

// newApplication connects to the database and wires the stores.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	logger.Info("Database connection established")

	return &application{
		config:     cfg,
		logger:     logger,
		pool:       pool,
		boardStore: postgres.NewBoardStore(pool),
		listStore:  postgres.NewBoardListStore(pool),
		cardStore:  postgres.NewCardStore(pool),
	}, nil
}

// cleanup releases the application's resources.
func (app *application) cleanup() {
	if app.pool != nil {
		app.pool.Close()
		app.logger.Info("Database connection pool closed")
	}
}
