// Package logger provides structured logging setup for the
// application. The configured *slog.Logger is constructed once during
// startup and injected into the components that emit request logs;
// nothing here is mutated after initialization.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/taskerhq/tasker-api/internal/config"
)

// Setup builds the application's structured JSON logger from the
// server configuration and installs it as the process default so
// package-level slog calls share the same handler.
func Setup(cfg config.ServerConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}
