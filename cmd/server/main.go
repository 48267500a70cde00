// Package main implements the entry point for the API server. It validates
// the environment, sets up logging, and serves the HTTP API until it is
// signalled to stop.
//
//go:generate swag init --dir ../../ --generalInfo cmd/server/main.go --output ../../docs
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/phrazzld/api-starter/internal/config"
	"github.com/phrazzld/api-starter/internal/platform/logger"
	"github.com/phrazzld/api-starter/internal/redact"
)

//	@title			API documentation
//	@version		0.0.1
//	@description	HTTP API bootstrap: a placeholder route plus generated documentation.
//	@BasePath		/

// main is the entry point for the server. Any configuration or startup
// failure is fatal: the process exits non-zero and nothing is retried.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		stop()
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run loads configuration, sets up logging and serves until ctx is done.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return err
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		slog.String("database_url", redact.URL(cfg.Database.URL)),
		slog.String("frontend_url", cfg.Frontend.URL))

	return newApplication(cfg, l).Run(ctx)
}
