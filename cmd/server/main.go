// Package main implements the entry point for the Sahayak API server, which
// relays classroom content generation to the LLM providers and stores each
// teacher's profile, assignments and students.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/sahayak-api/internal/config"
	"github.com/phrazzld/sahayak-api/internal/platform/logger"
)

func main() {
	configFile := flag.String("config", "", "Path to a config.yaml file")
	migrateCmd := flag.String("migrate", "", "Run database migrations (up, down, status, version) and exit")
	flag.Parse()

	cfg, err := initializeApp(*configFile)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if *migrateCmd != "" {
		if err := runMigrationCommand(cfg, *migrateCmd); err != nil {
			slog.Error("Migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server terminated with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp(configFile string) (*config.Config, error) {
	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"image_generation_enabled", cfg.Image.Enabled())

	return cfg, nil
}

// run connects to the database, applies pending migrations and serves HTTP
// until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config) error {
	appLogger := slog.Default()

	db, err := setupAppDatabase(ctx, cfg, appLogger)
	if err != nil {
		return err
	}

	if err := applyMigrations(db, "up"); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
