package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/sahayak-api/internal/config"
	"github.com/phrazzld/sahayak-api/internal/generation"
	"github.com/phrazzld/sahayak-api/internal/platform/gemini"
	"github.com/phrazzld/sahayak-api/internal/platform/openai"
	"github.com/phrazzld/sahayak-api/internal/platform/postgres"
	"github.com/phrazzld/sahayak-api/internal/service"
	"github.com/phrazzld/sahayak-api/internal/service/auth"
)

// application holds the wired dependencies of the server.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	db         *sql.DB
	jwtService auth.JWTService

	generationService *generation.Service
	profileService    service.ProfileService
	classroomService  service.ClassroomService

	// imageClient is nil when no OpenAI key is configured.
	imageClient *openai.Client
}

// newApplication builds the generators, stores and services. db may be nil in
// tests that only exercise the relay routes.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	text, err := gemini.NewGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create text generator: %w", err)
	}
	return newApplicationWithGenerators(cfg, logger, db, text)
}

// newApplicationWithGenerators is newApplication with an injected text generator.
func newApplicationWithGenerators(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	text generation.TextGenerator,
) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	app := &application{
		config:     cfg,
		logger:     logger,
		db:         db,
		jwtService: jwtService,
	}

	var image generation.ImageGenerator
	if cfg.Image.Enabled() {
		app.imageClient, err = openai.NewClient(cfg.Image, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create image client: %w", err)
		}
		image = app.imageClient
	} else {
		logger.Warn("OpenAI API key is not configured; image generation is disabled")
	}

	app.generationService, err = generation.NewService(text, image, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	if db != nil {
		app.profileService, err = service.NewProfileService(
			postgres.NewPostgresProfileStore(db, logger), db, logger)
		if err != nil {
			app.cleanup()
			return nil, fmt.Errorf("failed to create profile service: %w", err)
		}

		app.classroomService, err = service.NewClassroomService(
			postgres.NewPostgresAssignmentStore(db, logger),
			postgres.NewPostgresStudentStore(db, logger),
			logger,
		)
		if err != nil {
			app.cleanup()
			return nil, fmt.Errorf("failed to create classroom service: %w", err)
		}
	}

	return app, nil
}

// cleanup releases the resources held by the application.
func (app *application) cleanup() {
	if app.imageClient != nil {
		if err := app.imageClient.Close(); err != nil {
			app.logger.Error("Failed to close image client", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		} else {
			app.logger.Info("Database connection closed")
		}
	}
}
