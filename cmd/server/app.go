package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quatrainhq/quatrain-api/internal/config"
	"github.com/quatrainhq/quatrain-api/internal/generation"
	"github.com/quatrainhq/quatrain-api/internal/platform/gemini"
	"github.com/quatrainhq/quatrain-api/internal/platform/verse"
	"github.com/quatrainhq/quatrain-api/internal/service"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	poemService service.PoemService
}

// newApplication creates a new application instance with all dependencies
// initialized. When no Gemini API key is configured the server still starts;
// generation then runs entirely on the offline composer.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var primary generation.Generator
	if cfg.LLM.Configured() {
		generator, err := gemini.NewGenerator(
			ctx,
			logger.With("component", "llm_generator"),
			cfg.LLM,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
		}
		primary = generator
		logger.Info("LLM generator initialized successfully", "model", cfg.LLM.ModelName)
	} else {
		logger.Warn("no Gemini API key configured, running on the offline composer only")
	}

	fallback := verse.NewComposer(logger.With("component", "fallback_composer"))

	poemService, err := service.NewPoemService(primary, fallback, cfg.LLM.ModelName, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create poem service: %w", err)
	}
	app.poemService = poemService

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
