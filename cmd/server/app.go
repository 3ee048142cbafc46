package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blogsmith/blogsmith-api/internal/config"
	"github.com/blogsmith/blogsmith-api/internal/generation"
	"github.com/blogsmith/blogsmith-api/internal/pipeline"
	"github.com/blogsmith/blogsmith-api/internal/platform/groq"
	"github.com/blogsmith/blogsmith-api/internal/retry"
	"github.com/blogsmith/blogsmith-api/internal/service"
	"github.com/blogsmith/blogsmith-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	blogStore   *store.BlogStore
	generator   generation.Generator
	pipeline    *pipeline.Pipeline
	blogService *service.BlogService
}

// newApplication creates a new application instance with all dependencies
// initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.generator, err = groq.NewGenerator(
		logger.With("component", "llm_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized", "model", cfg.LLM.Model)

	app.blogStore, err = store.New(cfg.Store.SnapshotPath, logger.With("component", "blog_store"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blog store: %w", err)
	}
	logger.Info("blog store loaded",
		"snapshot_path", cfg.Store.SnapshotPath,
		"blog_count", app.blogStore.Count())

	app.pipeline = pipeline.New(
		app.generator,
		retryPolicy(cfg.LLM),
		logger.With("component", "pipeline"),
	)

	app.blogService = service.NewBlogService(app.pipeline, app.blogStore, logger)

	logger.Info("application initialized successfully")
	return app, nil
}

// retryPolicy derives the per-step provider retry policy from the LLM
// configuration. MaxRetries counts total attempts, including the first.
func retryPolicy(cfg config.LLMConfig) retry.Policy {
	policy := retry.DefaultPolicy(generation.IsTransient)
	if cfg.MaxRetries > 0 {
		policy.MaxAttempts = cfg.MaxRetries
	}
	if delay := cfg.RetryDelay(); delay > 0 {
		policy.BaseDelay = delay
	}
	return policy
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources. The blog
// store persists on every mutation, so there is nothing to flush here
// beyond logging the final state.
func (app *application) cleanup() {
	app.logger.Info("application shutdown completed",
		"blog_count", app.blogStore.Count())
}
