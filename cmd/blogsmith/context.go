package main

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/blogsmith/blogsmith-api/internal/config"
	"github.com/blogsmith/blogsmith-api/internal/generation"
	"github.com/blogsmith/blogsmith-api/internal/pipeline"
	"github.com/blogsmith/blogsmith-api/internal/platform/groq"
	"github.com/blogsmith/blogsmith-api/internal/platform/logger"
	"github.com/blogsmith/blogsmith-api/internal/retry"
	"github.com/blogsmith/blogsmith-api/internal/service"
	"github.com/blogsmith/blogsmith-api/internal/store"
)

// components holds the wired application pieces shared by the CLI
// commands.
type components struct {
	config      *config.Config
	logger      *slog.Logger
	generator   generation.Generator
	policy      retry.Policy
	blogStore   *store.BlogStore
	blogService *service.BlogService
}

// commandContext lazily wires the shared components so commands that
// never touch the provider (help, usage errors) pay no startup cost.
type commandContext struct {
	once       sync.Once
	components *components
	err        error
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) ensureComponents() (*components, error) {
	c.once.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			c.err = fmt.Errorf("failed to load configuration: %w", err)
			return
		}

		appLogger := logger.Setup(cfg.Server)

		generator, err := groq.NewGenerator(
			appLogger.With("component", "llm_generator"),
			cfg.LLM,
		)
		if err != nil {
			c.err = fmt.Errorf("failed to initialize LLM generator: %w", err)
			return
		}

		blogStore, err := store.New(cfg.Store.SnapshotPath, appLogger.With("component", "blog_store"))
		if err != nil {
			c.err = fmt.Errorf("failed to initialize blog store: %w", err)
			return
		}

		policy := retry.DefaultPolicy(generation.IsTransient)
		if cfg.LLM.MaxRetries > 0 {
			policy.MaxAttempts = cfg.LLM.MaxRetries
		}
		if delay := cfg.LLM.RetryDelay(); delay > 0 {
			policy.BaseDelay = delay
		}

		p := pipeline.New(generator, policy, appLogger.With("component", "pipeline"))

		c.components = &components{
			config:      cfg,
			logger:      appLogger,
			generator:   generator,
			policy:      policy,
			blogStore:   blogStore,
			blogService: service.NewBlogService(p, blogStore, appLogger),
		}
	})
	return c.components, c.err
}
