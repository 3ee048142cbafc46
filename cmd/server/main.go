// Package main implements the entry point for the blogsmith API server,
// which generates blog posts through the Groq LLM pipeline and serves
// them over HTTP.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/blogsmith/blogsmith-api/internal/config"
	"github.com/blogsmith/blogsmith-api/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the
// application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	appLogger.Info("server configuration loaded",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.Model,
		"snapshot_path", cfg.Store.SnapshotPath)

	if cfg.Tracing.APIKey != "" {
		appLogger.Debug("tracing configuration", "api_key_present", true)
	}

	return newApplication(cfg, appLogger)
}
