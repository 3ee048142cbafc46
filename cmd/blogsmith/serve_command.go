package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/blogsmith/blogsmith-api/internal/api"
	apiMiddleware "github.com/blogsmith/blogsmith-api/internal/api/middleware"
)

func newServeCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the blog generation HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := cmdCtx.ensureComponents()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), comps)
		},
	}
}

func runServe(ctx context.Context, comps *components) error {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	blogHandler := api.NewBlogHandler(comps.blogService)

	r.Route("/blogs", func(r chi.Router) {
		r.Post("/", blogHandler.GenerateBlog)
		r.Get("/", blogHandler.ListBlogs)
		r.Get("/{id}", blogHandler.GetBlog)
		r.Put("/{id}", blogHandler.UpdateBlog)
		r.Delete("/{id}", blogHandler.DeleteBlog)
	})
	r.Get("/health", blogHandler.HealthCheck)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", comps.config.Server.Host, comps.config.Server.Port),
		Handler: r,
	}

	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		comps.logger.Info("starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			comps.logger.Error("server failed", "error", err)
			cancelServer()
		}
	}()

	select {
	case <-shutdownCh:
		comps.logger.Info("shutting down server...")
	case <-serverCtx.Done():
		comps.logger.Info("server context canceled, shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	comps.logger.Info("server shutdown completed",
		"blog_count", comps.blogStore.Count())
	return nil
}
