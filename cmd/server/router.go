package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blogsmith/blogsmith-api/internal/api"
	apiMiddleware "github.com/blogsmith/blogsmith-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	blogHandler := api.NewBlogHandler(app.blogService)

	r.Route("/blogs", func(r chi.Router) {
		r.Post("/", blogHandler.GenerateBlog)
		r.Get("/", blogHandler.ListBlogs)
		r.Get("/{id}", blogHandler.GetBlog)
		r.Put("/{id}", blogHandler.UpdateBlog)
		r.Delete("/{id}", blogHandler.DeleteBlog)
	})

	r.Get("/health", blogHandler.HealthCheck)

	return r
}
