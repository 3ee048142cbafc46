package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/blogsmith/blogsmith-api/internal/api/shared"
	"github.com/blogsmith/blogsmith-api/internal/domain"
	"github.com/blogsmith/blogsmith-api/internal/service"
	"github.com/blogsmith/blogsmith-api/internal/store"
)

// BlogService is the application-service surface the handler depends on.
// Satisfied by *service.BlogService.
type BlogService interface {
	Generate(ctx context.Context, topic, language string) (*domain.Blog, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	List(ctx context.Context, category domain.Category) []*domain.Blog
	Update(ctx context.Context, id uuid.UUID, fields store.UpdateFields) (*domain.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// BlogHandler handles blog-related HTTP requests.
type BlogHandler struct {
	blogService BlogService
	validator   *validator.Validate
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogService BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		validator:   validator.New(),
	}
}

// GenerateBlog handles POST /blogs requests. The pipeline runs
// synchronously; the response carries the stored record.
func (h *BlogHandler) GenerateBlog(w http.ResponseWriter, r *http.Request) {
	var req GenerateBlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	blog, err := h.blogService.Generate(r.Context(), req.Topic, req.Language)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, GenerateBlogResponse{
		Success: true,
		Data: GenerateBlogData{
			Topic:    blog.Topic,
			Language: blog.Language,
			Blog:     blogToDTOResponse(blog),
		},
		Message: "Blog generated successfully",
	})
}

// ListBlogs handles GET /blogs requests, optionally filtered by the
// category query parameter.
func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if raw := r.URL.Query().Get("category"); raw != "" {
		parsed, err := domain.ParseCategory(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
			return
		}
		category = parsed
	}

	blogs := h.blogService.List(r.Context(), category)

	responses := make([]BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		responses = append(responses, blogToDTOResponse(blog))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BlogListResponse{
		Success: true,
		Data:    responses,
		Count:   len(responses),
	})
}

// GetBlog handles GET /blogs/{id} requests.
func (h *BlogHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := h.blogID(w, r)
	if !ok {
		return
	}

	blog, err := h.blogService.Get(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BlogDetailResponse{
		Success: true,
		Data:    blogToDTOResponse(blog),
	})
}

// UpdateBlog handles PUT /blogs/{id} requests.
func (h *BlogHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := h.blogID(w, r)
	if !ok {
		return
	}

	var req UpdateBlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	fields := store.UpdateFields{
		Title:   req.Title,
		Content: req.Content,
	}
	if req.Category != nil {
		category, err := domain.ParseCategory(*req.Category)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
			return
		}
		fields.Category = &category
	}

	blog, err := h.blogService.Update(r.Context(), id, fields)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BlogDetailResponse{
		Success: true,
		Data:    blogToDTOResponse(blog),
		Message: "Blog updated successfully",
	})
}

// DeleteBlog handles DELETE /blogs/{id} requests. Deleting an ID that
// does not exist is reported as 404, matching the read path.
func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := h.blogID(w, r)
	if !ok {
		return
	}

	deleted, err := h.blogService.Delete(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if !deleted {
		shared.RespondWithError(w, r, http.StatusNotFound, "Blog not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Success: true,
		Message: "Blog deleted successfully",
	})
}

// HealthCheck handles GET /health requests.
func (h *BlogHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   "blogsmith-api",
		Timestamp: time.Now().UTC(),
	})
}

// blogID extracts and parses the {id} URL parameter, responding with 400
// on malformed input.
func (h *BlogHandler) blogID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid blog ID")
		return uuid.Nil, false
	}
	return id, true
}

var _ BlogService = (*service.BlogService)(nil)
