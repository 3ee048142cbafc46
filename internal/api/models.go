package api

import (
	"time"

	"github.com/blogsmith/blogsmith-api/internal/domain"
)

// GenerateBlogRequest represents the request body for generating a blog.
// Language is optional and defaults to English.
type GenerateBlogRequest struct {
	Topic    string `json:"topic"    validate:"required,min=1"`
	Language string `json:"language" validate:"omitempty,min=1"`
}

// UpdateBlogRequest carries the editable fields of a stored blog. Omitted
// fields are left unchanged.
type UpdateBlogRequest struct {
	Title    *string `json:"title,omitempty"    validate:"omitempty,min=1"`
	Content  *string `json:"content,omitempty"  validate:"omitempty,min=1"`
	Category *string `json:"category,omitempty" validate:"omitempty,min=1"`
}

// BlogResponse represents a stored blog record.
type BlogResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Topic     string    `json:"topic"`
	Language  string    `json:"language"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GenerateBlogData is the data payload of a successful generation.
type GenerateBlogData struct {
	Topic    string       `json:"topic"`
	Language string       `json:"language"`
	Blog     BlogResponse `json:"blog"`
}

// GenerateBlogResponse is the envelope returned by POST /blogs.
type GenerateBlogResponse struct {
	Success bool             `json:"success"`
	Data    GenerateBlogData `json:"data"`
	Message string           `json:"message,omitempty"`
}

// BlogListResponse is the envelope returned by GET /blogs.
type BlogListResponse struct {
	Success bool           `json:"success"`
	Data    []BlogResponse `json:"data"`
	Count   int            `json:"count"`
}

// BlogDetailResponse is the envelope returned by single-record reads and updates.
type BlogDetailResponse struct {
	Success bool         `json:"success"`
	Data    BlogResponse `json:"data"`
	Message string       `json:"message,omitempty"`
}

// MessageResponse is the envelope for operations with no record payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is the payload of GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// blogToDTOResponse converts a domain.Blog to a BlogResponse.
func blogToDTOResponse(blog *domain.Blog) BlogResponse {
	return BlogResponse{
		ID:        blog.ID.String(),
		Title:     blog.Title,
		Content:   blog.Content,
		Topic:     blog.Topic,
		Language:  blog.Language,
		Category:  string(blog.Category),
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}
