package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/blogsmith/blogsmith-api/internal/domain"
	"github.com/blogsmith/blogsmith-api/internal/pipeline"
	"github.com/blogsmith/blogsmith-api/internal/store"
)

// DraftGenerator produces a blog draft for a request. Satisfied by
// *pipeline.Pipeline.
type DraftGenerator interface {
	Run(ctx context.Context, req pipeline.Request) (*pipeline.Draft, error)
}

// BlogRepository is the subset of the blog store the service depends on.
// Satisfied by *store.BlogStore.
type BlogRepository interface {
	Create(blog *domain.Blog) (uuid.UUID, error)
	GetByID(id uuid.UUID) (*domain.Blog, error)
	List(category domain.Category) []*domain.Blog
	Update(id uuid.UUID, fields store.UpdateFields) (*domain.Blog, error)
	Delete(id uuid.UUID) (bool, error)
	HasTitle(title string) bool
}

// BlogService coordinates the generation pipeline and the blog store.
type BlogService struct {
	generator DraftGenerator
	repo      BlogRepository
	logger    *slog.Logger
}

// NewBlogService creates a BlogService with the given dependencies.
func NewBlogService(generator DraftGenerator, repo BlogRepository, logger *slog.Logger) *BlogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BlogService{
		generator: generator,
		repo:      repo,
		logger:    logger,
	}
}

// Generate runs the full pipeline for the topic, classifies the result,
// and persists it. An empty language defaults to English. A generated
// title that collides with an existing record (case-insensitive, after
// cleaning) fails with ErrDuplicateTitle and persists nothing.
func (s *BlogService) Generate(ctx context.Context, topic, language string) (*domain.Blog, error) {
	if language == "" {
		language = domain.DefaultLanguage
	}

	draft, err := s.generator.Run(ctx, pipeline.Request{
		Topic:    topic,
		Language: language,
	})
	if err != nil {
		return nil, err
	}

	blog, err := domain.NewBlog(draft.Title, draft.Content, draft.Topic, draft.Language)
	if err != nil {
		return nil, fmt.Errorf("building blog from draft: %w", err)
	}

	if s.repo.HasTitle(blog.Title) {
		s.logger.WarnContext(ctx, "generated title collides with existing blog",
			"topic", topic)
		return nil, fmt.Errorf("%w: %q", ErrDuplicateTitle, blog.Title)
	}

	if _, err := s.repo.Create(blog); err != nil {
		return nil, fmt.Errorf("persisting generated blog: %w", err)
	}

	s.logger.InfoContext(ctx, "blog generated and stored",
		"blog_id", blog.ID.String(),
		"category", string(blog.Category),
		"language", blog.Language)

	return blog, nil
}

// Get returns the blog with the given ID.
func (s *BlogService) Get(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	return s.repo.GetByID(id)
}

// List returns all blogs, optionally filtered by category. An empty
// category means no filter.
func (s *BlogService) List(ctx context.Context, category domain.Category) []*domain.Blog {
	return s.repo.List(category)
}

// Update applies the supplied fields to an existing blog.
func (s *BlogService) Update(ctx context.Context, id uuid.UUID, fields store.UpdateFields) (*domain.Blog, error) {
	blog, err := s.repo.Update(id, fields)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "blog updated", "blog_id", id.String())
	return blog, nil
}

// Delete removes a blog. Deleting an absent ID reports false, not an
// error.
func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.InfoContext(ctx, "blog deleted", "blog_id", id.String())
	}
	return deleted, nil
}
