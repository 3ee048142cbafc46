package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Blog
var (
	ErrEmptyBlogID      = errors.New("blog ID cannot be empty")
	ErrEmptyBlogTitle   = errors.New("blog title cannot be empty")
	ErrEmptyBlogContent = errors.New("blog content cannot be empty")
	ErrEmptyBlogTopic   = errors.New("blog topic cannot be empty")
	ErrInvalidLanguage  = errors.New("unsupported blog language")
	ErrInvalidCategory  = errors.New("invalid blog category")
)

// Blog represents a generated blog post. Once persisted it is owned
// exclusively by the store; all mutations flow through store operations.
type Blog struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Topic     string    `json:"topic"`
	Language  string    `json:"language"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBlog creates a new Blog with the given fields. It generates a new
// UUID, derives the category from topic and content, and sets the
// creation/update timestamps. Returns an error if validation fails.
func NewBlog(title, content, topic, language string) (*Blog, error) {
	now := time.Now().UTC()
	blog := &Blog{
		ID:        uuid.New(),
		Title:     CleanTitle(title),
		Content:   CleanContent(content),
		Topic:     strings.TrimSpace(topic),
		Language:  language,
		Category:  ClassifyCategory(topic, content),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := blog.Validate(); err != nil {
		return nil, err
	}

	return blog, nil
}

// Validate checks if the Blog has valid data.
// Returns an error if any field fails validation.
func (b *Blog) Validate() error {
	if b.ID == uuid.Nil {
		return ErrEmptyBlogID
	}

	if strings.TrimSpace(b.Title) == "" {
		return ErrEmptyBlogTitle
	}

	if strings.TrimSpace(b.Content) == "" {
		return ErrEmptyBlogContent
	}

	if strings.TrimSpace(b.Topic) == "" {
		return ErrEmptyBlogTopic
	}

	if !IsSupportedLanguage(b.Language) {
		return ErrInvalidLanguage
	}

	if !isValidCategory(b.Category) {
		return ErrInvalidCategory
	}

	return nil
}

// Touch refreshes the UpdatedAt timestamp after a mutation.
func (b *Blog) Touch() {
	b.UpdatedAt = time.Now().UTC()
}

// CleanTitle strips markdown emphasis and surrounding quotes that models
// tend to wrap titles in.
func CleanTitle(title string) string {
	title = strings.ReplaceAll(title, "**", "")
	title = strings.ReplaceAll(title, `"`, "")
	title = strings.ReplaceAll(title, "'", "")
	return strings.TrimSpace(title)
}

// CleanContent trims stray whitespace while preserving the markdown
// structure of the body.
func CleanContent(content string) string {
	return strings.TrimSpace(content)
}
