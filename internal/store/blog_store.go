package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/blogsmith/blogsmith-api/internal/domain"
)

// BlogStore provides thread-safe access to the blog collection backed by
// a JSON snapshot file. Mutations are serialized behind the write lock so
// the snapshot is never written from two interleaved mutations; reads
// take the read lock and return copies, so they never observe a partial
// write.
type BlogStore struct {
	path   string
	logger *slog.Logger

	mu    sync.RWMutex
	blogs map[uuid.UUID]*domain.Blog
	order []uuid.UUID // insertion order for listing
}

// UpdateFields carries the mutable fields of a blog record. Nil fields
// are left unchanged by Update.
type UpdateFields struct {
	Title    *string
	Content  *string
	Category *domain.Category
}

// New creates a BlogStore persisting to the given snapshot path. A
// missing or corrupt snapshot initializes an empty store rather than
// failing hard; a corrupt primary is retried from the one-generation
// backup first.
func New(path string, logger *slog.Logger) (*BlogStore, error) {
	if path == "" {
		return nil, errors.New("snapshot path cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &BlogStore{
		path:   path,
		logger: logger,
		blogs:  make(map[uuid.UUID]*domain.Blog),
	}

	if err := s.load(s.path); err != nil {
		logger.Warn("failed to load blog snapshot, trying backup",
			"path", path,
			"error", err)

		if backupErr := s.load(s.backupPath()); backupErr != nil {
			logger.Warn("failed to load backup snapshot, starting empty",
				"path", s.backupPath(),
				"error", backupErr)
			s.blogs = make(map[uuid.UUID]*domain.Blog)
			s.order = nil
		}
	}

	return s, nil
}

// Create assigns a unique ID and timestamps if unset, inserts the record,
// and persists the snapshot. On a persistence failure the insertion is
// rolled back and ErrSnapshotWrite is returned.
func (s *BlogStore) Create(blog *domain.Blog) (uuid.UUID, error) {
	if blog == nil {
		return uuid.Nil, fmt.Errorf("%w: nil blog", ErrInvalidEntity)
	}

	if blog.ID == uuid.Nil {
		blog.ID = uuid.New()
	}
	now := time.Now().UTC()
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = now
	}
	if blog.UpdatedAt.Before(blog.CreatedAt) {
		blog.UpdatedAt = blog.CreatedAt
	}

	if err := blog.Validate(); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *blog
	s.blogs[blog.ID] = &stored
	s.order = append(s.order, blog.ID)

	if err := s.save(); err != nil {
		delete(s.blogs, blog.ID)
		s.order = s.order[:len(s.order)-1]
		return uuid.Nil, NewStoreError("create", "persist snapshot", err)
	}

	s.logger.Debug("blog created",
		"blog_id", blog.ID.String(),
		"category", string(blog.Category))

	return blog.ID, nil
}

// GetByID returns a copy of the blog with the given ID, or ErrBlogNotFound.
func (s *BlogStore) GetByID(id uuid.UUID) (*domain.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blog, ok := s.blogs[id]
	if !ok {
		return nil, ErrBlogNotFound
	}

	copied := *blog
	return &copied, nil
}

// List returns copies of all blogs in insertion order, optionally
// restricted to the given category. An empty category means no filter.
func (s *BlogStore) List(category domain.Category) []*domain.Blog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blogs := make([]*domain.Blog, 0, len(s.order))
	for _, id := range s.order {
		blog, ok := s.blogs[id]
		if !ok {
			continue
		}
		if category != "" && blog.Category != category {
			continue
		}
		copied := *blog
		blogs = append(blogs, &copied)
	}

	return blogs
}

// Update merges the supplied fields into the record, refreshes
// UpdatedAt, and persists. A persistence failure restores the previous
// record. Returns the updated record or ErrBlogNotFound.
func (s *BlogStore) Update(id uuid.UUID, fields UpdateFields) (*domain.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blog, ok := s.blogs[id]
	if !ok {
		return nil, ErrBlogNotFound
	}

	previous := *blog

	if fields.Title != nil {
		blog.Title = domain.CleanTitle(*fields.Title)
	}
	if fields.Content != nil {
		blog.Content = domain.CleanContent(*fields.Content)
	}
	if fields.Category != nil {
		blog.Category = *fields.Category
	}
	blog.Touch()

	if err := blog.Validate(); err != nil {
		*blog = previous
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntity, err)
	}

	if err := s.save(); err != nil {
		*blog = previous
		return nil, NewStoreError("update", "persist snapshot", err)
	}

	s.logger.Debug("blog updated", "blog_id", id.String())

	copied := *blog
	return &copied, nil
}

// Delete removes the blog if present and persists. Deleting an absent ID
// returns false without touching the snapshot; it is not an error. A
// persistence failure restores the record at its original position.
func (s *BlogStore) Delete(id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blog, ok := s.blogs[id]
	if !ok {
		return false, nil
	}

	orderIdx := -1
	for i, oid := range s.order {
		if oid == id {
			orderIdx = i
			break
		}
	}

	delete(s.blogs, id)
	if orderIdx >= 0 {
		s.order = append(s.order[:orderIdx], s.order[orderIdx+1:]...)
	}

	if err := s.save(); err != nil {
		s.blogs[id] = blog
		if orderIdx >= 0 {
			s.order = append(s.order, uuid.Nil)
			copy(s.order[orderIdx+1:], s.order[orderIdx:])
			s.order[orderIdx] = id
		}
		return false, NewStoreError("delete", "persist snapshot", err)
	}

	s.logger.Debug("blog deleted", "blog_id", id.String())
	return true, nil
}

// Count returns the number of stored blogs.
func (s *BlogStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blogs)
}

// HasTitle reports whether a blog with the same cleaned title already
// exists. Matching is case-insensitive.
func (s *BlogStore) HasTitle(title string) bool {
	target := strings.ToLower(domain.CleanTitle(title))

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, blog := range s.blogs {
		if strings.ToLower(domain.CleanTitle(blog.Title)) == target {
			return true
		}
	}
	return false
}

// backupPath is the one-generation backup location next to the snapshot.
func (s *BlogStore) backupPath() string {
	return s.path + ".bak"
}

// load reads a snapshot file into memory. Missing files are a fresh
// start, not an error; unparseable files are.
func (s *BlogStore) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil // fresh start
		}
		return fmt.Errorf("read snapshot: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	var blogs []*domain.Blog
	if err := json.Unmarshal(data, &blogs); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}

	s.blogs = make(map[uuid.UUID]*domain.Blog, len(blogs))
	s.order = make([]uuid.UUID, 0, len(blogs))
	for _, blog := range blogs {
		if blog == nil || blog.ID == uuid.Nil {
			continue
		}
		s.blogs[blog.ID] = blog
		s.order = append(s.order, blog.ID)
	}

	s.logger.Debug("loaded blog snapshot",
		"blog_count", len(s.blogs),
		"path", path)

	return nil
}

// save writes the full snapshot atomically: back up the prior snapshot,
// write to a temp file, then rename over the target. Callers hold the
// write lock.
func (s *BlogStore) save() error {
	blogs := make([]*domain.Blog, 0, len(s.order))
	for _, id := range s.order {
		if blog, ok := s.blogs[id]; ok {
			blogs = append(blogs, blog)
		}
	}

	data, err := json.MarshalIndent(blogs, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal snapshot: %v", ErrSnapshotWrite, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create snapshot directory: %v", ErrSnapshotWrite, err)
	}

	// Keep one generation of history before replacing the snapshot.
	if prior, err := os.ReadFile(s.path); err == nil {
		if err := os.WriteFile(s.backupPath(), prior, 0o644); err != nil {
			return fmt.Errorf("%w: write backup: %v", ErrSnapshotWrite, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: read prior snapshot: %v", ErrSnapshotWrite, err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("%w: write temp file: %v", ErrSnapshotWrite, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("%w: rename temp file: %v", ErrSnapshotWrite, err)
	}

	return nil
}
