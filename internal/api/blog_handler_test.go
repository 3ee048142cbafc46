package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogsmith/blogsmith-api/internal/domain"
	"github.com/blogsmith/blogsmith-api/internal/pipeline"
	"github.com/blogsmith/blogsmith-api/internal/retry"
	"github.com/blogsmith/blogsmith-api/internal/service"
	"github.com/blogsmith/blogsmith-api/internal/store"
)

// MockBlogService is a mock implementation of BlogService for testing.
type MockBlogService struct {
	GenerateFn func(ctx context.Context, topic, language string) (*domain.Blog, error)
	GetFn      func(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	ListFn     func(ctx context.Context, category domain.Category) []*domain.Blog
	UpdateFn   func(ctx context.Context, id uuid.UUID, fields store.UpdateFields) (*domain.Blog, error)
	DeleteFn   func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockBlogService) Generate(ctx context.Context, topic, language string) (*domain.Blog, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, topic, language)
	}
	return nil, nil
}

func (m *MockBlogService) Get(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

func (m *MockBlogService) List(ctx context.Context, category domain.Category) []*domain.Blog {
	if m.ListFn != nil {
		return m.ListFn(ctx, category)
	}
	return nil
}

func (m *MockBlogService) Update(ctx context.Context, id uuid.UUID, fields store.UpdateFields) (*domain.Blog, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, fields)
	}
	return nil, nil
}

func (m *MockBlogService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return false, nil
}

func fixedBlog() *domain.Blog {
	fixedTime := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Blog{
		ID:        uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Title:     "The Future of AI",
		Content:   "AI is changing everything.",
		Topic:     "Future of AI",
		Language:  "English",
		Category:  domain.CategoryAI,
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}
}

// TestBlogHandler_GenerateBlog tests the GenerateBlog handler functionality.
func TestBlogHandler_GenerateBlog(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockBlogService)
		expectedStatus int
		expectedErrMsg string
	}{
		{
			name:        "successful_generation",
			requestBody: GenerateBlogRequest{Topic: "Future of AI"},
			setupMock: func(ms *MockBlogService) {
				ms.GenerateFn = func(ctx context.Context, topic, language string) (*domain.Blog, error) {
					return fixedBlog(), nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "invalid_request_format",
			requestBody: `{"topic": "unterminated`,
			setupMock: func(ms *MockBlogService) {
				// Mock won't be called
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid request format",
		},
		{
			name:        "missing_topic",
			requestBody: GenerateBlogRequest{Topic: ""},
			setupMock: func(ms *MockBlogService) {
				// Mock won't be called
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "required field",
		},
		{
			name:        "blank_topic_rejected_by_pipeline",
			requestBody: GenerateBlogRequest{Topic: "   "},
			setupMock: func(ms *MockBlogService) {
				ms.GenerateFn = func(ctx context.Context, topic, language string) (*domain.Blog, error) {
					return nil, pipeline.ErrBlankTopic
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Topic cannot be blank",
		},
		{
			name:        "unsupported_language",
			requestBody: GenerateBlogRequest{Topic: "Future of AI", Language: "Klingon"},
			setupMock: func(ms *MockBlogService) {
				ms.GenerateFn = func(ctx context.Context, topic, language string) (*domain.Blog, error) {
					return nil, fmt.Errorf("%w: %q", pipeline.ErrUnsupportedLanguage, language)
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Unsupported language",
		},
		{
			name:        "duplicate_title",
			requestBody: GenerateBlogRequest{Topic: "Future of AI"},
			setupMock: func(ms *MockBlogService) {
				ms.GenerateFn = func(ctx context.Context, topic, language string) (*domain.Blog, error) {
					return nil, service.ErrDuplicateTitle
				}
			},
			expectedStatus: http.StatusConflict,
			expectedErrMsg: "already exists",
		},
		{
			name:        "provider_exhaustion",
			requestBody: GenerateBlogRequest{Topic: "Future of AI"},
			setupMock: func(ms *MockBlogService) {
				ms.GenerateFn = func(ctx context.Context, topic, language string) (*domain.Blog, error) {
					return nil, &retry.ExhaustedError{Attempts: 3, Err: errors.New("rate limited")}
				}
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedErrMsg: "temporarily unavailable",
		},
		{
			name:        "snapshot_write_failure",
			requestBody: GenerateBlogRequest{Topic: "Future of AI"},
			setupMock: func(ms *MockBlogService) {
				ms.GenerateFn = func(ctx context.Context, topic, language string) (*domain.Blog, error) {
					return nil, fmt.Errorf("persisting generated blog: %w", store.ErrSnapshotWrite)
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedErrMsg: "Failed to save blog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockBlogService{}
			tt.setupMock(mockService)
			handler := NewBlogHandler(mockService)

			var reqBody []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				reqBody = []byte(str)
			} else {
				reqBody, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/blogs", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.GenerateBlog(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var respBody map[string]interface{}
			err = json.Unmarshal(w.Body.Bytes(), &respBody)
			require.NoError(t, err)

			if tt.expectedErrMsg != "" {
				assert.Equal(t, false, respBody["success"])
				errorMsg, ok := respBody["error"].(string)
				assert.True(t, ok, "Expected error field in response")
				assert.Contains(t, errorMsg, tt.expectedErrMsg)
			} else {
				assert.Equal(t, true, respBody["success"])
				data, ok := respBody["data"].(map[string]interface{})
				require.True(t, ok, "Expected data field in response")
				assert.Equal(t, "Future of AI", data["topic"])
				assert.Equal(t, "English", data["language"])

				blogData, ok := data["blog"].(map[string]interface{})
				require.True(t, ok, "Expected blog field in data")
				assert.Equal(t, "The Future of AI", blogData["title"])
				assert.Equal(t, "AI is changing everything.", blogData["content"])
				assert.Equal(t, string(domain.CategoryAI), blogData["category"])
			}
		})
	}
}

// TestBlogHandler_GetBlog tests single-record reads including ID parsing.
func TestBlogHandler_GetBlog(t *testing.T) {
	blog := fixedBlog()

	tests := []struct {
		name           string
		urlID          string
		setupMock      func(*MockBlogService)
		expectedStatus int
		expectedErrMsg string
	}{
		{
			name:  "found",
			urlID: blog.ID.String(),
			setupMock: func(ms *MockBlogService) {
				ms.GetFn = func(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
					assert.Equal(t, blog.ID, id)
					return blog, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "not_found",
			urlID: uuid.New().String(),
			setupMock: func(ms *MockBlogService) {
				ms.GetFn = func(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
					return nil, store.ErrBlogNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
			expectedErrMsg: "Blog not found",
		},
		{
			name:  "malformed_id",
			urlID: "not-a-uuid",
			setupMock: func(ms *MockBlogService) {
				// Mock won't be called
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid blog ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockBlogService{}
			tt.setupMock(mockService)
			handler := NewBlogHandler(mockService)

			r := chi.NewRouter()
			r.Get("/blogs/{id}", handler.GetBlog)

			req := httptest.NewRequest(http.MethodGet, "/blogs/"+tt.urlID, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedErrMsg != "" {
				assert.Contains(t, w.Body.String(), tt.expectedErrMsg)
			}
		})
	}
}

// TestBlogHandler_ListBlogs tests listing with and without a category filter.
func TestBlogHandler_ListBlogs(t *testing.T) {
	blog := fixedBlog()

	t.Run("all_blogs", func(t *testing.T) {
		mockService := &MockBlogService{
			ListFn: func(ctx context.Context, category domain.Category) []*domain.Blog {
				assert.Empty(t, category)
				return []*domain.Blog{blog}
			},
		}
		handler := NewBlogHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/blogs", nil)
		w := httptest.NewRecorder()
		handler.ListBlogs(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp BlogListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 1, resp.Count)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, blog.Title, resp.Data[0].Title)
	})

	t.Run("category_filter", func(t *testing.T) {
		mockService := &MockBlogService{
			ListFn: func(ctx context.Context, category domain.Category) []*domain.Blog {
				assert.Equal(t, domain.CategoryFitness, category)
				return nil
			},
		}
		handler := NewBlogHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/blogs?category=fitness", nil)
		w := httptest.NewRecorder()
		handler.ListBlogs(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp BlogListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Zero(t, resp.Count)
		assert.Empty(t, resp.Data)
	})

	t.Run("unknown_category", func(t *testing.T) {
		handler := NewBlogHandler(&MockBlogService{})

		req := httptest.NewRequest(http.MethodGet, "/blogs?category=astrology", nil)
		w := httptest.NewRecorder()
		handler.ListBlogs(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid category")
	})
}

// TestBlogHandler_UpdateBlog tests partial updates.
func TestBlogHandler_UpdateBlog(t *testing.T) {
	blog := fixedBlog()
	newTitle := "A Better Title"

	t.Run("successful_update", func(t *testing.T) {
		mockService := &MockBlogService{
			UpdateFn: func(ctx context.Context, id uuid.UUID, fields store.UpdateFields) (*domain.Blog, error) {
				require.NotNil(t, fields.Title)
				assert.Equal(t, newTitle, *fields.Title)
				assert.Nil(t, fields.Content)
				updated := *blog
				updated.Title = newTitle
				return &updated, nil
			},
		}
		handler := NewBlogHandler(mockService)

		r := chi.NewRouter()
		r.Put("/blogs/{id}", handler.UpdateBlog)

		body, err := json.Marshal(UpdateBlogRequest{Title: &newTitle})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPut, "/blogs/"+blog.ID.String(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp BlogDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, newTitle, resp.Data.Title)
	})

	t.Run("unknown_category_rejected", func(t *testing.T) {
		handler := NewBlogHandler(&MockBlogService{})

		r := chi.NewRouter()
		r.Put("/blogs/{id}", handler.UpdateBlog)

		bad := "Astrology"
		body, err := json.Marshal(UpdateBlogRequest{Category: &bad})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPut, "/blogs/"+blog.ID.String(), bytes.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid category")
	})

	t.Run("not_found", func(t *testing.T) {
		mockService := &MockBlogService{
			UpdateFn: func(ctx context.Context, id uuid.UUID, fields store.UpdateFields) (*domain.Blog, error) {
				return nil, store.ErrBlogNotFound
			},
		}
		handler := NewBlogHandler(mockService)

		r := chi.NewRouter()
		r.Put("/blogs/{id}", handler.UpdateBlog)

		body, err := json.Marshal(UpdateBlogRequest{Title: &newTitle})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPut, "/blogs/"+uuid.NewString(), bytes.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestBlogHandler_DeleteBlog tests deletes of present and absent records.
func TestBlogHandler_DeleteBlog(t *testing.T) {
	blog := fixedBlog()

	tests := []struct {
		name           string
		deleted        bool
		deleteErr      error
		expectedStatus int
		expectedErrMsg string
	}{
		{
			name:           "deleted",
			deleted:        true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "absent",
			deleted:        false,
			expectedStatus: http.StatusNotFound,
			expectedErrMsg: "Blog not found",
		},
		{
			name:           "snapshot_failure",
			deleteErr:      store.NewStoreError("delete", "persist snapshot", store.ErrSnapshotWrite),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockBlogService{
				DeleteFn: func(ctx context.Context, id uuid.UUID) (bool, error) {
					return tt.deleted, tt.deleteErr
				},
			}
			handler := NewBlogHandler(mockService)

			r := chi.NewRouter()
			r.Delete("/blogs/{id}", handler.DeleteBlog)

			req := httptest.NewRequest(http.MethodDelete, "/blogs/"+blog.ID.String(), nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedErrMsg != "" {
				assert.Contains(t, w.Body.String(), tt.expectedErrMsg)
			}
		})
	}
}

// TestBlogHandler_HealthCheck verifies the liveness endpoint shape.
func TestBlogHandler_HealthCheck(t *testing.T) {
	handler := NewBlogHandler(&MockBlogService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.HealthCheck(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "blogsmith-api", resp.Service)
	assert.False(t, resp.Timestamp.IsZero())
}

// TestBlogHandler_HelperFunctions tests the DTO conversion helper.
func TestBlogHandler_HelperFunctions(t *testing.T) {
	t.Run("blogToDTOResponse", func(t *testing.T) {
		blog := fixedBlog()
		response := blogToDTOResponse(blog)

		assert.Equal(t, blog.ID.String(), response.ID)
		assert.Equal(t, blog.Title, response.Title)
		assert.Equal(t, blog.Content, response.Content)
		assert.Equal(t, blog.Topic, response.Topic)
		assert.Equal(t, blog.Language, response.Language)
		assert.Equal(t, string(blog.Category), response.Category)
		assert.Equal(t, blog.CreatedAt, response.CreatedAt)
		assert.Equal(t, blog.UpdatedAt, response.UpdatedAt)
	})
}

// TestMapErrorToStatusCode covers the full error-to-status mapping.
func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"blank_topic", pipeline.ErrBlankTopic, http.StatusBadRequest},
		{"unsupported_language", pipeline.ErrUnsupportedLanguage, http.StatusBadRequest},
		{"invalid_entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"not_found", store.ErrBlogNotFound, http.StatusNotFound},
		{"duplicate_title", service.ErrDuplicateTitle, http.StatusConflict},
		{"exhausted", &retry.ExhaustedError{Attempts: 3, Err: errors.New("x")}, http.StatusServiceUnavailable},
		{"wrapped_exhausted", fmt.Errorf("title creation: %w", &retry.ExhaustedError{Attempts: 3, Err: errors.New("x")}), http.StatusServiceUnavailable},
		{"snapshot_write", store.ErrSnapshotWrite, http.StatusInternalServerError},
		{"unknown", errors.New("mystery"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}
