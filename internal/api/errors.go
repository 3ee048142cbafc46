package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/blogsmith/blogsmith-api/internal/domain"
	"github.com/blogsmith/blogsmith-api/internal/generation"
	"github.com/blogsmith/blogsmith-api/internal/pipeline"
	"github.com/blogsmith/blogsmith-api/internal/retry"
	"github.com/blogsmith/blogsmith-api/internal/service"
	"github.com/blogsmith/blogsmith-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	var exhausted *retry.ExhaustedError

	switch {
	// Validation errors caught before any provider call
	case errors.Is(err, pipeline.ErrBlankTopic),
		errors.Is(err, pipeline.ErrUnsupportedLanguage),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, service.ErrDuplicateTitle):
		return http.StatusConflict

	// The provider stayed unavailable through the whole retry budget
	case errors.As(err, &exhausted):
		return http.StatusServiceUnavailable

	// Provider rejected the request outright; nothing a retry would fix
	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse):
		return http.StatusBadGateway

	// Default: internal server error (covers store.ErrSnapshotWrite and
	// generation.ErrInvalidConfig among others)
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var exhausted *retry.ExhaustedError

	switch {
	case errors.Is(err, pipeline.ErrBlankTopic):
		return "Topic cannot be blank"

	case errors.Is(err, pipeline.ErrUnsupportedLanguage):
		return "Unsupported language"

	case errors.Is(err, domain.ErrInvalidCategory):
		return "Invalid category"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid blog data"

	case errors.Is(err, store.ErrNotFound):
		return "Blog not found"

	case errors.Is(err, service.ErrDuplicateTitle):
		return "A blog with this title already exists"

	case errors.As(err, &exhausted):
		return "Blog generation is temporarily unavailable, please retry later"

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse):
		return "Blog generation failed"

	case errors.Is(err, store.ErrSnapshotWrite):
		return "Failed to save blog"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'GenerateBlogRequest.Topic' Error:Field
		// validation for 'Topic' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
