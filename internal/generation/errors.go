package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when blog generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate blog content")

	// ErrInvalidResponse is returned when the LLM response is empty or malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrTransientFailure is returned for temporary provider errors
	// (timeouts, rate limiting, 5xx) that might resolve on retry
	ErrTransientFailure = errors.New("transient error during blog generation")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// IsTransient reports whether the error is eligible for retry.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientFailure)
}
