package groq

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	openai "github.com/openai/openai-go"

	"github.com/blogsmith/blogsmith-api/internal/generation"
)

// classifyProviderError maps a raw SDK error onto the generation error
// taxonomy. Timeouts, rate limiting, and 5xx responses are transient and
// eligible for retry; everything else fails immediately.
func classifyProviderError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: provider call timed out: %v", generation.ErrTransientFailure, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: network timeout: %v", generation.ErrTransientFailure, err)
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("%w: provider rate limited: %v", generation.ErrTransientFailure, err)
		case apiErr.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("%w: provider unavailable (status %d): %v",
				generation.ErrTransientFailure, apiErr.StatusCode, err)
		default:
			// 4xx other than 429: malformed request, bad credential.
			return fmt.Errorf("%w: provider rejected request (status %d): %v",
				generation.ErrGenerationFailed, apiErr.StatusCode, err)
		}
	}

	// Unknown transport failures (connection refused, DNS) are treated as
	// transient: the provider may come back.
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Errorf("%w: network error: %v", generation.ErrTransientFailure, err)
	}

	return fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
}
