package retry

import (
	"context"
	"fmt"
	"time"
)

// Policy configures retry behavior for a single operation.
type Policy struct {
	// MaxAttempts is the maximum number of attempts, including the first.
	MaxAttempts int

	// BaseDelay is the backoff before the first retry; it doubles after
	// each subsequent attempt.
	BaseDelay time.Duration

	// MaxDelay caps the backoff. Zero means uncapped.
	MaxDelay time.Duration

	// Classify reports whether an error is transient and therefore worth
	// retrying. A nil Classify retries nothing: every failure is final.
	Classify func(error) bool

	// sleep is replaced in tests to observe delays without waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

// DefaultPolicy is the standard provider-call retry policy: three
// attempts with backoff doubling from one second.
func DefaultPolicy(classify func(error) bool) Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
		Classify:    classify,
	}
}

// ExhaustedError signals that an operation kept failing with transient
// errors until the attempt budget ran out. It carries the last underlying
// failure and never substitutes a result.
type ExhaustedError struct {
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retries exhausted after %d attempts: %v", e.Attempts, e.Err)
}

// Unwrap returns the last underlying failure to support errors.Is/As.
func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// Do executes op under the policy. Transient failures are retried with
// exponential backoff up to MaxAttempts; the first non-transient failure
// is returned immediately without consuming further attempts. When the
// budget is spent, Do returns an *ExhaustedError wrapping the last error.
// Backoff sleeps respect context cancellation.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepContext
	}

	delay := p.BaseDelay
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if p.Classify == nil || !p.Classify(err) {
			return zero, err
		}

		if attempt == p.MaxAttempts {
			break
		}

		if err := sleep(ctx, delay); err != nil {
			return zero, err
		}

		delay *= 2
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}

	return zero, &ExhaustedError{Attempts: p.MaxAttempts, Err: lastErr}
}

// sleepContext waits for the delay or context cancellation, whichever
// comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
