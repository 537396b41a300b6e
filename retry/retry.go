package retry

import (
	"context"
	"time"

	ai "github.com/spetersoncode/llmconnect"
)

// Do executes the given function with retry logic. Only errors the library
// marks retryable (rate limits and 5xx provider failures) are retried, and a
// server Retry-After hint overrides the computed backoff when longer. It
// respects context cancellation during backoff waits. Returns the result on
// success, or the last error if all attempts fail.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !ai.IsRetryable(err) {
			return zero, err
		}

		// Don't sleep after the last attempt
		if attempt < cfg.MaxAttempts-1 {
			delay := cfg.Delay(attempt)
			if hint := ai.RetryAfterOf(err); hint > delay {
				delay = hint
			}

			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return zero, lastErr
}

// DoStream is like Do but for functions that return a channel. It retries
// the stream connection establishment, not individual chunks.
func DoStream[T any](ctx context.Context, cfg Config, fn func() (<-chan T, error)) (<-chan T, error) {
	var lastErr error

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		ch, err := fn()
		if err == nil {
			return ch, nil
		}

		lastErr = err

		if !ai.IsRetryable(err) {
			return nil, err
		}

		if attempt < cfg.MaxAttempts-1 {
			delay := cfg.Delay(attempt)
			if hint := ai.RetryAfterOf(err); hint > delay {
				delay = hint
			}

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return nil, lastErr
}
