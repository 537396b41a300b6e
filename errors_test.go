package llmconnect

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	t.Run("rate limit is retryable", func(t *testing.T) {
		err := &RateLimitError{Message: "too many requests"}
		assert.True(t, IsRetryable(err))
	})

	t.Run("5xx api error is retryable", func(t *testing.T) {
		err := &APIError{Message: "overloaded", StatusCode: 529}
		assert.True(t, IsRetryable(err))
	})

	t.Run("4xx api error is not retryable", func(t *testing.T) {
		err := &APIError{Message: "conflict", StatusCode: 409}
		assert.False(t, IsRetryable(err))
	})

	t.Run("authentication error is not retryable", func(t *testing.T) {
		err := &AuthenticationError{Message: "bad key"}
		assert.False(t, IsRetryable(err))
	})

	t.Run("wrapped rate limit is retryable", func(t *testing.T) {
		err := &BatchError{Message: "create failed", Cause: &RateLimitError{}}
		assert.True(t, IsRetryable(err))
	})

	t.Run("nil is not retryable", func(t *testing.T) {
		assert.False(t, IsRetryable(nil))
	})
}

func TestIsInvalidRequest(t *testing.T) {
	t.Run("invalid request", func(t *testing.T) {
		assert.True(t, IsInvalidRequest(&InvalidRequestError{Message: "bad model"}))
	})

	t.Run("context length refinement counts", func(t *testing.T) {
		assert.True(t, IsInvalidRequest(&ContextLengthExceededError{Message: "too long"}))
	})

	t.Run("unrelated error does not", func(t *testing.T) {
		assert.False(t, IsInvalidRequest(&APIError{Message: "boom"}))
	})
}

func TestRetryAfterOf(t *testing.T) {
	err := &RateLimitError{Message: "slow down", RetryAfter: 30 * time.Second}
	assert.Equal(t, 30*time.Second, RetryAfterOf(err))
	assert.Equal(t, time.Duration(0), RetryAfterOf(errors.New("plain")))
}

func TestStatusCodeOf(t *testing.T) {
	assert.Equal(t, 503, StatusCodeOf(&APIError{StatusCode: 503}))
	assert.Equal(t, 0, StatusCodeOf(&InvalidRequestError{}))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("network down")
	err := &APIError{Message: "request failed", Cause: cause}
	assert.ErrorIs(t, err, cause)
}

func TestErrorMessages(t *testing.T) {
	t.Run("status code included", func(t *testing.T) {
		err := &APIError{Message: "boom", StatusCode: 500}
		assert.Contains(t, err.Error(), "500")
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("provider not supported names the provider", func(t *testing.T) {
		err := &ProviderNotSupportedError{Provider: "mistral"}
		assert.Contains(t, err.Error(), "mistral")
	})

	t.Run("cause rendered", func(t *testing.T) {
		err := &FileError{Message: "upload", Cause: errors.New("disk full")}
		assert.Contains(t, err.Error(), "disk full")
	})
}
