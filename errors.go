package llmconnect

import (
	"errors"
	"fmt"
	"time"
)

// AuthenticationError indicates a missing or invalid credential.
// Never retriable.
type AuthenticationError struct {
	Message string
	Cause   error
}

func (e *AuthenticationError) Error() string { return format("authentication error", e.Message, e.Cause) }
func (e *AuthenticationError) Unwrap() error { return e.Cause }

// RateLimitError indicates the provider throttled the request.
// Retriable after the RetryAfter hint, or with exponential backoff.
type RateLimitError struct {
	Message string
	// RetryAfter is the server-suggested retry delay, 0 if not available.
	RetryAfter time.Duration
	Cause      error
}

func (e *RateLimitError) Error() string { return format("rate limit error", e.Message, e.Cause) }
func (e *RateLimitError) Unwrap() error { return e.Cause }

// InvalidRequestError indicates malformed caller input such as bad parameters
// or an unknown model. Not retriable without caller changes.
type InvalidRequestError struct {
	Message string
	Cause   error
}

func (e *InvalidRequestError) Error() string { return format("invalid request", e.Message, e.Cause) }
func (e *InvalidRequestError) Unwrap() error { return e.Cause }

// ContextLengthExceededError is the refinement of InvalidRequestError for
// input exceeding the model's context window.
type ContextLengthExceededError struct {
	Message string
	Cause   error
}

func (e *ContextLengthExceededError) Error() string {
	return format("context length exceeded", e.Message, e.Cause)
}
func (e *ContextLengthExceededError) Unwrap() error { return e.Cause }

// ContentFilterError indicates the request was blocked by the provider's
// safety policy. Not retriable.
type ContentFilterError struct {
	Message string
	Cause   error
}

func (e *ContentFilterError) Error() string { return format("content filtered", e.Message, e.Cause) }
func (e *ContentFilterError) Unwrap() error { return e.Cause }

// APIError is a generic provider-side failure, including decode failures on
// malformed provider payloads. Retriable for 5xx-class status codes.
type APIError struct {
	Message string
	// StatusCode is the HTTP status code, 0 if not applicable.
	StatusCode int
	Cause      error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return format(fmt.Sprintf("api error (status %d)", e.StatusCode), e.Message, e.Cause)
	}
	return format("api error", e.Message, e.Cause)
}
func (e *APIError) Unwrap() error { return e.Cause }

// BatchError indicates a batch-specific failure: malformed JSONL, job not
// found, or results requested before the job reached a terminal state.
type BatchError struct {
	Message string
	Cause   error
}

func (e *BatchError) Error() string { return format("batch error", e.Message, e.Cause) }
func (e *BatchError) Unwrap() error { return e.Cause }

// FileError indicates a file-specific failure such as a missing file or an
// invalid file request.
type FileError struct {
	Message string
	Cause   error
}

func (e *FileError) Error() string { return format("file error", e.Message, e.Cause) }
func (e *FileError) Unwrap() error { return e.Cause }

// ProviderNotSupportedError is returned by the connector factory for an
// unknown provider name.
type ProviderNotSupportedError struct {
	Provider string
}

func (e *ProviderNotSupportedError) Error() string {
	return fmt.Sprintf("provider not supported: %q", e.Provider)
}

// ProviderImportError indicates the chosen provider's backing SDK is
// unavailable in the runtime environment. In Go the SDKs are compile-time
// dependencies, so this kind is reserved for callers that gate on it.
type ProviderImportError struct {
	Provider string
	Message  string
}

func (e *ProviderImportError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("provider %s unavailable: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("provider %s unavailable", e.Provider)
}

func format(kind, msg string, cause error) string {
	switch {
	case msg != "" && cause != nil:
		return fmt.Sprintf("%s: %s: %v", kind, msg, cause)
	case msg != "":
		return fmt.Sprintf("%s: %s", kind, msg)
	case cause != nil:
		return fmt.Sprintf("%s: %v", kind, cause)
	}
	return kind
}

// IsRetryable returns true if the error is worth retrying: a rate limit, or
// a provider-side failure with a 5xx status code.
func IsRetryable(err error) bool {
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return true
	}
	var api *APIError
	if errors.As(err, &api) {
		return api.StatusCode >= 500 && api.StatusCode < 600
	}
	return false
}

// IsInvalidRequest returns true for caller-input errors, including the
// context-length refinement.
func IsInvalidRequest(err error) bool {
	var inv *InvalidRequestError
	if errors.As(err, &inv) {
		return true
	}
	var ctx *ContextLengthExceededError
	return errors.As(err, &ctx)
}

// StatusCodeOf returns the HTTP status code carried by an APIError, or 0.
func StatusCodeOf(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		return api.StatusCode
	}
	return 0
}

// RetryAfterOf returns the server-suggested retry delay, or 0.
func RetryAfterOf(err error) time.Duration {
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return rl.RetryAfter
	}
	return 0
}
