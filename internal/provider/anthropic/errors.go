package anthropic

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	ai "github.com/spetersoncode/llmconnect"
)

// wrapError translates an Anthropic SDK error into the library's error
// taxonomy. Native SDK error types never cross the adapter boundary except as
// a wrapped cause.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		// Network or transport failure without an HTTP response.
		return &ai.APIError{Message: "request failed", Cause: err}
	}

	msg := apiErr.Error()
	code := apiErr.StatusCode
	switch {
	case code == 401 || code == 403:
		return &ai.AuthenticationError{Message: msg, Cause: err}
	case code == 429:
		return &ai.RateLimitError{
			Message:    msg,
			RetryAfter: parseRetryAfter(apiErr.Response),
			Cause:      err,
		}
	case code == 413:
		return &ai.ContextLengthExceededError{Message: msg, Cause: err}
	case code == 400 || code == 404 || code == 422:
		return classifyInvalidRequest(msg, err)
	default:
		return &ai.APIError{Message: msg, StatusCode: code, Cause: err}
	}
}

func classifyInvalidRequest(msg string, cause error) error {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "prompt is too long") ||
		strings.Contains(lower, "context length") ||
		strings.Contains(lower, "maximum context"):
		return &ai.ContextLengthExceededError{Message: msg, Cause: cause}
	case strings.Contains(lower, "usage policy") ||
		strings.Contains(lower, "content policy"):
		return &ai.ContentFilterError{Message: msg, Cause: cause}
	}
	return &ai.InvalidRequestError{Message: msg, Cause: cause}
}

// wrapBatchError is wrapError with 404 mapped to a batch-not-found BatchError.
func wrapBatchError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return &ai.BatchError{Message: "batch not found", Cause: err}
	}
	return wrapError(err)
}

// wrapFileError is wrapError with 404 mapped to a file-not-found FileError.
func wrapFileError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return &ai.FileError{Message: "file not found", Cause: err}
	}
	return wrapError(err)
}

// parseRetryAfter extracts the Retry-After duration from an HTTP response.
// Returns 0 if the header is not present or cannot be parsed.
func parseRetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}

	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(header); err == nil {
		delay := time.Until(t)
		if delay > 0 {
			return delay
		}
	}

	return 0
}
