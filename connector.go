package llmconnect

import (
	"context"
	"time"
)

// Provider identifies an LLM provider.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGroq      Provider = "groq"
)

// Config holds connector configuration. An empty APIKey falls back to the
// provider's conventional environment variable (e.g. OPENAI_API_KEY).
type Config struct {
	APIKey  string
	BaseURL string
	// Organization is only honored by OpenAI.
	Organization string
	// Timeout is the per-request timeout; 0 uses the SDK default.
	Timeout time.Duration
	// MaxRetries caps SDK transport-level retries; 0 uses the SDK default.
	MaxRetries int
}

// ChatCompletion is the chat capability of a connector. Implementations are
// safe for concurrent use: independent calls share no mutable state.
type ChatCompletion interface {
	// Invoke sends a conversation and returns the complete decoded response.
	Invoke(ctx context.Context, messages []Message, opts ...Option) (*ChatResponse, error)

	// Stream sends a conversation and returns a channel of decoded stream
	// chunks, each sourced lazily from one underlying network event. The
	// channel is single-consumer and single-pass, and is closed after the
	// terminal chunk or an in-band error (StreamChunk.Err).
	Stream(ctx context.Context, messages []Message, opts ...Option) (<-chan StreamChunk, error)
}

// BatchProcess is the bulk processing capability of a connector. The provider
// is the authority over job state: this interface only observes, never
// transitions, a job's lifecycle.
type BatchProcess interface {
	// Create submits a new batch job.
	Create(ctx context.Context, input BatchInput) (*BatchRequest, error)

	// Status fetches the job's current server-side state, never a cached value.
	Status(ctx context.Context, jobID string) (*BatchRequest, error)

	// Result decodes the output of a completed job, preserving original record
	// order. It fails with a BatchError while the job's native status is not
	// yet terminal-successful.
	Result(ctx context.Context, jobID string) (*BatchResult, error)

	// Cancel requests cancellation. Cancellation is asynchronous at the
	// provider: the returned status may still show an in-progress variant,
	// and the caller must poll Status to observe final settlement.
	Cancel(ctx context.Context, jobID string) (*BatchRequest, error)

	// List returns jobs newest-first using opaque cursor pagination.
	List(ctx context.Context, opts BatchListOptions) ([]*BatchRequest, error)
}

// FileAPI is the file management capability of a connector.
type FileAPI interface {
	// Upload stores a file with the provider and returns its id.
	Upload(ctx context.Context, file *FileInput, purpose FilePurpose) (string, error)

	// Retrieve fetches file metadata.
	Retrieve(ctx context.Context, fileID string) (*FileObject, error)

	// Download fetches file content.
	Download(ctx context.Context, fileID string) ([]byte, error)

	// Delete removes a file.
	Delete(ctx context.Context, fileID string) error

	// List returns file metadata, optionally filtered by purpose (empty
	// purpose returns all files).
	List(ctx context.Context, purpose FilePurpose) ([]*FileObject, error)
}

// Connector binds one provider's SDK client handle to the three capability
// adapters. Adapters are constructed lazily on first access and cached, so
// repeated calls return the same instance.
type Connector interface {
	Provider() Provider
	Chat() ChatCompletion
	Batch() BatchProcess
	File() FileAPI
}
