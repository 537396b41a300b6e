package llmconnect

import (
	"encoding/json"
	"time"
)

// BatchStatus is the unified batch job status: the closed union of all
// supported providers' native status vocabularies. Adapters map every
// documented native status onto this set; an unmapped native value is a
// decode error, never a silent default.
type BatchStatus string

const (
	BatchValidating BatchStatus = "validating"
	BatchInProgress BatchStatus = "in_progress"
	BatchFinalizing BatchStatus = "finalizing"
	BatchCompleted  BatchStatus = "completed"
	BatchFailed     BatchStatus = "failed"
	BatchExpired    BatchStatus = "expired"
	BatchCancelling BatchStatus = "cancelling"
	BatchCancelled  BatchStatus = "cancelled"
)

// Terminal returns true if no further status transition can occur.
func (s BatchStatus) Terminal() bool {
	switch s {
	case BatchCompleted, BatchFailed, BatchExpired, BatchCancelled:
		return true
	}
	return false
}

// BatchTimestamps holds the lifecycle milestones of a batch job. A provider
// that does not report a given milestone leaves it nil; milestones are never
// fabricated.
type BatchTimestamps struct {
	CreatedAt    time.Time  `json:"createdAt"`
	InProgressAt *time.Time `json:"inProgressAt,omitempty"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	ExpiredAt    *time.Time `json:"expiredAt,omitempty"`
	FailedAt     *time.Time `json:"failedAt,omitempty"`
	FinalizedAt  *time.Time `json:"finalizedAt,omitempty"`
}

// BatchRequest is the handle for one batch job. It is a projection of
// server-side state: created by BatchProcess.Create and refreshed only by
// re-fetching from the provider, never mutated locally.
type BatchRequest struct {
	ID               string          `json:"id"`
	Status           BatchStatus     `json:"status"`
	Timestamps       BatchTimestamps `json:"timestamps"`
	CompletionWindow string          `json:"completionWindow"`
	// InputFileID is the uploaded JSONL file id. Always empty for Anthropic,
	// which takes requests inline instead of via files.
	InputFileID  string `json:"inputFileId"`
	OutputFileID string `json:"outputFileId,omitempty"`
	ErrorFileID  string `json:"errorFileId,omitempty"`
	Endpoint     string `json:"endpoint"`
	// RequestCounts holds named per-state counters as reported (or, for
	// Anthropic, recomputed) from the provider.
	RequestCounts map[string]int `json:"requestCounts,omitempty"`
}

// BatchRecord is one decoded result entry of a completed batch, keyed by the
// caller-supplied custom id of the originating request.
type BatchRecord struct {
	CustomID string `json:"customId"`
	// Body is the full decoded result entry as returned by the provider.
	Body json.RawMessage `json:"body"`
}

// BatchResult holds the decoded output of a completed batch job, with records
// in the provider's original order.
type BatchResult struct {
	JobID        string        `json:"jobId"`
	OutputFileID string        `json:"outputFileId,omitempty"`
	Records      []BatchRecord `json:"records"`
}

// BatchInput describes the requests of a new batch job. Exactly one of File
// or Requests must be set: File carries a JSONL payload where each line is
// one request tagged with a custom_id; Requests (Anthropic only) submits
// request objects directly, bypassing file upload.
type BatchInput struct {
	File     *FileInput
	Requests []json.RawMessage
	// CompletionWindow is the processing time window, default "24h".
	CompletionWindow string
	// Endpoint is the target API endpoint for file-based providers,
	// default "/v1/chat/completions".
	Endpoint string
}

// BatchListOptions control batch listing pagination.
type BatchListOptions struct {
	// Limit is the maximum number of jobs to return; defaults to 20.
	Limit int
	// After is an opaque provider cursor (typically the last-seen job id).
	After string
}

// DefaultCompletionWindow is the completion window used when BatchInput
// leaves it empty.
const DefaultCompletionWindow = "24h"

// DefaultBatchEndpoint is the endpoint used by file-based providers when
// BatchInput leaves it empty.
const DefaultBatchEndpoint = "/v1/chat/completions"
