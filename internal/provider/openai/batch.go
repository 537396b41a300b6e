package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/openai/openai-go"
	ai "github.com/spetersoncode/llmconnect"
	"github.com/spetersoncode/llmconnect/internal/jsonl"
)

// BatchService implements ai.BatchProcess on the OpenAI batch API. Batch
// input travels as an uploaded JSONL file; Create validates the payload
// locally, uploads it with purpose "batch", then submits the job against it.
type BatchService struct {
	client *openai.Client
}

// Create validates, uploads, and submits a new batch job.
func (s *BatchService) Create(ctx context.Context, input ai.BatchInput) (*ai.BatchRequest, error) {
	if len(input.Requests) > 0 {
		return nil, &ai.BatchError{
			Message: "direct request lists are only supported by the anthropic provider; supply a JSONL file",
		}
	}
	if input.File == nil {
		return nil, &ai.BatchError{Message: "no requests provided; supply a JSONL file"}
	}

	data, filename, err := input.File.Content()
	if err != nil {
		return nil, &ai.BatchError{Message: "reading batch input", Cause: err}
	}
	// Validate every line before any network call; one bad line aborts the
	// whole create.
	if _, err := jsonl.Lines(data); err != nil {
		return nil, &ai.BatchError{Message: "invalid JSON in batch file", Cause: err}
	}

	uploaded, err := s.client.Files.New(ctx, openai.FileNewParams{
		File:    openai.File(bytes.NewReader(data), filename, "application/jsonl"),
		Purpose: openai.FilePurposeBatch,
	})
	if err != nil {
		return nil, wrapBatchError(err)
	}

	window := input.CompletionWindow
	if window == "" {
		window = ai.DefaultCompletionWindow
	}
	endpoint := input.Endpoint
	if endpoint == "" {
		endpoint = ai.DefaultBatchEndpoint
	}

	batch, err := s.client.Batches.New(ctx, openai.BatchNewParams{
		CompletionWindow: openai.BatchNewParamsCompletionWindow(window),
		Endpoint:         openai.BatchNewParamsEndpoint(endpoint),
		InputFileID:      uploaded.ID,
	})
	if err != nil {
		return nil, wrapBatchError(err)
	}
	return toBatchRequest(batch)
}

// Status fetches the job's current server-side state.
func (s *BatchService) Status(ctx context.Context, jobID string) (*ai.BatchRequest, error) {
	batch, err := s.client.Batches.Get(ctx, jobID)
	if err != nil {
		return nil, wrapBatchError(err)
	}
	return toBatchRequest(batch)
}

// Result downloads and decodes the output of a completed job.
func (s *BatchService) Result(ctx context.Context, jobID string) (*ai.BatchResult, error) {
	batch, err := s.client.Batches.Get(ctx, jobID)
	if err != nil {
		return nil, wrapBatchError(err)
	}
	status, err := toBatchStatus(string(batch.Status))
	if err != nil {
		return nil, err
	}
	if status != ai.BatchCompleted {
		return nil, &ai.BatchError{
			Message: fmt.Sprintf("batch job is not completed; current status: %s", status),
		}
	}
	if batch.OutputFileID == "" {
		return nil, &ai.BatchError{Message: "completed batch has no output file"}
	}

	resp, err := s.client.Files.Content(ctx, batch.OutputFileID)
	if err != nil {
		return nil, wrapFileError(err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ai.APIError{Message: "reading batch output", Cause: err}
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, err
	}
	return &ai.BatchResult{
		JobID:        jobID,
		OutputFileID: batch.OutputFileID,
		Records:      records,
	}, nil
}

// Cancel requests cancellation; settlement is asynchronous at the provider.
func (s *BatchService) Cancel(ctx context.Context, jobID string) (*ai.BatchRequest, error) {
	batch, err := s.client.Batches.Cancel(ctx, jobID)
	if err != nil {
		return nil, wrapBatchError(err)
	}
	return toBatchRequest(batch)
}

// List returns jobs newest-first using cursor pagination.
func (s *BatchService) List(ctx context.Context, opts ai.BatchListOptions) ([]*ai.BatchRequest, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	params := openai.BatchListParams{Limit: openai.Int(int64(limit))}
	if opts.After != "" {
		params.After = openai.String(opts.After)
	}

	page, err := s.client.Batches.List(ctx, params)
	if err != nil {
		return nil, wrapBatchError(err)
	}

	jobs := make([]*ai.BatchRequest, 0, len(page.Data))
	for i := range page.Data {
		job, err := toBatchRequest(&page.Data[i])
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
		if len(jobs) >= limit {
			break
		}
	}
	return jobs, nil
}

func decodeRecords(data []byte) ([]ai.BatchRecord, error) {
	lines, err := jsonl.Lines(data)
	if err != nil {
		return nil, &ai.APIError{Message: "malformed batch output", Cause: err}
	}
	records := make([]ai.BatchRecord, 0, len(lines))
	for _, line := range lines {
		var entry struct {
			CustomID string `json:"custom_id"`
		}
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, &ai.APIError{Message: "malformed batch output record", Cause: err}
		}
		records = append(records, ai.BatchRecord{CustomID: entry.CustomID, Body: line})
	}
	return records, nil
}

func toBatchRequest(batch *openai.Batch) (*ai.BatchRequest, error) {
	status, err := toBatchStatus(string(batch.Status))
	if err != nil {
		return nil, err
	}
	return &ai.BatchRequest{
		ID:     batch.ID,
		Status: status,
		Timestamps: ai.BatchTimestamps{
			CreatedAt:    time.Unix(batch.CreatedAt, 0).UTC(),
			InProgressAt: unixTime(batch.InProgressAt),
			CancelledAt:  unixTime(batch.CancelledAt),
			CompletedAt:  unixTime(batch.CompletedAt),
			ExpiredAt:    unixTime(batch.ExpiredAt),
			FailedAt:     unixTime(batch.FailedAt),
			FinalizedAt:  unixTime(batch.FinalizingAt),
		},
		CompletionWindow: string(batch.CompletionWindow),
		InputFileID:      batch.InputFileID,
		OutputFileID:     batch.OutputFileID,
		ErrorFileID:      batch.ErrorFileID,
		Endpoint:         string(batch.Endpoint),
		RequestCounts: map[string]int{
			"total":     int(batch.RequestCounts.Total),
			"completed": int(batch.RequestCounts.Completed),
			"failed":    int(batch.RequestCounts.Failed),
		},
	}, nil
}

// toBatchStatus maps a native batch status onto the unified set. The native
// vocabulary maps one to one; an unknown value is a decode error, never a
// silent default.
func toBatchStatus(native string) (ai.BatchStatus, error) {
	switch native {
	case "validating":
		return ai.BatchValidating, nil
	case "in_progress":
		return ai.BatchInProgress, nil
	case "finalizing":
		return ai.BatchFinalizing, nil
	case "completed":
		return ai.BatchCompleted, nil
	case "failed":
		return ai.BatchFailed, nil
	case "expired":
		return ai.BatchExpired, nil
	case "cancelling":
		return ai.BatchCancelling, nil
	case "cancelled":
		return ai.BatchCancelled, nil
	}
	return "", &ai.APIError{Message: fmt.Sprintf("unknown batch status %q", native)}
}

func unixTime(sec int64) *time.Time {
	if sec == 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}

var _ ai.BatchProcess = (*BatchService)(nil)
