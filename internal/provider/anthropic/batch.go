package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	ai "github.com/spetersoncode/llmconnect"
	"github.com/spetersoncode/llmconnect/internal/jsonl"
)

// BatchService implements ai.BatchProcess on the Anthropic message batches
// API. Unlike the file-based providers, requests are submitted inline: a
// JSONL input is decoded locally into request objects, and direct request
// lists bypass the file shape entirely. There is no input file, so
// InputFileID is always empty and the endpoint is fixed.
type BatchService struct {
	client *anthropic.Client
}

const batchEndpoint = "/v1/messages"

// batchLine is one JSONL input line: a caller-chosen custom_id plus the
// message request params.
type batchLine struct {
	CustomID string          `json:"custom_id"`
	Params   json.RawMessage `json:"params"`
}

// Create submits a new batch job from a JSONL file or a direct request list.
func (s *BatchService) Create(ctx context.Context, input ai.BatchInput) (*ai.BatchRequest, error) {
	requests, err := buildBatchRequests(input)
	if err != nil {
		return nil, err
	}

	batch, err := s.client.Messages.Batches.New(ctx, anthropic.MessageBatchNewParams{
		Requests: requests,
	})
	if err != nil {
		return nil, wrapBatchError(err)
	}
	return toBatchRequest(batch)
}

// Status fetches the job's current server-side state.
func (s *BatchService) Status(ctx context.Context, jobID string) (*ai.BatchRequest, error) {
	batch, err := s.client.Messages.Batches.Get(ctx, jobID)
	if err != nil {
		return nil, wrapBatchError(err)
	}
	return toBatchRequest(batch)
}

// Result streams and decodes the per-request results of an ended job,
// preserving the provider's record order.
func (s *BatchService) Result(ctx context.Context, jobID string) (*ai.BatchResult, error) {
	batch, err := s.client.Messages.Batches.Get(ctx, jobID)
	if err != nil {
		return nil, wrapBatchError(err)
	}
	if string(batch.ProcessingStatus) != "ended" {
		status, err := toBatchStatus(string(batch.ProcessingStatus))
		if err != nil {
			return nil, err
		}
		return nil, &ai.BatchError{
			Message: fmt.Sprintf("batch job is not completed; current status: %s", status),
		}
	}

	stream := s.client.Messages.Batches.ResultsStreaming(ctx, jobID)
	records := make([]ai.BatchRecord, 0)
	for stream.Next() {
		entry := stream.Current()
		records = append(records, ai.BatchRecord{
			CustomID: entry.CustomID,
			Body:     json.RawMessage(entry.RawJSON()),
		})
	}
	if err := stream.Err(); err != nil {
		return nil, wrapBatchError(err)
	}
	return &ai.BatchResult{JobID: jobID, Records: records}, nil
}

// Cancel requests cancellation; settlement is asynchronous at the provider.
func (s *BatchService) Cancel(ctx context.Context, jobID string) (*ai.BatchRequest, error) {
	batch, err := s.client.Messages.Batches.Cancel(ctx, jobID)
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
	params := anthropic.MessageBatchListParams{Limit: anthropic.Int(int64(limit))}
	if opts.After != "" {
		params.AfterID = anthropic.String(opts.After)
	}

	page, err := s.client.Messages.Batches.List(ctx, params)
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

func buildBatchRequests(input ai.BatchInput) ([]anthropic.MessageBatchNewParamsRequest, error) {
	var lines []json.RawMessage
	if len(input.Requests) > 0 {
		lines = input.Requests
	} else if input.File != nil {
		data, _, err := input.File.Content()
		if err != nil {
			return nil, &ai.BatchError{Message: "reading batch input", Cause: err}
		}
		lines, err = jsonl.Lines(data)
		if err != nil {
			return nil, &ai.BatchError{Message: "invalid JSON in batch file", Cause: err}
		}
	}
	if len(lines) == 0 {
		return nil, &ai.BatchError{
			Message: "no requests provided; supply a JSONL file or a direct request list",
		}
	}

	requests := make([]anthropic.MessageBatchNewParamsRequest, 0, len(lines))
	for i, line := range lines {
		var entry batchLine
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, &ai.BatchError{
				Message: fmt.Sprintf("invalid batch request %d", i+1),
				Cause:   err,
			}
		}
		var params anthropic.MessageBatchNewParamsRequestParams
		if len(entry.Params) > 0 {
			if err := json.Unmarshal(entry.Params, &params); err != nil {
				return nil, &ai.BatchError{
					Message: fmt.Sprintf("invalid params in batch request %d", i+1),
					Cause:   err,
				}
			}
		}
		requests = append(requests, anthropic.MessageBatchNewParamsRequest{
			CustomID: entry.CustomID,
			Params:   params,
		})
	}
	return requests, nil
}

func toBatchRequest(batch *anthropic.MessageBatch) (*ai.BatchRequest, error) {
	status, err := toBatchStatus(string(batch.ProcessingStatus))
	if err != nil {
		return nil, err
	}

	counts := batch.RequestCounts
	total := counts.Processing + counts.Succeeded + counts.Errored + counts.Canceled + counts.Expired
	return &ai.BatchRequest{
		ID:     batch.ID,
		Status: status,
		Timestamps: ai.BatchTimestamps{
			CreatedAt:   batch.CreatedAt,
			CancelledAt: optTime(batch.CancelInitiatedAt),
			CompletedAt: optTime(batch.EndedAt),
			ExpiredAt:   optTime(batch.ExpiresAt),
			FinalizedAt: optTime(batch.EndedAt),
		},
		CompletionWindow: ai.DefaultCompletionWindow,
		InputFileID:      "",
		Endpoint:         batchEndpoint,
		RequestCounts: map[string]int{
			"total":      int(total),
			"processing": int(counts.Processing),
			"completed":  int(counts.Succeeded),
			"failed":     int(counts.Errored),
			"canceled":   int(counts.Canceled),
			"expired":    int(counts.Expired),
		},
	}, nil
}

// toBatchStatus maps a native processing status onto the unified set. The
// native vocabulary is coarser than the unified one: "canceling" collapses to
// cancelled (the provider reports no distinct settled-cancel state) and
// "ended" means completed. An unknown value is a decode error, never a
// silent default.
func toBatchStatus(native string) (ai.BatchStatus, error) {
	switch native {
	case "in_progress":
		return ai.BatchInProgress, nil
	case "canceling":
		return ai.BatchCancelled, nil
	case "ended":
		return ai.BatchCompleted, nil
	}
	return "", &ai.APIError{Message: fmt.Sprintf("unknown batch processing status %q", native)}
}

func optTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	out := t
	return &out
}

var _ ai.BatchProcess = (*BatchService)(nil)
