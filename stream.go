package llmconnect

import (
	"fmt"
	"strings"
)

// StreamChunk represents a single decoded event in a streaming response.
// FinishReason and Usage are populated only on the terminal chunk of a
// stream; all prior chunks carry only deltas.
type StreamChunk struct {
	// DeltaContent contains the incremental text content for this chunk.
	DeltaContent string
	// DeltaToolCalls contains raw tool-call deltas for this chunk. The adapter
	// never assembles complete tool calls from a stream; use
	// ToolCallAccumulator to do so caller-side.
	DeltaToolCalls []ToolCallDelta
	// FinishReason is set on the terminal chunk.
	FinishReason string
	// Usage is set on whichever chunk the provider attaches it to,
	// typically the terminal one.
	Usage *Usage
	// Err contains any error that occurred during streaming.
	Err error
}

// ToolCallAccumulator assembles streamed tool-call deltas into complete tool
// calls. Fragments are concatenated per index in arrival order; id and name
// are latched on first arrival and never overwritten by later empty deltas.
// The zero value is ready to use. Not safe for concurrent use.
type ToolCallAccumulator struct {
	order   []int
	pending map[int]*pendingToolCall
}

type pendingToolCall struct {
	id   string
	name string
	args strings.Builder
}

// Add records the tool-call deltas of one chunk.
func (a *ToolCallAccumulator) Add(deltas ...ToolCallDelta) {
	for _, d := range deltas {
		if a.pending == nil {
			a.pending = make(map[int]*pendingToolCall)
		}
		p, ok := a.pending[d.Index]
		if !ok {
			p = &pendingToolCall{}
			a.pending[d.Index] = p
			a.order = append(a.order, d.Index)
		}
		if d.ID != "" && p.id == "" {
			p.id = d.ID
		}
		if d.Name != "" && p.name == "" {
			p.name = d.Name
		}
		p.args.WriteString(d.ArgumentsFragment)
	}
}

// ToolCalls returns the assembled tool calls in first-seen index order.
// It fails with an APIError if a reconstructed arguments string is not
// valid JSON.
func (a *ToolCallAccumulator) ToolCalls() ([]ToolCall, error) {
	calls := make([]ToolCall, 0, len(a.order))
	for _, idx := range a.order {
		p := a.pending[idx]
		args, err := decodeToolArguments(p.args.String())
		if err != nil {
			return nil, &APIError{
				Message: fmt.Sprintf("malformed streamed arguments for tool call %d", idx),
				Cause:   err,
			}
		}
		calls = append(calls, ToolCall{ID: p.id, Name: p.name, Arguments: args})
	}
	return calls, nil
}
