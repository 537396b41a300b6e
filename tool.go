package llmconnect

import (
	"encoding/json"
	"strings"
)

// Tool defines a function that can be called by the model.
type Tool struct {
	// Name is the unique identifier for the tool.
	Name string
	// Description explains what the tool does (helps the model decide when to use it).
	Description string
	// Parameters is a JSON Schema object defining the function parameters.
	Parameters json.RawMessage
}

// ToolCall represents a request from the model to invoke a tool.
type ToolCall struct {
	// ID is the provider-assigned identifier for this tool call, unique within
	// one response. It is opaque and must round-trip unchanged into the
	// ToolCallID of the tool message answering it.
	ID string `json:"id"`
	// Name is the name of the tool to invoke.
	Name string `json:"name"`
	// Arguments holds the tool arguments, decoded from the provider's JSON.
	Arguments map[string]any `json:"arguments"`
}

// ToolCallDelta is the partial, streaming form of a ToolCall. A provider may
// emit a tool call's id, name, and arguments across many chunks, interleaved
// across multiple concurrently-building tool calls distinguished by Index.
type ToolCallDelta struct {
	// Index is the position of this tool call among the concurrent tool calls
	// of one response. Fragments for the same index concatenate in arrival
	// order to reconstruct the full JSON arguments string.
	Index int `json:"index"`
	// ID and Name arrive at most once per index, typically on its first delta.
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	// ArgumentsFragment is a fragment of the JSON arguments string.
	ArgumentsFragment string `json:"argumentsFragment,omitempty"`
}

// decodeToolArguments decodes a JSON arguments string into a map. An empty
// string decodes to an empty map; anything else must be a JSON object.
func decodeToolArguments(s string) (map[string]any, error) {
	if strings.TrimSpace(s) == "" {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(s), &args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

// ToolChoice controls how the model uses tools.
type ToolChoice string

const (
	// ToolChoiceAuto lets the model decide when to use tools (default).
	ToolChoiceAuto ToolChoice = "auto"
	// ToolChoiceNone disables tool use for the request.
	ToolChoiceNone ToolChoice = "none"
	// ToolChoiceRequired forces the model to use a tool.
	ToolChoiceRequired ToolChoice = "required"
)
