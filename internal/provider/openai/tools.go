package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
	ai "github.com/spetersoncode/llmconnect"
)

func convertTools(tools []ai.Tool) []openai.ChatCompletionToolParam {
	if len(tools) == 0 {
		return nil
	}
	result := make([]openai.ChatCompletionToolParam, len(tools))
	for i, t := range tools {
		var params shared.FunctionParameters
		if len(t.Parameters) > 0 {
			json.Unmarshal(t.Parameters, &params)
		}
		result[i] = openai.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        t.Name,
				Description: openai.String(t.Description),
				Parameters:  params,
			},
		}
	}
	return result
}

func convertToolChoice(choice ai.ToolChoice) openai.ChatCompletionToolChoiceOptionUnionParam {
	switch choice {
	case ai.ToolChoiceNone:
		return openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String("none"),
		}
	case ai.ToolChoiceRequired:
		return openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String("required"),
		}
	default:
		return openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String("auto"),
		}
	}
}

// decodeToolCalls translates the response's tool calls, decoding each
// arguments JSON string into a map. A malformed arguments payload is a
// provider decode failure.
func decodeToolCalls(toolCalls []openai.ChatCompletionMessageToolCall) ([]ai.ToolCall, error) {
	result := make([]ai.ToolCall, 0, len(toolCalls))
	for _, tc := range toolCalls {
		args, err := decodeArguments(tc.Function.Arguments)
		if err != nil {
			return nil, &ai.APIError{
				Message: fmt.Sprintf("malformed arguments for tool call %s", tc.ID),
				Cause:   err,
			}
		}
		result = append(result, ai.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: args,
		})
	}
	return result, nil
}

func decodeArguments(s string) (map[string]any, error) {
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
