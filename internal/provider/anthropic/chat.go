package anthropic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	ai "github.com/spetersoncode/llmconnect"
)

// ChatService implements ai.ChatCompletion on the Anthropic messages API.
type ChatService struct {
	client *anthropic.Client
}

// defaultMaxTokens applies when the caller sets no limit; the messages API
// requires max_tokens on every request.
const defaultMaxTokens = 4096

// Invoke sends a conversation and returns the complete decoded response.
func (s *ChatService) Invoke(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.ChatResponse, error) {
	options := ai.ApplyOptions(opts...)
	params, err := buildMessageParams(messages, options)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Messages.New(ctx, params, requestOptions(options)...)
	if err != nil {
		return nil, wrapError(err)
	}
	return decodeResponse(resp)
}

// Stream sends a conversation and returns a channel of decoded stream chunks.
// Tool-use blocks arrive as raw deltas keyed by content block index: the
// block-start event carries id and name, each input_json_delta carries one
// arguments fragment. Nothing is assembled here.
func (s *ChatService) Stream(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamChunk, error) {
	options := ai.ApplyOptions(opts...)
	params, err := buildMessageParams(messages, options)
	if err != nil {
		return nil, err
	}

	stream := s.client.Messages.NewStreaming(ctx, params, requestOptions(options)...)
	ch := make(chan ai.StreamChunk)

	go func() {
		defer close(ch)
		var finishReason string
		var promptTokens, completionTokens int

		for stream.Next() {
			event := stream.Current()
			switch event.Type {
			case "message_start":
				start := event.AsMessageStart()
				promptTokens = int(start.Message.Usage.InputTokens)
			case "content_block_start":
				start := event.AsContentBlockStart()
				if start.ContentBlock.Type == "tool_use" {
					ch <- ai.StreamChunk{DeltaToolCalls: []ai.ToolCallDelta{{
						Index: int(start.Index),
						ID:    start.ContentBlock.ID,
						Name:  start.ContentBlock.Name,
					}}}
				}
			case "content_block_delta":
				delta := event.AsContentBlockDelta()
				if textDelta := delta.Delta.AsTextDelta(); textDelta.Type == "text_delta" && textDelta.Text != "" {
					ch <- ai.StreamChunk{DeltaContent: textDelta.Text}
				} else if jsonDelta := delta.Delta.AsInputJSONDelta(); jsonDelta.Type == "input_json_delta" && jsonDelta.PartialJSON != "" {
					ch <- ai.StreamChunk{DeltaToolCalls: []ai.ToolCallDelta{{
						Index:             int(delta.Index),
						ArgumentsFragment: jsonDelta.PartialJSON,
					}}}
				}
			case "message_delta":
				messageDelta := event.AsMessageDelta()
				if messageDelta.Delta.StopReason != "" {
					finishReason = string(messageDelta.Delta.StopReason)
				}
				completionTokens = int(messageDelta.Usage.OutputTokens)
			}
		}

		if err := stream.Err(); err != nil {
			ch <- ai.StreamChunk{Err: wrapError(err)}
			return
		}

		ch <- ai.StreamChunk{
			FinishReason: finishReason,
			Usage: &ai.Usage{
				PromptTokens:     promptTokens,
				CompletionTokens: completionTokens,
				TotalTokens:      promptTokens + completionTokens,
			},
		}
	}()

	return ch, nil
}

func buildMessageParams(messages []ai.Message, options *ai.Options) (anthropic.MessageNewParams, error) {
	msgs, system, err := convertMessages(messages)
	if err != nil {
		return anthropic.MessageNewParams{}, err
	}

	maxTokens := int64(defaultMaxTokens)
	if options.MaxTokens > 0 {
		maxTokens = int64(options.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(options.Model),
		MaxTokens: maxTokens,
		Messages:  msgs,
	}
	if len(system) > 0 {
		params.System = system
	}
	if options.Temperature != nil {
		params.Temperature = anthropic.Float(*options.Temperature)
	}
	if len(options.Tools) > 0 {
		params.Tools = convertTools(options.Tools)
		if options.ToolChoice != "" {
			params.ToolChoice = convertToolChoice(options.ToolChoice)
		}
	}
	return params, nil
}

// requestOptions passes Options.Extra fields through to the request body
// verbatim.
func requestOptions(options *ai.Options) []option.RequestOption {
	var reqOpts []option.RequestOption
	for key, value := range options.Extra {
		reqOpts = append(reqOpts, option.WithJSONSet(key, value))
	}
	return reqOpts
}

func decodeResponse(resp *anthropic.Message) (*ai.ChatResponse, error) {
	content := ""
	toolCalls := make([]ai.ToolCall, 0)
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			content += block.Text
		case "tool_use":
			args, err := decodeArguments(block.Input)
			if err != nil {
				return nil, &ai.APIError{
					Message: fmt.Sprintf("malformed arguments for tool call %s", block.ID),
					Cause:   err,
				}
			}
			toolCalls = append(toolCalls, ai.ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: args,
			})
		}
	}

	promptTokens := int(resp.Usage.InputTokens)
	completionTokens := int(resp.Usage.OutputTokens)
	return &ai.ChatResponse{
		Content:      content,
		Model:        string(resp.Model),
		FinishReason: string(resp.StopReason),
		Usage: ai.Usage{
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			TotalTokens:      promptTokens + completionTokens,
		},
		ToolCalls: toolCalls,
	}, nil
}

func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

var _ ai.ChatCompletion = (*ChatService)(nil)
