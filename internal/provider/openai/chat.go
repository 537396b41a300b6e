package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	ai "github.com/spetersoncode/llmconnect"
)

// ChatService implements ai.ChatCompletion on the OpenAI chat completions API.
type ChatService struct {
	client *openai.Client
}

// Invoke sends a conversation and returns the complete decoded response.
func (s *ChatService) Invoke(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.ChatResponse, error) {
	options := ai.ApplyOptions(opts...)
	params, err := buildChatParams(messages, options)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Chat.Completions.New(ctx, params, requestOptions(options)...)
	if err != nil {
		return nil, wrapError(err)
	}
	return decodeResponse(resp)
}

// Stream sends a conversation and returns a channel of decoded stream chunks.
// Tool-call deltas are forwarded raw, one chunk per network event; the finish
// reason and usage are latched during the stream and emitted on one terminal
// chunk after the last delta.
func (s *ChatService) Stream(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamChunk, error) {
	options := ai.ApplyOptions(opts...)
	params, err := buildChatParams(messages, options)
	if err != nil {
		return nil, err
	}
	params.StreamOptions = openai.ChatCompletionStreamOptionsParam{
		IncludeUsage: openai.Bool(true),
	}

	stream := s.client.Chat.Completions.NewStreaming(ctx, params, requestOptions(options)...)
	ch := make(chan ai.StreamChunk)

	go func() {
		defer close(ch)
		var finishReason string
		var usage *ai.Usage

		for stream.Next() {
			chunk, finish, u := translateChunk(stream.Current())
			if finish != "" {
				finishReason = finish
			}
			if u != nil {
				usage = u
			}
			if chunk != nil {
				ch <- *chunk
			}
		}

		if err := stream.Err(); err != nil {
			ch <- ai.StreamChunk{Err: wrapError(err)}
			return
		}

		ch <- ai.StreamChunk{FinishReason: finishReason, Usage: usage}
	}()

	return ch, nil
}

func buildChatParams(messages []ai.Message, options *ai.Options) (openai.ChatCompletionNewParams, error) {
	convertedMessages, err := convertMessages(messages)
	if err != nil {
		return openai.ChatCompletionNewParams{}, err
	}

	params := openai.ChatCompletionNewParams{
		Model:    options.Model,
		Messages: convertedMessages,
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(options.MaxTokens))
	}
	if options.Temperature != nil {
		params.Temperature = openai.Float(*options.Temperature)
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

func decodeResponse(resp *openai.ChatCompletion) (*ai.ChatResponse, error) {
	if len(resp.Choices) == 0 {
		return nil, &ai.APIError{Message: "response contains no choices"}
	}
	choice := resp.Choices[0]

	toolCalls, err := decodeToolCalls(choice.Message.ToolCalls)
	if err != nil {
		return nil, err
	}
	return &ai.ChatResponse{
		Content:      choice.Message.Content,
		Model:        resp.Model,
		FinishReason: string(choice.FinishReason),
		Usage: ai.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
		ToolCalls: toolCalls,
	}, nil
}

// translateChunk decodes one SDK chunk into at most one StreamChunk plus any
// finish reason or usage the chunk carried. Empty chunks produce nil.
func translateChunk(chunk openai.ChatCompletionChunk) (*ai.StreamChunk, string, *ai.Usage) {
	var out *ai.StreamChunk
	var finish string
	var usage *ai.Usage

	if len(chunk.Choices) > 0 {
		choice := chunk.Choices[0]
		sc := ai.StreamChunk{DeltaContent: choice.Delta.Content}
		for _, tc := range choice.Delta.ToolCalls {
			sc.DeltaToolCalls = append(sc.DeltaToolCalls, ai.ToolCallDelta{
				Index:             int(tc.Index),
				ID:                tc.ID,
				Name:              tc.Function.Name,
				ArgumentsFragment: tc.Function.Arguments,
			})
		}
		if sc.DeltaContent != "" || len(sc.DeltaToolCalls) > 0 {
			out = &sc
		}
		finish = string(choice.FinishReason)
	}

	// Presence, not magnitude: an all-zero usage payload still counts.
	if chunk.JSON.Usage.Valid() {
		usage = &ai.Usage{
			PromptTokens:     int(chunk.Usage.PromptTokens),
			CompletionTokens: int(chunk.Usage.CompletionTokens),
			TotalTokens:      int(chunk.Usage.TotalTokens),
		}
	}
	return out, finish, usage
}

var _ ai.ChatCompletion = (*ChatService)(nil)
