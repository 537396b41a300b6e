package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go"
	ai "github.com/spetersoncode/llmconnect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unmarshalChunk(t *testing.T, payload string) openai.ChatCompletionChunk {
	t.Helper()
	var chunk openai.ChatCompletionChunk
	require.NoError(t, json.Unmarshal([]byte(payload), &chunk))
	return chunk
}

func TestTranslateChunk(t *testing.T) {
	t.Run("content delta", func(t *testing.T) {
		chunk := openai.ChatCompletionChunk{
			Choices: []openai.ChatCompletionChunkChoice{{
				Delta: openai.ChatCompletionChunkChoiceDelta{Content: "Hel"},
			}},
		}
		out, finish, usage := translateChunk(chunk)
		require.NotNil(t, out)
		assert.Equal(t, "Hel", out.DeltaContent)
		assert.Empty(t, finish)
		assert.Nil(t, usage)
	})

	t.Run("tool call delta passes through raw", func(t *testing.T) {
		chunk := openai.ChatCompletionChunk{
			Choices: []openai.ChatCompletionChunkChoice{{
				Delta: openai.ChatCompletionChunkChoiceDelta{
					ToolCalls: []openai.ChatCompletionChunkChoiceDeltaToolCall{{
						Index: 1,
						ID:    "call_1",
						Function: openai.ChatCompletionChunkChoiceDeltaToolCallFunction{
							Name:      "get_weather",
							Arguments: `{"city":`,
						},
					}},
				},
			}},
		}
		out, _, _ := translateChunk(chunk)
		require.NotNil(t, out)
		require.Len(t, out.DeltaToolCalls, 1)
		delta := out.DeltaToolCalls[0]
		assert.Equal(t, 1, delta.Index)
		assert.Equal(t, "call_1", delta.ID)
		assert.Equal(t, "get_weather", delta.Name)
		assert.Equal(t, `{"city":`, delta.ArgumentsFragment)
	})

	t.Run("finish reason is latched not emitted", func(t *testing.T) {
		chunk := openai.ChatCompletionChunk{
			Choices: []openai.ChatCompletionChunkChoice{{
				FinishReason: "stop",
			}},
		}
		out, finish, _ := translateChunk(chunk)
		assert.Nil(t, out)
		assert.Equal(t, "stop", finish)
	})

	t.Run("usage chunk", func(t *testing.T) {
		chunk := unmarshalChunk(t, `{"id":"chatcmpl-1","object":"chat.completion.chunk","created":1,"model":"gpt-4o-mini","choices":[],"usage":{"prompt_tokens":12,"completion_tokens":34,"total_tokens":46}}`)
		out, _, usage := translateChunk(chunk)
		assert.Nil(t, out)
		require.NotNil(t, usage)
		assert.Equal(t, ai.Usage{PromptTokens: 12, CompletionTokens: 34, TotalTokens: 46}, *usage)
	})

	t.Run("all-zero usage is still usage", func(t *testing.T) {
		chunk := unmarshalChunk(t, `{"id":"chatcmpl-1","object":"chat.completion.chunk","created":1,"model":"gpt-4o-mini","choices":[],"usage":{"prompt_tokens":0,"completion_tokens":0,"total_tokens":0}}`)
		_, _, usage := translateChunk(chunk)
		require.NotNil(t, usage)
		assert.Equal(t, ai.Usage{}, *usage)
	})

	t.Run("absent usage stays nil", func(t *testing.T) {
		chunk := unmarshalChunk(t, `{"id":"chatcmpl-1","object":"chat.completion.chunk","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"delta":{"content":"hi"}}]}`)
		_, _, usage := translateChunk(chunk)
		assert.Nil(t, usage)
	})

	t.Run("empty chunk produces nothing", func(t *testing.T) {
		out, finish, usage := translateChunk(openai.ChatCompletionChunk{})
		assert.Nil(t, out)
		assert.Empty(t, finish)
		assert.Nil(t, usage)
	})
}

func TestDecodeResponse(t *testing.T) {
	t.Run("no choices is a decode error", func(t *testing.T) {
		_, err := decodeResponse(&openai.ChatCompletion{Model: "gpt-4o-mini"})
		var apiErr *ai.APIError
		require.ErrorAs(t, err, &apiErr)
	})

	t.Run("tool calls decoded to maps", func(t *testing.T) {
		resp := &openai.ChatCompletion{
			Model: "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{{
				FinishReason: "tool_calls",
				Message: openai.ChatCompletionMessage{
					ToolCalls: []openai.ChatCompletionMessageToolCall{{
						ID: "call_1",
						Function: openai.ChatCompletionMessageToolCallFunction{
							Name:      "get_weather",
							Arguments: `{"city":"Paris"}`,
						},
					}},
				},
			}},
			Usage: openai.CompletionUsage{PromptTokens: 5, CompletionTokens: 7, TotalTokens: 12},
		}

		decoded, err := decodeResponse(resp)
		require.NoError(t, err)
		assert.Equal(t, "tool_calls", decoded.FinishReason)
		assert.Equal(t, 12, decoded.Usage.TotalTokens)
		require.Len(t, decoded.ToolCalls, 1)
		assert.Equal(t, map[string]any{"city": "Paris"}, decoded.ToolCalls[0].Arguments)
	})

	t.Run("tool calls always non-nil", func(t *testing.T) {
		resp := &openai.ChatCompletion{
			Choices: []openai.ChatCompletionChoice{{
				FinishReason: "stop",
				Message:      openai.ChatCompletionMessage{Content: "hi"},
			}},
		}
		decoded, err := decodeResponse(resp)
		require.NoError(t, err)
		assert.NotNil(t, decoded.ToolCalls)
		assert.Empty(t, decoded.ToolCalls)
	})
}

func TestStream(t *testing.T) {
	// The finish reason and usage arrive mid-stream on separate events but
	// must only ever be surfaced on one terminal chunk after the last delta.
	events := []string{
		`{"id":"chatcmpl-1","object":"chat.completion.chunk","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"delta":{"role":"assistant","content":"Hel"}}]}`,
		`{"id":"chatcmpl-1","object":"chat.completion.chunk","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"delta":{"content":"lo"}}]}`,
		`{"id":"chatcmpl-1","object":"chat.completion.chunk","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"delta":{},"finish_reason":"stop"}]}`,
		`{"id":"chatcmpl-1","object":"chat.completion.chunk","created":1,"model":"gpt-4o-mini","choices":[],"usage":{"prompt_tokens":3,"completion_tokens":2,"total_tokens":5}}`,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, event := range events {
			fmt.Fprintf(w, "data: %s\n\n", event)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	conn, err := New(ai.Config{APIKey: "sk-test", BaseURL: server.URL})
	require.NoError(t, err)

	stream, err := conn.Chat().Stream(context.Background(), ai.UserText("say hello"), ai.WithModel("gpt-4o-mini"))
	require.NoError(t, err)

	var chunks []ai.StreamChunk
	for chunk := range stream {
		require.NoError(t, chunk.Err)
		chunks = append(chunks, chunk)
	}

	require.Len(t, chunks, 3)
	assert.Equal(t, "Hel", chunks[0].DeltaContent)
	assert.Equal(t, "lo", chunks[1].DeltaContent)
	// Deltas never carry the latched terminal fields.
	assert.Empty(t, chunks[0].FinishReason)
	assert.Nil(t, chunks[0].Usage)
	assert.Empty(t, chunks[1].FinishReason)
	assert.Nil(t, chunks[1].Usage)

	terminal := chunks[2]
	assert.Empty(t, terminal.DeltaContent)
	assert.Equal(t, "stop", terminal.FinishReason)
	require.NotNil(t, terminal.Usage)
	assert.Equal(t, ai.Usage{PromptTokens: 3, CompletionTokens: 2, TotalTokens: 5}, *terminal.Usage)
}
