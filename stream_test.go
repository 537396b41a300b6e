package llmconnect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolCallAccumulator(t *testing.T) {
	t.Run("assembles fragments in arrival order", func(t *testing.T) {
		var acc ToolCallAccumulator
		acc.Add(ToolCallDelta{Index: 0, ID: "call_1", Name: "get_weather"})
		acc.Add(ToolCallDelta{Index: 0, ArgumentsFragment: `{"city":`})
		acc.Add(ToolCallDelta{Index: 0, ArgumentsFragment: `"Paris"}`})

		calls, err := acc.ToolCalls()
		require.NoError(t, err)
		require.Len(t, calls, 1)
		assert.Equal(t, "call_1", calls[0].ID)
		assert.Equal(t, "get_weather", calls[0].Name)
		assert.Equal(t, map[string]any{"city": "Paris"}, calls[0].Arguments)
	})

	t.Run("interleaved indices keep first-seen order", func(t *testing.T) {
		var acc ToolCallAccumulator
		acc.Add(ToolCallDelta{Index: 1, ID: "call_b", Name: "beta"})
		acc.Add(ToolCallDelta{Index: 0, ID: "call_a", Name: "alpha"})
		acc.Add(ToolCallDelta{Index: 1, ArgumentsFragment: `{"x":1}`})
		acc.Add(ToolCallDelta{Index: 0, ArgumentsFragment: `{"y":2}`})

		calls, err := acc.ToolCalls()
		require.NoError(t, err)
		require.Len(t, calls, 2)
		assert.Equal(t, "call_b", calls[0].ID)
		assert.Equal(t, "call_a", calls[1].ID)
	})

	t.Run("id and name latch on first arrival", func(t *testing.T) {
		var acc ToolCallAccumulator
		acc.Add(ToolCallDelta{Index: 0, ID: "call_1", Name: "lookup"})
		acc.Add(ToolCallDelta{Index: 0, ID: "", Name: "", ArgumentsFragment: "{}"})

		calls, err := acc.ToolCalls()
		require.NoError(t, err)
		assert.Equal(t, "call_1", calls[0].ID)
		assert.Equal(t, "lookup", calls[0].Name)
	})

	t.Run("no fragments yields empty arguments", func(t *testing.T) {
		var acc ToolCallAccumulator
		acc.Add(ToolCallDelta{Index: 0, ID: "call_1", Name: "ping"})

		calls, err := acc.ToolCalls()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, calls[0].Arguments)
	})

	t.Run("malformed arguments fail with api error", func(t *testing.T) {
		var acc ToolCallAccumulator
		acc.Add(ToolCallDelta{Index: 2, ID: "call_1", Name: "broken"})
		acc.Add(ToolCallDelta{Index: 2, ArgumentsFragment: `{"cut`})

		_, err := acc.ToolCalls()
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Contains(t, apiErr.Message, "2")
	})

	t.Run("zero value returns no calls", func(t *testing.T) {
		var acc ToolCallAccumulator
		calls, err := acc.ToolCalls()
		require.NoError(t, err)
		assert.Empty(t, calls)
	})
}
