package anthropic

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	ai "github.com/spetersoncode/llmconnect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMessages(t *testing.T) {
	t.Run("system messages are hoisted", func(t *testing.T) {
		msgs, system, err := convertMessages([]ai.Message{
			ai.NewSystemMessage("be brief"),
			ai.NewUserMessage(ai.NewTextBlock("What is 2+2?")),
		})
		require.NoError(t, err)
		require.Len(t, system, 1)
		assert.Equal(t, "be brief", system[0].Text)
		require.Len(t, msgs, 1)
		assert.Equal(t, anthropic.MessageParamRoleUser, msgs[0].Role)
	})

	t.Run("tool results become user tool_result blocks", func(t *testing.T) {
		msgs, _, err := convertMessages([]ai.Message{
			ai.NewToolMessage("toolu_1", `{"temp": 21}`),
		})
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, anthropic.MessageParamRoleUser, msgs[0].Role)
		require.Len(t, msgs[0].Content, 1)
		require.NotNil(t, msgs[0].Content[0].OfToolResult)
		assert.Equal(t, "toolu_1", msgs[0].Content[0].OfToolResult.ToolUseID)
	})

	t.Run("assistant tool calls become tool_use blocks", func(t *testing.T) {
		msgs, _, err := convertMessages([]ai.Message{
			{
				Role:    ai.RoleAssistant,
				Content: []ai.ContentBlock{ai.NewTextBlock("checking")},
				ToolCalls: []ai.ToolCall{{
					ID:        "toolu_1",
					Name:      "get_weather",
					Arguments: map[string]any{"city": "Paris"},
				}},
			},
		})
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, anthropic.MessageParamRoleAssistant, msgs[0].Role)
		require.Len(t, msgs[0].Content, 2)
		require.NotNil(t, msgs[0].Content[1].OfToolUse)
		assert.Equal(t, "toolu_1", msgs[0].Content[1].OfToolUse.ID)
		assert.Equal(t, "get_weather", msgs[0].Content[1].OfToolUse.Name)
	})

	t.Run("empty messages dropped", func(t *testing.T) {
		msgs, system, err := convertMessages([]ai.Message{
			{Role: ai.RoleSystem},
			{Role: ai.RoleUser},
		})
		require.NoError(t, err)
		assert.Empty(t, msgs)
		assert.Empty(t, system)
	})
}

func TestConvertBlocks(t *testing.T) {
	t.Run("image url block", func(t *testing.T) {
		blocks, err := convertBlocks([]ai.ContentBlock{
			ai.NewImageBlock("https://example.com/cat.png", ai.ImageDetailHigh),
		})
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.NotNil(t, blocks[0].OfImage)
	})

	t.Run("document blocks supported", func(t *testing.T) {
		blocks, err := convertBlocks([]ai.ContentBlock{
			ai.NewDocumentBlock("aGVsbG8=", "application/pdf"),
			{Type: ai.BlockTypeDocument, URL: "https://example.com/doc.pdf"},
		})
		require.NoError(t, err)
		require.Len(t, blocks, 2)
		assert.NotNil(t, blocks[0].OfDocument)
		assert.NotNil(t, blocks[1].OfDocument)
	})

	t.Run("empty text skipped", func(t *testing.T) {
		blocks, err := convertBlocks([]ai.ContentBlock{{Type: ai.BlockTypeText}})
		require.NoError(t, err)
		assert.Empty(t, blocks)
	})
}
