package llmconnect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserText(t *testing.T) {
	conv := UserText("What is 2+2?")
	assert.Len(t, conv, 1)
	assert.Equal(t, RoleUser, conv[0].Role)
	assert.Equal(t, "What is 2+2?", conv[0].Text())
}

func TestMessageConstructors(t *testing.T) {
	t.Run("system", func(t *testing.T) {
		msg := NewSystemMessage("be brief")
		assert.Equal(t, RoleSystem, msg.Role)
		assert.Equal(t, "be brief", msg.Text())
	})

	t.Run("user with blocks", func(t *testing.T) {
		msg := NewUserMessage(
			NewTextBlock("what is this?"),
			NewImageBlock("https://example.com/cat.png", ImageDetailHigh),
		)
		assert.Equal(t, RoleUser, msg.Role)
		assert.Len(t, msg.Content, 2)
		assert.Equal(t, BlockTypeImage, msg.Content[1].Type)
		assert.Equal(t, ImageDetailHigh, msg.Content[1].Detail)
	})

	t.Run("tool result carries call id", func(t *testing.T) {
		msg := NewToolMessage("call_abc", `{"temp": 21}`)
		assert.Equal(t, RoleTool, msg.Role)
		assert.Equal(t, "call_abc", msg.ToolCallID)
		assert.Equal(t, `{"temp": 21}`, msg.Text())
	})

	t.Run("document block", func(t *testing.T) {
		block := NewDocumentBlock("aGVsbG8=", "application/pdf")
		assert.Equal(t, BlockTypeDocument, block.Type)
		assert.Equal(t, "application/pdf", block.MediaType)
	})
}

func TestMessageText(t *testing.T) {
	t.Run("concatenates text blocks only", func(t *testing.T) {
		msg := NewUserMessage(
			NewTextBlock("hello "),
			NewImageBlock("https://example.com/a.png", ""),
			NewTextBlock("world"),
		)
		assert.Equal(t, "hello world", msg.Text())
	})

	t.Run("empty content", func(t *testing.T) {
		assert.Equal(t, "", Message{Role: RoleUser}.Text())
	})
}

func TestGenerateMessageID(t *testing.T) {
	id1 := GenerateMessageID()
	id2 := GenerateMessageID()
	assert.True(t, strings.HasPrefix(id1, "msg-"))
	assert.NotEqual(t, id1, id2)
}
