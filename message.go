package llmconnect

import "github.com/google/uuid"

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// BlockType represents the type of a content block.
type BlockType string

const (
	BlockTypeText     BlockType = "text"
	BlockTypeImage    BlockType = "image"
	BlockTypeDocument BlockType = "document"
)

// ImageDetail controls how much detail a provider spends processing an image.
type ImageDetail string

const (
	ImageDetailLow  ImageDetail = "low"
	ImageDetailHigh ImageDetail = "high"
	ImageDetailAuto ImageDetail = "auto"
)

// ContentBlock is a single unit of message content. A message's content is an
// ordered sequence of blocks, rendered to the provider in sequence.
// Use Text for text blocks and URL or Data for image and document blocks.
type ContentBlock struct {
	// Type indicates the content type: "text", "image", or "document".
	Type BlockType `json:"type"`
	// Text contains the text content. Only used when Type is "text".
	Text string `json:"text,omitempty"`
	// URL points at image or document content. Remote URLs and data URLs are
	// passed through to the provider verbatim; a local file must be
	// pre-encoded by the caller into a data URL.
	URL string `json:"url,omitempty"`
	// Detail is the image processing detail level. Only used when Type is "image".
	Detail ImageDetail `json:"detail,omitempty"`
	// Data contains base64-encoded content. Only used when Type is "document".
	// Mutually exclusive with URL.
	Data string `json:"data,omitempty"`
	// MediaType specifies the document format (e.g., "application/pdf").
	// Required when using Data.
	MediaType string `json:"mediaType,omitempty"`
}

// NewTextBlock creates a text content block.
func NewTextBlock(text string) ContentBlock {
	return ContentBlock{
		Type: BlockTypeText,
		Text: text,
	}
}

// NewImageBlock creates an image content block from a URL.
func NewImageBlock(url string, detail ImageDetail) ContentBlock {
	return ContentBlock{
		Type:   BlockTypeImage,
		URL:    url,
		Detail: detail,
	}
}

// NewDocumentBlock creates a document content block from base64 data.
func NewDocumentBlock(data, mediaType string) ContentBlock {
	return ContentBlock{
		Type:      BlockTypeDocument,
		Data:      data,
		MediaType: mediaType,
	}
}

// Message represents a single message in a conversation.
type Message struct {
	// ID is an optional unique identifier for the message.
	ID   string `json:"id,omitempty"`
	Role Role   `json:"role"`
	// Content is the ordered sequence of content blocks; order is meaningful.
	Content []ContentBlock `json:"content,omitempty"`
	// ToolCalls contains tool invocation requests from an assistant message.
	// Only populated when Role is RoleAssistant and the model wants to use tools.
	ToolCalls []ToolCall `json:"toolCalls,omitempty"`
	// ToolCallID references the assistant tool call this message answers.
	// Only populated when Role is RoleTool. It must carry the provider-assigned
	// ToolCall.ID unchanged for multi-turn tool execution to resolve.
	ToolCallID string `json:"toolCallId,omitempty"`
}

// Conversation is an ordered sequence of messages. The ordering is the turn
// order and is serialized to the provider's message array verbatim.
type Conversation = []Message

// NewSystemMessage creates a system message with a single text block.
func NewSystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: []ContentBlock{NewTextBlock(text)}}
}

// NewUserMessage creates a user message from content blocks.
func NewUserMessage(blocks ...ContentBlock) Message {
	return Message{Role: RoleUser, Content: blocks}
}

// NewAssistantMessage creates an assistant message with a single text block.
func NewAssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Content: []ContentBlock{NewTextBlock(text)}}
}

// NewToolMessage creates a tool result message answering the tool call with
// the given id.
func NewToolMessage(toolCallID, content string) Message {
	return Message{
		Role:       RoleTool,
		Content:    []ContentBlock{NewTextBlock(content)},
		ToolCallID: toolCallID,
	}
}

// UserText wraps a raw string as a one-turn user conversation.
func UserText(text string) Conversation {
	return Conversation{NewUserMessage(NewTextBlock(text))}
}

// GenerateMessageID creates a unique message identifier.
func GenerateMessageID() string {
	return "msg-" + uuid.New().String()
}

// Text returns the concatenated text of the message's text blocks.
func (m Message) Text() string {
	var s string
	for _, b := range m.Content {
		if b.Type == BlockTypeText {
			s += b.Text
		}
	}
	return s
}

// Usage contains token usage information for a request. TotalTokens is
// provider-reported; it is expected, but not locally enforced, to equal
// PromptTokens + CompletionTokens.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// ChatResponse represents a complete response from a chat adapter.
type ChatResponse struct {
	Content      string `json:"content,omitempty"`
	Model        string `json:"model,omitempty"`
	FinishReason string `json:"finishReason,omitempty"`
	Usage        Usage  `json:"usage"`
	// ToolCalls contains any tool invocation requests from the model.
	// Always non-nil; empty when the model requested no tools.
	ToolCalls []ToolCall `json:"toolCalls"`
}
