package anthropic

import (
	"github.com/anthropics/anthropic-sdk-go"
	ai "github.com/spetersoncode/llmconnect"
)

func convertMessages(messages []ai.Message) ([]anthropic.MessageParam, []anthropic.TextBlockParam, error) {
	var result []anthropic.MessageParam
	var system []anthropic.TextBlockParam

	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleSystem:
			// Skip empty system messages - the API rejects empty text blocks
			if text := msg.Text(); text != "" {
				system = append(system, anthropic.TextBlockParam{Text: text})
			}
		case ai.RoleUser:
			blocks, err := convertBlocks(msg.Content)
			if err != nil {
				return nil, nil, err
			}
			if len(blocks) > 0 {
				result = append(result, anthropic.MessageParam{
					Role:    anthropic.MessageParamRoleUser,
					Content: blocks,
				})
			}
		case ai.RoleAssistant:
			var blocks []anthropic.ContentBlockParamUnion
			if text := msg.Text(); text != "" {
				blocks = append(blocks, anthropic.NewTextBlock(text))
			}
			for _, tc := range msg.ToolCalls {
				input := tc.Arguments
				if input == nil {
					input = map[string]any{}
				}
				blocks = append(blocks, anthropic.NewToolUseBlock(tc.ID, input, tc.Name))
			}
			if len(blocks) > 0 {
				result = append(result, anthropic.MessageParam{
					Role:    anthropic.MessageParamRoleAssistant,
					Content: blocks,
				})
			}
		case ai.RoleTool:
			// Tool results are sent as user messages with tool_result blocks
			result = append(result, anthropic.MessageParam{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewToolResultBlock(msg.ToolCallID, msg.Text(), false),
				},
			})
		default:
			if text := msg.Text(); text != "" {
				result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(text)))
			}
		}
	}

	return result, system, nil
}

func convertBlocks(blocks []ai.ContentBlock) ([]anthropic.ContentBlockParamUnion, error) {
	var result []anthropic.ContentBlockParamUnion
	for _, block := range blocks {
		switch block.Type {
		case ai.BlockTypeText:
			// Skip empty text blocks - the API rejects them
			if block.Text != "" {
				result = append(result, anthropic.NewTextBlock(block.Text))
			}
		case ai.BlockTypeImage:
			// Detail has no Anthropic equivalent and is ignored.
			if block.URL != "" {
				result = append(result, anthropic.NewImageBlock(anthropic.URLImageSourceParam{
					URL: block.URL,
				}))
			}
		case ai.BlockTypeDocument:
			if block.URL != "" {
				result = append(result, anthropic.NewDocumentBlock(anthropic.URLPDFSourceParam{
					URL: block.URL,
				}))
			} else if block.Data != "" {
				result = append(result, anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{
					Data: block.Data,
				}))
			}
		}
	}
	return result, nil
}
