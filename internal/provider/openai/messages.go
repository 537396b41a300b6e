package openai

import (
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	ai "github.com/spetersoncode/llmconnect"
)

func convertMessages(messages []ai.Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	var result []openai.ChatCompletionMessageParamUnion
	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleSystem:
			if text := msg.Text(); text != "" {
				result = append(result, openai.SystemMessage(text))
			}
		case ai.RoleUser:
			if isPlainText(msg.Content) {
				if text := msg.Text(); text != "" {
					result = append(result, openai.UserMessage(text))
				}
				continue
			}
			contentParts, err := convertBlocks(msg.Content)
			if err != nil {
				return nil, err
			}
			if len(contentParts) > 0 {
				result = append(result, openai.ChatCompletionMessageParamUnion{
					OfUser: &openai.ChatCompletionUserMessageParam{
						Content: openai.ChatCompletionUserMessageParamContentUnion{
							OfArrayOfContentParts: contentParts,
						},
					},
				})
			}
		case ai.RoleAssistant:
			if len(msg.ToolCalls) > 0 {
				toolCalls := make([]openai.ChatCompletionMessageToolCallParam, len(msg.ToolCalls))
				for i, tc := range msg.ToolCalls {
					args, err := encodeArguments(tc.Arguments)
					if err != nil {
						return nil, &ai.InvalidRequestError{
							Message: fmt.Sprintf("encoding arguments for tool call %s", tc.ID),
							Cause:   err,
						}
					}
					toolCalls[i] = openai.ChatCompletionMessageToolCallParam{
						ID: tc.ID,
						Function: openai.ChatCompletionMessageToolCallFunctionParam{
							Name:      tc.Name,
							Arguments: args,
						},
					}
				}
				assistantMsg := openai.ChatCompletionAssistantMessageParam{
					ToolCalls: toolCalls,
				}
				if text := msg.Text(); text != "" {
					assistantMsg.Content = openai.ChatCompletionAssistantMessageParamContentUnion{
						OfString: openai.String(text),
					}
				}
				result = append(result, openai.ChatCompletionMessageParamUnion{
					OfAssistant: &assistantMsg,
				})
			} else if text := msg.Text(); text != "" {
				result = append(result, openai.AssistantMessage(text))
			}
		case ai.RoleTool:
			result = append(result, openai.ToolMessage(msg.Text(), msg.ToolCallID))
		default:
			if text := msg.Text(); text != "" {
				result = append(result, openai.UserMessage(text))
			}
		}
	}
	return result, nil
}

func isPlainText(blocks []ai.ContentBlock) bool {
	for _, b := range blocks {
		if b.Type != ai.BlockTypeText {
			return false
		}
	}
	return true
}

func convertBlocks(blocks []ai.ContentBlock) ([]openai.ChatCompletionContentPartUnionParam, error) {
	var result []openai.ChatCompletionContentPartUnionParam
	for _, block := range blocks {
		switch block.Type {
		case ai.BlockTypeText:
			if block.Text != "" {
				result = append(result, openai.TextContentPart(block.Text))
			}
		case ai.BlockTypeImage:
			if block.URL == "" {
				continue
			}
			// Remote URLs and data URLs pass through verbatim.
			imageURL := openai.ChatCompletionContentPartImageImageURLParam{
				URL: block.URL,
			}
			if block.Detail != "" {
				imageURL.Detail = string(block.Detail)
			}
			result = append(result, openai.ImageContentPart(imageURL))
		case ai.BlockTypeDocument:
			return nil, &ai.InvalidRequestError{
				Message: "document blocks are not supported by this provider",
			}
		}
	}
	return result, nil
}

func encodeArguments(args map[string]any) (string, error) {
	if args == nil {
		return "{}", nil
	}
	data, err := json.Marshal(args)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
