package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/karoldperez/clarofix/internal/tools"
)

// OpenAIClient is the ModelGateway implementation for OpenAI-compatible
// chat-completion APIs, covering function calling and vision input.
type OpenAIClient struct {
	api *openai.Client
}

var _ ModelGateway = (*OpenAIClient)(nil)

// NewOpenAIClient creates a client for the OpenAI API. baseURL overrides the
// endpoint for OpenAI-compatible providers; empty means api.openai.com.
func NewOpenAIClient(apiKey, baseURL string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key cannot be empty")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{api: openai.NewClientWithConfig(cfg)}, nil
}

// Generate performs one blocking chat-completion request.
func (c *OpenAIClient) Generate(
	ctx context.Context,
	messages []Message,
	config *GenerationConfig,
	availableTools []tools.Tool,
) (*GenerationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:    config.Model,
		Messages: toOpenAIMessages(messages),
	}
	if config.MaxTokens > 0 {
		req.MaxTokens = config.MaxTokens
	}
	if config.Temperature != nil {
		req.Temperature = *config.Temperature
	}
	if len(availableTools) > 0 {
		req.Tools = toOpenAITools(availableTools)
		req.ToolChoice = "auto"
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no choices returned from OpenAI")
	}

	choice := resp.Choices[0].Message
	result := &GenerationResult{
		Content: choice.Content,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	for _, tc := range choice.ToolCalls {
		result.ToolCalls = append(result.ToolCalls, &tools.ToolCall{
			ID:   tc.ID,
			Type: tools.ToolTypeFunction,
			Function: tools.ToolCallFunction{
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			},
		})
	}
	return result, nil
}

// toOpenAIMessages converts the internal message slice to the SDK's format.
// User messages carrying images become multi-part content with inline
// base64 data URLs.
func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		m := openai.ChatCompletionMessage{Role: string(msg.Role)}
		switch msg.Role {
		case RoleTool:
			m.Content = msg.Content
			m.ToolCallID = msg.ToolCallID
		case RoleAssistant:
			m.Content = msg.Content
			for _, tc := range msg.ToolCalls {
				m.ToolCalls = append(m.ToolCalls, openai.ToolCall{
					ID:   tc.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      tc.Function.Name,
						Arguments: tc.Function.Arguments,
					},
				})
			}
		case RoleUser:
			if len(msg.Images) > 0 {
				m.MultiContent = toImageParts(msg.Content, msg.Images)
			} else {
				m.Content = msg.Content
			}
		default:
			m.Content = msg.Content
		}
		out = append(out, m)
	}
	return out
}

func toImageParts(text string, images []ImageAttachment) []openai.ChatMessagePart {
	parts := []openai.ChatMessagePart{
		{Type: openai.ChatMessagePartTypeText, Text: text},
	}
	for _, img := range images {
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL:    DataURL(img),
				Detail: openai.ImageURLDetailAuto,
			},
		})
	}
	return parts
}

// DataURL encodes an image attachment as a base64 data URL.
func DataURL(img ImageAttachment) string {
	return fmt.Sprintf("data:%s;base64,%s", img.MIMEType, base64.StdEncoding.EncodeToString(img.Data))
}

func toOpenAITools(availableTools []tools.Tool) []openai.Tool {
	out := make([]openai.Tool, 0, len(availableTools))
	for _, t := range availableTools {
		fn := t.Function
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        fn.Name,
				Description: fn.Description,
				Parameters:  fn.Parameters,
			},
		})
	}
	return out
}
