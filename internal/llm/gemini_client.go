package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/karoldperez/clarofix/internal/tools"
)

// geminiToolCallPrefix namespaces the synthetic invocation ids this client
// assigns, since the Gemini API does not issue its own call ids. The tool
// name is recoverable from the id when a tool result is fed back.
const geminiToolCallPrefix = "gemini-toolcall-"

// GeminiClient is the ModelGateway implementation for Google's Gemini
// models, selected when the configured model id has a "gemini" prefix.
// Generate derives a fresh GenerativeModel per call: callers with different
// generation settings share one client without racing on model state.
type GeminiClient struct {
	client  *genai.Client
	modelID string
}

var _ ModelGateway = (*GeminiClient)(nil)

// NewGeminiClient creates a client bound to one Gemini model id.
func NewGeminiClient(apiKey, modelID string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, modelID: modelID}, nil
}

// Generate performs one blocking request against the Gemini API.
func (c *GeminiClient) Generate(
	ctx context.Context,
	messages []Message,
	config *GenerationConfig,
	availableTools []tools.Tool,
) (*GenerationResult, error) {
	if len(messages) == 0 {
		return nil, errors.New("gemini request requires at least one message")
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	model := configureModel(c.client.GenerativeModel(c.modelID), config, availableTools)

	chat := model.StartChat()
	chat.History = toGeminiHistory(messages[:len(messages)-1])

	resp, err := chat.SendMessage(ctx, toGeminiParts(messages[len(messages)-1])...)
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}
	return parseGeminiResponse(resp)
}

// configureModel applies generation settings through the SDK's setters and
// installs the tool declarations for this invocation. The model is owned by
// the current call, so the mutations never leak into other requests.
func configureModel(model *genai.GenerativeModel, config *GenerationConfig, availableTools []tools.Tool) *genai.GenerativeModel {
	if config.Temperature != nil {
		model.SetTemperature(*config.Temperature)
	}
	if config.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(config.MaxTokens))
	}
	if len(availableTools) > 0 {
		model.Tools = toGeminiTools(availableTools)
	}
	return model
}

func toGeminiTools(toolsToConvert []tools.Tool) []*genai.Tool {
	var geminiTools []*genai.Tool
	for _, t := range toolsToConvert {
		geminiTools = append(geminiTools, &genai.Tool{
			FunctionDeclarations: []*genai.FunctionDeclaration{{
				Name:        t.Function.Name,
				Description: t.Function.Description,
				Parameters:  convertSchema(t.Function.Parameters),
			}},
		})
	}
	return geminiTools
}

func convertSchema(s tools.JSONSchema) *genai.Schema {
	out := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
	}
	switch s.Type {
	case "object":
		out.Type = genai.TypeObject
	case "string":
		out.Type = genai.TypeString
	case "number":
		out.Type = genai.TypeNumber
	case "integer":
		out.Type = genai.TypeInteger
	}
	if s.Properties != nil {
		out.Properties = make(map[string]*genai.Schema)
		for k, v := range s.Properties {
			out.Properties[k] = convertSchema(*v)
		}
	}
	return out
}

// toGeminiHistory converts all but the final message into Gemini chat
// history. Tool results become FunctionResponse parts attributed to the
// function role; assistant tool requests become FunctionCall parts.
func toGeminiHistory(messages []Message) []*genai.Content {
	var history []*genai.Content
	for _, msg := range messages {
		role := "user"
		if msg.Role == RoleAssistant {
			role = "model"
		}
		if msg.Role == RoleTool {
			role = "function"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: toGeminiParts(msg),
		})
	}
	return history
}

func toGeminiParts(msg Message) []genai.Part {
	var parts []genai.Part

	switch msg.Role {
	case RoleTool:
		var response map[string]interface{}
		if err := json.Unmarshal([]byte(msg.Content), &response); err != nil || response == nil {
			// Non-object results (null, arrays) are wrapped so Gemini
			// still receives a structured payload.
			response = map[string]interface{}{"resultado": msg.Content}
		}
		parts = append(parts, genai.FunctionResponse{
			Name:     strings.TrimPrefix(msg.ToolCallID, geminiToolCallPrefix),
			Response: response,
		})
		return parts
	case RoleAssistant:
		for _, tc := range msg.ToolCalls {
			var args map[string]interface{}
			_ = json.Unmarshal([]byte(tc.Function.Arguments), &args)
			parts = append(parts, genai.FunctionCall{Name: tc.Function.Name, Args: args})
		}
	}

	if msg.Content != "" || len(parts) == 0 {
		parts = append(parts, genai.Text(msg.Content))
	}
	for _, img := range msg.Images {
		parts = append(parts, genai.ImageData(strings.TrimPrefix(img.MIMEType, "image/"), img.Data))
	}
	return parts
}

func parseGeminiResponse(resp *genai.GenerateContentResponse) (*GenerationResult, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("no content returned from Gemini")
	}

	var contentBuilder strings.Builder
	var toolCalls []*tools.ToolCall
	for _, part := range resp.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			contentBuilder.WriteString(string(v))
		case genai.FunctionCall:
			args, err := json.Marshal(v.Args)
			if err != nil {
				return nil, fmt.Errorf("could not marshal gemini tool call args: %w", err)
			}
			toolCalls = append(toolCalls, &tools.ToolCall{
				ID:   geminiToolCallPrefix + v.Name,
				Type: tools.ToolTypeFunction,
				Function: tools.ToolCallFunction{
					Name:      v.Name,
					Arguments: string(args),
				},
			})
		}
	}

	result := &GenerationResult{
		Content:   strings.TrimSpace(contentBuilder.String()),
		ToolCalls: toolCalls,
	}
	if resp.UsageMetadata != nil {
		result.Usage = Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return result, nil
}
