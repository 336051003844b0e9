// Package llm contains the message model and the gateway clients used to talk
// to chat-completion providers, including function calling and vision input.
package llm

import (
	"context"

	"github.com/karoldperez/clarofix/internal/tools"
)

// Role represents the originator of a message in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ImageAttachment is an inline image submitted alongside a user message.
// The gateway implementations convert it to the provider's wire format
// (a base64 data URL for OpenAI, an inline blob for Gemini).
type ImageAttachment struct {
	MIMEType string
	Data     []byte
}

// Message is a single turn in a conversation history. Order is semantically
// significant: a RoleTool message must follow the assistant message whose
// tool call it answers, referenced through ToolCallID.
type Message struct {
	Role       Role              `json:"role"`
	Content    string            `json:"content"`
	ToolCallID string            `json:"tool_call_id,omitempty"`
	ToolCalls  []*tools.ToolCall `json:"tool_calls,omitempty"`
	Images     []ImageAttachment `json:"-"`
}

// GenerationConfig holds the parameters that control one model invocation.
type GenerationConfig struct {
	// Model is the provider model id (e.g. "gpt-4.1-mini").
	Model string
	// Temperature controls randomness. A pointer distinguishes 0.0 from unset.
	Temperature *float32
	// MaxTokens bounds the completion length. Zero means provider default.
	MaxTokens int
}

// Usage holds token accounting for one generation.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates another generation's usage into u.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// GenerationResult is the complete output of one model invocation: either a
// final text content, or one or more tool calls the model wants executed.
type GenerationResult struct {
	Content   string
	ToolCalls []*tools.ToolCall
	Usage     Usage
}

// ModelGateway is the contract every provider client implements. It is
// stateless per call: the full message sequence is supplied on every
// invocation. A non-empty availableTools slice solicits function calling
// with tool choice "auto"; nil requests a plain text completion.
type ModelGateway interface {
	Generate(
		ctx context.Context,
		messages []Message,
		config *GenerationConfig,
		availableTools []tools.Tool,
	) (*GenerationResult, error)
}
