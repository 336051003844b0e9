package agent

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/karoldperez/clarofix/internal/conversation"
	"github.com/karoldperez/clarofix/internal/llm"
	"github.com/karoldperez/clarofix/internal/prompts"
	"github.com/karoldperez/clarofix/internal/tools"
)

// SupportConfig holds the tunables of the support orchestration loop.
type SupportConfig struct {
	// Model is the chat-completion model id used for support turns.
	Model string
	// MaxTokens bounds each completion. Zero means provider default.
	MaxTokens int
	// MaxToolRounds bounds the number of model invocations per request. A
	// round that requests tools consumes one invocation; the loop errors out
	// rather than calling the model a MaxToolRounds+1-th time.
	MaxToolRounds int
}

// SupportAgent drives the tool-calling orchestration loop between the chat
// client and the model. One Chat call is one orchestration run: the two (or
// more) gateway invocations inside it are strictly sequential, and every
// tool call the model requests in a turn is executed in order and fed back
// before the next model turn.
type SupportAgent struct {
	gateway  llm.ModelGateway
	registry *tools.Registry
	store    conversation.Store
	logger   zerolog.Logger
	cfg      SupportConfig
}

// NewSupportAgent wires the orchestration loop to its collaborators.
func NewSupportAgent(
	gateway llm.ModelGateway,
	registry *tools.Registry,
	store conversation.Store,
	cfg SupportConfig,
	logger zerolog.Logger,
) *SupportAgent {
	if cfg.MaxToolRounds <= 0 {
		cfg.MaxToolRounds = 5
	}
	return &SupportAgent{
		gateway:  gateway,
		registry: registry,
		store:    store,
		logger:   logger.With().Str("component", "support_agent").Logger(),
		cfg:      cfg,
	}
}

// Chat runs one orchestration round for a conversation: stored history plus
// the incoming turns go to the model with the tool registry attached; tool
// requests are executed and fed back until the model produces a final text
// reply. The incoming turns and the final reply are appended to the keyed
// store before returning.
func (a *SupportAgent) Chat(ctx context.Context, conversationID string, incoming []llm.Message) (string, error) {
	logger := a.logger.With().Str("conversation_id", conversationID).Logger()

	history, err := a.store.History(ctx, conversationID)
	if err != nil {
		return "", fmt.Errorf("failed to load conversation history: %w", err)
	}

	outbound := make([]llm.Message, 0, len(history)+len(incoming)+1)
	outbound = append(outbound, llm.Message{Role: llm.RoleSystem, Content: prompts.SupportInstructions})
	outbound = append(outbound, history...)
	outbound = append(outbound, incoming...)

	genCfg := &llm.GenerationConfig{Model: a.cfg.Model, MaxTokens: a.cfg.MaxTokens}

	var reply string
	for round := 0; ; round++ {
		if round >= a.cfg.MaxToolRounds {
			return "", fmt.Errorf("support loop exceeded %d tool rounds for conversation %s", a.cfg.MaxToolRounds, conversationID)
		}

		result, err := a.gateway.Generate(ctx, outbound, genCfg, a.registry.Definitions())
		if err != nil {
			return "", fmt.Errorf("support model call failed: %w", err)
		}
		if len(result.ToolCalls) == 0 {
			reply = result.Content
			break
		}

		// The assistant message that requested the tools must precede the
		// tool results in the history fed back to the model.
		outbound = append(outbound, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   result.Content,
			ToolCalls: result.ToolCalls,
		})
		for _, call := range result.ToolCalls {
			logger.Info().
				Str("tool", call.Function.Name).
				Str("invocation_id", call.ID).
				Str("arguments", call.Function.Arguments).
				Msg("executing tool call")

			toolResult, err := a.registry.Execute(ctx, call.Function.Name, call.Function.Arguments)
			if err != nil {
				return "", fmt.Errorf("tool %s failed: %w", call.Function.Name, err)
			}
			outbound = append(outbound, llm.Message{
				Role:       llm.RoleTool,
				ToolCallID: call.ID,
				Content:    toolResult,
			})
		}
	}

	persisted := make([]llm.Message, 0, len(incoming)+1)
	persisted = append(persisted, incoming...)
	persisted = append(persisted, llm.Message{Role: llm.RoleAssistant, Content: reply})
	if err := a.store.Append(ctx, conversationID, persisted...); err != nil {
		// The reply was produced; losing one history append should not turn
		// a successful run into a caller-visible failure.
		logger.Warn().Err(err).Msg("failed to persist conversation turn")
	}

	return reply, nil
}
