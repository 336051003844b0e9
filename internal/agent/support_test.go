package agent

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karoldperez/clarofix/internal/conversation"
	"github.com/karoldperez/clarofix/internal/directory"
	"github.com/karoldperez/clarofix/internal/kb"
	"github.com/karoldperez/clarofix/internal/llm"
	"github.com/karoldperez/clarofix/internal/tools"
)

// scriptedGateway replays a fixed sequence of results and records every
// message batch it was invoked with.
type scriptedGateway struct {
	results []*llm.GenerationResult
	calls   [][]llm.Message
	tools   [][]tools.Tool
}

var _ llm.ModelGateway = (*scriptedGateway)(nil)

func (g *scriptedGateway) Generate(
	_ context.Context,
	messages []llm.Message,
	_ *llm.GenerationConfig,
	availableTools []tools.Tool,
) (*llm.GenerationResult, error) {
	copied := make([]llm.Message, len(messages))
	copy(copied, messages)
	g.calls = append(g.calls, copied)
	g.tools = append(g.tools, availableTools)

	if len(g.results) == 0 {
		return &llm.GenerationResult{Content: "sin guion"}, nil
	}
	next := g.results[0]
	g.results = g.results[1:]
	return next, nil
}

func newSupportFixture(t *testing.T, gateway llm.ModelGateway, maxRounds int) (*SupportAgent, conversation.Store) {
	t.Helper()
	store := conversation.NewMemoryStore()
	registry := tools.NewRegistry()
	for _, tool := range []tools.ToolExecutor{
		tools.NewCustomerByAccountTool(directory.NewMemoryStore(directory.DefaultSeed())),
		tools.NewFrequentProblemsTool(kb.New(kb.DefaultManuals())),
	} {
		require.NoError(t, registry.Register(tool))
	}

	agent := NewSupportAgent(gateway, registry, store, SupportConfig{
		Model:         "gpt-4.1-mini",
		MaxToolRounds: maxRounds,
	}, zerolog.Nop())
	return agent, store
}

func toolCall(id, name, arguments string) *tools.ToolCall {
	return &tools.ToolCall{
		ID:   id,
		Type: tools.ToolTypeFunction,
		Function: tools.ToolCallFunction{Name: name, Arguments: arguments},
	}
}

func TestSupportChatDirectReply(t *testing.T) {
	gateway := &scriptedGateway{results: []*llm.GenerationResult{
		{Content: "¡Hola! Soy el asistente de soporte. ¿Me das tu número de cuenta?"},
	}}
	agent, store := newSupportFixture(t, gateway, 5)

	reply, err := agent.Chat(context.Background(), "conv-1", []llm.Message{
		{Role: llm.RoleUser, Content: "hola"},
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "número de cuenta")
	require.Len(t, gateway.calls, 1)

	// system prompt plus the incoming turn
	first := gateway.calls[0]
	require.Len(t, first, 2)
	assert.Equal(t, llm.RoleSystem, first[0].Role)
	assert.Equal(t, llm.RoleUser, first[1].Role)
	assert.NotEmpty(t, gateway.tools[0])

	history, err := store.History(context.Background(), "conv-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, llm.RoleUser, history[0].Role)
	assert.Equal(t, llm.RoleAssistant, history[1].Role)
	assert.Equal(t, reply, history[1].Content)
}

func TestSupportChatToolRoundTrip(t *testing.T) {
	gateway := &scriptedGateway{results: []*llm.GenerationResult{
		{ToolCalls: []*tools.ToolCall{
			toolCall("call-1", "get_cliente_por_cuenta", `{"identificador": "1001"}`),
		}},
		{Content: "Encontré tu cuenta, Karold. Tienes una ONT HG8145V5 y un decodificador."},
	}}
	agent, _ := newSupportFixture(t, gateway, 5)

	reply, err := agent.Chat(context.Background(), "conv-1", []llm.Message{
		{Role: llm.RoleUser, Content: "mi cuenta es 1001"},
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "Karold")
	require.Len(t, gateway.calls, 2)

	// The second invocation must carry the assistant tool request followed
	// by the tool result keyed to the same invocation id.
	second := gateway.calls[1]
	require.Len(t, second, 4)
	assert.Equal(t, llm.RoleAssistant, second[2].Role)
	require.Len(t, second[2].ToolCalls, 1)
	assert.Equal(t, "call-1", second[2].ToolCalls[0].ID)
	assert.Equal(t, llm.RoleTool, second[3].Role)
	assert.Equal(t, "call-1", second[3].ToolCallID)
	assert.Contains(t, second[3].Content, "Karold Pérez")
}

func TestSupportChatExecutesEveryRequestedToolInOrder(t *testing.T) {
	gateway := &scriptedGateway{results: []*llm.GenerationResult{
		{ToolCalls: []*tools.ToolCall{
			toolCall("call-1", "get_cliente_por_cuenta", `{"identificador": "1001"}`),
			toolCall("call-2", "get_problemas_frecuentes", `{"modeloEquipo": "HG8145V5", "sintoma": "luz roja"}`),
		}},
		{Content: "Listo, aquí van los pasos."},
	}}
	agent, _ := newSupportFixture(t, gateway, 5)

	_, err := agent.Chat(context.Background(), "conv-1", []llm.Message{
		{Role: llm.RoleUser, Content: "cuenta 1001, mi ONT tiene la luz roja"},
	})

	require.NoError(t, err)
	require.Len(t, gateway.calls, 2)

	second := gateway.calls[1]
	require.Len(t, second, 5)
	assert.Equal(t, "call-1", second[3].ToolCallID)
	assert.Contains(t, second[3].Content, "Karold Pérez")
	assert.Equal(t, "call-2", second[4].ToolCallID)
	assert.Contains(t, second[4].Content, "hg8145v5-los-rojo")
}

func TestSupportChatUnknownToolFeedsMarkerBack(t *testing.T) {
	gateway := &scriptedGateway{results: []*llm.GenerationResult{
		{ToolCalls: []*tools.ToolCall{
			toolCall("call-1", "get_facturas", `{"idCliente": "cli-1"}`),
		}},
		{Content: "No puedo consultar facturas desde aquí."},
	}}
	agent, _ := newSupportFixture(t, gateway, 5)

	reply, err := agent.Chat(context.Background(), "conv-1", []llm.Message{
		{Role: llm.RoleUser, Content: "muéstrame mis facturas"},
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "facturas")

	second := gateway.calls[1]
	assert.Equal(t, tools.NotImplementedResult, second[len(second)-1].Content)
}

func TestSupportChatRoundBudgetExhausted(t *testing.T) {
	// Every round requests another tool call; the loop must give up instead
	// of invoking the model indefinitely.
	gateway := &scriptedGateway{results: []*llm.GenerationResult{
		{ToolCalls: []*tools.ToolCall{toolCall("call-1", "get_cliente_por_cuenta", `{"identificador": "1001"}`)}},
		{ToolCalls: []*tools.ToolCall{toolCall("call-2", "get_cliente_por_cuenta", `{"identificador": "1002"}`)}},
		{ToolCalls: []*tools.ToolCall{toolCall("call-3", "get_cliente_por_cuenta", `{"identificador": "1003"}`)}},
	}}
	agent, store := newSupportFixture(t, gateway, 2)

	_, err := agent.Chat(context.Background(), "conv-1", []llm.Message{
		{Role: llm.RoleUser, Content: "hola"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool rounds")
	assert.Len(t, gateway.calls, 2)

	// A failed run must not persist a partial turn.
	history, err := store.History(context.Background(), "conv-1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSupportChatToolFailurePropagates(t *testing.T) {
	gateway := &scriptedGateway{results: []*llm.GenerationResult{
		{ToolCalls: []*tools.ToolCall{
			toolCall("call-1", "get_cliente_por_cuenta", `{}`),
		}},
	}}
	agent, _ := newSupportFixture(t, gateway, 5)

	_, err := agent.Chat(context.Background(), "conv-1", []llm.Message{
		{Role: llm.RoleUser, Content: "hola"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "get_cliente_por_cuenta")
}

func TestSupportChatIncludesStoredHistory(t *testing.T) {
	gateway := &scriptedGateway{results: []*llm.GenerationResult{
		{Content: "Claro, sigo contigo."},
	}}
	agent, store := newSupportFixture(t, gateway, 5)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "conv-1",
		llm.Message{Role: llm.RoleUser, Content: "mi cuenta es 1001"},
		llm.Message{Role: llm.RoleAssistant, Content: "Encontré tu cuenta."},
	))

	_, err := agent.Chat(ctx, "conv-1", []llm.Message{
		{Role: llm.RoleUser, Content: "¿qué equipos tengo?"},
	})
	require.NoError(t, err)

	first := gateway.calls[0]
	require.Len(t, first, 4)
	assert.Equal(t, "mi cuenta es 1001", first[1].Content)
	assert.Equal(t, "Encontré tu cuenta.", first[2].Content)
	assert.Equal(t, "¿qué equipos tengo?", first[3].Content)
}
