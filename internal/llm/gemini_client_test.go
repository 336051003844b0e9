package llm

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karoldperez/clarofix/internal/tools"
)

func TestConfigureModelIsolatesPerCallSettings(t *testing.T) {
	lookupTool := tools.NewFunctionTool("get_equipos_cliente", "Lista equipos.", tools.JSONSchema{
		Type: "object",
		Properties: map[string]*tools.JSONSchema{
			"idCliente": {Type: "string"},
		},
		Required: []string{"idCliente"},
	})

	// Two invocations with different settings configure their own models;
	// neither sees the other's max tokens or tool declarations.
	visionModel := configureModel(&genai.GenerativeModel{}, &GenerationConfig{MaxTokens: 400}, nil)
	supportModel := configureModel(&genai.GenerativeModel{}, &GenerationConfig{MaxTokens: 1024}, []tools.Tool{lookupTool})

	require.NotNil(t, visionModel.MaxOutputTokens)
	assert.Equal(t, int32(400), *visionModel.MaxOutputTokens)
	assert.Nil(t, visionModel.Tools)

	require.NotNil(t, supportModel.MaxOutputTokens)
	assert.Equal(t, int32(1024), *supportModel.MaxOutputTokens)
	require.Len(t, supportModel.Tools, 1)
	assert.Equal(t, "get_equipos_cliente", supportModel.Tools[0].FunctionDeclarations[0].Name)
	assert.Equal(t, int32(400), *visionModel.MaxOutputTokens)
}

func TestConvertSchema(t *testing.T) {
	schema := convertSchema(tools.JSONSchema{
		Type: "object",
		Properties: map[string]*tools.JSONSchema{
			"modeloEquipo": {Type: "string", Description: "Modelo del equipo."},
			"reintentos":   {Type: "integer"},
		},
		Required: []string{"modeloEquipo"},
	})

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.Equal(t, []string{"modeloEquipo"}, schema.Required)
	require.Contains(t, schema.Properties, "modeloEquipo")
	assert.Equal(t, genai.TypeString, schema.Properties["modeloEquipo"].Type)
	assert.Equal(t, genai.TypeInteger, schema.Properties["reintentos"].Type)
}

func TestToGeminiHistoryRoleMapping(t *testing.T) {
	history := toGeminiHistory([]Message{
		{Role: RoleUser, Content: "hola"},
		{Role: RoleAssistant, Content: "¿número de cuenta?"},
		{Role: RoleTool, ToolCallID: geminiToolCallPrefix + "get_cliente_por_cuenta", Content: `{"nombre": "Karold Pérez"}`},
	})

	require.Len(t, history, 3)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "model", history[1].Role)
	assert.Equal(t, "function", history[2].Role)
}

func TestToGeminiPartsToolResult(t *testing.T) {
	t.Run("object result with name recovered from the invocation id", func(t *testing.T) {
		parts := toGeminiParts(Message{
			Role:       RoleTool,
			ToolCallID: geminiToolCallPrefix + "get_cliente_por_cuenta",
			Content:    `{"nombre": "Karold Pérez"}`,
		})

		require.Len(t, parts, 1)
		resp, ok := parts[0].(genai.FunctionResponse)
		require.True(t, ok)
		assert.Equal(t, "get_cliente_por_cuenta", resp.Name)
		assert.Equal(t, "Karold Pérez", resp.Response["nombre"])
	})

	t.Run("non-object result is wrapped", func(t *testing.T) {
		parts := toGeminiParts(Message{
			Role:       RoleTool,
			ToolCallID: geminiToolCallPrefix + "get_cliente_por_documento",
			Content:    "null",
		})

		require.Len(t, parts, 1)
		resp, ok := parts[0].(genai.FunctionResponse)
		require.True(t, ok)
		assert.Equal(t, "null", resp.Response["resultado"])
	})
}
