package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karoldperez/clarofix/internal/directory"
	"github.com/karoldperez/clarofix/internal/kb"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	store := directory.NewMemoryStore(directory.DefaultSeed())
	knowledgeBase := kb.New(kb.DefaultManuals())

	registry := NewRegistry()
	for _, tool := range []ToolExecutor{
		NewCustomerByDocumentTool(store),
		NewCustomerByAccountTool(store),
		NewCustomerEquipmentTool(store),
		NewFrequentProblemsTool(knowledgeBase),
	} {
		require.NoError(t, registry.Register(tool))
	}
	return registry
}

func TestRegistryDefinitions(t *testing.T) {
	registry := newTestRegistry(t)

	assert.Equal(t, 4, registry.Count())

	var names []string
	for _, def := range registry.Definitions() {
		assert.Equal(t, ToolTypeFunction, def.Type)
		names = append(names, def.Function.Name)
	}
	// Registration order is preserved, so the model sees a stable tool array.
	assert.Equal(t, []string{
		"get_cliente_por_documento",
		"get_cliente_por_cuenta",
		"get_equipos_cliente",
		"get_problemas_frecuentes",
	}, names)
}

func TestRegistryExecuteUnknownTool(t *testing.T) {
	registry := newTestRegistry(t)

	result, err := registry.Execute(context.Background(), "get_facturas", `{"idCliente": "cli-1"}`)

	require.NoError(t, err)
	assert.Equal(t, NotImplementedResult, result)
}

func TestRegistryExecuteValidatesArguments(t *testing.T) {
	registry := newTestRegistry(t)

	t.Run("missing required parameter", func(t *testing.T) {
		_, err := registry.Execute(context.Background(), "get_cliente_por_documento", `{}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "identificador")
	})

	t.Run("empty arguments normalize to an empty object", func(t *testing.T) {
		_, err := registry.Execute(context.Background(), "get_cliente_por_documento", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "identificador")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := registry.Execute(context.Background(), "get_cliente_por_documento", `{"identificador":`)
		require.Error(t, err)
	})

	t.Run("wrong parameter type", func(t *testing.T) {
		_, err := registry.Execute(context.Background(), "get_cliente_por_documento", `{"identificador": 42}`)
		require.Error(t, err)
	})
}

func TestRegistrySchema(t *testing.T) {
	registry := newTestRegistry(t)

	schema, err := registry.Schema("get_problemas_frecuentes")
	require.NoError(t, err)
	assert.Equal(t, "object", schema.Type)
	assert.ElementsMatch(t, []string{"modeloEquipo", "sintoma"}, schema.Required)

	_, err = registry.Schema("get_facturas")
	assert.Error(t, err)
}

func TestCustomerLookupByDocument(t *testing.T) {
	registry := newTestRegistry(t)

	result, err := registry.Execute(context.Background(), "get_cliente_por_documento", `{"identificador": "1026259098"}`)
	require.NoError(t, err)

	var record directory.CustomerWithEquipment
	require.NoError(t, json.Unmarshal([]byte(result), &record))
	assert.Equal(t, "cli-1", record.ID)
	assert.Equal(t, "Karold Pérez", record.Name)
	assert.Equal(t, "1001", record.AccountNumber)
	require.Len(t, record.Equipment, 2)
	assert.Equal(t, "HG8145V5", record.Equipment[0].Model)
	assert.Equal(t, "UIW4001", record.Equipment[1].Model)
}

func TestCustomerLookupByAccount(t *testing.T) {
	registry := newTestRegistry(t)

	result, err := registry.Execute(context.Background(), "get_cliente_por_cuenta", `{"identificador": "1002"}`)
	require.NoError(t, err)

	var record directory.CustomerWithEquipment
	require.NoError(t, json.Unmarshal([]byte(result), &record))
	assert.Equal(t, "Juan Rodríguez", record.Name)
	require.Len(t, record.Equipment, 1)
	assert.Equal(t, "ARCHER C6", record.Equipment[0].Model)
}

func TestCustomerLookupNotFound(t *testing.T) {
	registry := newTestRegistry(t)

	t.Run("by document", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), "get_cliente_por_documento", `{"identificador": "00000000"}`)
		require.NoError(t, err)
		assert.Equal(t, "null", result)
	})

	t.Run("by account", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), "get_cliente_por_cuenta", `{"identificador": "9999"}`)
		require.NoError(t, err)
		assert.Equal(t, "null", result)
	})
}

func TestCustomerEquipmentLookup(t *testing.T) {
	registry := newTestRegistry(t)

	t.Run("known customer", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), "get_equipos_cliente", `{"idCliente": "cli-1"}`)
		require.NoError(t, err)

		var equipment []directory.Equipment
		require.NoError(t, json.Unmarshal([]byte(result), &equipment))
		assert.Len(t, equipment, 2)
	})

	t.Run("unknown customer yields an empty list", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), "get_equipos_cliente", `{"idCliente": "cli-999"}`)
		require.NoError(t, err)
		assert.Equal(t, "[]", result)
	})
}

func TestFrequentProblemsLookup(t *testing.T) {
	registry := newTestRegistry(t)

	t.Run("keyword match", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), "get_problemas_frecuentes",
			`{"modeloEquipo": "HG8145V5", "sintoma": "tengo la luz roja de LOS encendida"}`)
		require.NoError(t, err)

		var report kb.ProblemReport
		require.NoError(t, json.Unmarshal([]byte(result), &report))
		assert.Equal(t, "hg8145v5-los-rojo", report.ProblemID)
		assert.NotEmpty(t, report.Steps)
		assert.NotEmpty(t, report.FinalRecommendation)
	})

	t.Run("unknown model falls back to generic steps", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), "get_problemas_frecuentes",
			`{"modeloEquipo": "XYZ-1", "sintoma": "no funciona"}`)
		require.NoError(t, err)

		var report kb.ProblemReport
		require.NoError(t, json.Unmarshal([]byte(result), &report))
		assert.Empty(t, report.ProblemID)
		assert.Len(t, report.Steps, 3)
	})
}
