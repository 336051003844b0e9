package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/karoldperez/clarofix/internal/directory"
	"github.com/karoldperez/clarofix/internal/kb"
)

// nullResult is the serialized domain "not found" value. The support
// instructions teach the model to narrate it, so it must stay a JSON null
// rather than an error payload.
const nullResult = "null"

// --- get_cliente_por_documento ---

// CustomerByDocumentTool looks up a customer by identity document and merges
// the equipment on their account into the result.
type CustomerByDocumentTool struct {
	store directory.Store
}

var _ ToolExecutor = (*CustomerByDocumentTool)(nil)

func NewCustomerByDocumentTool(store directory.Store) *CustomerByDocumentTool {
	return &CustomerByDocumentTool{store: store}
}

func (t *CustomerByDocumentTool) Definition() Tool {
	return NewFunctionTool(
		"get_cliente_por_documento",
		"Obtiene datos de un cliente usando su documento de identidad y devuelve también los equipos que tiene asociados.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"identificador": {
					Type:        "string",
					Description: "Documento de identidad del cliente (cédula, CC o NIT).",
				},
			},
			Required: []string{"identificador"},
		},
	)
}

func (t *CustomerByDocumentTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		Identifier string `json:"identificador"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("invalid arguments for get_cliente_por_documento: %w", err)
	}

	customer, err := t.store.CustomerByDocument(ctx, args.Identifier)
	if err != nil {
		return "", fmt.Errorf("customer lookup by document failed: %w", err)
	}
	return marshalCustomerResult(ctx, t.store, customer)
}

// --- get_cliente_por_cuenta ---

// CustomerByAccountTool looks up a customer by account number and merges the
// equipment on their account into the result.
type CustomerByAccountTool struct {
	store directory.Store
}

var _ ToolExecutor = (*CustomerByAccountTool)(nil)

func NewCustomerByAccountTool(store directory.Store) *CustomerByAccountTool {
	return &CustomerByAccountTool{store: store}
}

func (t *CustomerByAccountTool) Definition() Tool {
	return NewFunctionTool(
		"get_cliente_por_cuenta",
		"Obtiene datos de un cliente usando su número de cuenta y devuelve también los equipos que tiene asociados.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"identificador": {
					Type:        "string",
					Description: "Número de cuenta del cliente (por ejemplo, 1001).",
				},
			},
			Required: []string{"identificador"},
		},
	)
}

func (t *CustomerByAccountTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		Identifier string `json:"identificador"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("invalid arguments for get_cliente_por_cuenta: %w", err)
	}

	customer, err := t.store.CustomerByAccount(ctx, args.Identifier)
	if err != nil {
		return "", fmt.Errorf("customer lookup by account failed: %w", err)
	}
	return marshalCustomerResult(ctx, t.store, customer)
}

// marshalCustomerResult serializes the enriched customer record, or the JSON
// null marker when the lookup found nothing.
func marshalCustomerResult(ctx context.Context, store directory.Store, customer *directory.Customer) (string, error) {
	if customer == nil {
		return nullResult, nil
	}
	equipment, err := store.EquipmentByCustomer(ctx, customer.ID)
	if err != nil {
		return "", fmt.Errorf("equipment lookup for customer %s failed: %w", customer.ID, err)
	}
	merged := directory.CustomerWithEquipment{Customer: *customer, Equipment: equipment}
	raw, err := json.Marshal(merged)
	if err != nil {
		return "", fmt.Errorf("failed to serialize customer record: %w", err)
	}
	return string(raw), nil
}

// --- get_equipos_cliente ---

// CustomerEquipmentTool lists the devices on a customer's account. Kept as a
// standalone tool so the model can refresh the equipment list mid-chat.
type CustomerEquipmentTool struct {
	store directory.Store
}

var _ ToolExecutor = (*CustomerEquipmentTool)(nil)

func NewCustomerEquipmentTool(store directory.Store) *CustomerEquipmentTool {
	return &CustomerEquipmentTool{store: store}
}

func (t *CustomerEquipmentTool) Definition() Tool {
	return NewFunctionTool(
		"get_equipos_cliente",
		"Lista los equipos de red que tiene un cliente.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"idCliente": {
					Type:        "string",
					Description: "Identificador interno del cliente (por ejemplo, cli-1).",
				},
			},
			Required: []string{"idCliente"},
		},
	)
}

func (t *CustomerEquipmentTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		CustomerID string `json:"idCliente"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("invalid arguments for get_equipos_cliente: %w", err)
	}

	equipment, err := t.store.EquipmentByCustomer(ctx, args.CustomerID)
	if err != nil {
		return "", fmt.Errorf("equipment lookup failed: %w", err)
	}
	if equipment == nil {
		equipment = []directory.Equipment{}
	}
	raw, err := json.Marshal(equipment)
	if err != nil {
		return "", fmt.Errorf("failed to serialize equipment list: %w", err)
	}
	return string(raw), nil
}

// --- get_problemas_frecuentes ---

// FrequentProblemsTool answers model/symptom lookups against the knowledge
// base of device manuals.
type FrequentProblemsTool struct {
	kb *kb.KnowledgeBase
}

var _ ToolExecutor = (*FrequentProblemsTool)(nil)

func NewFrequentProblemsTool(knowledgeBase *kb.KnowledgeBase) *FrequentProblemsTool {
	return &FrequentProblemsTool{kb: knowledgeBase}
}

func (t *FrequentProblemsTool) Definition() Tool {
	return NewFunctionTool(
		"get_problemas_frecuentes",
		"Devuelve problemas frecuentes y pasos de solución para un modelo de equipo y un síntoma específico.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"modeloEquipo": {
					Type:        "string",
					Description: "Modelo del equipo (por ejemplo, HG8145V5).",
				},
				"sintoma": {
					Type:        "string",
					Description: "Resumen corto del problema (por ejemplo, 'sin internet', 'luz roja LOS').",
				},
			},
			Required: []string{"modeloEquipo", "sintoma"},
		},
	)
}

func (t *FrequentProblemsTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		Model   string `json:"modeloEquipo"`
		Symptom string `json:"sintoma"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("invalid arguments for get_problemas_frecuentes: %w", err)
	}

	report := t.kb.FrequentProblems(ctx, args.Model, args.Symptom)
	raw, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to serialize problem report: %w", err)
	}
	return string(raw), nil
}
