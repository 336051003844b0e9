// Package tools defines the function-calling surface the support agent
// exposes to the model: descriptor types, a registry with JSON-schema
// argument validation, and the concrete customer/knowledge-base lookups.
package tools

// ToolTypeFunction is the standard type for function-based tools.
const ToolTypeFunction = "function"

// Tool is the schema of a callable operation as described to the model.
type Tool struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// Function carries the name, description, and parameter schema of a tool.
// The model picks tools based on the description, so it must say precisely
// what the operation looks up.
type Function struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  JSONSchema `json:"parameters"`
}

// JSONSchema is a typed subset of JSON Schema covering the parameter shapes
// the lookup tools need: an object with string/number properties and a
// required list.
type JSONSchema struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
}

// ToolCall is a request from the model to execute one registered tool.
// ID is the invocation id that the matching tool-result message must echo.
type ToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction holds the requested tool name and its arguments as the
// raw JSON string produced by the model.
type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// NewFunctionTool builds a function-typed Tool descriptor.
func NewFunctionTool(name, description string, parameters JSONSchema) Tool {
	return Tool{
		Type: ToolTypeFunction,
		Function: Function{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}
