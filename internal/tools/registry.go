package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// NotImplementedResult is the marker payload returned when the model requests
// a tool name that was never registered. It is a valid tool result rather
// than an error so the orchestration loop stays uniform: every tool call
// produces a tool message the model can reason about.
const NotImplementedResult = `{"error": "Función no implementada en el backend."}`

// Registry holds the fixed set of tools declared at startup. Registration is
// static: nothing is added or removed after the composition root finishes.
// Registration order is preserved so every model request carries the same
// tool array.
type Registry struct {
	tools   map[string]ToolExecutor
	schemas map[string]*gojsonschema.Schema
	order   []string
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools:   make(map[string]ToolExecutor),
		schemas: make(map[string]*gojsonschema.Schema),
	}
}

// Register adds a tool and compiles its parameter schema. It returns an
// error if the descriptor's schema does not compile; startup should treat
// that as fatal since a broken schema would let invalid arguments through.
func (r *Registry) Register(tool ToolExecutor) error {
	def := tool.Definition()
	name := def.Function.Name

	raw, err := json.Marshal(def.Function.Parameters)
	if err != nil {
		return fmt.Errorf("failed to marshal parameter schema for %q: %w", name, err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("invalid parameter schema for %q: %w", name, err)
	}

	if _, exists := r.tools[name]; !exists {
		r.order = append(r.order, name)
	}
	r.tools[name] = tool
	r.schemas[name] = schema
	return nil
}

// Definitions returns the descriptors of every registered tool, in
// registration order, for inclusion in model requests.
func (r *Registry) Definitions() []Tool {
	defs := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].Definition())
	}
	return defs
}

// Schema returns the parameter schema declared for a tool name.
func (r *Registry) Schema(name string) (JSONSchema, error) {
	tool, ok := r.tools[name]
	if !ok {
		return JSONSchema{}, fmt.Errorf("unknown tool %q", name)
	}
	return tool.Definition().Function.Parameters, nil
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	return len(r.tools)
}

// Execute runs the named tool with the given JSON arguments.
//
// An unregistered name yields the NotImplementedResult marker with a nil
// error. Arguments are validated against the tool's declared schema before
// the underlying lookup runs; a violation of the required-parameter set is
// an execution failure, the lookup is never invoked.
func (r *Registry) Execute(ctx context.Context, name, arguments string) (string, error) {
	tool, ok := r.tools[name]
	if !ok {
		return NotImplementedResult, nil
	}

	if strings.TrimSpace(arguments) == "" {
		arguments = "{}"
	}
	result, err := r.schemas[name].Validate(gojsonschema.NewStringLoader(arguments))
	if err != nil {
		return "", fmt.Errorf("arguments for %q are not valid JSON: %w", name, err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return "", fmt.Errorf("arguments for %q violate the declared schema: %s", name, strings.Join(problems, "; "))
	}

	return tool.Execute(ctx, arguments)
}
