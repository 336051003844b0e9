package tools

import "context"

// ToolExecutor is the interface every registered tool implements. Execute
// receives the model-produced arguments as a JSON string (already validated
// against the descriptor schema by the registry) and returns the serialized
// result that is fed back to the model as a tool message. Domain "not found"
// is a successful execution whose result is the JSON literal null; an error
// return means the lookup itself failed.
type ToolExecutor interface {
	Definition() Tool
	Execute(ctx context.Context, arguments string) (string, error)
}
