// Package agent implements the model-facing agents: the multi-turn
// tool-calling support loop, the vision classifier, and the second-stage
// diagnoser.
package agent

import (
	"errors"
	"fmt"
)

// MalformedOutputError reports that the model returned text that does not
// parse as the expected structured payload. The raw text is kept so the
// caller can attach it to the response for diagnosis. This condition is
// distinct from an unreachable gateway or a tool fault.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("model output did not match the expected structure: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// AsMalformedOutput extracts a MalformedOutputError from an error chain.
func AsMalformedOutput(err error) (*MalformedOutputError, bool) {
	var m *MalformedOutputError
	if errors.As(err, &m) {
		return m, true
	}
	return nil, false
}
