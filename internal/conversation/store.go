// Package conversation provides the keyed, append-only message store that
// holds chat history across requests. Each conversation id owns its own
// sequence; there is no global shared history.
package conversation

import (
	"context"

	"github.com/karoldperez/clarofix/internal/llm"
)

// Store is the conversation persistence contract. Messages are only ever
// appended; implementations must preserve insertion order per key.
type Store interface {
	// Append adds messages to the end of a conversation's history.
	Append(ctx context.Context, conversationID string, messages ...llm.Message) error
	// History returns the full ordered history for a conversation. An
	// unknown id yields an empty slice, not an error.
	History(ctx context.Context, conversationID string) ([]llm.Message, error)
	// Clear removes one conversation and reports how many entries it held.
	Clear(ctx context.Context, conversationID string) (int, error)
	// ClearAll removes every conversation and reports the total number of
	// entries removed.
	ClearAll(ctx context.Context) (int, error)
}
