package conversation

import (
	"context"
	"sync"

	"github.com/karoldperez/clarofix/internal/llm"
)

// MemoryStore keeps conversation histories in process memory. Contents are
// lost on restart; use the Redis store when durability across restarts (or
// multiple replicas) matters.
type MemoryStore struct {
	mu       sync.RWMutex
	messages map[string][]llm.Message
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory conversation store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{messages: make(map[string][]llm.Message)}
}

func (s *MemoryStore) Append(_ context.Context, conversationID string, messages ...llm.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[conversationID] = append(s.messages[conversationID], messages...)
	return nil
}

func (s *MemoryStore) History(_ context.Context, conversationID string) ([]llm.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.messages[conversationID]
	history := make([]llm.Message, len(stored))
	copy(history, stored)
	return history, nil
}

func (s *MemoryStore) Clear(_ context.Context, conversationID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := len(s.messages[conversationID])
	delete(s.messages, conversationID)
	return removed, nil
}

func (s *MemoryStore) ClearAll(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for _, msgs := range s.messages {
		removed += len(msgs)
	}
	s.messages = make(map[string][]llm.Message)
	return removed, nil
}
