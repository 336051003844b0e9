package conversation

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karoldperez/clarofix/internal/llm"
)

func TestMemoryStoreAppendAndHistory(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "conv-1",
		llm.Message{Role: llm.RoleUser, Content: "hola"},
		llm.Message{Role: llm.RoleAssistant, Content: "¡Hola! ¿En qué puedo ayudarte?"},
	))

	history, err := store.History(ctx, "conv-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, llm.RoleUser, history[0].Role)
	assert.Equal(t, "hola", history[0].Content)
	assert.Equal(t, llm.RoleAssistant, history[1].Role)
}

func TestMemoryStoreUnknownConversationIsEmpty(t *testing.T) {
	store := NewMemoryStore()

	history, err := store.History(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestMemoryStoreKeysAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "conv-a", llm.Message{Role: llm.RoleUser, Content: "a"}))
	require.NoError(t, store.Append(ctx, "conv-b", llm.Message{Role: llm.RoleUser, Content: "b"}))

	historyA, err := store.History(ctx, "conv-a")
	require.NoError(t, err)
	historyB, err := store.History(ctx, "conv-b")
	require.NoError(t, err)

	require.Len(t, historyA, 1)
	require.Len(t, historyB, 1)
	assert.Equal(t, "a", historyA[0].Content)
	assert.Equal(t, "b", historyB[0].Content)
}

func TestMemoryStoreHistoryReturnsACopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "conv-1", llm.Message{Role: llm.RoleUser, Content: "original"}))

	history, err := store.History(ctx, "conv-1")
	require.NoError(t, err)
	history[0].Content = "mutated"

	fresh, err := store.History(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, "original", fresh[0].Content)
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "conv-1",
		llm.Message{Role: llm.RoleUser, Content: "uno"},
		llm.Message{Role: llm.RoleAssistant, Content: "dos"},
		llm.Message{Role: llm.RoleUser, Content: "tres"},
	))

	count, err := store.Clear(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	history, err := store.History(ctx, "conv-1")
	require.NoError(t, err)
	assert.Empty(t, history)

	count, err = store.Clear(ctx, "conv-1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemoryStoreClearAll(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "conv-a", llm.Message{Role: llm.RoleUser, Content: "a"}))
	require.NoError(t, store.Append(ctx, "conv-b",
		llm.Message{Role: llm.RoleUser, Content: "b1"},
		llm.Message{Role: llm.RoleAssistant, Content: "b2"},
	))

	total, err := store.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	for _, id := range []string{"conv-a", "conv-b"} {
		history, err := store.History(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, history)
	}
}

func TestMemoryStoreConcurrentAppends(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = store.Append(ctx, "shared", llm.Message{
					Role:    llm.RoleUser,
					Content: fmt.Sprintf("w%d-%d", w, i),
				})
			}
		}(w)
	}
	wg.Wait()

	history, err := store.History(ctx, "shared")
	require.NoError(t, err)
	assert.Len(t, history, writers*perWriter)
}
