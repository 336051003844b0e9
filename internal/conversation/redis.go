package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/karoldperez/clarofix/internal/llm"
)

const keyPrefix = "conv:"

// RedisStore persists conversation histories as Redis lists, one list per
// conversation id. Every append refreshes the conversation TTL so abandoned
// chats eventually expire on their own.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed conversation store. A zero ttl keeps
// conversations until they are cleared explicitly.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func conversationKey(conversationID string) string {
	return keyPrefix + conversationID
}

func (s *RedisStore) Append(ctx context.Context, conversationID string, messages ...llm.Message) error {
	if len(messages) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(messages))
	for _, msg := range messages {
		raw, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("failed to serialize message: %w", err)
		}
		values = append(values, raw)
	}

	key := conversationKey(conversationID)
	if err := s.rdb.RPush(ctx, key, values...).Err(); err != nil {
		return fmt.Errorf("failed to append to conversation %s: %w", conversationID, err)
	}
	if s.ttl > 0 {
		if err := s.rdb.Expire(ctx, key, s.ttl).Err(); err != nil {
			return fmt.Errorf("failed to refresh TTL for conversation %s: %w", conversationID, err)
		}
	}
	return nil
}

func (s *RedisStore) History(ctx context.Context, conversationID string) ([]llm.Message, error) {
	entries, err := s.rdb.LRange(ctx, conversationKey(conversationID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation %s: %w", conversationID, err)
	}
	history := make([]llm.Message, 0, len(entries))
	for _, entry := range entries {
		var msg llm.Message
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			return nil, fmt.Errorf("corrupt entry in conversation %s: %w", conversationID, err)
		}
		history = append(history, msg)
	}
	return history, nil
}

func (s *RedisStore) Clear(ctx context.Context, conversationID string) (int, error) {
	key := conversationKey(conversationID)
	length, err := s.rdb.LLen(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to size conversation %s: %w", conversationID, err)
	}
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return 0, fmt.Errorf("failed to clear conversation %s: %w", conversationID, err)
	}
	return int(length), nil
}

func (s *RedisStore) ClearAll(ctx context.Context) (int, error) {
	removed := 0
	iter := s.rdb.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		length, err := s.rdb.LLen(ctx, key).Result()
		if err != nil {
			return removed, fmt.Errorf("failed to size %s: %w", key, err)
		}
		if err := s.rdb.Del(ctx, key).Err(); err != nil {
			return removed, fmt.Errorf("failed to delete %s: %w", key, err)
		}
		removed += int(length)
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("conversation scan failed: %w", err)
	}
	return removed, nil
}
