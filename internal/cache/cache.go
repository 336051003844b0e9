// Package cache provides the response cache used to short-circuit repeat
// classification requests. Lookups are best-effort: a cache failure is a
// miss, never a request failure.
package cache

import "context"

// Cache is a minimal get/set string cache.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// Noop is the Cache used when no Redis backend is configured.
type Noop struct{}

var _ Cache = Noop{}

func (Noop) Get(context.Context, string) (string, bool) { return "", false }
func (Noop) Set(context.Context, string, string)        {}
