// Package version centralizes the versioning of the gateway's logical
// components. The version strings are baked into cache keys, so bumping one
// invalidates every cached response produced under the previous behavior:
// bump Prompts after editing the classifier instructions and stale
// classifications stop being served.
package version

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComponentVersions holds the version strings of the parts whose behavior
// affects cached responses. Increment manually before deploying a change to
// that component.
var ComponentVersions = struct {
	// Prompts covers the instruction blocks in internal/prompts.
	Prompts string
	// Tools covers the lookup tool implementations and their schemas.
	Tools string
	// KnowledgeBase covers the device manuals and the seed directory.
	KnowledgeBase string
}{
	Prompts:       "v1.0",
	Tools:         "v1.0",
	KnowledgeBase: "v1.0",
}

// VersionedCacheKey builds a cache key from a prefix, a SHA-256 hash of the
// payload, and the current component versions.
//
// Example: "classify:a1b2c3d4...:pv1.0_tv1.0_kv1.0"
func VersionedCacheKey(prefix string, payload []byte) string {
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("%s:%s:p%s_t%s_k%s",
		prefix,
		hex.EncodeToString(sum[:]),
		ComponentVersions.Prompts,
		ComponentVersions.Tools,
		ComponentVersions.KnowledgeBase,
	)
}
