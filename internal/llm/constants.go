package llm

import "time"

// Shared client constants. Every provider client uses the same request
// timeout so a hung upstream never stalls a request task indefinitely.
const defaultTimeout = 120 * time.Second
