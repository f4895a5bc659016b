package compare

import (
	"sync"

	"github.com/google/uuid"
)

// identityRegistry hands out a stable token per object instance, so that an
// object handle keeps hashing to the same slot for its whole lifetime.
var identityRegistry struct {
	mu     sync.RWMutex
	tokens map[any]string
}

func init() {
	identityRegistry.tokens = make(map[any]string)
}

// identityToken returns the per-instance token for v, minting one on first
// sight. v must be comparable (callers only pass pointers).
func identityToken(v any) string {
	identityRegistry.mu.RLock()
	tok, ok := identityRegistry.tokens[v]
	identityRegistry.mu.RUnlock()
	if ok {
		return tok
	}

	identityRegistry.mu.Lock()
	defer identityRegistry.mu.Unlock()
	if tok, ok := identityRegistry.tokens[v]; ok {
		return tok
	}
	tok = uuid.NewString()
	identityRegistry.tokens[v] = tok
	return tok
}
