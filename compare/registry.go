package compare

import "sync"

// registry holds the process-wide default comparers. Both are created
// lazily on first use and replaceable at runtime with last-writer-wins
// semantics. Collections resolve these defaults at call time, so replacing
// one changes the behaviour of every collection that did not pin its own
// comparer.
var registry struct {
	mu       sync.RWMutex
	equality EqualityComparer
	comparer Comparer
}

// Default returns the active process-wide [EqualityComparer], constructing
// a [DefaultEquality] on first use.
func Default() EqualityComparer {
	registry.mu.RLock()
	eq := registry.equality
	registry.mu.RUnlock()
	if eq != nil {
		return eq
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.equality == nil {
		registry.equality = DefaultEquality{}
	}
	return registry.equality
}

// SetDefault replaces the process-wide [EqualityComparer].
func SetDefault(eq EqualityComparer) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.equality = eq
}

// DefaultComparer returns the active process-wide [Comparer], constructing
// a [DefaultOrdering] on first use.
func DefaultComparer() Comparer {
	registry.mu.RLock()
	c := registry.comparer
	registry.mu.RUnlock()
	if c != nil {
		return c
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.comparer == nil {
		registry.comparer = DefaultOrdering{}
	}
	return registry.comparer
}

// SetDefaultComparer replaces the process-wide [Comparer].
func SetDefaultComparer(c Comparer) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.comparer = c
}

// ResetDefaults restores the built-in defaults.
// Intended for use in tests.
func ResetDefaults() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.equality = nil
	registry.comparer = nil
}
