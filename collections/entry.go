package collections

import "fmt"

// Entry holds one key/value pair. It is the element type of map iteration
// and of the sequences produced by [Zip].
type Entry[K, V any] struct {
	Key   K
	Value V
}

// E is a shorthand constructor for an [Entry].
func E[K, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// String returns a human-readable representation: "(key, value)".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Key, e.Value)
}
