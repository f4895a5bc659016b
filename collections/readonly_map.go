package collections

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-value-collections/compare"
)

// ReadonlyMap is an immutable key/value view over either a materialized
// index or a restartable lazy source of pairs.
//
// The lazy form wraps an [iter.Seq2]; ranging over it restarts it, which is
// the restartability the unfrozen read path relies on. A map built from a
// single-use cursor disguised as an iter.Seq2 is a usage error this type
// does not defend against.
//
// While unfrozen, every read re-drives the source and re-applies the
// duplicate-key policy during that pass, so reads carry an error result: a
// policy violation is detected — once per pass — only when an operation
// actually drives the iterator. [ReadonlyMap.Freeze] validates exactly once
// and memoizes the index (including the all-keys-native fast-path flag);
// afterwards reads can no longer fail with policy errors.
type ReadonlyMap[K, V any] struct {
	idx    *keyIndex[K, V] // nil until frozen
	source iter.Seq2[K, V]
	policy DuplicateKeyPolicy
	eq     compare.EqualityComparer
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// ReadonlyMapOf creates a materialized read-only map from initial entries,
// applying the duplicate-key policy during construction.
func ReadonlyMapOf[K, V any](policy DuplicateKeyPolicy, entries ...Entry[K, V]) (*ReadonlyMap[K, V], error) {
	m, err := MapOf(policy, entries...)
	if err != nil {
		return nil, err
	}
	return m.AsReadonly(), nil
}

// LazyMap creates a read-only map over a restartable source of pairs.
// The source must yield the same pairs on every restart; a single-use cursor
// is a usage error (documented precondition, not checked).
func LazyMap[K, V any](source iter.Seq2[K, V], policy DuplicateKeyPolicy) *ReadonlyMap[K, V] {
	return &ReadonlyMap[K, V]{source: source, policy: policy}
}

// UseEquality pins eq as the map's equality comparer and returns r for
// chaining.
func (r *ReadonlyMap[K, V]) UseEquality(eq compare.EqualityComparer) *ReadonlyMap[K, V] {
	r.eq = eq
	return r
}

func (r *ReadonlyMap[K, V]) equality() compare.EqualityComparer {
	if r.eq != nil {
		return r.eq
	}
	return compare.Default()
}

// Policy returns the map's duplicate-key policy.
func (r *ReadonlyMap[K, V]) Policy() DuplicateKeyPolicy { return r.policy }

// ─────────────────────────────────────────────────────────────────────────────
// Freezing
// ─────────────────────────────────────────────────────────────────────────────

// Frozen reports whether the map owns a materialized index. Maps built from
// concrete entries are born frozen.
func (r *ReadonlyMap[K, V]) Frozen() bool { return r.idx != nil }

// Freeze drives the lazy source once, validates the duplicate-key policy,
// memoizes the resulting index and discards the source permanently. Calling
// Freeze on an already-frozen map is a no-op.
func (r *ReadonlyMap[K, V]) Freeze() error {
	if r.idx != nil {
		return nil
	}
	idx, err := r.build()
	if err != nil {
		return err
	}
	r.idx = idx
	r.source = nil
	return nil
}

// build drives the source into a fresh index, applying the policy.
func (r *ReadonlyMap[K, V]) build() (*keyIndex[K, V], error) {
	idx := newKeyIndex[K, V]()
	eq := r.equality()
	var insertErr error
	for k, v := range r.source {
		if insertErr = idx.insert(eq, k, v, r.policy); insertErr != nil {
			break
		}
	}
	if insertErr != nil {
		return nil, insertErr
	}
	return idx, nil
}

// index returns the memoized index, or a transient one built by driving the
// source for this single read.
func (r *ReadonlyMap[K, V]) index() (*keyIndex[K, V], error) {
	if r.idx != nil {
		return r.idx, nil
	}
	return r.build()
}

// ─────────────────────────────────────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of entries. Unfrozen, this drives the source and
// may surface a policy violation.
func (r *ReadonlyMap[K, V]) Count() (int, error) {
	idx, err := r.index()
	if err != nil {
		return 0, err
	}
	return len(idx.entries), nil
}

// Get returns the value stored under key. Absence fails with
// [ErrKeyNotFound]; on an unfrozen map a policy violation in the source
// surfaces here too.
func (r *ReadonlyMap[K, V]) Get(key K) (V, error) {
	var zero V
	idx, err := r.index()
	if err != nil {
		return zero, err
	}
	pos, _, err := idx.lookup(r.equality(), key)
	if err != nil {
		return zero, err
	}
	if pos < 0 {
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return idx.entries[pos].Value, nil
}

// TryGet returns the value stored under key, or def when the key is absent
// or cannot be hashed. The error reports source/policy failures only, never
// absence.
func (r *ReadonlyMap[K, V]) TryGet(key K, def V) (V, error) {
	idx, err := r.index()
	if err != nil {
		return def, err
	}
	pos, _, err := idx.lookup(r.equality(), key)
	if err != nil || pos < 0 {
		return def, nil
	}
	return idx.entries[pos].Value, nil
}

// HasKey reports whether key is present.
func (r *ReadonlyMap[K, V]) HasKey(key K) (bool, error) {
	idx, err := r.index()
	if err != nil {
		return false, err
	}
	pos, _, err := idx.lookup(r.equality(), key)
	if err != nil {
		return false, err
	}
	return pos >= 0, nil
}

// Keys returns the original keys in insertion order.
func (r *ReadonlyMap[K, V]) Keys() ([]K, error) {
	idx, err := r.index()
	if err != nil {
		return nil, err
	}
	out := make([]K, len(idx.entries))
	for i, e := range idx.entries {
		out[i] = e.Key
	}
	return out, nil
}

// Values returns the values in insertion order.
func (r *ReadonlyMap[K, V]) Values() ([]V, error) {
	idx, err := r.index()
	if err != nil {
		return nil, err
	}
	out := make([]V, len(idx.entries))
	for i, e := range idx.entries {
		out[i] = e.Value
	}
	return out, nil
}

// Entries returns a copy of the entries in insertion order.
func (r *ReadonlyMap[K, V]) Entries() ([]Entry[K, V], error) {
	idx, err := r.index()
	if err != nil {
		return nil, err
	}
	out := make([]Entry[K, V], len(idx.entries))
	copy(out, idx.entries)
	return out, nil
}

// Each calls fn(key, value) for every entry in insertion order until fn
// returns false.
func (r *ReadonlyMap[K, V]) Each(fn func(K, V) bool) error {
	idx, err := r.index()
	if err != nil {
		return err
	}
	for _, e := range idx.entries {
		if !fn(e.Key, e.Value) {
			return nil
		}
	}
	return nil
}
