package collections

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hasbyte1/go-value-collections/compare"
)

// DuplicateKeyPolicy selects what a map does when an insertion targets an
// already-occupied key. It is the one piece of externally visible
// configuration, fixed at construction and overridable per insertion via
// [Map.SetWith].
type DuplicateKeyPolicy int

const (
	// FailOnDuplicate rejects the insertion with [ErrDuplicateKey].
	FailOnDuplicate DuplicateKeyPolicy = iota

	// IgnoreDuplicate silently keeps the first value inserted.
	IgnoreDuplicate

	// OverwriteDuplicate replaces the existing value while preserving the
	// key's original insertion position.
	OverwriteDuplicate
)

// String returns the policy name.
func (p DuplicateKeyPolicy) String() string {
	switch p {
	case FailOnDuplicate:
		return "FailOnDuplicate"
	case IgnoreDuplicate:
		return "IgnoreDuplicate"
	case OverwriteDuplicate:
		return "OverwriteDuplicate"
	}
	return fmt.Sprintf("DuplicateKeyPolicy(%d)", int(p))
}

// keyIndex is the storage layer shared by [MutableMap] and [ReadonlyMap]: an
// insertion-ordered entry list preserving the original keys, plus buckets
// keyed by the hash-derived storage slot.
//
// While every key seen so far is native — its slot is the key itself, an
// integer whose slot equals its value or a string that does not fold to an
// integer — a slot match alone identifies the key, and lookups skip the
// equality scan. Once any key needs the hashing indirection, bucket
// candidates are confirmed with a full Equals check, since two non-equal
// keys may share a slot.
type keyIndex[K, V any] struct {
	entries  []Entry[K, V]
	buckets  map[compare.Slot][]int
	indirect bool
}

func newKeyIndex[K, V any]() *keyIndex[K, V] {
	return &keyIndex[K, V]{buckets: make(map[compare.Slot][]int)}
}

// nativeKey reports whether key already is its own storage slot.
func nativeKey(key, slot any) bool {
	switch k := key.(type) {
	case string:
		s, ok := slot.(string)
		return ok && s == k
	case int:
		n, ok := slot.(int64)
		return ok && n == int64(k)
	case int64:
		n, ok := slot.(int64)
		return ok && n == k
	}
	return false
}

// lookup returns the entry position for key, or -1, along with the key's
// slot. Only the hash can fail.
func (x *keyIndex[K, V]) lookup(eq compare.EqualityComparer, key K) (int, compare.Slot, error) {
	slot, err := eq.Hash(key)
	if err != nil {
		return -1, nil, err
	}
	// The slot alone identifies the entry only when both the stored keys and
	// the probe key are native; a non-native probe (say 5.9 folding to slot
	// 5) still needs the equality scan.
	trust := !x.indirect && nativeKey(any(key), slot)
	for _, pos := range x.buckets[slot] {
		if trust || eq.Equals(any(x.entries[pos].Key), any(key)) {
			return pos, slot, nil
		}
	}
	return -1, slot, nil
}

// insert applies policy and stores the pair. The original key is kept so
// iteration can recover it.
func (x *keyIndex[K, V]) insert(eq compare.EqualityComparer, key K, value V, policy DuplicateKeyPolicy) error {
	pos, slot, err := x.lookup(eq, key)
	if err != nil {
		return err
	}
	if pos >= 0 {
		switch policy {
		case IgnoreDuplicate:
			return nil
		case OverwriteDuplicate:
			x.entries[pos].Value = value
			return nil
		default:
			return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
		}
	}
	x.entries = append(x.entries, Entry[K, V]{Key: key, Value: value})
	x.buckets[slot] = append(x.buckets[slot], len(x.entries)-1)
	if !x.indirect && !nativeKey(any(key), slot) {
		x.indirect = true
	}
	return nil
}

// remove deletes the entry for key, reporting whether a removal occurred.
func (x *keyIndex[K, V]) remove(eq compare.EqualityComparer, key K) (bool, error) {
	pos, slot, err := x.lookup(eq, key)
	if err != nil {
		return false, err
	}
	if pos < 0 {
		return false, nil
	}
	x.entries = append(x.entries[:pos], x.entries[pos+1:]...)

	// Drop the bucket reference and shift the positions after the hole.
	bucket := x.buckets[slot][:0]
	for _, p := range x.buckets[slot] {
		if p != pos {
			bucket = append(bucket, p)
		}
	}
	if len(bucket) == 0 {
		delete(x.buckets, slot)
	} else {
		x.buckets[slot] = bucket
	}
	for s, b := range x.buckets {
		for i, p := range b {
			if p > pos {
				b[i] = p - 1
			}
		}
		x.buckets[s] = b
	}
	return true, nil
}

// clone returns a deep copy of the index.
func (x *keyIndex[K, V]) clone() *keyIndex[K, V] {
	cp := &keyIndex[K, V]{
		entries:  make([]Entry[K, V], len(x.entries)),
		buckets:  make(map[compare.Slot][]int, len(x.buckets)),
		indirect: x.indirect,
	}
	copy(cp.entries, x.entries)
	for slot, b := range x.buckets {
		cp.buckets[slot] = append([]int(nil), b...)
	}
	return cp
}

// MutableMap is a mutable key/value container whose storage is addressed by the
// int-or-string slot the active [compare.EqualityComparer] hashes each key
// to. Logical keys may be arbitrary values; the original key is preserved
// next to its storage slot and recovered on iteration, which runs in
// insertion order.
//
// The configured [DuplicateKeyPolicy] is applied on every mutating insert.
// Note that key equality follows the comparer, so under the defaults the
// keys 5 and "5" address the same entry.
type MutableMap[K, V any] struct {
	idx    *keyIndex[K, V]
	policy DuplicateKeyPolicy
	eq     compare.EqualityComparer
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewMap creates an empty Map with the given duplicate-key policy. An
// optional equality comparer pins key hashing and comparison; omitted, the
// process-wide default is resolved at call time.
func NewMap[K, V any](policy DuplicateKeyPolicy, eq ...compare.EqualityComparer) *MutableMap[K, V] {
	m := &MutableMap[K, V]{idx: newKeyIndex[K, V](), policy: policy}
	if len(eq) > 0 {
		m.eq = eq[0]
	}
	return m
}

// MapOf creates a Map from initial entries, applying the duplicate-key
// policy during construction.
func MapOf[K, V any](policy DuplicateKeyPolicy, entries ...Entry[K, V]) (*MutableMap[K, V], error) {
	m := NewMap[K, V](policy)
	for _, e := range entries {
		if err := m.Set(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *MutableMap[K, V]) equality() compare.EqualityComparer {
	if m.eq != nil {
		return m.eq
	}
	return compare.Default()
}

// Policy returns the map's duplicate-key policy.
func (m *MutableMap[K, V]) Policy() DuplicateKeyPolicy { return m.policy }

// ─────────────────────────────────────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of entries.
func (m *MutableMap[K, V]) Count() int { return len(m.idx.entries) }

// IsEmpty reports whether the map contains no entries.
func (m *MutableMap[K, V]) IsEmpty() bool { return len(m.idx.entries) == 0 }

// Get returns the value stored under key, or [ErrKeyNotFound].
func (m *MutableMap[K, V]) Get(key K) (V, error) {
	var zero V
	pos, _, err := m.idx.lookup(m.equality(), key)
	if err != nil {
		return zero, err
	}
	if pos < 0 {
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return m.idx.entries[pos].Value, nil
}

// TryGet returns the value stored under key, or def when the key is absent
// or cannot be hashed. It never fails.
func (m *MutableMap[K, V]) TryGet(key K, def V) V {
	pos, _, err := m.idx.lookup(m.equality(), key)
	if err != nil || pos < 0 {
		return def
	}
	return m.idx.entries[pos].Value
}

// HasKey reports whether key is present. Only the hash can fail.
func (m *MutableMap[K, V]) HasKey(key K) (bool, error) {
	pos, _, err := m.idx.lookup(m.equality(), key)
	if err != nil {
		return false, err
	}
	return pos >= 0, nil
}

// Keys returns the original keys in insertion order.
func (m *MutableMap[K, V]) Keys() []K {
	out := make([]K, len(m.idx.entries))
	for i, e := range m.idx.entries {
		out[i] = e.Key
	}
	return out
}

// Values returns the values in insertion order.
func (m *MutableMap[K, V]) Values() []V {
	out := make([]V, len(m.idx.entries))
	for i, e := range m.idx.entries {
		out[i] = e.Value
	}
	return out
}

// Entries returns a copy of the entries in insertion order.
func (m *MutableMap[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(m.idx.entries))
	copy(out, m.idx.entries)
	return out
}

// Each calls fn(key, value) for every entry in insertion order until fn
// returns false.
func (m *MutableMap[K, V]) Each(fn func(K, V) bool) {
	for _, e := range m.idx.entries {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// All returns an insertion-ordered iterator over (original key, value)
// pairs, for use with range.
func (m *MutableMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.idx.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// String returns a human-readable representation in insertion order.
func (m *MutableMap[K, V]) String() string {
	parts := make([]string, len(m.idx.entries))
	for i, e := range m.idx.entries {
		parts[i] = fmt.Sprintf("%v: %v", e.Key, e.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value under key, applying the map's duplicate-key policy when
// the key is already present. Nothing is mutated on failure.
func (m *MutableMap[K, V]) Set(key K, value V) error {
	return m.idx.insert(m.equality(), key, value, m.policy)
}

// Add is an alias for [Map.Set].
func (m *MutableMap[K, V]) Add(key K, value V) error { return m.Set(key, value) }

// SetWith stores value under key with a per-insertion policy override.
func (m *MutableMap[K, V]) SetWith(key K, value V, policy DuplicateKeyPolicy) error {
	return m.idx.insert(m.equality(), key, value, policy)
}

// Remove deletes the entry for key, reporting whether a removal occurred.
// Only the hash can fail.
func (m *MutableMap[K, V]) Remove(key K) (bool, error) {
	return m.idx.remove(m.equality(), key)
}

// ─────────────────────────────────────────────────────────────────────────────
// Read-only view
// ─────────────────────────────────────────────────────────────────────────────

// AsReadonly returns a materialized read-only snapshot of the map.
// Later mutations of m are not reflected in the snapshot.
func (m *MutableMap[K, V]) AsReadonly() *ReadonlyMap[K, V] {
	return &ReadonlyMap[K, V]{idx: m.idx.clone(), policy: m.policy, eq: m.eq}
}
