package collections

import (
	"github.com/hasbyte1/go-value-collections/compare"
)

// Set is an insertion-ordered sequence that enforces element uniqueness
// through an injected [compare.EqualityComparer].
//
// Membership is decided by a linear scan with the comparer — not by hash
// buckets — because arbitrary equality is not guaranteed to partition
// elements into disjoint buckets. Pass nil as the comparer to resolve the
// process-wide default at call time.
type Set[T any] struct {
	seq *Sequence[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewSet creates a Set deduplicating items under eq. A nil eq resolves the
// process-wide default equality comparer at call time. Duplicates among the
// initial items are dropped in order, first occurrence winning.
func NewSet[T any](eq compare.EqualityComparer, items ...T) *Set[T] {
	s := &Set[T]{seq: EmptySequence[T]().UseEquality(eq)}
	s.AppendRange(items...)
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

// Add appends value and returns true, or returns false without mutation when
// an equal element already exists.
func (s *Set[T]) Add(value T) bool {
	if s.seq.Contains(value) {
		return false
	}
	s.seq.Push(value)
	return true
}

// AppendRange adds each item in order, skipping those already present, and
// returns the number actually added. Earlier items in the batch suppress
// later duplicates within the same batch.
func (s *Set[T]) AppendRange(items ...T) int {
	added := 0
	for _, item := range items {
		if s.Add(item) {
			added++
		}
	}
	return added
}

// InsertRange inserts the not-yet-present items, in order, before the
// normalized insertion point, returning the number actually inserted.
// The uniqueness check runs per item, so earlier items in the batch suppress
// later duplicates; items preceding a failure stay inserted.
func (s *Set[T]) InsertRange(index int, items ...T) (int, error) {
	pos, ok := s.seq.normalizeInsert(index)
	if !ok {
		return 0, s.seq.Insert(index) // surfaces ErrIndexOutOfRange
	}
	added := 0
	for _, item := range items {
		if s.seq.Contains(item) {
			continue
		}
		if err := s.seq.Insert(pos, item); err != nil {
			return added, err
		}
		pos++
		added++
	}
	return added, nil
}

// Remove deletes the element equal to value under the injected comparer,
// reporting whether a removal occurred.
func (s *Set[T]) Remove(value T) bool {
	return s.seq.Remove(value)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reads (delegated to the underlying sequence)
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements.
func (s *Set[T]) Count() int { return s.seq.Count() }

// IsEmpty reports whether the set contains no elements.
func (s *Set[T]) IsEmpty() bool { return s.seq.IsEmpty() }

// Contains reports whether an equal element exists.
func (s *Set[T]) Contains(value T) bool { return s.seq.Contains(value) }

// IndexOf returns the insertion-order index of the element equal to value,
// or -1.
func (s *Set[T]) IndexOf(value T) int { return s.seq.IndexOf(value) }

// Get returns the element at index together with a presence flag. Negative
// indices address from the end.
func (s *Set[T]) Get(index int) (T, bool) { return s.seq.Get(index) }

// At returns the element at index, or [ErrIndexOutOfRange].
func (s *Set[T]) At(index int) (T, error) { return s.seq.At(index) }

// Each calls fn(item, index) for every element in insertion order.
func (s *Set[T]) Each(fn func(T, int)) { s.seq.Each(fn) }

// All returns the elements as a fresh slice, in insertion order.
func (s *Set[T]) All() []T { return s.seq.All() }

// ToSlice is an alias for [Set.All].
func (s *Set[T]) ToSlice() []T { return s.seq.All() }

// AsSequence returns a mutable copy of the elements as a plain sequence.
// Mutating the copy does not affect the set.
func (s *Set[T]) AsSequence() *Sequence[T] {
	return s.seq.derive(s.seq.All())
}

// AsReadonly returns a materialized read-only snapshot of the set.
func (s *Set[T]) AsReadonly() *ReadonlySequence[T] {
	return s.seq.AsReadonly()
}

// String returns a JSON representation of the elements.
func (s *Set[T]) String() string { return s.seq.String() }
