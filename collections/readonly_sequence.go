package collections

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-value-collections/compare"
)

// ReadonlySequence is an immutable view over either a materialized slice or
// a restartable lazy source.
//
// The lazy form wraps an [iter.Seq]; ranging over an iter.Seq restarts it,
// which is exactly the restartability the unfrozen read path relies on.
// A sequence built from a single-use cursor disguised as an iter.Seq is a
// usage error this type does not defend against.
//
// While unfrozen, every read re-drives the source from the start:
// [ReadonlySequence.Count] is O(n), [ReadonlySequence.Get] with a
// non-negative index materializes just far enough to reach it, and a
// negative index first needs a full pass to learn the length. [Freeze]
// performs one full pass, captures the values and discards the source
// permanently; afterwards the behaviour is identical to the slice-backed
// form. Freeze is idempotent.
type ReadonlySequence[T any] struct {
	items  []T
	source iter.Seq[T] // nil once materialized
	eq     compare.EqualityComparer
	cmp    compare.Comparer
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// ReadonlySequenceOf creates a materialized read-only sequence from a
// variadic list of items (copied).
func ReadonlySequenceOf[T any](items ...T) *ReadonlySequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &ReadonlySequence[T]{items: dst}
}

// ReadonlySequenceFrom creates a materialized read-only sequence from a
// slice (the slice is copied).
func ReadonlySequenceFrom[T any](items []T) *ReadonlySequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &ReadonlySequence[T]{items: dst}
}

// LazySequence creates a read-only sequence over a restartable source.
// The source must yield the same elements on every restart; a single-use
// cursor is a usage error (documented precondition, not checked).
func LazySequence[T any](source iter.Seq[T]) *ReadonlySequence[T] {
	return &ReadonlySequence[T]{source: source}
}

// UseEquality pins eq as the equality comparer consulted by value-based
// reads and returns r for chaining.
func (r *ReadonlySequence[T]) UseEquality(eq compare.EqualityComparer) *ReadonlySequence[T] {
	r.eq = eq
	return r
}

// UseComparer pins c as the ordering comparer and returns r for chaining.
func (r *ReadonlySequence[T]) UseComparer(c compare.Comparer) *ReadonlySequence[T] {
	r.cmp = c
	return r
}

func (r *ReadonlySequence[T]) equality() compare.EqualityComparer {
	if r.eq != nil {
		return r.eq
	}
	return compare.Default()
}

// ─────────────────────────────────────────────────────────────────────────────
// Freezing
// ─────────────────────────────────────────────────────────────────────────────

// Frozen reports whether the sequence owns a materialized snapshot.
// Slice-backed sequences are born frozen.
func (r *ReadonlySequence[T]) Frozen() bool { return r.source == nil }

// Freeze drives the lazy source once, captures all values and discards the
// source permanently. Calling Freeze on an already-frozen sequence is a
// no-op.
func (r *ReadonlySequence[T]) Freeze() {
	if r.source == nil {
		return
	}
	items := []T{}
	for v := range r.source {
		items = append(items, v)
	}
	r.items = items
	r.source = nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of items. Unfrozen, this is a full pass over the
// source.
func (r *ReadonlySequence[T]) Count() int {
	if r.source == nil {
		return len(r.items)
	}
	n := 0
	for range r.source {
		n++
	}
	return n
}

// IsEmpty reports whether the sequence contains no items.
func (r *ReadonlySequence[T]) IsEmpty() bool {
	if r.source == nil {
		return len(r.items) == 0
	}
	for range r.source {
		return false
	}
	return true
}

// Get returns the item at index together with a presence flag. Negative
// indices address from the end; on an unfrozen sequence they force a full
// pass to learn the length first.
func (r *ReadonlySequence[T]) Get(index int) (T, bool) {
	var zero T
	if r.source == nil {
		if index < 0 {
			index += len(r.items)
		}
		if index < 0 || index >= len(r.items) {
			return zero, false
		}
		return r.items[index], true
	}
	if index < 0 {
		index += r.Count()
		if index < 0 {
			return zero, false
		}
	}
	i := 0
	for v := range r.source {
		if i == index {
			return v, true
		}
		i++
	}
	return zero, false
}

// At returns the item at index, normalizing negative indices, or
// [ErrIndexOutOfRange].
func (r *ReadonlySequence[T]) At(index int) (T, error) {
	v, ok := r.Get(index)
	if !ok {
		return v, fmt.Errorf("%w: index %d", ErrIndexOutOfRange, index)
	}
	return v, nil
}

// First returns the first item together with a presence flag.
func (r *ReadonlySequence[T]) First() (T, bool) { return r.Get(0) }

// Last returns the last item together with a presence flag.
func (r *ReadonlySequence[T]) Last() (T, bool) { return r.Get(-1) }

// IndexOf returns the index of the first item equal to value under the
// active equality comparer, or -1.
func (r *ReadonlySequence[T]) IndexOf(value T) int {
	eq := r.equality()
	if r.source == nil {
		for i, item := range r.items {
			if eq.Equals(item, value) {
				return i
			}
		}
		return -1
	}
	i := 0
	for v := range r.source {
		if eq.Equals(v, value) {
			return i
		}
		i++
	}
	return -1
}

// Contains reports whether the sequence holds an item equal to value under
// the active equality comparer.
func (r *ReadonlySequence[T]) Contains(value T) bool {
	return r.IndexOf(value) >= 0
}

// Each calls fn(item, index) for every item, re-driving the source when
// unfrozen. fn returning false stops the walk.
func (r *ReadonlySequence[T]) Each(fn func(T, int) bool) {
	if r.source == nil {
		for i, item := range r.items {
			if !fn(item, i) {
				return
			}
		}
		return
	}
	i := 0
	for v := range r.source {
		if !fn(v, i) {
			return
		}
		i++
	}
}

// All returns every item as a fresh slice. Unfrozen, this drives the source
// once without memoizing — use [ReadonlySequence.Freeze] to pay that cost
// only once.
func (r *ReadonlySequence[T]) All() []T {
	if r.source == nil {
		out := make([]T, len(r.items))
		copy(out, r.items)
		return out
	}
	out := []T{}
	for v := range r.source {
		out = append(out, v)
	}
	return out
}

// ToSlice is an alias for [ReadonlySequence.All].
func (r *ReadonlySequence[T]) ToSlice() []T { return r.All() }

// String returns a representation of the current contents.
func (r *ReadonlySequence[T]) String() string {
	return fmt.Sprintf("%v", r.All())
}
