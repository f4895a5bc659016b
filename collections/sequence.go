package collections

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/hasbyte1/go-value-collections/compare"
)

// Sequence is a generic, ordered, zero-based container mutated in place.
//
// Indices are always contiguous 0 … Count()-1. Every accessor normalizes a
// negative index by adding Count() before bounds-checking, so -1 addresses
// the last element:
//
//	s := collections.NewSequence(10, 20, 30)
//	v, _ := s.At(-1) // 30
//
// Value-based operations ([Sequence.Contains], [Sequence.IndexOf],
// [Sequence.Distinct], [Sequence.Remove]) consult an
// [compare.EqualityComparer]; ordering operations ([Sequence.Sort],
// [Sequence.BinarySearch]) consult a [compare.Comparer]. A sequence that was
// not handed its own comparer via [Sequence.UseEquality] /
// [Sequence.UseComparer] resolves the process-wide default at call time, so
// replacing the default with [compare.SetDefault] changes the behaviour of
// existing unpinned sequences.
//
// Mutators ([Sequence.Push], [Sequence.Insert], [Sequence.Splice],
// [Sequence.Sort], [Sequence.Reverse], …) change the receiver; queries and
// transforms ([Sequence.Filter], [Sequence.Slice], [Sequence.Distinct], …)
// return a new sequence and leave the receiver untouched.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the element type are package-level functions:
// [Map], [FlatMap], [Reduce], [Pluck], [GroupBy], [KeyBy], [Zip],
// [Collapse].
type Sequence[T any] struct {
	items []T
	eq    compare.EqualityComparer
	cmp   compare.Comparer
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewSequence creates a Sequence from a variadic list of items (copied).
func NewSequence[T any](items ...T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst}
}

// SequenceFrom creates a Sequence from a slice (the slice is copied).
func SequenceFrom[T any](items []T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst}
}

// EmptySequence creates an empty Sequence of type T.
func EmptySequence[T any]() *Sequence[T] {
	return &Sequence[T]{items: []T{}}
}

// UseEquality pins eq as the sequence's equality comparer and returns s for
// chaining. Passing nil unpins, restoring the call-time registry fallback.
func (s *Sequence[T]) UseEquality(eq compare.EqualityComparer) *Sequence[T] {
	s.eq = eq
	return s
}

// UseComparer pins c as the sequence's ordering comparer and returns s for
// chaining. Passing nil unpins, restoring the call-time registry fallback.
func (s *Sequence[T]) UseComparer(c compare.Comparer) *Sequence[T] {
	s.cmp = c
	return s
}

func (s *Sequence[T]) equality() compare.EqualityComparer {
	if s.eq != nil {
		return s.eq
	}
	return compare.Default()
}

func (s *Sequence[T]) comparer() compare.Comparer {
	if s.cmp != nil {
		return s.cmp
	}
	return compare.DefaultComparer()
}

// derive builds an empty sequence carrying the receiver's pinned comparers.
func (s *Sequence[T]) derive(items []T) *Sequence[T] {
	return &Sequence[T]{items: items, eq: s.eq, cmp: s.cmp}
}

// ─────────────────────────────────────────────────────────────────────────────
// Index normalization
// ─────────────────────────────────────────────────────────────────────────────

// normalize maps a possibly-negative element index onto [0, Count()).
func (s *Sequence[T]) normalize(i int) (int, bool) {
	if i < 0 {
		i += len(s.items)
	}
	return i, i >= 0 && i < len(s.items)
}

// normalizeInsert maps a possibly-negative insertion point onto [0, Count()].
func (s *Sequence[T]) normalizeInsert(i int) (int, bool) {
	if i < 0 {
		i += len(s.items)
	}
	return i, i >= 0 && i <= len(s.items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of items in the sequence.
func (s *Sequence[T]) Count() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no items.
func (s *Sequence[T]) IsEmpty() bool { return len(s.items) == 0 }

// IsNotEmpty reports whether the sequence has at least one item.
func (s *Sequence[T]) IsNotEmpty() bool { return len(s.items) > 0 }

// All returns a copy of the underlying slice.
func (s *Sequence[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// ToSlice is an alias for [Sequence.All].
func (s *Sequence[T]) ToSlice() []T { return s.All() }

// ToJSON serialises the sequence items to a JSON array.
func (s *Sequence[T]) ToJSON() ([]byte, error) {
	return json.Marshal(s.items)
}

// String returns a JSON representation of the sequence.
// It implements [fmt.Stringer].
func (s *Sequence[T]) String() string {
	b, err := s.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.items)
	}
	return string(b)
}

// Get returns the item at index together with a presence flag. Negative
// indices address from the end.
func (s *Sequence[T]) Get(index int) (T, bool) {
	var zero T
	i, ok := s.normalize(index)
	if !ok {
		return zero, false
	}
	return s.items[i], true
}

// At returns the item at index, normalizing negative indices, or
// [ErrIndexOutOfRange] when index falls outside [-Count(), Count()).
func (s *Sequence[T]) At(index int) (T, error) {
	var zero T
	i, ok := s.normalize(index)
	if !ok {
		return zero, fmt.Errorf("%w: index %d with count %d", ErrIndexOutOfRange, index, len(s.items))
	}
	return s.items[i], nil
}

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the sequence is empty or no item
// satisfies the predicate.
func (s *Sequence[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range s.items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[0], true
}

// Last returns the last item, optionally matching fns[0].
// Returns the zero value and false when the sequence is empty or no item
// satisfies the predicate.
func (s *Sequence[T]) Last(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for i := len(s.items) - 1; i >= 0; i-- {
			if fns[0](s.items[i]) {
				return s.items[i], true
			}
		}
		return zero, false
	}
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Each calls fn(item, index) for every item.
func (s *Sequence[T]) Each(fn func(T, int)) {
	for i, item := range s.items {
		fn(item, i)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// forwardStart normalizes an optional search cursor for forward scans.
// A negative cursor counts from the end; a cursor normalizing below zero is
// clamped to the first element.
func (s *Sequence[T]) forwardStart(from []int) int {
	if len(from) == 0 {
		return 0
	}
	start := from[0]
	if start < 0 {
		start += len(s.items)
	}
	if start < 0 {
		start = 0
	}
	return start
}

// backwardStart normalizes an optional search cursor for backward scans.
// A cursor past the end is clamped to the last element.
func (s *Sequence[T]) backwardStart(from []int) int {
	if len(from) == 0 {
		return len(s.items) - 1
	}
	start := from[0]
	if start < 0 {
		start += len(s.items)
	}
	if start >= len(s.items) {
		start = len(s.items) - 1
	}
	return start
}

// IndexOf returns the index of the first item equal to value under the
// active equality comparer, or -1. The optional from cursor bounds the
// forward scan; negative cursors count from the end, so IndexOf(v, -1)
// inspects only the last element.
func (s *Sequence[T]) IndexOf(value T, from ...int) int {
	eq := s.equality()
	for i := s.forwardStart(from); i < len(s.items); i++ {
		if eq.Equals(s.items[i], value) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last item equal to value under the
// active equality comparer, or -1. The optional from cursor is where the
// backward scan starts.
func (s *Sequence[T]) LastIndexOf(value T, from ...int) int {
	eq := s.equality()
	for i := s.backwardStart(from); i >= 0; i-- {
		if eq.Equals(s.items[i], value) {
			return i
		}
	}
	return -1
}

// FindIndex returns the index of the first item satisfying fn, scanning
// forward from the optional normalized cursor, or -1.
func (s *Sequence[T]) FindIndex(fn func(T) bool, from ...int) int {
	for i := s.forwardStart(from); i < len(s.items); i++ {
		if fn(s.items[i]) {
			return i
		}
	}
	return -1
}

// Find returns the first item satisfying fn, scanning forward from the
// optional normalized cursor.
func (s *Sequence[T]) Find(fn func(T) bool, from ...int) (T, bool) {
	var zero T
	i := s.FindIndex(fn, from...)
	if i < 0 {
		return zero, false
	}
	return s.items[i], true
}

// FindLastIndex returns the index of the last item satisfying fn, scanning
// backward from the optional normalized cursor, or -1.
func (s *Sequence[T]) FindLastIndex(fn func(T) bool, from ...int) int {
	for i := s.backwardStart(from); i >= 0; i-- {
		if fn(s.items[i]) {
			return i
		}
	}
	return -1
}

// FindLast returns the last item satisfying fn, scanning backward from the
// optional normalized cursor.
func (s *Sequence[T]) FindLast(fn func(T) bool, from ...int) (T, bool) {
	var zero T
	i := s.FindLastIndex(fn, from...)
	if i < 0 {
		return zero, false
	}
	return s.items[i], true
}

// Contains reports whether the sequence holds an item equal to value under
// the active equality comparer.
func (s *Sequence[T]) Contains(value T) bool {
	return s.IndexOf(value) >= 0
}

// ContainsFunc reports whether at least one item satisfies fn.
func (s *Sequence[T]) ContainsFunc(fn func(T) bool) bool {
	return s.FindIndex(fn) >= 0
}

// BinarySearch locates value in a sequence the caller guarantees to be
// sorted under the given comparer (the active one when omitted). Returns the
// index of an equivalent item or -1. The result is undefined on an unsorted
// sequence.
func (s *Sequence[T]) BinarySearch(value T, cmp ...compare.Comparer) (int, error) {
	c := s.comparer()
	if len(cmp) > 0 && cmp[0] != nil {
		c = cmp[0]
	}
	lo, hi := 0, len(s.items)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		r, err := c.Compare(s.items[mid], value)
		if err != nil {
			return -1, err
		}
		switch {
		case r < 0:
			lo = mid + 1
		case r > 0:
			hi = mid - 1
		default:
			return mid, nil
		}
	}
	return -1, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving, non-mutating)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new sequence with only the items for which fn(item, index)
// returns true.
func (s *Sequence[T]) Filter(fn func(T, int) bool) *Sequence[T] {
	out := make([]T, 0, len(s.items))
	for i, item := range s.items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return s.derive(out)
}

// Where is an alias for [Sequence.Filter].
func (s *Sequence[T]) Where(fn func(T, int) bool) *Sequence[T] {
	return s.Filter(fn)
}

// Reject returns a new sequence with items for which fn returns true removed.
// It is the complement of [Sequence.Filter].
func (s *Sequence[T]) Reject(fn func(T, int) bool) *Sequence[T] {
	return s.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// MapAny returns a new Sequence[any] with each item transformed by
// fn(item, index).
//
// For type-safe transformation to a concrete type U, use the package-level
// [Map] function instead.
func (s *Sequence[T]) MapAny(fn func(T, int) any) *Sequence[any] {
	out := make([]any, len(s.items))
	for i, item := range s.items {
		out[i] = fn(item, i)
	}
	return &Sequence[any]{items: out}
}

// Reduce reduces the sequence to a single value of the same type T.
//
// For reductions that change the type (T → U where T ≠ U), use the
// package-level [Reduce] function.
func (s *Sequence[T]) Reduce(fn func(carry, item T) T, initial T) T {
	result := initial
	for _, item := range s.items {
		result = fn(result, item)
	}
	return result
}

// Distinct returns a new sequence with duplicates removed under the given
// equality comparer (the active one when omitted).
//
// The scan is intentionally pairwise — O(n²) — rather than hash-bucketed:
// an arbitrary equality comparer is not guaranteed to partition values into
// disjoint hash buckets, so every kept item is checked directly.
func (s *Sequence[T]) Distinct(eq ...compare.EqualityComparer) *Sequence[T] {
	e := s.equality()
	if len(eq) > 0 && eq[0] != nil {
		e = eq[0]
	}
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		dup := false
		for _, kept := range out {
			if e.Equals(kept, item) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, item)
		}
	}
	return s.derive(out)
}

// Slice returns up to length items starting at offset. A negative offset
// counts from the end; an offset outside [-Count(), Count()] fails with
// [ErrIndexOutOfRange] and a negative length with [ErrInvalidArgument].
// Fewer than length items remain when the range runs past the end.
func (s *Sequence[T]) Slice(offset, length int) (*Sequence[T], error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, length)
	}
	start, ok := s.normalizeInsert(offset)
	if !ok {
		return nil, fmt.Errorf("%w: offset %d with count %d", ErrIndexOutOfRange, offset, len(s.items))
	}
	end := start + length
	if end > len(s.items) {
		end = len(s.items)
	}
	out := make([]T, end-start)
	copy(out, s.items[start:end])
	return s.derive(out), nil
}

// Take returns at most n items from the start.
// A negative n returns items from the end (e.g. Take(-3) ≡ last 3 items).
func (s *Sequence[T]) Take(n int) *Sequence[T] {
	total := len(s.items)
	if n < 0 {
		start := total + n
		if start < 0 {
			start = 0
		}
		out := make([]T, total-start)
		copy(out, s.items[start:])
		return s.derive(out)
	}
	if n > total {
		n = total
	}
	out := make([]T, n)
	copy(out, s.items[:n])
	return s.derive(out)
}

// Skip returns a new sequence without the first n items.
// A negative n skips items counted from the end.
func (s *Sequence[T]) Skip(n int) *Sequence[T] {
	total := len(s.items)
	if n < 0 {
		end := total + n
		if end < 0 {
			end = 0
		}
		out := make([]T, end)
		copy(out, s.items[:end])
		return s.derive(out)
	}
	if n >= total {
		return s.derive([]T{})
	}
	out := make([]T, total-n)
	copy(out, s.items[n:])
	return s.derive(out)
}

// Chunk splits the sequence into consecutive groups of size. The final group
// may contain fewer than size items. A size below one fails with
// [ErrInvalidArgument].
func (s *Sequence[T]) Chunk(size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size %d", ErrInvalidArgument, size)
	}
	chunks := make([][]T, 0, (len(s.items)+size-1)/size)
	for i := 0; i < len(s.items); i += size {
		end := i + size
		if end > len(s.items) {
			end = len(s.items)
		}
		chunk := make([]T, end-i)
		copy(chunk, s.items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// Reversed returns a new sequence with items in reversed order, leaving the
// receiver untouched.
func (s *Sequence[T]) Reversed() *Sequence[T] {
	n := len(s.items)
	out := make([]T, n)
	for i, item := range s.items {
		out[n-1-i] = item
	}
	return s.derive(out)
}

// Implode joins all items into a string using sep, converting each item
// with fn.
func (s *Sequence[T]) Implode(sep string, fn func(T) string) string {
	parts := make([]string, len(s.items))
	for i, item := range s.items {
		parts[i] = fn(item)
	}
	return strings.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators (in place)
// ─────────────────────────────────────────────────────────────────────────────

// Push appends items to the end of the sequence.
func (s *Sequence[T]) Push(items ...T) *Sequence[T] {
	s.items = append(s.items, items...)
	return s
}

// Append is an alias for [Sequence.Push].
func (s *Sequence[T]) Append(items ...T) *Sequence[T] { return s.Push(items...) }

// Prepend inserts items at the front of the sequence.
func (s *Sequence[T]) Prepend(items ...T) *Sequence[T] {
	out := make([]T, 0, len(items)+len(s.items))
	out = append(out, items...)
	out = append(out, s.items...)
	s.items = out
	return s
}

// Insert places items before the normalized insertion point index.
// Insertion points accept [-Count(), Count()]; anything else fails with
// [ErrIndexOutOfRange] and leaves the sequence unchanged.
func (s *Sequence[T]) Insert(index int, items ...T) error {
	i, ok := s.normalizeInsert(index)
	if !ok {
		return fmt.Errorf("%w: insertion point %d with count %d", ErrIndexOutOfRange, index, len(s.items))
	}
	out := make([]T, 0, len(s.items)+len(items))
	out = append(out, s.items[:i]...)
	out = append(out, items...)
	out = append(out, s.items[i:]...)
	s.items = out
	return nil
}

// RemoveAt removes and returns the item at the normalized index, or
// [ErrIndexOutOfRange] without mutation.
func (s *Sequence[T]) RemoveAt(index int) (T, error) {
	var zero T
	i, ok := s.normalize(index)
	if !ok {
		return zero, fmt.Errorf("%w: index %d with count %d", ErrIndexOutOfRange, index, len(s.items))
	}
	item := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return item, nil
}

// Remove deletes the first item equal to value under the active equality
// comparer, reporting whether a removal occurred.
func (s *Sequence[T]) Remove(value T) bool {
	i := s.IndexOf(value)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// Pop removes and returns the last item.
// Returns the zero value and false when the sequence is empty.
func (s *Sequence[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	item := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return item, true
}

// Shift removes and returns the first item.
// Returns the zero value and false when the sequence is empty.
func (s *Sequence[T]) Shift() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	item := s.items[0]
	s.items = s.items[1:]
	return item, true
}

// Splice removes deleteCount items starting at the normalized start and
// inserts items in their place, returning the removed items as a new
// sequence. start accepts [-Count(), Count()]; deleteCount is clamped to
// the items available. On error nothing is mutated.
func (s *Sequence[T]) Splice(start, deleteCount int, items ...T) (*Sequence[T], error) {
	i, ok := s.normalizeInsert(start)
	if !ok {
		return nil, fmt.Errorf("%w: splice start %d with count %d", ErrIndexOutOfRange, start, len(s.items))
	}
	if deleteCount < 0 {
		return nil, fmt.Errorf("%w: negative delete count %d", ErrInvalidArgument, deleteCount)
	}
	if deleteCount > len(s.items)-i {
		deleteCount = len(s.items) - i
	}
	removed := make([]T, deleteCount)
	copy(removed, s.items[i:i+deleteCount])

	out := make([]T, 0, len(s.items)-deleteCount+len(items))
	out = append(out, s.items[:i]...)
	out = append(out, items...)
	out = append(out, s.items[i+deleteCount:]...)
	s.items = out
	return s.derive(removed), nil
}

// Reverse reverses the sequence in place.
func (s *Sequence[T]) Reverse() *Sequence[T] {
	for i, j := 0, len(s.items)-1; i < j; i, j = i+1, j-1 {
		s.items[i], s.items[j] = s.items[j], s.items[i]
	}
	return s
}

// Sort orders the sequence in place under the given comparer (the active one
// when omitted). The sort is stable. A comparison failure aborts without
// mutating the sequence.
func (s *Sequence[T]) Sort(cmp ...compare.Comparer) error {
	c := s.comparer()
	if len(cmp) > 0 && cmp[0] != nil {
		c = cmp[0]
	}
	out := make([]T, len(s.items))
	copy(out, s.items)

	var sortErr error
	sort.SliceStable(out, func(i, j int) bool {
		r, err := c.Compare(out[i], out[j])
		if err != nil && sortErr == nil {
			sortErr = err
		}
		return r < 0
	})
	if sortErr != nil {
		return sortErr
	}
	s.items = out
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Read-only view
// ─────────────────────────────────────────────────────────────────────────────

// AsReadonly returns a materialized read-only snapshot of the sequence.
// Later mutations of s are not reflected in the snapshot.
func (s *Sequence[T]) AsReadonly() *ReadonlySequence[T] {
	return &ReadonlySequence[T]{items: s.All(), eq: s.eq, cmp: s.cmp}
}
