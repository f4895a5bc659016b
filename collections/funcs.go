package collections

// This file contains package-level generic functions for operations that
// transform a Sequence[T] to a Sequence[U] (T ≠ U).
//
// Go generics do not allow methods to introduce their own type parameters,
// so these operations must be stand-alone functions. They compose with the
// method-chaining API:
//
//	result := collections.Map(
//	    collections.NewSequence(1, 2, 3, 4, 5).Filter(func(n, _ int) bool { return n%2 == 0 }),
//	    func(n, _ int) string { return strconv.Itoa(n) },
//	)

// Map applies fn to every item and returns a new Sequence[U].
func Map[T, U any](s *Sequence[T], fn func(T, int) U) *Sequence[U] {
	out := make([]U, len(s.items))
	for i, item := range s.items {
		out[i] = fn(item, i)
	}
	return &Sequence[U]{items: out}
}

// FlatMap applies fn to every item (producing a []U per item) and flattens
// the results into a single Sequence[U].
func FlatMap[T, U any](s *Sequence[T], fn func(T, int) []U) *Sequence[U] {
	out := make([]U, 0, len(s.items))
	for i, item := range s.items {
		out = append(out, fn(item, i)...)
	}
	return &Sequence[U]{items: out}
}

// Reduce reduces Sequence[T] to a single value of type U.
func Reduce[T, U any](s *Sequence[T], fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range s.items {
		result = fn(result, item, i)
	}
	return result
}

// Pluck extracts a single field U from every item T and returns a new
// Sequence[U].
func Pluck[T, U any](s *Sequence[T], fn func(T) U) *Sequence[U] {
	out := make([]U, len(s.items))
	for i, item := range s.items {
		out[i] = fn(item)
	}
	return &Sequence[U]{items: out}
}

// GroupBy groups items by the key extracted by fn. Keys are compared through
// the sequence's active equality comparer, so under the defaults the keys 5
// and "5" land in the same group. Groups keep the insertion order of their
// first member; the returned map iterates groups in that order. Fails when
// a key cannot be hashed.
func GroupBy[T, K any](s *Sequence[T], fn func(T) K) (*MutableMap[K, *Sequence[T]], error) {
	groups := NewMap[K, *Sequence[T]](OverwriteDuplicate)
	groups.eq = s.eq
	for _, item := range s.items {
		k := fn(item)
		group := groups.TryGet(k, nil)
		if group == nil {
			group = s.derive([]T{})
			if err := groups.Set(k, group); err != nil {
				return nil, err
			}
		}
		group.items = append(group.items, item)
	}
	return groups, nil
}

// KeyBy builds a map keyed by the value extracted by fn. When multiple items
// share an equal key, the last one wins. Fails when a key cannot be hashed.
func KeyBy[T, K any](s *Sequence[T], fn func(T) K) (*MutableMap[K, T], error) {
	out := NewMap[K, T](OverwriteDuplicate)
	out.eq = s.eq
	for _, item := range s.items {
		if err := out.Set(fn(item), item); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Zip combines two sequences element-by-element into entries.
// Stops at the shorter of the two.
func Zip[A, B any](a *Sequence[A], b *Sequence[B]) *Sequence[Entry[A, B]] {
	n := len(a.items)
	if len(b.items) < n {
		n = len(b.items)
	}
	out := make([]Entry[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Entry[A, B]{Key: a.items[i], Value: b.items[i]}
	}
	return &Sequence[Entry[A, B]]{items: out}
}

// Collapse flattens a Sequence[[]T] into a Sequence[T] (one level only).
func Collapse[T any](s *Sequence[[]T]) *Sequence[T] {
	total := 0
	for _, chunk := range s.items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range s.items {
		out = append(out, chunk...)
	}
	return &Sequence[T]{items: out}
}

// Flatten is an alias for [Collapse] — it flattens one level of nesting.
func Flatten[T any](s *Sequence[[]T]) *Sequence[T] { return Collapse(s) }
