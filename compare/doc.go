// Package compare defines the equality and ordering engine that backs every
// collection operation in this module: membership tests, key lookup, sorting,
// grouping and deduplication.
//
// # Strategy objects
//
// Two small strategy interfaces carry the whole contract:
//
//	type EqualityComparer interface {
//	    Equals(a, b any) bool
//	    Hash(v any) (Slot, error)
//	}
//	type Comparer interface {
//	    Compare(a, b any) (int, error)
//	}
//
// [DefaultEquality] and [DefaultOrdering] are the canonical implementations.
// They give heterogeneous runtime values — integers of any width, floats,
// bools, strings, [time.Time] values and object handles — a single, total
// notion of equality, hashing and three-way order.
//
// # Capability interfaces
//
// Domain types participate in the defaults without registering a dedicated
// comparer by implementing [Equatable] (value equality) or [Ordering]
// (three-way comparison):
//
//	type Money struct{ Cents int64 }
//
//	func (m Money) Equals(other any) bool {
//	    o, ok := other.(Money)
//	    return ok && o.Cents == m.Cents
//	}
//
// # The registry
//
// Collections that are not handed an explicit comparer fall back to the
// process-wide defaults held by this package. The defaults are created
// lazily, can be replaced with [SetDefault] / [SetDefaultComparer], and are
// resolved at call time — swapping a default changes the behaviour of
// already-constructed collections that did not pin their own comparer.
// [ResetDefaults] restores the built-ins; it is intended for tests.
//
// # Hashing is bucketing, not identity
//
// Hash produces an int-or-string storage slot used to group lookup
// candidates. Two equal values always hash to the same slot, but two values
// sharing a slot are not necessarily equal — callers must disambiguate with
// a full Equals check. Notably, strings that spell a canonical integer hash
// to that integer, so 5 and "5" land in the same slot.
package compare
