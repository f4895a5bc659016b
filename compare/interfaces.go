package compare

// Slot is the storage key a value hashes to. A Slot produced by this package
// always holds an int64 or a string, so it is comparable and usable directly
// as a native Go map key.
type Slot = any

// EqualityComparer is the strategy interface behind every membership test,
// deduplication step and key lookup in the collections packages.
//
// Implementations must keep Equals reflexive, symmetric and consistent with
// Hash: whenever Equals(a, b) is true, Hash(a) and Hash(b) must return the
// same slot. The reverse is not required — a shared slot only marks two
// values as lookup candidates.
type EqualityComparer interface {
	// Equals reports whether a and b are the same value.
	Equals(a, b any) bool

	// Hash derives the int-or-string storage slot for v.
	// Returns [ErrHashingUnsupported] when v's type has no hashing rule.
	Hash(v any) (Slot, error)
}

// Comparer is the strategy interface behind sorting and binary search.
//
// Compare returns a negative value when a orders before b, zero when the two
// are equivalent, and a positive value when a orders after b. It must be
// antisymmetric and transitive for any pair it accepts, and may reject a
// pair it cannot order with [ErrTypeMismatch].
type Comparer interface {
	Compare(a, b any) (int, error)
}

// Equatable is the value-equality capability. Types implementing it take
// part in [DefaultEquality] without a dedicated comparer: when neither the
// identity, numeric nor date rule applies, the first operand implementing
// Equatable decides, then the second.
type Equatable interface {
	Equals(other any) bool
}

// Ordering is the three-way-comparison capability, the ordering counterpart
// of [Equatable]. CompareTo returns a signed result like [Comparer.Compare]
// and may reject operands it cannot order.
type Ordering interface {
	CompareTo(other any) (int, error)
}
