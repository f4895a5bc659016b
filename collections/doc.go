// Package collections provides generic, type-consistent collection
// abstractions — ordered sequences, key/value maps and sets — layered over
// the pluggable equality/ordering engine in the compare package.
//
// # The engine underneath
//
// Every membership test, sort, grouping, deduplication and key lookup runs
// through a [compare.EqualityComparer] or [compare.Comparer]. Collections
// take their comparer by constructor injection (the Use* methods) or fall
// back to the process-wide default at call time, so heterogeneous values —
// numbers of any width, strings, dates, domain objects — behave uniformly,
// including types the package has never seen.
//
//	s := collections.NewSequence[any](1, "2", 3.0)
//	s.Contains("1") // true: the default comparer equates 1 and "1"
//
// # Sequences
//
// [Sequence] is the mutable, zero-based, index-addressable list; negative
// indices address from the end on every accessor. [ReadonlySequence] is its
// immutable counterpart, backed either by a materialized slice or by a
// restartable [iter.Seq] source that each read re-drives until
// [ReadonlySequence.Freeze] captures a permanent snapshot.
//
// # Maps
//
// [MutableMap] stores arbitrary logical keys by the int-or-string slot the active
// comparer hashes them to, preserving original keys and insertion order.
// Collisions inside a slot are resolved with full equality checks. What an
// insert does to an occupied key is governed by a [DuplicateKeyPolicy]:
// fail, ignore (first value wins) or overwrite. [ReadonlyMap] mirrors the
// lazy/eager duality of [ReadonlySequence] and re-validates the policy on
// every unfrozen read.
//
// # Sets
//
// [Set] is a sequence specialization that refuses duplicates under an
// injected equality comparer.
//
// # Errors
//
// Failures surface synchronously as sentinel errors ([ErrKeyNotFound],
// [ErrIndexOutOfRange], [ErrDuplicateKey], [ErrInvalidArgument], and the
// compare package's [compare.ErrHashingUnsupported] and
// [compare.ErrTypeMismatch]), matched with [errors.Is]. Mutating operations
// either fully succeed or leave the collection untouched; the one documented
// exception is [Set.InsertRange]/[Set.AppendRange], which apply per item.
package collections
