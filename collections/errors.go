package collections

import "errors"

// Sentinel errors returned by Sequence, Map and Set operations.
var (
	// ErrKeyNotFound is returned by non-try key lookups when the key is
	// absent from the map.
	ErrKeyNotFound = errors.New("collections: key not found")

	// ErrIndexOutOfRange is returned by index accessors and splice
	// operations when the index, after negative-index normalization, falls
	// outside the valid range.
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrDuplicateKey is returned when an insertion targets an occupied key
	// under the FailOnDuplicate policy.
	ErrDuplicateKey = errors.New("collections: duplicate key")

	// ErrInvalidArgument is returned for structurally invalid inputs, such
	// as a non-positive chunk size or a negative length.
	ErrInvalidArgument = errors.New("collections: invalid argument")
)
