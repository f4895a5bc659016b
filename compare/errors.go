package compare

import "errors"

// Sentinel errors returned by the comparison engine.
var (
	// ErrTypeMismatch is returned by Compare when no ordering rule exists
	// for the given pair of operand types.
	ErrTypeMismatch = errors.New("compare: values cannot be ordered")

	// ErrHashingUnsupported is returned by Hash when a value's type has no
	// defined hashing rule.
	ErrHashingUnsupported = errors.New("compare: no hashing rule for value")
)
