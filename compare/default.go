package compare

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Epsilon is the tolerance used when comparing numeric values for equality:
// two numbers are equal iff the absolute difference is below this value.
// It is the machine epsilon of float64.
const Epsilon = 2.220446049250313e-16

// DefaultEquality is the canonical [EqualityComparer] for heterogeneous
// runtime values.
//
// Equals applies a fixed rule chain and stops at the first one that decides:
//
//  1. Strict identity: same dynamic type and equal under Go's ==.
//  2. Numeric: if at least one operand is a true number (any int/uint width
//     or float) and the other is a number or a numeric string, the two are
//     equal iff they differ by less than [Epsilon]. Two non-identical
//     numeric strings never reach this rule — "5.0" and "5" stay unequal
//     even though both parse to the same number.
//  3. Dates: two [time.Time] values are equal iff their epoch-second
//     timestamps match. Sub-second precision is discarded.
//  4. Capability: if either operand implements [Equatable], it decides —
//     the first operand is asked before the second.
//
// Anything else is not equal.
//
// Hash maps values onto int-or-string storage slots:
//
//   - integers hash to themselves
//   - strings spelling a canonical base-10 integer hash to that integer
//     (so "5" and 5 share a slot); all other strings hash to themselves
//   - [time.Time] values hash to their epoch-second timestamp
//   - floats clamp to the representable int64 range and truncate
//   - bools hash to 0 and 1
//   - pointers hash to a stable per-instance identity token
//
// Every other type fails with [ErrHashingUnsupported].
type DefaultEquality struct{}

var _ EqualityComparer = DefaultEquality{}

// Equals implements [EqualityComparer].
func (DefaultEquality) Equals(a, b any) bool {
	if identical(a, b) {
		return true
	}
	if x, ok := numeric(a); ok {
		if y, ok := numericOrString(b); ok {
			return math.Abs(x-y) < Epsilon
		}
	} else if y, ok := numeric(b); ok {
		if x, ok := numericOrString(a); ok {
			return math.Abs(x-y) < Epsilon
		}
	}
	ta, aIsTime := a.(time.Time)
	tb, bIsTime := b.(time.Time)
	if aIsTime && bIsTime {
		return ta.Unix() == tb.Unix()
	}
	if eq, ok := a.(Equatable); ok {
		return eq.Equals(b)
	}
	if eq, ok := b.(Equatable); ok {
		return eq.Equals(a)
	}
	return false
}

// Hash implements [EqualityComparer].
func (DefaultEquality) Hash(v any) (Slot, error) {
	switch x := v.(type) {
	case bool:
		if x {
			return int64(1), nil
		}
		return int64(0), nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%w: uint64 %d exceeds the slot range", ErrHashingUnsupported, x)
		}
		return int64(x), nil
	case float32:
		return truncateToSlot(float64(x)), nil
	case float64:
		return truncateToSlot(x), nil
	case string:
		if n, ok := canonicalInt(x); ok {
			return n, nil
		}
		return x, nil
	case time.Time:
		return x.Unix(), nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return identityToken(v), nil
	}
	return nil, fmt.Errorf("%w of type %T", ErrHashingUnsupported, v)
}

// DefaultOrdering is the canonical [Comparer].
//
// Compare returns 0 for values equal under [DefaultEquality]. Otherwise it
// orders number-against-number (numeric strings count when the other side is
// a true number, mirroring the equality rule), bools (false before true),
// [time.Time] pairs by epoch second, and string pairs byte-lexicographically.
// Failing all of that it defers to the [Ordering] capability on the first
// operand, then — with the sign flipped — on the second. A pair no rule
// accepts fails with [ErrTypeMismatch].
type DefaultOrdering struct{}

var _ Comparer = DefaultOrdering{}

// Compare implements [Comparer].
func (DefaultOrdering) Compare(a, b any) (int, error) {
	if (DefaultEquality{}).Equals(a, b) {
		return 0, nil
	}
	if x, ok := numeric(a); ok {
		if y, ok := numericOrString(b); ok {
			return sign(x - y), nil
		}
	} else if y, ok := numeric(b); ok {
		if x, ok := numericOrString(a); ok {
			return sign(x - y), nil
		}
	}
	if _, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			// ba != bb here; equality already ruled identical pairs out.
			if bb {
				return -1, nil
			}
			return 1, nil
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return sign(float64(ta.Unix() - tb.Unix())), nil
		}
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return strings.Compare(sa, sb), nil
		}
	}
	if ord, ok := a.(Ordering); ok {
		if r, err := ord.CompareTo(b); err == nil {
			return r, nil
		}
	}
	if ord, ok := b.(Ordering); ok {
		if r, err := ord.CompareTo(a); err == nil {
			return -r, nil
		}
	}
	return 0, fmt.Errorf("%w: %T against %T", ErrTypeMismatch, a, b)
}

// identical reports strict equality: same dynamic type, equal under ==.
// Uncomparable dynamic types are simply not identical; they fall through to
// the remaining rules instead of panicking.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() {
		return false
	}
	return va.Equal(vb)
}

// numeric extracts the float64 value of a true number.
func numeric(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// numericOrString extracts the float64 value of a number or numeric string.
func numericOrString(v any) (float64, bool) {
	if f, ok := numeric(v); ok {
		return f, true
	}
	if s, ok := v.(string); ok {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// canonicalInt reports whether s spells a canonical base-10 integer:
// an optional leading minus, no leading zeros (except "0" itself), and a
// value that fits int64.
func canonicalInt(s string) (int64, bool) {
	digits := s
	if strings.HasPrefix(s, "-") {
		digits = s[1:]
	}
	if digits == "" || (digits[0] == '0' && len(digits) > 1) {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// truncateToSlot clamps f to the representable int64 range and truncates.
func truncateToSlot(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func sign(f float64) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}
