// SPDX-License-Identifier: MIT

package numeric

import "errors"

// Integer is the set of fixed-width integer element types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Number is any element type supporting + - * / and ordering.
type Number interface {
	Integer | Float
}

// Policy compares two values of T. Implementations must be pure: the result
// depends only on a and b.
type Policy[T Number] interface {
	// Equal reports whether a and b are the same value under the policy.
	Equal(a, b T) bool
	// Greater reports whether a is strictly greater than b under the policy.
	Greater(a, b T) bool
	// Less reports whether a is strictly less than b under the policy.
	Less(a, b T) bool
}

// Sign classifies a value against zero.
type Sign int8

const (
	// Negative marks values less than zero.
	Negative Sign = -1
	// Zero marks values equal to zero under the policy.
	Zero Sign = 0
	// Positive marks values greater than zero.
	Positive Sign = 1
)

// String returns "-", "0" or "+".
func (s Sign) String() string {
	switch s {
	case Negative:
		return "-"
	case Positive:
		return "+"
	default:
		return "0"
	}
}

// Default tolerances per floating-point element type.
const (
	// Float32Epsilon is the absolute tolerance of Float32().
	Float32Epsilon float32 = 1e-4

	// Float64Epsilon is the absolute tolerance of Float64().
	Float64Epsilon float64 = 1e-5
)

// ErrNonFinite marks a NaN or ±Inf value where finite values are required.
var ErrNonFinite = errors.New("numeric: NaN or Inf encountered")

// ErrInvalidEpsilon is returned by NewTolerant for a tolerance that is not a
// finite, strictly positive number.
var ErrInvalidEpsilon = errors.New("numeric: epsilon must be finite and > 0")
