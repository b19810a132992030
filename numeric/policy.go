// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
)

// Exact is the policy for integer element types: plain ==, > and <.
type Exact[T Integer] struct{}

// Equal reports a == b.
func (Exact[T]) Equal(a, b T) bool { return a == b }

// Greater reports a > b.
func (Exact[T]) Greater(a, b T) bool { return a > b }

// Less reports a < b.
func (Exact[T]) Less(a, b T) bool { return a < b }

// Tolerant is the policy for floating-point element types. Two values closer
// than eps are equal; ordering requires a gap of at least eps.
//
// The zero value has eps == 0 and compares exactly, like Exact. Build a
// tolerant one with NewTolerant, Float32 or Float64.
type Tolerant[T Float] struct {
	eps T
}

// NewTolerant returns a Tolerant policy with absolute tolerance eps.
//
// Errors:
//   - ErrInvalidEpsilon if eps is NaN, ±Inf, zero or negative.
//
// Notes:
//   - eps is absolute, not scaled by operand magnitude, so the policy is
//     symmetric and well-behaved around zero.
func NewTolerant[T Float](eps T) (Tolerant[T], error) {
	f := float64(eps)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return Tolerant[T]{}, fmt.Errorf("%w: got %v", ErrInvalidEpsilon, eps)
	}

	return Tolerant[T]{eps: eps}, nil
}

// Float32 returns the default float32 policy (Float32Epsilon).
func Float32() Tolerant[float32] { return Tolerant[float32]{eps: Float32Epsilon} }

// Float64 returns the default float64 policy (Float64Epsilon).
func Float64() Tolerant[float64] { return Tolerant[float64]{eps: Float64Epsilon} }

// Epsilon returns the absolute tolerance of p.
func (p Tolerant[T]) Epsilon() T { return p.eps }

// Equal reports |a-b| < eps, or a == b when eps is 0.
func (p Tolerant[T]) Equal(a, b T) bool {
	d := a - b
	return d == 0 || (d < p.eps && d > -p.eps)
}

// Greater reports a-b >= eps. The difference must be strictly positive, so
// with eps == 0 it is plain a > b.
func (p Tolerant[T]) Greater(a, b T) bool {
	d := a - b
	return d > 0 && d >= p.eps
}

// Less reports a-b <= -eps. The difference must be strictly negative, so
// with eps == 0 it is plain a < b.
func (p Tolerant[T]) Less(a, b T) bool {
	d := a - b
	return d < 0 && d <= -p.eps
}
