// SPDX-License-Identifier: MIT

package numeric

// Min returns y if x is greater than y under p, otherwise x.
// Values equal within tolerance keep x.
func Min[T Number](p Policy[T], x, y T) T {
	if p.Greater(x, y) {
		return y
	}

	return x
}

// Max returns y if x is less than y under p, otherwise x.
// Values equal within tolerance keep x.
func Max[T Number](p Policy[T], x, y T) T {
	if p.Less(x, y) {
		return y
	}

	return x
}

// Classify returns the sign of v against the zero of T under p.
//
// Notes:
//   - For unsigned T nothing is ever Negative; a difference that wrapped
//     around is reported as Positive.
func Classify[T Number](p Policy[T], v T) Sign {
	var zero T
	switch {
	case p.Greater(v, zero):
		return Positive
	case p.Less(v, zero):
		return Negative
	default:
		return Zero
	}
}

// Abs returns the magnitude of v. For unsigned T it returns v.
//
// Notes:
//   - The minimum value of a signed integer type has no positive
//     counterpart; Abs returns it unchanged (still negative). Compare
//     magnitudes with GreaterMagnitude instead.
func Abs[T Number](v T) T {
	var zero T
	if v < zero {
		return -v
	}

	return v
}

// GreaterMagnitude reports whether |a| is greater than |b| under p.
//
// Magnitudes are compared on the non-positive side (-|a| < -|b|), where every
// signed value has a representation, so the minimum signed integer counts as
// the largest magnitude instead of wrapping.
func GreaterMagnitude[T Number](p Policy[T], a, b T) bool {
	var zero T
	// unsigned: every value is its own magnitude.
	if zero-1 > zero {
		return p.Greater(a, b)
	}

	return p.Less(negMagnitude(a), negMagnitude(b))
}

// negMagnitude returns -|v|. Negating a positive signed value never overflows.
func negMagnitude[T Number](v T) T {
	var zero T
	if v > zero {
		return -v
	}

	return v
}

// IsFinite reports whether v is neither NaN nor ±Inf. Integers are always
// finite.
func IsFinite[T Number](v T) bool {
	// v-v is 0 for finite values and NaN for NaN and ±Inf.
	return v-v == 0
}
