// SPDX-License-Identifier: MIT

package series

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/deltarun/numeric"
	"github.com/katalvlaran/deltarun/span"
)

// ErrOutOfBounds is returned when an index or span falls outside the domain
// of a Series.
var ErrOutOfBounds = errors.New("series: span out of bounds")

// Series is an ordered, immutable list of values indexed over
// [start, start+len(values)).
type Series[T numeric.Number] struct {
	start  int
	values []T
}

// Of returns a Series over [0, len(values)) holding a copy of values.
func Of[T numeric.Number](values ...T) Series[T] {
	return Series[T]{values: slices.Clone(values)}
}

// Anchored returns a Series whose first value sits at index start.
func Anchored[T numeric.Number](start int, values []T) Series[T] {
	return Series[T]{start: start, values: slices.Clone(values)}
}

// Len returns the number of values.
func (s Series[T]) Len() int { return len(s.values) }

// Domain returns the index span covered by s.
func (s Series[T]) Domain() span.Span {
	return span.Span{Start: s.start, End: s.start + len(s.values)}
}

// Values returns a copy of the values in domain order.
func (s Series[T]) Values() []T { return slices.Clone(s.values) }

// Index returns the value at domain index i.
func (s Series[T]) Index(i int) (T, error) {
	if !s.Domain().Contains(i) {
		var zero T
		return zero, fmt.Errorf("%w: index %d not in %v", ErrOutOfBounds, i, s.Domain())
	}

	return s.values[i-s.start], nil
}

// Window returns a copy of the values covered by r, a span of the domain.
func (s Series[T]) Window(r span.Span) ([]T, error) {
	if !s.Domain().Covers(r) {
		return nil, fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, r, s.Domain())
	}

	return slices.Clone(s.values[r.Start-s.start : r.End-s.start]), nil
}

// String renders the values, e.g. "[1 2 3]".
func (s Series[T]) String() string { return fmt.Sprint(s.values) }

// EqualWithin reports whether a and b hold the same number of values and are
// element-wise equal under p. Domains are not compared.
func EqualWithin[T numeric.Number](p numeric.Policy[T], a, b Series[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.values {
		if !p.Equal(a.values[i], b.values[i]) {
			return false
		}
	}

	return true
}
