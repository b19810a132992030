// SPDX-License-Identifier: MIT

package series

import (
	"fmt"

	"github.com/katalvlaran/deltarun/numeric"
	"github.com/katalvlaran/deltarun/span"
)

// Apply returns a new Series in which every value inside r is increased by
// delta. Values outside r, the order, the length and the domain are unchanged.
//
// Errors:
//   - ErrOutOfBounds if r starts before or ends after the domain of s, or if r
//     is inverted.
//
// Complexity: O(n) time and space.
func Apply[T numeric.Number](s Series[T], delta T, r span.Span) (Series[T], error) {
	if !s.Domain().Covers(r) {
		return Series[T]{}, fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, r, s.Domain())
	}

	out := Series[T]{start: s.start, values: make([]T, len(s.values))}
	lo, hi := r.Start-s.start, r.End-s.start
	for i, v := range s.values {
		if i >= lo && i < hi {
			v += delta
		}
		out.values[i] = v
	}

	return out, nil
}
