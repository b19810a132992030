// SPDX-License-Identifier: MIT

package converge

import (
	"github.com/katalvlaran/deltarun/delta"
	"github.com/katalvlaran/deltarun/numeric"
)

// First picks the leftmost run.
func First[T numeric.Number](candidates []delta.Run[T]) (delta.Run[T], bool) {
	if len(candidates) == 0 {
		return delta.Run[T]{}, false
	}

	return candidates[0], true
}

// Last picks the rightmost run.
func Last[T numeric.Number](candidates []delta.Run[T]) (delta.Run[T], bool) {
	if len(candidates) == 0 {
		return delta.Run[T]{}, false
	}

	return candidates[len(candidates)-1], true
}

// Widest picks the run covering the most positions; the leftmost wins ties.
func Widest[T numeric.Number](candidates []delta.Run[T]) (delta.Run[T], bool) {
	if len(candidates) == 0 {
		return delta.Run[T]{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Span.Len() > best.Span.Len() {
			best = c
		}
	}

	return best, true
}

// Largest returns a Selector picking the run whose delta has the greatest
// magnitude under p; the leftmost wins ties.
func Largest[T numeric.Number](p numeric.Policy[T]) Selector[T] {
	return func(candidates []delta.Run[T]) (delta.Run[T], bool) {
		if len(candidates) == 0 {
			return delta.Run[T]{}, false
		}
		best := candidates[0]
		for _, c := range candidates[1:] {
			if numeric.GreaterMagnitude(p, c.Delta, best.Delta) {
				best = c
			}
		}

		return best, true
	}
}

// Decline never selects. Converge with Decline succeeds only when source
// already matches target.
func Decline[T numeric.Number](_ []delta.Run[T]) (delta.Run[T], bool) {
	return delta.Run[T]{}, false
}
