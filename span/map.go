// SPDX-License-Identifier: MIT

package span

import "fmt"

// Map translates sub, a span expressed in the self domain, into the other
// domain.
//
// Walk:
//
//	Positions of self are visited from self.Start up to and including
//	self.End, while a cursor advances through other from other.Start. The
//	cursor may rest on other.End (the anchor of an empty or terminal bound)
//	but never pass it. When the walk reaches sub.Start the cursor becomes the
//	mapped start; when it reaches sub.End the cursor becomes the mapped end.
//
// The walk is evaluated in closed form: the offset of each bound from
// self.Start is carried over to other.Start.
//
// Errors:
//   - ErrNotFound if sub is inverted, is not inside self, or if the cursor
//     would overrun other before sub.End is reached.
//
// Callers are expected to pass domains of equal cardinality; Map itself only
// fails structurally and never returns a clamped span.
//
// Complexity: O(1).
func Map(self, other, sub Span) (Span, error) {
	if !sub.IsValid() || !self.Covers(sub) {
		return Span{}, fmt.Errorf("%w: %v is outside %v", ErrNotFound, sub, self)
	}

	start := other.Start + (sub.Start - self.Start)
	end := other.Start + (sub.End - self.Start)
	// the cursor reaches end last; overrunning other there means sub runs
	// past the shorter domain.
	if end > other.End {
		return Span{}, fmt.Errorf("%w: %v runs past %v", ErrNotFound, sub, other)
	}

	return Span{Start: start, End: end}, nil
}
