// SPDX-License-Identifier: MIT

package span

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpan is returned when a span would end before it starts.
	ErrInvalidSpan = errors.New("span: start must not exceed end")

	// ErrNotFound is returned by Map when the requested sub-span has no
	// counterpart in the other domain.
	ErrNotFound = errors.New("span: no corresponding span in target domain")
)

// Span is a half-open interval [Start, End) over contiguous integer indices.
// Start == End denotes an empty span anchored at Start.
type Span struct {
	Start int
	End   int
}

// New returns the span [start, end) or ErrInvalidSpan if start > end.
func New(start, end int) (Span, error) {
	if start > end {
		return Span{}, fmt.Errorf("%w: [%d,%d)", ErrInvalidSpan, start, end)
	}

	return Span{Start: start, End: end}, nil
}

// Of returns the span [0, n), the domain of an n-element sequence.
func Of(n int) Span {
	return Span{Start: 0, End: n}
}

// Len returns the number of positions in s (0 for empty or inverted spans).
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}

	return s.End - s.Start
}

// IsEmpty reports whether s holds no positions.
func (s Span) IsEmpty() bool { return s.Len() == 0 }

// IsValid reports whether Start <= End.
func (s Span) IsValid() bool { return s.Start <= s.End }

// Contains reports whether index i lies inside s.
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

// Covers reports whether other lies entirely within s. An empty other is
// covered when its anchor is inside s or on its end bound.
func (s Span) Covers(other Span) bool {
	return other.IsValid() && other.Start >= s.Start && other.End <= s.End
}

// Shift returns s moved by n positions.
func (s Span) Shift(n int) Span {
	return Span{Start: s.Start + n, End: s.End + n}
}

// String renders s as "[start,end)".
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
