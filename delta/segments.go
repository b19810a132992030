// SPDX-License-Identifier: MIT

package delta

import (
	"github.com/katalvlaran/deltarun/numeric"
	"github.com/katalvlaran/deltarun/series"
	"github.com/katalvlaran/deltarun/span"
)

// Segments partitions the deltas of target against source into runs.
//
// Algorithm Outline:
//  1. d = Deltas(target, source); positions are read in the target domain.
//  2. Scan positions start..end inclusive; end is a sentinel.
//  3. At each real position classify d[i] as zero, positive or negative
//     under p.
//  4. The open run closes when
//     - the sentinel is reached, or
//     - d[i] is zero, or
//     - d[i] flips the sign of the run (sign product below zero).
//     A flip opens a new run at the same position; a zero opens nothing.
//  5. While a run stays open its extremal delta moves towards zero:
//     numeric.Min for positive runs, numeric.Max for negative runs.
//
// The result is empty when every delta is zero under p. Adjacent runs are
// never mergeable: a zero or a sign flip always separates them.
//
// Errors:
//   - ErrMismatch under the same conditions as Deltas.
//
// Complexity: O(n) time, O(number of runs) extra memory.
func Segments[T numeric.Number](p numeric.Policy[T], target, source series.Series[T]) ([]Run[T], error) {
	deltas, err := Deltas(target, source)
	if err != nil {
		return nil, err
	}

	dom := target.Domain()
	if len(deltas) != dom.Len() {
		panic("delta: Segments scanned a different number of positions than deltas")
	}

	var sc scanner[T]
	sc.policy = p
	for i := dom.Start; i < dom.End; i++ {
		sc.step(i, deltas[i-dom.Start])
	}
	sc.close(dom.End)

	return sc.runs, nil
}

// scanner is the fold state of Segments.
type scanner[T numeric.Number] struct {
	policy   numeric.Policy[T]
	open     bool
	start    int
	sign     numeric.Sign
	extremal T
	runs     []Run[T]
}

// step folds the delta at position i into the state.
func (s *scanner[T]) step(i int, d T) {
	sign := numeric.Classify(s.policy, d)
	switch {
	case sign == numeric.Zero:
		s.close(i)
	case !s.open:
		s.openAt(i, d, sign)
	case s.sign*sign < 0:
		s.close(i)
		s.openAt(i, d, sign)
	case sign == numeric.Positive:
		s.extremal = numeric.Min(s.policy, s.extremal, d)
	default:
		s.extremal = numeric.Max(s.policy, s.extremal, d)
	}
}

// openAt starts a run at position i seeded with delta d.
func (s *scanner[T]) openAt(i int, d T, sign numeric.Sign) {
	s.open, s.start, s.sign, s.extremal = true, i, sign, d
}

// close flushes the open run, ending before position end. No-op when no run
// is open.
func (s *scanner[T]) close(end int) {
	if !s.open {
		return
	}
	s.runs = append(s.runs, Run[T]{Span: span.Span{Start: s.start, End: end}, Delta: s.extremal})
	s.open = false
}
