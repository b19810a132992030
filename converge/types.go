// SPDX-License-Identifier: MIT

package converge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/deltarun/delta"
	"github.com/katalvlaran/deltarun/numeric"
	"github.com/katalvlaran/deltarun/series"
	"github.com/katalvlaran/deltarun/span"
)

// Sentinel errors for Converge.
var (
	// ErrSelectionFailed is returned when the selector declines to choose.
	ErrSelectionFailed = errors.New("converge: selector made no selection")

	// ErrStepLimit is returned when WithMaxSteps is exceeded.
	ErrStepLimit = errors.New("converge: step limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("converge: invalid option supplied")
)

// Selector picks one run out of the non-empty candidate list. Returning
// false means no selection and fails the whole convergence.
type Selector[T numeric.Number] func(candidates []delta.Run[T]) (delta.Run[T], bool)

// Step is one applied run: Snapshot is the sequence after adding Delta to
// Span.
type Step[T numeric.Number] struct {
	Delta    T
	Span     span.Span
	Snapshot series.Series[T]
}

// Trace records every applied step in order. Deltas[i], Spans[i] and
// Snapshots[i] describe step i; Spans are in the source domain.
type Trace[T numeric.Number] struct {
	Deltas    []T
	Spans     []span.Span
	Snapshots []series.Series[T]
}

// Len returns the number of steps.
func (tr *Trace[T]) Len() int { return len(tr.Deltas) }

// Step returns step i. It panics if i is out of range, like a slice index.
func (tr *Trace[T]) Step(i int) Step[T] {
	return Step[T]{Delta: tr.Deltas[i], Span: tr.Spans[i], Snapshot: tr.Snapshots[i]}
}

// Final returns the last snapshot, or false when no step was applied (the
// source already matched the target).
func (tr *Trace[T]) Final() (series.Series[T], bool) {
	if len(tr.Snapshots) == 0 {
		return series.Series[T]{}, false
	}

	return tr.Snapshots[len(tr.Snapshots)-1], true
}

// String renders one line per step:
//
//	step 1: +41 on [0,2) -> [42 64 53 ...]
func (tr *Trace[T]) String() string {
	var sb strings.Builder
	var zero T
	for i, d := range tr.Deltas {
		sign := ""
		if d > zero {
			sign = "+"
		}
		fmt.Fprintf(&sb, "step %d: %s%v on %v -> %v\n", i+1, sign, d, tr.Spans[i], tr.Snapshots[i])
	}

	return sb.String()
}

// append records a step.
func (tr *Trace[T]) append(d T, r span.Span, snap series.Series[T]) {
	tr.Deltas = append(tr.Deltas, d)
	tr.Spans = append(tr.Spans, r)
	tr.Snapshots = append(tr.Snapshots, snap)
}
