// SPDX-License-Identifier: MIT

package converge

import (
	"fmt"

	"github.com/katalvlaran/deltarun/delta"
	"github.com/katalvlaran/deltarun/numeric"
	"github.com/katalvlaran/deltarun/series"
	"github.com/katalvlaran/deltarun/span"
)

// Converge transforms source into target by repeatedly applying the run
// chosen by sel, and returns the trace of applied steps.
//
// Loop:
//  1. runs = delta.Segments(p, target, current)
//  2. no runs: done, return the trace (empty if source already matched)
//  3. pick = sel(runs); no pick: ErrSelectionFailed
//  4. current = series.Apply(current, pick.Delta, pick.Span mapped into the
//     source domain); record the step; call OnStep
//
// Errors:
//   - delta.ErrMismatch if the sequences differ in length, or if the picked
//     span does not lie in the target domain.
//   - delta.ErrMismatch (wrapping numeric.ErrNonFinite) if a delta is NaN or
//     ±Inf.
//   - ErrSelectionFailed if sel is nil or declines.
//   - ErrStepLimit if WithMaxSteps is exceeded.
//   - ErrOptionViolation for invalid options.
//   - any error returned by the OnStep hook, wrapped.
//
// On error the partial trace is discarded.
func Converge[T numeric.Number](
	p numeric.Policy[T],
	target, source series.Series[T],
	sel Selector[T],
	opts ...Option,
) (*Trace[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if sel == nil {
		return nil, fmt.Errorf("%w: nil selector", ErrSelectionFailed)
	}
	// Apply preserves length, so one check covers every iteration.
	if target.Len() != source.Len() {
		return nil, fmt.Errorf("converge: %w: target has %d values, source has %d",
			delta.ErrMismatch, target.Len(), source.Len())
	}

	tr := &Trace[T]{}
	current := source
	for {
		runs, err := delta.Segments(p, target, current)
		if err != nil {
			return nil, fmt.Errorf("converge: %w", err)
		}
		if len(runs) == 0 {
			return tr, nil
		}
		if o.MaxSteps > 0 && tr.Len() >= o.MaxSteps {
			return nil, fmt.Errorf("%w: %d steps applied, %d runs left", ErrStepLimit, tr.Len(), len(runs))
		}

		pick, ok := sel(runs)
		if !ok {
			return nil, fmt.Errorf("%w: step %d, %d candidates", ErrSelectionFailed, tr.Len(), len(runs))
		}
		r, err := span.Map(target.Domain(), current.Domain(), pick.Span)
		if err != nil {
			return nil, fmt.Errorf("converge: %w: selected %v: %w", delta.ErrMismatch, pick, err)
		}
		next, err := series.Apply(current, pick.Delta, r)
		if err != nil {
			return nil, fmt.Errorf("converge: %w", err)
		}

		tr.append(pick.Delta, r, next)
		if err = o.OnStep(StepInfo{Index: tr.Len() - 1, Span: r, Candidates: len(runs)}); err != nil {
			return nil, fmt.Errorf("converge: OnStep error at step %d: %w", tr.Len()-1, err)
		}
		current = next
	}
}
