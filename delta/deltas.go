// SPDX-License-Identifier: MIT

package delta

import (
	"fmt"

	"github.com/katalvlaran/deltarun/numeric"
	"github.com/katalvlaran/deltarun/series"
	"github.com/katalvlaran/deltarun/span"
)

// Deltas returns target[i] - source[i] for every position of the target
// domain, aligning the source by offset when the two domains differ.
//
// Errors:
//   - ErrMismatch if the sequences differ in length.
func Deltas[T numeric.Number](target, source series.Series[T]) ([]T, error) {
	return DeltasIn(target, source, target.Domain())
}

// DeltasIn is Deltas restricted to r, a span of the target domain. The
// result has r.Len() elements; an empty r yields an empty result.
//
// Errors:
//   - ErrMismatch if the sequences differ in length, whatever r is.
//   - ErrMismatch (wrapping span.ErrNotFound) if r cannot be mapped into the
//     source domain.
//   - ErrMismatch (wrapping numeric.ErrNonFinite) if a delta inside r is NaN
//     or ±Inf.
func DeltasIn[T numeric.Number](target, source series.Series[T], r span.Span) ([]T, error) {
	if target.Len() != source.Len() {
		return nil, fmt.Errorf("%w: target has %d values, source has %d",
			ErrMismatch, target.Len(), source.Len())
	}
	mapped, err := span.Map(target.Domain(), source.Domain(), r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMismatch, err)
	}

	tv, err := target.Window(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMismatch, err)
	}
	sv, err := source.Window(mapped)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMismatch, err)
	}

	out := make([]T, len(tv))
	for i := range tv {
		out[i] = tv[i] - sv[i]
		// a NaN delta would read as zero and hide a real difference.
		if !numeric.IsFinite(out[i]) {
			return nil, fmt.Errorf("%w: %w: delta at index %d is %v",
				ErrMismatch, numeric.ErrNonFinite, r.Start+i, out[i])
		}
	}

	return out, nil
}
