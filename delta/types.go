// SPDX-License-Identifier: MIT

package delta

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/deltarun/numeric"
	"github.com/katalvlaran/deltarun/span"
)

// ErrMismatch is returned when the two sequences differ in length or a span
// cannot be carried from the target domain into the source domain.
var ErrMismatch = errors.New("delta: sequences do not correspond")

// Run is a maximal span of same-signed non-zero deltas together with the
// delta of the span that is closest to zero.
type Run[T numeric.Number] struct {
	Span  span.Span
	Delta T
}

// String renders r as "([start,end), delta)".
func (r Run[T]) String() string {
	return fmt.Sprintf("(%v, %v)", r.Span, r.Delta)
}
