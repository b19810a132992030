// SPDX-License-Identifier: MIT

package converge

import (
	"fmt"

	"github.com/katalvlaran/deltarun/span"
)

// StepInfo describes a step that has just been applied.
type StepInfo struct {
	// Index is the zero-based position of the step in the trace.
	Index int
	// Span is the span the delta was applied to, in the source domain.
	Span span.Span
	// Candidates is the number of runs the selector chose from.
	Candidates int
}

// Option configures Converge via functional arguments.
// If an Option is invalid (e.g. negative step cap), it is recorded
// internally and surfaced as ErrOptionViolation when Converge is invoked.
type Option func(*Options)

// Options holds parameters and hooks of a Converge call.
type Options struct {
	// MaxSteps, if > 0, fails the call with ErrStepLimit once that many
	// steps were applied and runs remain. 0 disables the cap.
	MaxSteps int

	// OnStep is called after each applied step. Returning an error aborts
	// Converge and propagates that error.
	OnStep func(info StepInfo) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no step cap and a no-op OnStep hook.
func DefaultOptions() Options {
	return Options{
		MaxSteps: 0,
		OnStep:   func(StepInfo) error { return nil },
	}
}

// WithMaxSteps caps the number of applied steps.
//
//	n > 0: at most n steps
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnStep registers a hook run after every applied step.
func WithOnStep(fn func(info StepInfo) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
