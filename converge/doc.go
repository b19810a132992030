// SPDX-License-Identifier: MIT

// Package converge drives a source sequence towards a target sequence one
// run at a time.
//
// Each iteration computes the runs between the target and the current
// source (see package delta), asks a caller-supplied Selector to pick one,
// adds the run's delta to its span and records the step in a Trace. The loop
// ends when no run is left.
//
// Termination:
//
//	Applying a run's extremal delta to its span turns at least one position
//	of that run into a zero delta and never flips the sign of another one,
//	so every step removes at least one non-zero position. A selector that
//	returns one of the offered runs therefore finishes in at most n steps.
//	Selectors that invent runs are not covered by that bound; WithMaxSteps
//	caps the loop for them.
//
// Failures are all-or-nothing: on any error the partial trace is dropped.
package converge
