// SPDX-License-Identifier: MIT

// Package deltarun is a small toolkit for comparing two equal-length numeric
// sequences and walking one of them into the other.
//
// 🚀 What is deltarun?
//
//	Given a target and a source sequence it computes element-wise deltas,
//	groups those deltas into maximal runs of same-signed change and applies
//	chosen runs to the source until it matches the target:
//		• span     — half-open index spans and translation between domains
//		• numeric  — comparison policy: exact for integers, epsilon for floats
//		• series   — immutable, domain-anchored sequences and Apply
//		• delta    — Deltas, DeltasIn and run segmentation (Segments)
//		• converge — caller-directed convergence with a full step trace
//
// ✨ Why choose deltarun?
//
//   - Generic – one implementation for every integer and float element type
//   - Pure – no I/O, no global state, every call returns new values
//   - Explicit – failures are sentinel errors matched with errors.Is
//
// Quick example:
//
//	target := series.Of(3, 12, 32, 15)
//	source := series.Of(32, 152, 68, 8)
//	runs, _ := delta.Segments(numeric.Exact[int]{}, target, source)
//	// [([0,3), -29) ([3,4), 7)]
//
//	go get github.com/katalvlaran/deltarun
package deltarun
