// SPDX-License-Identifier: MIT

// Package delta computes element-wise differences between a target and a
// source sequence, and partitions those differences into runs.
//
// 🚀 What is a run?
//
//	A run is a maximal contiguous span of positions whose deltas are all
//	non-zero and share one sign. Each run carries the delta of the run that
//	is closest to zero (its extremal delta): adding that delta to the whole
//	span of the source never overshoots any position of the run.
//
//	target = [3, 12, 32, 15]
//	source = [32, 152, 68, 8]
//	deltas = [-29, -140, -36, 7]
//	runs   = [([0,3), -29) ([3,4), 7)]
//
// ✨ Key features:
//   - Deltas / DeltasIn: aligned differences, optionally over a sub-span
//   - Segments: single left-to-right scan, zero or sign flip closes a run
//   - comparisons go through a numeric.Policy, so floating-point deltas that
//     are equal to zero within tolerance split runs
//
// Complexity: O(n) time and O(n) memory for n positions.
package delta
