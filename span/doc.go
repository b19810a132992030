// SPDX-License-Identifier: MIT

// Package span models half-open index intervals [Start, End) and translates
// a sub-interval of one index domain into the matching sub-interval of
// another domain with the same number of positions.
//
// 🚀 Why?
//
//	Two sequences may carry different index domains (a window cut out of a
//	longer sequence keeps its original indices). Element-wise work on such a
//	pair needs the offsets of one domain expressed in the other.
//
// ✨ Key features:
//   - Span value type with Len/IsEmpty/Contains/Covers/Shift helpers
//   - Map: position-by-position translation between two domains
//   - never clamps: a sub-interval that cannot be translated fully is ErrNotFound
//
// ⚙️ Usage:
//
//	self := span.Span{Start: 0, End: 100}
//	other := span.Span{Start: -99, End: -60}
//	got, err := span.Map(self, other, span.Span{Start: 23, End: 30})
//	// got == [-76,-69)
//
// Complexity: every operation is O(1).
package span
