// SPDX-License-Identifier: MIT

// Package series provides Series, an immutable numeric sequence anchored in
// an integer index domain, and Apply, which shifts a span of it by a delta.
//
// A Series built with Of is indexed from 0. Anchored keeps an explicit start
// index, the way a window cut from a longer sequence keeps the indices of its
// parent. Every operation returns a new Series; the receiver and the slices
// passed to constructors are never aliased.
package series
