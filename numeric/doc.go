// SPDX-License-Identifier: MIT

// Package numeric defines the element constraints and the comparison policy
// used by every sequence algorithm in deltarun.
//
// A Policy decides equality and ordering between two values of one element
// type:
//
//   - Exact      — integer types: ==, >, <.
//   - Tolerant   — floating-point types: fixed absolute epsilon.
//     Equal   ⟺ |a-b| <  eps
//     Greater ⟺  a-b  >= eps
//     Less    ⟺  a-b  <= -eps
//
// The policy is a value chosen by the caller at compile time for its element
// type (Exact[int]{}, Float64(), NewTolerant[float32](1e-3), ...). Nothing in
// the module switches on the runtime type of an element.
//
// Min and Max are defined through the policy, so two values that are equal
// within tolerance keep the first argument:
//
//	Min(p, x, y) = y if p.Greater(x, y) else x
//	Max(p, x, y) = y if p.Less(x, y)    else x
package numeric
