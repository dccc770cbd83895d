// SPDX-License-Identifier: MIT

// Package semiring defines the cost algebra shared by the cost matrix and the
// path decoder.
//
// A Semiring pairs two operations over a numeric domain V:
//
//   - Extend: the "combine" operation that accumulates cost along a path.
//   - Best: the "select" operation that picks the preferred value of a set.
//
// together with two distinguished elements:
//
//   - Identity: neutral for Extend (a path that has incurred no cost yet).
//   - Infinity: absorbing for Extend and neutral for Best (no path at all).
//
// The only instance shipped is MinPlus (Extend = saturating addition,
// Best = minimum, ties broken by lowest index), available over uint64, int64
// and float64. The decoder is written against the Semiring interface, so the
// same DP code runs unchanged over every domain.
//
// Integer domains are preferred: squared pixel differences are non-negative
// integers, summation is exact and independent of accumulation order.
//
// Usage:
//
//	sr := semiring.NewMinPlus[uint64]()
//	v := sr.Extend(sr.Identity(), 42)      // 42
//	best, at := sr.Best([]uint64{7, 3, 3}) // 3, 1
//
// Complexity: Extend/Identity/Infinity O(1); Best O(n).
package semiring
