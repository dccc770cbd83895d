// SPDX-License-Identifier: MIT

// Package costmatrix computes the window cost matrix: for every template t
// and every horizontal offset p at which t fits inside the strip, the sum of
// squared differences between the strip window [p, p+w_t) and the template.
//
//	Cost(t, p) = Σ_{y<H} Σ_{x<w_t} (strip(p+x, y) − tmpl_t(x, y))²
//
// Costs are not normalized by area: wider templates accumulate larger costs,
// which lets the shortest-path stage weigh segmentations by covered width
// instead of always preferring the 1-column blank.
//
// Rows (templates) are independent and are computed concurrently, bounded by
// WithWorkers; Build returns only after every row is complete, and the
// returned Matrix is immutable.
//
// Complexity: O(Σ_t (W − w_t + 1) · w_t · H) time, O(Σ_t (W − w_t + 1)) space.
package costmatrix
