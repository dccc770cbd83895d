// SPDX-License-Identifier: MIT

// Package decoder segments a strip into glyphs by solving a shortest-path
// problem over a lattice of "template t ends at column i" hypotheses.
//
// 🚀 What does it compute?
//
//	Given the window cost matrix C (package costmatrix) and the template
//	widths w_t, the lattice cell D[i][t] is the cheapest way to explain
//	columns 0..i such that template t occupies the last w_t of them:
//
//	  D[i][t] = ∞                                  if i+1 < w_t
//	  D[i][t] = C[t][0]                             if i+1 = w_t
//	  D[i][t] = Best_k Extend(D[i−w_t][k], C[t][i−w_t+1])   otherwise
//
//	After each column the best template B[i] = argBest_t D[i][t] is recorded.
//	The decoded path is read backwards from the last column: take t = B[i],
//	step back w_t columns, repeat until the column is negative, reverse.
//
// ✨ Key features:
//   - generic over the cost semiring (uint64, int64, float64 min-plus)
//   - FullTable or RollingRows memory mode (the recurrence only looks back
//     MaxWidth columns, so a ring of MaxWidth+1 rows suffices)
//   - top-K readings by multi-start backtracking from the last K columns
//   - blank runs collapse to a single space in the output text
//
// ⚙️ Usage:
//
//	cat, _ := glyphs.Load([]rune("ABC"), glyphs.DirResolver{Dir: "data"})
//	dec, _ := decoder.New(cat, semiring.Uint64, decoder.WithLogger(slog.Default()))
//	r, err := dec.Decode(strip)
//	fmt.Println(r.Text, r.Cost)
//
// The top-K walk is a heuristic: it does not search the K best paths, it
// reconstructs one path per ending column W−1, W−2, …, W−K and keeps that
// order even when a later reading is cheaper.
//
// Performance:
//
//   - Time:   O(W·T²) for the sweep plus the cost matrix build
//   - Memory: O(W·T) (FullTable) or O(MaxWidth·T) (RollingRows), plus O(W)
//     for the per-column best templates
//
// where W is the strip width and T the catalog size.
package decoder
