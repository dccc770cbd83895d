// SPDX-License-Identifier: MIT

package decoder

import (
	"fmt"

	"github.com/ArthurGoodman/text-recognizer/costmatrix"
	"github.com/ArthurGoodman/text-recognizer/semiring"
)

// Lattice is the solved DP table of one strip.
type Lattice[V semiring.Number] struct {
	sr     semiring.Semiring[V]
	widths []int
	width  int // strip width W
	nT     int // templates per row
	mode   MemoryMode
	ring   int // retained rows: W (FullTable) or MaxWidth+1 (RollingRows)
	table  []V // ring*nT cells, row r at [r*nT, (r+1)*nT)
	best   []int
	bestV  []V
}

// Solve runs the left-to-right sweep over the cost matrix m.
// widths[t] is the width of template t and must match m's offsets.
//
// Implementation:
//   - Stage 1: validate inputs (ErrNilInput, ErrBadWidths).
//   - Stage 2: for each column i, fill D[i][t] for every template
//     (see package doc for the recurrence) and record B[i].
//
// Rows are committed in strictly increasing column order and each cell has a
// single writer, so the sweep needs no synchronization.
//
// Complexity: O(W·T²) time, O(W·T) or O(MaxWidth·T) space.
func Solve[V semiring.Number](m *costmatrix.Matrix[V], widths []int, sr semiring.Semiring[V], opts ...Option) (*Lattice[V], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate inputs
	if m == nil || sr == nil {
		return nil, ErrNilInput
	}
	if len(widths) != m.Templates() || len(widths) == 0 {
		return nil, fmt.Errorf("%w: %d widths for %d templates", ErrBadWidths, len(widths), m.Templates())
	}
	W := m.StripWidth()
	maxW := 0
	for t, w := range widths {
		if w < 1 {
			return nil, fmt.Errorf("%w: template %d has width %d", ErrBadWidths, t, w)
		}
		want := W - w + 1
		if want < 0 {
			want = 0
		}
		if m.Offsets(t) != want {
			return nil, fmt.Errorf("%w: template %d has %d offsets, want %d", ErrBadWidths, t, m.Offsets(t), want)
		}
		if w > maxW {
			maxW = w
		}
	}

	// 2) Allocate storage
	nT := len(widths)
	ring := W
	if cfg.MemoryMode == RollingRows && maxW+1 < W {
		ring = maxW + 1
	}
	l := &Lattice[V]{
		sr:     sr,
		widths: append([]int(nil), widths...),
		width:  W,
		nT:     nT,
		mode:   cfg.MemoryMode,
		ring:   ring,
		table:  make([]V, ring*nT),
		best:   make([]int, W),
		bestV:  make([]V, W),
	}

	// 3) Sweep
	inf := sr.Infinity()
	cand := make([]V, nT)
	var (
		row, prow []V
		w, prev   int
		c         V
	)
	for i := 0; i < W; i++ {
		row = l.row(i)
		for t := 0; t < nT; t++ {
			w = l.widths[t]
			if i+1 < w {
				// template does not fit ending here
				row[t] = inf
				continue
			}
			prev = i - w
			c = m.At(t, prev+1)
			if prev < 0 {
				// template starts at column 0; no predecessor
				row[t] = c
				continue
			}
			prow = l.row(prev)
			for k := 0; k < nT; k++ {
				cand[k] = sr.Extend(prow[k], c)
			}
			row[t], _ = sr.Best(cand)
		}
		l.bestV[i], l.best[i] = sr.Best(row)
	}

	return l, nil
}

// row returns the storage of column i. Callers guarantee i is retained.
func (l *Lattice[V]) row(i int) []V {
	r := i % l.ring

	return l.table[r*l.nT : (r+1)*l.nT]
}

// Width returns the strip width W (number of lattice columns).
func (l *Lattice[V]) Width() int { return l.width }

// Templates returns the number of templates per column.
func (l *Lattice[V]) Templates() int { return l.nT }

// MemoryMode returns the storage mode the lattice was solved with.
func (l *Lattice[V]) MemoryMode() MemoryMode { return l.mode }

// Cell returns D[i][t]. Unreachable cells hold the semiring's Infinity.
// Errors: ErrOutOfRange, ErrRowEvicted (RollingRows, i older than the ring).
func (l *Lattice[V]) Cell(i, t int) (V, error) {
	var zero V
	if i < 0 || i >= l.width || t < 0 || t >= l.nT {
		return zero, fmt.Errorf("%w: Cell(%d,%d)", ErrOutOfRange, i, t)
	}
	if i < l.width-l.ring {
		return zero, fmt.Errorf("%w: column %d", ErrRowEvicted, i)
	}

	return l.row(i)[t], nil
}

// BestAt returns B[i] and its value D[i][B[i]].
func (l *Lattice[V]) BestAt(i int) (int, V, error) {
	if i < 0 || i >= l.width {
		var zero V
		return -1, zero, fmt.Errorf("%w: column %d", ErrOutOfRange, i)
	}

	return l.best[i], l.bestV[i], nil
}

// Backtrack reconstructs the path ending at column end: take t = B[i], step
// back width(t) columns, repeat while the column is non-negative, reverse.
// Returns the left-to-right template indices and the path cost D[end][B[end]].
//
// Errors: ErrOutOfRange, ErrNoCandidatePath (no path reaches end).
// Complexity: O(len(path)).
func (l *Lattice[V]) Backtrack(end int) ([]int, V, error) {
	var zero V
	if end < 0 || end >= l.width {
		return nil, zero, fmt.Errorf("%w: column %d", ErrOutOfRange, end)
	}
	inf := l.sr.Infinity()
	if l.bestV[end] == inf {
		return nil, zero, fmt.Errorf("%w: column %d is unreachable", ErrNoCandidatePath, end)
	}

	var path []int
	var t int
	for i := end; i >= 0; i -= l.widths[t] {
		if l.bestV[i] == inf {
			return nil, zero, fmt.Errorf("%w: column %d is unreachable", ErrNoCandidatePath, i)
		}
		t = l.best[i]
		path = append(path, t)
	}
	// reverse path in-place
	for a, b := 0, len(path)-1; a < b; a, b = a+1, b-1 {
		path[a], path[b] = path[b], path[a]
	}

	return path, l.bestV[end], nil
}
