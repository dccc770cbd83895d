// SPDX-License-Identifier: MIT

package costmatrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ArthurGoodman/text-recognizer/glyphs"
	"github.com/ArthurGoodman/text-recognizer/raster"
	"github.com/ArthurGoodman/text-recognizer/semiring"
)

// Matrix holds Cost(t, p) for every template t and every offset
// p ∈ [0, StripWidth − width(t)]. Rows of templates wider than the strip
// are empty.
type Matrix[V semiring.Number] struct {
	rows       [][]V
	stripWidth int
}

// Build computes the cost matrix of strip against every template in cat.
//
// Validation (in order):
//  1. strip, cat and sr must be non-nil (ErrNilInput).
//  2. strip.Height() must equal cat.Height() (ErrHeightMismatch).
//
// Each pixel row's squared differences are summed exactly in uint64 and
// folded into the cell with sr.Extend, starting from sr.Identity().
//
// Complexity: see package doc.
func Build[V semiring.Number](strip *raster.Grid, cat *glyphs.Catalog, sr semiring.Semiring[V], opts ...Option) (*Matrix[V], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if strip == nil || cat == nil || sr == nil {
		return nil, ErrNilInput
	}
	if strip.Height() != cat.Height() {
		return nil, fmt.Errorf("%w: strip %d, templates %d", ErrHeightMismatch, strip.Height(), cat.Height())
	}

	m := &Matrix[V]{
		rows:       make([][]V, cat.Len()),
		stripWidth: strip.Width(),
	}

	// one task per template; each task owns exactly one row
	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for t := 0; t < cat.Len(); t++ {
		g.Go(func() error {
			m.rows[t] = buildRow(strip, cat.Template(t).Grid, sr)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}

// buildRow computes the costs of one template at every offset.
// Rows are scanned in row-major order so both grids are read sequentially.
func buildRow[V semiring.Number](strip, tmpl *raster.Grid, sr semiring.Semiring[V]) []V {
	w := tmpl.Width()
	n := strip.Width() - w + 1
	if n <= 0 {
		return []V{}
	}

	row := make([]V, n)
	for p := range row {
		row[p] = sr.Identity()
	}

	var (
		srow, trow []uint8
		sum        uint64
		d          int
	)
	for y := 0; y < strip.Height(); y++ {
		srow, trow = strip.Row(y), tmpl.Row(y)
		for p := 0; p < n; p++ {
			sum = 0
			for x := 0; x < w; x++ {
				d = int(srow[p+x]) - int(trow[x])
				sum += uint64(d * d)
			}
			row[p] = sr.Extend(row[p], V(sum))
		}
	}

	return row
}

// Templates returns the number of rows (catalog size).
func (m *Matrix[V]) Templates() int { return len(m.rows) }

// StripWidth returns the width of the strip the matrix was built for.
func (m *Matrix[V]) StripWidth() int { return m.stripWidth }

// Offsets returns the number of valid offsets for template t
// (StripWidth − width(t) + 1, or 0 when t does not fit).
func (m *Matrix[V]) Offsets(t int) int { return len(m.rows[t]) }

// At returns Cost(t, p) without bounds reporting; it panics on invalid
// indices. Used by the decoder's inner loop.
func (m *Matrix[V]) At(t, p int) V { return m.rows[t][p] }

// Cost returns Cost(t, p), or ErrOutOfRange.
func (m *Matrix[V]) Cost(t, p int) (V, error) {
	if t < 0 || t >= len(m.rows) || p < 0 || p >= len(m.rows[t]) {
		var zero V
		return zero, fmt.Errorf("%w: Cost(%d,%d)", ErrOutOfRange, t, p)
	}

	return m.rows[t][p], nil
}

// Row returns a copy of template t's costs, indexed by offset.
func (m *Matrix[V]) Row(t int) []V {
	out := make([]V, len(m.rows[t]))
	copy(out, m.rows[t])

	return out
}
