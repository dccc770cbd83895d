// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"strings"
)

const (
	// Black is the intensity of full ink.
	Black uint8 = 0
	// White is the intensity of blank paper.
	White uint8 = 255
)

// Grid is an immutable Width×Height intensity grid in row-major order.
type Grid struct {
	width, height int
	pix           []uint8 // len == width*height, offset y*width + x
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice indexed
// values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]uint8) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	pix := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		copy(pix[y*w:(y+1)*w], values[y])
	}

	return &Grid{width: w, height: h, pix: pix}, nil
}

// Filled returns a width×height grid with every sample set to v.
// A zero width is legal (an empty strip); height must be positive.
func Filled(width, height int, v uint8) (*Grid, error) {
	if width < 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	pix := make([]uint8, width*height)
	if v != 0 {
		for i := range pix {
			pix[i] = v
		}
	}

	return &Grid{width: width, height: height, pix: pix}, nil
}

// FromPixels wraps a row-major buffer of length width*height.
// The buffer is copied.
func FromPixels(width, height int, pix []uint8) (*Grid, error) {
	if width < 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("raster: buffer length %d, want %d: %w", len(pix), width*height, ErrInvalidDimensions)
	}
	buf := make([]uint8, len(pix))
	copy(buf, pix)

	return &Grid{width: width, height: height, pix: buf}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the sample at (x,y). It panics on out-of-range coordinates,
// like slice indexing; use InBounds first when coordinates are untrusted.
func (g *Grid) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("raster: At(%d,%d) outside %dx%d", x, y, g.width, g.height))
	}

	return g.pix[g.index(x, y)]
}

// Row returns row y as a slice aliasing the grid's storage. Callers must not
// modify it. Used by hot loops that scan a row left to right.
func (g *Grid) Row(y int) []uint8 {
	return g.pix[y*g.width : (y+1)*g.width]
}

// Pixels returns a copy of the row-major buffer.
func (g *Grid) Pixels() []uint8 {
	out := make([]uint8, len(g.pix))
	copy(out, g.pix)

	return out
}

// Columns returns a copy of the half-open column span [x0, x1).
func (g *Grid) Columns(x0, x1 int) (*Grid, error) {
	if x0 < 0 || x1 > g.width || x0 > x1 {
		return nil, fmt.Errorf("raster: Columns(%d,%d) of width %d: %w", x0, x1, g.width, ErrOutOfRange)
	}
	w := x1 - x0
	pix := make([]uint8, w*g.height)
	for y := 0; y < g.height; y++ {
		copy(pix[y*w:(y+1)*w], g.pix[g.index(x0, y):g.index(x1, y)])
	}

	return &Grid{width: w, height: g.height, pix: pix}, nil
}

// Equal reports whether g and o have the same shape and samples.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != o.pix[i] {
			return false
		}
	}

	return true
}

// String renders the grid as ASCII art ('#' for ink below 128, '.' otherwise),
// one line per row. Handy in test failure messages.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for _, v := range g.Row(y) {
			if v < 128 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Concat joins grids left to right. All grids must share one height.
// Returns ErrEmptyGrid when called without grids, ErrHeightMismatch otherwise.
// Complexity: O(ΣW×H).
func Concat(grids ...*Grid) (*Grid, error) {
	if len(grids) == 0 {
		return nil, ErrEmptyGrid
	}
	h := grids[0].height
	total := 0
	for i, gr := range grids {
		if gr.height != h {
			return nil, fmt.Errorf("raster: Concat part %d has height %d, want %d: %w", i, gr.height, h, ErrHeightMismatch)
		}
		total += gr.width
	}
	pix := make([]uint8, total*h)
	for y := 0; y < h; y++ {
		off := y * total
		for _, gr := range grids {
			off += copy(pix[off:off+gr.width], gr.Row(y))
		}
	}

	return &Grid{width: total, height: h, pix: pix}, nil
}
