// SPDX-License-Identifier: MIT

package decoder

import (
	"errors"
	"fmt"

	"github.com/ArthurGoodman/text-recognizer/costmatrix"
	"github.com/ArthurGoodman/text-recognizer/glyphs"
	"github.com/ArthurGoodman/text-recognizer/raster"
	"github.com/ArthurGoodman/text-recognizer/semiring"
)

// Decoder decodes strips against one catalog in one cost domain.
// It holds only immutable configuration and is safe for concurrent use.
type Decoder[V semiring.Number] struct {
	cat *glyphs.Catalog
	sr  semiring.Semiring[V]
	cfg Options
}

// New returns a Decoder for cat over the semiring sr.
//
// Errors:
//   - glyphs.ErrEmptyCatalog if cat is nil or has no symbol templates.
//   - ErrNilInput if sr is nil.
func New[V semiring.Number](cat *glyphs.Catalog, sr semiring.Semiring[V], opts ...Option) (*Decoder[V], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cat == nil || cat.Symbols() == 0 {
		return nil, glyphs.ErrEmptyCatalog
	}
	if sr == nil {
		return nil, ErrNilInput
	}

	return &Decoder[V]{cat: cat, sr: sr, cfg: cfg}, nil
}

// Catalog returns the decoder's catalog.
func (d *Decoder[V]) Catalog() *glyphs.Catalog { return d.cat }

// Solve builds the cost matrix of strip and runs the lattice sweep.
//
// Errors:
//   - ErrNilInput for a nil strip.
//   - ErrNoCandidatePath if the strip is narrower than every template.
//   - costmatrix.ErrHeightMismatch if the strip and templates differ in height.
func (d *Decoder[V]) Solve(strip *raster.Grid) (*Lattice[V], error) {
	if strip == nil {
		return nil, ErrNilInput
	}
	if strip.Width() < d.cat.MinWidth() {
		return nil, fmt.Errorf("%w: strip width %d, narrowest template %d",
			ErrNoCandidatePath, strip.Width(), d.cat.MinWidth())
	}

	log := d.cfg.Logger
	log.Debug("building cost matrix", "width", strip.Width(), "height", strip.Height(), "templates", d.cat.Len())
	m, err := costmatrix.Build(strip, d.cat, d.sr, d.cfg.MatrixOptions...)
	if err != nil {
		return nil, err
	}

	log.Debug("finding shortest path", "columns", m.StripWidth(), "memory", d.cfg.MemoryMode.String())

	return Solve(m, d.cat.Widths(), d.sr, WithMemoryMode(d.cfg.MemoryMode))
}

// Decode returns the best reading of the whole strip, reconstructed from the
// last column.
func (d *Decoder[V]) Decode(strip *raster.Grid) (Reading[V], error) {
	lat, err := d.Solve(strip)
	if err != nil {
		return Reading[V]{}, err
	}

	r, err := d.read(lat, lat.Width()-1)
	if err != nil {
		return Reading[V]{}, err
	}
	d.cfg.Logger.Debug("decoded", "text", r.Text, "cost", r.Cost, "symbols", len(r.Path))

	return r, nil
}

// DecodeTopK returns up to k readings reconstructed from the ending columns
// W−1, W−2, …, W−k, in that order. Readings are not re-ranked by cost, and
// a reading ending before W−1 leaves the trailing columns unexplained. k is
// clamped to W; unreachable ending columns are skipped.
//
// Errors: ErrBadK, plus everything Solve returns; ErrNoCandidatePath if no
// ending column is reachable.
func (d *Decoder[V]) DecodeTopK(strip *raster.Grid, k int) ([]Reading[V], error) {
	if k < 1 {
		return nil, ErrBadK
	}
	lat, err := d.Solve(strip)
	if err != nil {
		return nil, err
	}

	W := lat.Width()
	if k > W {
		k = W
	}
	out := make([]Reading[V], 0, k)
	for end := W - 1; end >= W-k; end-- {
		r, err := d.read(lat, end)
		if errors.Is(err, ErrNoCandidatePath) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil, ErrNoCandidatePath
	}
	d.cfg.Logger.Debug("decoded top-k", "k", k, "readings", len(out))

	return out, nil
}

// read reconstructs the path ending at column end and renders its text.
func (d *Decoder[V]) read(lat *Lattice[V], end int) (Reading[V], error) {
	path, cost, err := lat.Backtrack(end)
	if err != nil {
		return Reading[V]{}, err
	}
	text, err := Text(path, d.cat)
	if err != nil {
		return Reading[V]{}, err
	}

	return Reading[V]{Text: text, Path: path, Cost: cost, End: end}, nil
}

// Recognize decodes strip against cat over uint64 min-plus costs and returns
// the text only.
func Recognize(strip *raster.Grid, cat *glyphs.Catalog, opts ...Option) (string, error) {
	d, err := New(cat, semiring.Uint64, opts...)
	if err != nil {
		return "", err
	}
	r, err := d.Decode(strip)
	if err != nil {
		return "", err
	}

	return r.Text, nil
}
