// SPDX-License-Identifier: MIT

package glyphs

import (
	"fmt"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/ArthurGoodman/text-recognizer/raster"
	"github.com/ArthurGoodman/text-recognizer/synth"
)

// DefaultExt is the file extension DirResolver uses when Ext is empty.
const DefaultExt = ".bmp"

// Resolver maps a symbol to its template grid.
type Resolver interface {
	Resolve(symbol rune) (*raster.Grid, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(symbol rune) (*raster.Grid, error)

// Resolve calls f(symbol).
func (f ResolverFunc) Resolve(symbol rune) (*raster.Grid, error) { return f(symbol) }

// DirResolver loads <Dir>/<symbol><Ext> as a BMP file.
type DirResolver struct {
	Dir string
	Ext string // default DefaultExt
}

// Resolve reads the symbol's bitmap from disk.
func (d DirResolver) Resolve(symbol rune) (*raster.Grid, error) {
	ext := d.Ext
	if ext == "" {
		ext = DefaultExt
	}

	return raster.LoadBMP(filepath.Join(d.Dir, string(symbol)+ext))
}

// FontResolver renders each symbol with a bitmap font. Face nil means the
// synth default face; Height 0 keeps the face's native height; Interpolator
// nil means nearest-neighbor. Strips meant to be decoded against these
// templates should be rendered with the same settings.
type FontResolver struct {
	Face         font.Face
	Height       int
	Interpolator draw.Interpolator
}

// Resolve renders the symbol.
func (f FontResolver) Resolve(symbol rune) (*raster.Grid, error) {
	return synth.Render(string(symbol), f.Options()...)
}

// Options returns the synth options equivalent to f, for rendering strips
// that match the templates.
func (f FontResolver) Options() []synth.Option {
	var opts []synth.Option
	if f.Face != nil {
		opts = append(opts, synth.WithFace(f.Face))
	}
	if f.Height > 0 {
		opts = append(opts, synth.WithHeight(f.Height))
	}
	if f.Interpolator != nil {
		opts = append(opts, synth.WithInterpolator(f.Interpolator))
	}

	return opts
}

// MapResolver serves templates from memory.
type MapResolver map[rune]*raster.Grid

// Resolve looks the symbol up.
func (m MapResolver) Resolve(symbol rune) (*raster.Grid, error) {
	g, ok := m[symbol]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoTemplate, symbol)
	}

	return g, nil
}
