// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"image"
	"math/rand/v2"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ArthurGoodman/text-recognizer/raster"
)

// Render draws text into a new grid.
//
// Steps:
//  1. Validate text and check that the face has a glyph for every rune.
//  2. Draw black glyphs on a white canvas of native size
//     (width = total advance, height = ascent + descent).
//  3. Scale to Options.Height when it differs from the native height.
//  4. Apply noise when Options.Noise > 0.
//
// Errors: ErrEmptyText, ErrMissingGlyph.
func Render(text string, opts ...Option) (*raster.Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if text == "" {
		return nil, ErrEmptyText
	}

	face := cfg.Face
	for _, r := range text {
		if _, _, _, _, ok := face.Glyph(fixed.Point26_6{}, r); !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingGlyph, r)
		}
	}

	m := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	canvas := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(text)

	var img image.Image = canvas
	if cfg.Height > 0 && cfg.Height != h {
		tw := (w*cfg.Height + h/2) / h
		if tw < 1 {
			tw = 1
		}
		dst := image.NewGray(image.Rect(0, 0, tw, cfg.Height))
		cfg.Interpolator.Scale(dst, dst.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
		img = dst
	}

	g, err := raster.FromImage(img)
	if err != nil {
		return nil, err
	}
	if cfg.Noise == 0 {
		return g, nil
	}

	return Noise(g, cfg.Noise, rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)))
}
