// SPDX-License-Identifier: MIT

package synth

import (
	"errors"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Sentinel errors returned by the synth package.
var (
	// ErrEmptyText indicates Render was called with an empty string.
	ErrEmptyText = errors.New("synth: text must be non-empty")
	// ErrMissingGlyph indicates the face has no glyph for a rune.
	ErrMissingGlyph = errors.New("synth: face has no glyph for rune")
	// ErrBadHeight indicates a non-positive target height.
	ErrBadHeight = errors.New("synth: height must be positive")
	// ErrBadNoise indicates a noise level outside [0, MaxNoise].
	ErrBadNoise = errors.New("synth: noise level must be in [0, 10]")
)

const (
	// MaxNoise is the strongest supported noise level.
	MaxNoise = 10
	// NoiseAmplification converts a noise level into a peak-to-peak amplitude.
	NoiseAmplification = 123
	// DefaultSeed seeds the noise generator when WithSeed is not given.
	DefaultSeed uint64 = 1
)

// Options configures Render.
//
// Face         – bitmap face used for drawing (default basicfont.Face7x13).
// Height       – output height in pixels; 0 keeps the face's native height.
// Interpolator – scaler used when Height differs from the native height
// (default draw.NearestNeighbor, which keeps glyph edges hard).
// Noise        – noise level in [0, MaxNoise]; 0 disables noise.
// Seed         – seed for the noise generator.
type Options struct {
	Face         font.Face
	Height       int
	Interpolator draw.Interpolator
	Noise        int
	Seed         uint64
}

// Option represents a functional option for configuring Render.
type Option func(*Options)

// DefaultOptions returns the defaults described on Options.
func DefaultOptions() Options {
	return Options{
		Face:         basicfont.Face7x13,
		Height:       0,
		Interpolator: draw.NearestNeighbor,
		Noise:        0,
		Seed:         DefaultSeed,
	}
}

// WithFace selects the font face.
func WithFace(face font.Face) Option {
	return func(o *Options) {
		o.Face = face
	}
}

// WithHeight scales the output to h pixels, keeping the aspect ratio.
// Panics if h < 1.
func WithHeight(h int) Option {
	if h < 1 {
		panic(ErrBadHeight.Error())
	}

	return func(o *Options) {
		o.Height = h
	}
}

// WithInterpolator selects the scaler, e.g. draw.CatmullRom for smooth edges.
func WithInterpolator(i draw.Interpolator) Option {
	return func(o *Options) {
		o.Interpolator = i
	}
}

// WithNoise enables noise of the given level. Panics outside [0, MaxNoise].
func WithNoise(level int) Option {
	if level < 0 || level > MaxNoise {
		panic(ErrBadNoise.Error())
	}

	return func(o *Options) {
		o.Noise = level
	}
}

// WithSeed seeds the noise generator.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}
