// SPDX-License-Identifier: MIT

// Package synth renders text into raster strips for testing and for producing
// template sets.
//
// Text is drawn black on white with a bitmap font.Face (basicfont.Face7x13 by
// default), one advance per rune, baseline at the face ascent. The result may
// be scaled to a target height and perturbed with uniform noise:
//
//	strip, err := synth.Render("HELLO WORLD",
//	    synth.WithHeight(26),
//	    synth.WithNoise(3),
//	    synth.WithSeed(42),
//	)
//
// Rendering a string and concatenating per-rune renderings with the same
// options yields identical pixels as long as the scale factor is an integer
// and the default nearest-neighbor interpolator is used. That property is what
// lets font-rendered templates decode font-rendered strips exactly.
package synth
