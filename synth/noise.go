// SPDX-License-Identifier: MIT

package synth

import (
	"math/rand/v2"

	"github.com/ArthurGoodman/text-recognizer/raster"
)

// Noise returns a copy of g with uniform noise of the given level applied:
// amplitude = level·NoiseAmplification, each sample gets a delta in
// [-amplitude/2, amplitude/2) and is clamped to [0, 255]. Level 0 returns g
// unchanged. Samples are visited row by row, so a seeded rng gives a
// reproducible result.
func Noise(g *raster.Grid, level int, rng *rand.Rand) (*raster.Grid, error) {
	if level < 0 || level > MaxNoise {
		return nil, ErrBadNoise
	}
	if level == 0 {
		return g, nil
	}
	amp := level * NoiseAmplification
	pix := g.Pixels()
	for i, v := range pix {
		delta := rng.IntN(amp) - amp/2
		pix[i] = clamp(int(v) + delta)
	}

	return raster.FromPixels(g.Width(), g.Height(), pix)
}

// clamp limits v to the uint8 range.
func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}

	return uint8(v)
}
