// SPDX-License-Identifier: MIT

// Package textrecognizer reads a single line of fixed-height glyphs from a
// grayscale strip by template matching and a shortest-path segmentation.
//
// 🚀 How does it work?
//
//	strip ──► costmatrix ──► decoder lattice ──► backtrack ──► text
//	            ▲
//	glyphs catalog (one template per symbol + a 1-column blank)
//
// Every template is slid across the strip and scored by the sum of squared
// pixel differences at each offset. The decoder then finds the cheapest
// left-to-right tiling of the strip by templates and reads the symbols off
// the winning path, collapsing blank runs into a single space.
//
// Packages:
//
//	semiring/   cost algebra (min-plus over uint64, int64, float64)
//	raster/     immutable 8-bit grayscale grids, BMP I/O
//	glyphs/     template catalog, resolvers (directory, font, memory), YAML manifest
//	costmatrix/ per-template window costs, built in parallel
//	decoder/    lattice sweep, reconstruction, top-K readings, text builder
//	synth/      strip rendering from a bitmap font, optional noise
//	cmd/        recognize and generate command-line tools
//
// Quick start:
//
//	generate -o image.bmp HELLO WORLD
//	recognize -font image.bmp
//	"HELLO WORLD"
package textrecognizer
