// SPDX-License-Identifier: MIT

// Package raster provides the immutable 8-bit intensity grid used for both
// decoding strips and glyph templates.
//
// A Grid stores Width×Height samples (0 = black ink, 255 = white paper) in a
// flat row-major buffer, offset = y*Width + x. Constructors deep-copy their
// input, so a Grid is never mutated after it is built and can be shared
// across goroutines without locks.
//
// Besides construction from slices, the package converts to and from
// image.Image and reads/writes BMP files through golang.org/x/image/bmp.
//
// Complexity: construction O(W·H); At O(1); Concat O(ΣW·H).
package raster
