// SPDX-License-Identifier: MIT

package raster

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice or image has no samples.
	ErrEmptyGrid = errors.New("raster: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrInvalidDimensions indicates a negative width or a non-positive height.
	ErrInvalidDimensions = errors.New("raster: width must be >= 0 and height > 0")
	// ErrHeightMismatch indicates grids of different heights were combined.
	ErrHeightMismatch = errors.New("raster: grid heights differ")
	// ErrOutOfRange indicates a coordinate or span outside the grid.
	ErrOutOfRange = errors.New("raster: coordinate out of range")
)
