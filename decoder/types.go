// SPDX-License-Identifier: MIT

package decoder

import (
	"errors"
	"log/slog"

	"github.com/ArthurGoodman/text-recognizer/costmatrix"
	"github.com/ArthurGoodman/text-recognizer/semiring"
)

// Sentinel errors returned by the decoder. An empty catalog is reported with
// glyphs.ErrEmptyCatalog.
var (
	// ErrNoCandidatePath indicates no segmentation explains the strip up to
	// the requested column, e.g. the strip is narrower than every template.
	ErrNoCandidatePath = errors.New("decoder: no candidate path")

	// ErrNilInput indicates a nil strip, cost matrix or semiring.
	ErrNilInput = errors.New("decoder: nil input")

	// ErrBadWidths indicates template widths that disagree with the cost matrix.
	ErrBadWidths = errors.New("decoder: template widths do not match the cost matrix")

	// ErrBadK indicates a top-K request with K < 1.
	ErrBadK = errors.New("decoder: k must be >= 1")

	// ErrOutOfRange indicates a column, template or path index outside its range.
	ErrOutOfRange = errors.New("decoder: index out of range")

	// ErrRowEvicted indicates a lattice row that RollingRows mode no longer holds.
	ErrRowEvicted = errors.New("decoder: lattice row evicted in RollingRows mode")

	// ErrBadMemoryMode indicates an unknown MemoryMode value.
	ErrBadMemoryMode = errors.New("decoder: unknown memory mode")
)

// MemoryMode controls how many lattice rows are retained.
//
//   - FullTable: keep every column's row; Cell answers for all columns.
//     Memory: O(W·T).
//   - RollingRows: keep only the last MaxWidth+1 rows, which is all the
//     recurrence reads. Reconstruction is unaffected; Cell answers only for
//     retained columns. Memory: O(MaxWidth·T).
type MemoryMode int

const (
	// FullTable stores all rows.
	FullTable MemoryMode = iota

	// RollingRows stores a ring of MaxWidth+1 rows.
	RollingRows
)

// String returns the mode name.
func (m MemoryMode) String() string {
	switch m {
	case FullTable:
		return "full"
	case RollingRows:
		return "rolling"
	default:
		return "unknown"
	}
}

// Options configures a Decoder and Solve.
//
// MemoryMode   – lattice storage (default FullTable).
// MatrixOptions – forwarded to costmatrix.Build (e.g. worker count).
// Logger       – receives Debug records for each pipeline stage
// (default discards everything).
type Options struct {
	MemoryMode    MemoryMode
	MatrixOptions []costmatrix.Option
	Logger        *slog.Logger
}

// Option represents a functional option for configuring the decoder.
type Option func(*Options)

// DefaultOptions returns FullTable storage, default cost matrix options and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		MemoryMode: FullTable,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithMemoryMode selects lattice storage. Panics on an unknown mode.
func WithMemoryMode(mode MemoryMode) Option {
	if mode != FullTable && mode != RollingRows {
		panic(ErrBadMemoryMode.Error())
	}

	return func(o *Options) {
		o.MemoryMode = mode
	}
}

// WithWorkers bounds the cost matrix build concurrency.
// Panics if n < 1 (see costmatrix.WithWorkers).
func WithWorkers(n int) Option {
	mo := costmatrix.WithWorkers(n)

	return func(o *Options) {
		o.MatrixOptions = append(o.MatrixOptions, mo)
	}
}

// WithLogger routes stage logging to l. A nil l keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Reading is one decoded interpretation of a strip.
//
// Text – decoded characters, blank runs collapsed to one space.
// Path – template indices left to right.
// Cost – accumulated cost of the path.
// End  – last strip column the path explains.
type Reading[V semiring.Number] struct {
	Text string
	Path []int
	Cost V
	End  int
}
