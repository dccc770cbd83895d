// SPDX-License-Identifier: MIT

package costmatrix

import (
	"errors"
	"runtime"
)

// Sentinel errors returned by the costmatrix package.
var (
	// ErrNilInput indicates a nil strip, catalog or semiring.
	ErrNilInput = errors.New("costmatrix: strip, catalog and semiring must be non-nil")

	// ErrHeightMismatch indicates the strip height differs from the catalog height.
	ErrHeightMismatch = errors.New("costmatrix: strip height differs from template height")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("costmatrix: workers must be >= 1")

	// ErrOutOfRange indicates a template index or offset outside the matrix.
	ErrOutOfRange = errors.New("costmatrix: index out of range")
)

// Options configures Build.
//
// Workers – maximum number of templates processed concurrently.
// Default is runtime.GOMAXPROCS(0).
type Options struct {
	Workers int
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns Options with Workers = runtime.GOMAXPROCS(0).
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithWorkers bounds the number of rows computed concurrently.
// Must pass n ≥ 1; smaller values panic with ErrBadWorkers.
func WithWorkers(n int) Option {
	if n < 1 {
		// invalid configuration is a programmer error
		panic(ErrBadWorkers.Error())
	}

	return func(o *Options) {
		o.Workers = n
	}
}
