// SPDX-License-Identifier: MIT

// Package glyphs holds the template catalog: one fixed-height intensity grid
// per alphabet symbol plus a synthesized blank template.
//
// Index space:
//
//	0 .. N-1  loaded symbols, in the order passed to Load
//	N         the blank (space) template: width 1, every sample 255
//
// That index space is used by the cost matrix, the DP lattice and the decoded
// path alike. A Catalog is immutable once loaded.
//
// Templates come from a Resolver:
//
//   - DirResolver: one BMP file per symbol (<dir>/<symbol>.bmp)
//   - FontResolver: rendered on the fly from a bitmap font via package synth
//   - MapResolver: in-memory grids
//
// A YAML Manifest names the alphabet and the resolver to use.
//
// Errors (sentinel):
//
//   - ErrEmptyCatalog: no symbols to load.
//   - ErrTemplateLoad: any failure while resolving a template; wraps the cause
//     (ErrBlankSymbol, ErrDuplicateSymbol, ErrInconsistentHeight,
//     ErrEmptyTemplate, or the resolver's own error).
package glyphs
