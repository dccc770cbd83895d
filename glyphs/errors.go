// SPDX-License-Identifier: MIT

package glyphs

import "errors"

var (
	// ErrEmptyCatalog indicates there are no symbol templates to decode with.
	ErrEmptyCatalog = errors.New("glyphs: catalog has no symbol templates")

	// ErrTemplateLoad indicates a glyph template is missing, malformed or
	// inconsistent with the rest of the catalog.
	ErrTemplateLoad = errors.New("glyphs: template load failed")

	// ErrBlankSymbol indicates the blank rune was passed as a loadable symbol;
	// the blank template is always synthesized.
	ErrBlankSymbol = errors.New("glyphs: blank symbol is synthesized and cannot be loaded")

	// ErrDuplicateSymbol indicates a symbol appears twice in the alphabet.
	ErrDuplicateSymbol = errors.New("glyphs: duplicate symbol")

	// ErrInconsistentHeight indicates a template's height differs from the first template's.
	ErrInconsistentHeight = errors.New("glyphs: template heights differ")

	// ErrEmptyTemplate indicates a resolver produced a zero-width template.
	ErrEmptyTemplate = errors.New("glyphs: template has zero width")

	// ErrNoTemplate indicates a resolver has no template for a symbol.
	ErrNoTemplate = errors.New("glyphs: no template for symbol")

	// ErrBadManifest indicates a manifest that cannot be turned into a catalog.
	ErrBadManifest = errors.New("glyphs: invalid manifest")
)
