// SPDX-License-Identifier: MIT

package glyphs

import (
	"fmt"

	"github.com/ArthurGoodman/text-recognizer/raster"
)

// Blank is the symbol of the synthesized space template.
const Blank = ' '

// Template is one reference grid and the symbol it stands for.
type Template struct {
	Symbol rune
	Grid   *raster.Grid
}

// Width returns the template width in columns.
func (t Template) Width() int { return t.Grid.Width() }

// Catalog is an ordered, immutable set of templates sharing one height.
// The last template is always the blank.
type Catalog struct {
	templates []Template
	widths    []int
	height    int
	minW      int
	maxW      int
}

// Load resolves every symbol through r, in order, and appends the blank
// template.
//
// Validation (in order):
//  1. symbols must be non-empty (ErrEmptyCatalog).
//  2. no symbol may be Blank or repeat (ErrTemplateLoad wrapping
//     ErrBlankSymbol / ErrDuplicateSymbol).
//  3. r must resolve every symbol (ErrTemplateLoad wrapping the cause).
//  4. every template must be non-empty and share the first one's height
//     (ErrTemplateLoad wrapping ErrEmptyTemplate / ErrInconsistentHeight).
//
// Complexity: O(N) resolver calls plus O(H) for the blank.
func Load(symbols []rune, r Resolver) (*Catalog, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyCatalog
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil resolver", ErrTemplateLoad)
	}

	seen := make(map[rune]struct{}, len(symbols))
	templates := make([]Template, 0, len(symbols)+1)
	var sym rune
	for _, sym = range symbols {
		if sym == Blank {
			return nil, fmt.Errorf("%w: %w", ErrTemplateLoad, ErrBlankSymbol)
		}
		if _, dup := seen[sym]; dup {
			return nil, fmt.Errorf("%w: symbol %q: %w", ErrTemplateLoad, sym, ErrDuplicateSymbol)
		}
		seen[sym] = struct{}{}

		g, err := r.Resolve(sym)
		if err != nil {
			return nil, fmt.Errorf("%w: symbol %q: %w", ErrTemplateLoad, sym, err)
		}
		if g == nil || g.Width() == 0 {
			return nil, fmt.Errorf("%w: symbol %q: %w", ErrTemplateLoad, sym, ErrEmptyTemplate)
		}
		if len(templates) > 0 && g.Height() != templates[0].Grid.Height() {
			return nil, fmt.Errorf("%w: symbol %q has height %d, want %d: %w",
				ErrTemplateLoad, sym, g.Height(), templates[0].Grid.Height(), ErrInconsistentHeight)
		}
		templates = append(templates, Template{Symbol: sym, Grid: g})
	}

	h := templates[0].Grid.Height()
	blank, err := raster.Filled(1, h, raster.White)
	if err != nil {
		return nil, fmt.Errorf("%w: blank template: %w", ErrTemplateLoad, err)
	}
	templates = append(templates, Template{Symbol: Blank, Grid: blank})

	return newCatalog(templates), nil
}

// newCatalog caches the width table and extrema.
func newCatalog(templates []Template) *Catalog {
	c := &Catalog{
		templates: templates,
		widths:    make([]int, len(templates)),
		height:    templates[0].Grid.Height(),
		minW:      templates[0].Width(),
		maxW:      templates[0].Width(),
	}
	for i, t := range templates {
		w := t.Width()
		c.widths[i] = w
		if w < c.minW {
			c.minW = w
		}
		if w > c.maxW {
			c.maxW = w
		}
	}

	return c
}

// Len returns the number of templates including the blank.
func (c *Catalog) Len() int { return len(c.templates) }

// Symbols returns the number of loaded (non-blank) symbols.
func (c *Catalog) Symbols() int { return len(c.templates) - 1 }

// BlankIndex returns the index of the blank template.
func (c *Catalog) BlankIndex() int { return len(c.templates) - 1 }

// IsBlank reports whether template i is the blank.
func (c *Catalog) IsBlank(i int) bool { return i == c.BlankIndex() }

// Height returns the common template height.
func (c *Catalog) Height() int { return c.height }

// MinWidth returns the narrowest template width (1, because of the blank).
func (c *Catalog) MinWidth() int { return c.minW }

// MaxWidth returns the widest template width.
func (c *Catalog) MaxWidth() int { return c.maxW }

// Template returns template i. Panics if i is out of range.
func (c *Catalog) Template(i int) Template { return c.templates[i] }

// Symbol returns the symbol of template i. Panics if i is out of range.
func (c *Catalog) Symbol(i int) rune { return c.templates[i].Symbol }

// Width returns the width of template i. Panics if i is out of range.
func (c *Catalog) Width(i int) int { return c.widths[i] }

// Widths returns a copy of the per-template widths, indexed like the catalog.
func (c *Catalog) Widths() []int {
	out := make([]int, len(c.widths))
	copy(out, c.widths)

	return out
}

// Alphabet returns the loaded symbols in catalog order, without the blank.
func (c *Catalog) Alphabet() []rune {
	out := make([]rune, 0, c.Symbols())
	for _, t := range c.templates[:c.Symbols()] {
		out = append(out, t.Symbol)
	}

	return out
}

// Index returns the catalog index of sym, or -1.
func (c *Catalog) Index(sym rune) int {
	for i, t := range c.templates {
		if t.Symbol == sym {
			return i
		}
	}

	return -1
}
