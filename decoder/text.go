// SPDX-License-Identifier: MIT

package decoder

import (
	"fmt"
	"strings"

	"github.com/ArthurGoodman/text-recognizer/glyphs"
)

// Text renders a template path as a string. Each template contributes its
// symbol, except that a run of consecutive blank templates yields a single
// space: the output never contains two spaces in a row.
//
// Errors: ErrNilInput for a nil catalog, ErrOutOfRange for an index outside
// the catalog.
func Text(path []int, cat *glyphs.Catalog) (string, error) {
	if cat == nil {
		return "", ErrNilInput
	}

	var sb strings.Builder
	sb.Grow(len(path))
	inBlank := false
	for pos, t := range path {
		if t < 0 || t >= cat.Len() {
			return "", fmt.Errorf("%w: path[%d] = %d, catalog has %d templates", ErrOutOfRange, pos, t, cat.Len())
		}
		if cat.IsBlank(t) {
			if inBlank {
				continue
			}
			inBlank = true
		} else {
			inBlank = false
		}
		sb.WriteRune(cat.Symbol(t))
	}

	return sb.String(), nil
}
