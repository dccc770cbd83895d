package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ArthurGoodman/text-recognizer/glyphs"
	"github.com/ArthurGoodman/text-recognizer/raster"
)

// art builds a grid from ASCII rows: '#' is ink (0), anything else paper (255).
func art(t testing.TB, rows ...string) *raster.Grid {
	t.Helper()
	vals := make([][]uint8, len(rows))
	for y, r := range rows {
		vals[y] = make([]uint8, len(r))
		for x := range r {
			if r[x] == '#' {
				vals[y][x] = raster.Black
			} else {
				vals[y][x] = raster.White
			}
		}
	}
	g, err := raster.NewGrid(vals)
	require.NoError(t, err)

	return g
}

// abcCatalog loads A (2 wide), B (3 wide), C (1 wide), all 3 tall; the blank is index 3.
//
//	A  B   C
//	#. ### #
//	## #.# #
//	#. ### #
func abcCatalog(t testing.TB) *glyphs.Catalog {
	t.Helper()
	cat, err := glyphs.Load([]rune("ABC"), glyphs.MapResolver{
		'A': art(t, "#.", "##", "#."),
		'B': art(t, "###", "#.#", "###"),
		'C': art(t, "#", "#", "#"),
	})
	require.NoError(t, err)

	return cat
}

// strip concatenates catalog templates by symbol, ' ' selecting the blank.
func strip(t testing.TB, cat *glyphs.Catalog, text string) *raster.Grid {
	t.Helper()
	parts := make([]*raster.Grid, 0, len(text))
	for _, r := range text {
		i := cat.BlankIndex()
		if r != glyphs.Blank {
			i = cat.Index(r)
			require.GreaterOrEqual(t, i, 0, "symbol %q not in catalog", r)
		}
		parts = append(parts, cat.Template(i).Grid)
	}
	g, err := raster.Concat(parts...)
	require.NoError(t, err)

	return g
}
