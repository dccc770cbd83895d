package raster_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArthurGoodman/text-recognizer/raster"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]uint8
		err  error
	}{
		{"EmptyRows", [][]uint8{}, raster.ErrEmptyGrid},
		{"EmptyCols", [][]uint8{{}}, raster.ErrEmptyGrid},
		{"NonRectangular", [][]uint8{{1, 2}, {3}}, raster.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := raster.NewGrid(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestNewGrid_DeepCopy(t *testing.T) {
	in := [][]uint8{{1, 2, 3}, {4, 5, 6}}
	g, err := raster.NewGrid(in)
	require.NoError(t, err)
	in[0][0] = 99

	assert.Equal(t, uint8(1), g.At(0, 0))
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, uint8(6), g.At(2, 1))
}

// TestFilled checks shape validation and the zero-width strip.
func TestFilled(t *testing.T) {
	g, err := raster.Filled(3, 2, raster.White)
	require.NoError(t, err)
	assert.Equal(t, []uint8{255, 255, 255, 255, 255, 255}, g.Pixels())

	empty, err := raster.Filled(0, 4, raster.White)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Width())
	assert.Equal(t, 4, empty.Height())

	_, err = raster.Filled(-1, 4, 0)
	assert.ErrorIs(t, err, raster.ErrInvalidDimensions)
	_, err = raster.Filled(2, 0, 0)
	assert.ErrorIs(t, err, raster.ErrInvalidDimensions)
}

// TestFromPixels validates buffer length checking.
func TestFromPixels(t *testing.T) {
	g, err := raster.FromPixels(2, 2, []uint8{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, uint8(3), g.At(0, 1))

	_, err = raster.FromPixels(2, 2, []uint8{1, 2, 3})
	assert.ErrorIs(t, err, raster.ErrInvalidDimensions)
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := raster.NewGrid([][]uint8{{0, 1, 0}, {1, 0, 1}})
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	assert.Panics(t, func() { g.At(3, 0) })
}

// TestCoordinate verifies the row-major index round trip.
func TestCoordinate(t *testing.T) {
	g, err := raster.Filled(4, 3, 0)
	require.NoError(t, err)
	x, y := g.Coordinate(9)
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
}

//----------------------------------------------------------------------------//
// Slicing and joining
//----------------------------------------------------------------------------//

// TestConcat joins three grids and checks every row.
func TestConcat(t *testing.T) {
	a, _ := raster.NewGrid([][]uint8{{1}, {2}})
	b, _ := raster.NewGrid([][]uint8{{3, 4}, {5, 6}})
	c, _ := raster.Filled(0, 2, 0)

	g, err := raster.Concat(a, c, b)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, []uint8{1, 3, 4}, g.Row(0))
	assert.Equal(t, []uint8{2, 5, 6}, g.Row(1))

	tall, _ := raster.Filled(1, 3, 0)
	_, err = raster.Concat(a, tall)
	assert.ErrorIs(t, err, raster.ErrHeightMismatch)

	_, err = raster.Concat()
	assert.ErrorIs(t, err, raster.ErrEmptyGrid)
}

// TestColumns extracts spans and rejects invalid ones.
func TestColumns(t *testing.T) {
	g, _ := raster.NewGrid([][]uint8{{1, 2, 3, 4}, {5, 6, 7, 8}})

	mid, err := g.Columns(1, 3)
	require.NoError(t, err)
	want, _ := raster.NewGrid([][]uint8{{2, 3}, {6, 7}})
	assert.True(t, want.Equal(mid), "got\n%s", mid)

	_, err = g.Columns(3, 5)
	assert.ErrorIs(t, err, raster.ErrOutOfRange)
	_, err = g.Columns(2, 1)
	assert.ErrorIs(t, err, raster.ErrOutOfRange)
}

// TestString renders ink as '#'.
func TestString(t *testing.T) {
	g, _ := raster.NewGrid([][]uint8{{0, 255}, {255, 0}})
	assert.Equal(t, "#.\n.#\n", g.String())
}

//----------------------------------------------------------------------------//
// Image and BMP conversion
//----------------------------------------------------------------------------//

// TestFromImage_RGBA converts a colored image through the gray model.
func TestFromImage_RGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 12, 11))
	img.Set(10, 10, color.White)
	img.Set(11, 10, color.Black)

	g, err := raster.FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, []uint8{255, 0}, g.Pixels())

	_, err = raster.FromImage(image.NewGray(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, raster.ErrEmptyGrid)
}

// TestBMPRoundTrip writes a grid as BMP and reads it back unchanged.
func TestBMPRoundTrip(t *testing.T) {
	g, err := raster.NewGrid([][]uint8{
		{0, 17, 128, 255, 3},
		{255, 254, 1, 0, 90},
		{42, 42, 42, 42, 42},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, raster.WriteBMP(&buf, g))
	back, err := raster.ReadBMP(&buf)
	require.NoError(t, err)
	assert.True(t, g.Equal(back), "round trip mismatch:\nwant %v\ngot  %v", g.Pixels(), back.Pixels())

	path := filepath.Join(t.TempDir(), "g.bmp")
	require.NoError(t, raster.SaveBMP(path, g))
	loaded, err := raster.LoadBMP(path)
	require.NoError(t, err)
	assert.True(t, g.Equal(loaded))
}

// TestReadBMP_Malformed reports a decode error for garbage input.
func TestReadBMP_Malformed(t *testing.T) {
	_, err := raster.ReadBMP(bytes.NewReader([]byte("not a bitmap")))
	assert.Error(t, err)

	_, err = raster.LoadBMP(filepath.Join(t.TempDir(), "missing.bmp"))
	assert.Error(t, err)
}
