// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// FromImage converts any image.Image to a Grid using the luminance of
// color.GrayModel. The image's bounds are translated to origin (0,0).
// Returns ErrEmptyGrid for an image without pixels.
// Complexity: O(W×H).
func FromImage(img image.Image) (*Grid, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	pix := make([]uint8, w*h)
	if gray, ok := img.(*image.Gray); ok {
		// fast path: copy rows straight out of the backing buffer
		for y := 0; y < h; y++ {
			start := gray.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[y*w:(y+1)*w], gray.Pix[start:start+w])
		}
	} else {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
				pix[y*w+x] = c.Y
			}
		}
	}

	return &Grid{width: w, height: h, pix: pix}, nil
}

// Image returns the grid as a freshly allocated *image.Gray.
func (g *Grid) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+g.width], g.Row(y))
	}

	return img
}

// ReadBMP decodes a BMP stream into a Grid.
func ReadBMP(r io.Reader) (*Grid, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("raster: decode bmp: %w", err)
	}

	return FromImage(img)
}

// WriteBMP encodes g as an 8-bit grayscale BMP.
func WriteBMP(w io.Writer, g *Grid) error {
	if g.width == 0 {
		return ErrEmptyGrid
	}
	if err := bmp.Encode(w, g.Image()); err != nil {
		return fmt.Errorf("raster: encode bmp: %w", err)
	}

	return nil
}

// LoadBMP reads the BMP file at path.
func LoadBMP(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	g, err := ReadBMP(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// SaveBMP writes g to path, creating or truncating the file.
func SaveBMP(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteBMP(f, g); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
