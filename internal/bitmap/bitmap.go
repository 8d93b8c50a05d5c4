// This package defines an interface for a simple 1-bit-per-pixel bitmap
// that has a width, height, and can get bits by (x,y) coordinate.
// It also defines a simple implementation PixelBitmap that stores each pixel
// in a byte in a 2D array format, which is used to test the WordBitmap impl,
// and WordBitmap itself, the packed representation the glyph extractor
// addresses by absolute bit position.
package bitmap

import "fmt"

type Bitmap interface {
	Width() int
	Height() int
	GetBit(x int, y int) byte
}

type PixelBitmap struct {
	pixels        [][]byte
	width, height int
}

func (b *PixelBitmap) Width() int {
	return b.width
}

func (b *PixelBitmap) Height() int {
	return b.height
}

func (b *PixelBitmap) GetBit(x int, y int) byte {
	return b.pixels[y][x]
}

func (b *PixelBitmap) String() string {
	return fmt.Sprintf("PixelBitmap(%d,%d)", b.width, b.height)
}

// FromRows builds a PixelBitmap from rows of one-byte-per-pixel data.
// Every row must have the same length.
func FromRows(pixels [][]byte) (*PixelBitmap, error) {
	height := len(pixels)
	if height == 0 {
		return nil, fmt.Errorf("bitmap needs at least one row")
	}
	width := len(pixels[0])
	if width == 0 {
		return nil, fmt.Errorf("bitmap needs at least one column")
	}
	for y, row := range pixels {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d pixels, expecting %d", y, len(row), width)
		}
	}

	return &PixelBitmap{
		pixels: pixels,
		width:  width,
		height: height,
	}, nil
}
