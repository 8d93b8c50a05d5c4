package bitmap

import (
	"fmt"
	"image"
	"image/color"
)

type ImageBitmap struct {
	image *image.Paletted
	// colorMap[i] represents the bit value of the palette colour at index i.
	// Ink pixels (the darker of the two palette entries) map to 1, matching
	// the font sheet convention that a set bit is a glyph pixel.
	colorMap [2]byte
}

func (b *ImageBitmap) Width() int {
	return b.image.Rect.Dx()
}

func (b *ImageBitmap) Height() int {
	return b.image.Rect.Dy()
}

func (b *ImageBitmap) GetBit(x int, y int) byte {
	return b.colorMap[b.image.ColorIndexAt(x, y)]
}

func FromPaletted(i *image.Paletted) (*ImageBitmap, error) {
	if len(i.Palette) != 2 {
		return nil, fmt.Errorf("Image passed to FromPaletted must have only 2 colours in palette")
	}

	var colorMap [2]byte

	// Determine which of the two colours in the image's palette is closest to black.
	if i.Palette.Index(color.Black) == 0 {
		colorMap = [2]byte{1, 0}
	} else {
		colorMap = [2]byte{0, 1}
	}

	return &ImageBitmap{
		image:    i,
		colorMap: colorMap,
	}, nil
}
