package sheet

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/pxcland/fonttobin/internal/bitmap"
)

// WritePreview renders the bitmap as a PNG magnified by scale, ink pixels
// black on white. Nearest-neighbour scaling keeps each sheet pixel a crisp
// block so cell contents can be checked by eye.
func WritePreview(w io.Writer, b bitmap.Bitmap, scale int) error {
	if scale < 1 {
		scale = 1
	}

	src := image.NewGray(image.Rect(0, 0, b.Width(), b.Height()))
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.GetBit(x, y) != 0 {
				src.SetGray(x, y, color.Gray{Y: 0x00})
			} else {
				src.SetGray(x, y, color.Gray{Y: 0xFF})
			}
		}
	}

	dst := image.NewGray(image.Rect(0, 0, b.Width()*scale, b.Height()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return png.Encode(w, dst)
}
