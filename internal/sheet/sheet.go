// Package sheet renders template font sheets from the built-in Go fonts
// and preview images of decoded sheets.
package sheet

import (
	"fmt"
	"image"
	"image/color"
	"unicode"

	"github.com/makeworld-the-better-one/dither/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/pxcland/fonttobin/internal/bitmap"
	"github.com/pxcland/fonttobin/internal/glyph"
)

// Generate renders the 128-glyph ASCII grid from the built-in gomono face
// into a 2-colour bitmap with the given cell geometry: 64 glyphs across
// the top half, 64 across the bottom, no padding between cells. Control
// characters are left blank. The result is meant as an editable starting
// point, not a finished font.
func Generate(cellWidth int, cellHeight int) (bitmap.Bitmap, error) {
	if cellWidth < 1 || cellWidth > glyph.MaxCharWidth {
		return nil, fmt.Errorf("cell width %d out of range 1..%d", cellWidth, glyph.MaxCharWidth)
	}
	if cellHeight < 1 {
		return nil, fmt.Errorf("cell height %d must be positive", cellHeight)
	}

	img := image.NewGray(image.Rect(0, 0, cellWidth*glyph.Columns, cellHeight*2))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}

	face, err := fittedFace(cellWidth, cellHeight)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	for code := 0; code < glyph.Count; code++ {
		if !unicode.IsPrint(rune(code)) {
			continue
		}
		col, row := code%glyph.Columns, code/glyph.Columns
		cell := image.Rect(col*cellWidth, row*cellHeight, (col+1)*cellWidth, (row+1)*cellHeight)
		// clip drawing to the cell so a wide glyph can't bleed into its neighbour
		d.Dst = img.SubImage(cell).(*image.Gray)
		d.Dot = fixed.Point26_6{X: fixed.I(cell.Min.X), Y: fixed.I(cell.Min.Y + ascent)}
		d.DrawString(string(rune(code)))
	}

	// reduce to the two sheet colours
	palette := []color.Color{color.Black, color.White}
	ditherer := dither.NewDitherer(palette)
	ditherer.Matrix = dither.FloydSteinberg
	ditherer.Serpentine = true
	ditheredImage := ditherer.DitherPaletted(img)

	return bitmap.FromPaletted(ditheredImage)
}

// fittedFace loads gomono at the largest size whose glyphs fit the cell,
// both in advance width and in line height.
func fittedFace(cellWidth int, cellHeight int) (font.Face, error) {
	parsedFont, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("Couldn't parse built-in font:\n%w", err)
	}

	for size := float64(cellHeight); size >= 1; size-- {
		face, err := opentype.NewFace(parsedFont, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("Couldn't create font face:\n%w", err)
		}
		if font.MeasureString(face, "M").Ceil() <= cellWidth && face.Metrics().Height.Ceil() <= cellHeight {
			return face, nil
		}
		face.Close()
	}

	return nil, fmt.Errorf("no size of the built-in font fits a %dx%d cell", cellWidth, cellHeight)
}
