// Package glyph maps ASCII codes onto the cells of a 64x2 font sheet and
// extracts their scanlines from a word-packed pixel buffer.
package glyph

import (
	"fmt"

	"github.com/pxcland/fonttobin/internal/bitmap"
)

const (
	// Count is the number of glyphs on a sheet, one per ASCII code.
	Count = 128
	// Columns is the number of glyph cells in each of the two sheet rows.
	Columns = 64
	// MaxCharWidth keeps every glyph scanline within a single 32-bit word.
	MaxCharWidth = 32
)

// Geometry is the cell layout of a font sheet, computed once from the
// sheet dimensions and immutable afterwards.
type Geometry struct {
	CharWidth   int // pixels per glyph scanline
	CharHeight  int // scanlines per glyph
	WordsPerRow int // 32-bit words per sheet pixel row
}

// GeometryFor derives the cell geometry from the sheet dimensions. The
// sheet must hold 64 glyphs on its top half and 64 on its bottom half with
// no padding between cells, which also keeps every pixel row word-aligned.
func GeometryFor(imageWidth int, imageHeight int) (Geometry, error) {
	if imageWidth <= 0 || imageWidth%Columns != 0 {
		return Geometry{}, fmt.Errorf("sheet width %d is not a positive multiple of %d", imageWidth, Columns)
	}
	if imageHeight <= 0 || imageHeight%2 != 0 {
		return Geometry{}, fmt.Errorf("sheet height %d is not a positive multiple of 2", imageHeight)
	}

	g := Geometry{
		CharWidth:   imageWidth / Columns,
		CharHeight:  imageHeight / 2,
		WordsPerRow: imageWidth / 32,
	}
	if g.CharWidth > MaxCharWidth {
		return Geometry{}, fmt.Errorf("glyphs are %d pixels wide, maximum is %d", g.CharWidth, MaxCharWidth)
	}
	return g, nil
}

// BitOffset is the absolute bit position, within the flattened sheet
// buffer, of the top-left pixel of the glyph for code. Codes 0-63 select a
// column of the top sheet row; codes 64-127 jump half an image of
// scanlines down to the bottom row.
func (g Geometry) BitOffset(code int) int {
	bit := (code % Columns) * g.CharWidth
	if code >= Columns {
		bit += g.CharHeight * g.WordsPerRow * 32
	}
	return bit
}

// Assemble extracts the scanlines of one glyph, top to bottom. Each row
// value holds its scanline's pixels right-justified, leftmost pixel in bit
// CharWidth-1. dst must hold CharHeight values; it is overwritten and may
// be reused across glyphs.
func Assemble(sheet *bitmap.WordBitmap, g Geometry, code int, dst []uint32) {
	bit := g.BitOffset(code)
	for i := range dst {
		dst[i] = sheet.ReadBits(bit, g.CharWidth)
		// advance one full sheet pixel row
		bit += g.WordsPerRow * 32
	}
}
