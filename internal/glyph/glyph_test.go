package glyph

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/pxcland/fonttobin/internal/bitmap"
)

func mustGeometry(t *testing.T, width int, height int) Geometry {
	t.Helper()
	g, err := GeometryFor(width, height)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// sheetFromCells builds a word-packed sheet where the cell for each code
// is filled from the given per-code scanline patterns. Patterns hold
// CharWidth bits per row, leftmost pixel in bit CharWidth-1.
func sheetFromCells(t *testing.T, g Geometry, patterns map[int][]uint32) *bitmap.WordBitmap {
	t.Helper()
	width, height := g.CharWidth*Columns, g.CharHeight*2
	pixels := make([][]byte, height)
	for y := 0; y < height; y++ {
		pixels[y] = make([]byte, width)
	}
	for code, rows := range patterns {
		col, row := code%Columns, code/Columns
		for y, v := range rows {
			for x := 0; x < g.CharWidth; x++ {
				pixels[row*g.CharHeight+y][col*g.CharWidth+x] = byte((v >> (g.CharWidth - 1 - x)) & 1)
			}
		}
	}

	pix, err := bitmap.FromRows(pixels)
	if err != nil {
		t.Fatal(err)
	}
	return bitmap.Pack(pix)
}

func TestGeometryFor(t *testing.T) {
	g := mustGeometry(t, 512, 16)
	if g.CharWidth != 8 || g.CharHeight != 8 || g.WordsPerRow != 16 {
		t.Errorf("unexpected geometry for 512x16: %+v", g)
	}

	bad := []struct{ width, height int }{
		{100, 16},     // width not a multiple of 64
		{512, 15},     // odd height
		{0, 16},       // degenerate
		{64 * 33, 16}, // 33-pixel glyphs exceed a word
	}
	for _, c := range bad {
		if _, err := GeometryFor(c.width, c.height); err == nil {
			t.Errorf("GeometryFor(%d, %d) should have failed", c.width, c.height)
		}
	}
}

func TestBitOffsetFirstGlyphIsZero(t *testing.T) {
	for _, g := range []Geometry{
		mustGeometry(t, 512, 16),
		mustGeometry(t, 64, 2),
		mustGeometry(t, 32*64, 64),
	} {
		if got := g.BitOffset(0); got != 0 {
			t.Errorf("BitOffset(0) = %d for %+v, want 0", got, g)
		}
	}
}

func TestBitOffsetBottomHalf(t *testing.T) {
	g := mustGeometry(t, 6*64, 24)
	halfImage := g.CharHeight * g.WordsPerRow * 32
	for c := 0; c < Columns; c++ {
		top, bottom := g.BitOffset(c), g.BitOffset(c+Columns)
		if bottom != top+halfImage {
			t.Errorf("BitOffset(%d) = %d, want BitOffset(%d) + %d = %d", c+Columns, bottom, c, halfImage, top+halfImage)
		}
	}
}

func TestAssembleAllOnes(t *testing.T) {
	g := mustGeometry(t, 512, 16)
	pixels := make([][]byte, 16)
	for y := range pixels {
		pixels[y] = make([]byte, 512)
		for x := range pixels[y] {
			pixels[y][x] = 1
		}
	}
	pix, err := bitmap.FromRows(pixels)
	if err != nil {
		t.Fatal(err)
	}
	sheet := bitmap.Pack(pix)

	rows := make([]uint32, g.CharHeight)
	for code := 0; code < Count; code++ {
		Assemble(sheet, g, code, rows)
		for y, v := range rows {
			if v != 0xFF {
				t.Fatalf("code %d row %d = %#x, want 0xff", code, y, v)
			}
		}
	}
}

func TestAssembleAllZeros(t *testing.T) {
	g := mustGeometry(t, 512, 16)
	sheet := bitmap.New(512, 16)

	rows := make([]uint32, g.CharHeight)
	for code := 0; code < Count; code++ {
		Assemble(sheet, g, code, rows)
		for y, v := range rows {
			if v != 0 {
				t.Fatalf("code %d row %d = %#x, want 0", code, y, v)
			}
		}
	}
}

func TestAssembleStraddlingAlternatingPattern(t *testing.T) {
	// 6-pixel glyphs: column 5 starts at bit 30, so its scanlines span
	// bits 30..35 and exercise the two-word combination path.
	g := mustGeometry(t, 6*64, 8)
	const code = 5
	if off := g.BitOffset(code) % 32; off+g.CharWidth <= 32 {
		t.Fatalf("column for code %d starts at word offset %d and does not straddle", code, off)
	}

	pattern := []uint32{0b101010, 0b010101, 0b101010, 0b010101}
	sheet := sheetFromCells(t, g, map[int][]uint32{code: pattern})

	rows := make([]uint32, g.CharHeight)
	Assemble(sheet, g, code, rows)
	for y, want := range pattern {
		if rows[y] != want {
			t.Errorf("row %d = %06b, want %06b", y, rows[y], want)
		}
	}
}

func TestAssembleRandomSheets(t *testing.T) {
	const testCaseCount = 10

	for i := 0; i < testCaseCount; i++ {
		charWidth, charHeight := 1+rand.Intn(MaxCharWidth), 1+rand.Intn(16)
		t.Run(fmt.Sprintf("test %v: %dx%d cells", i, charWidth, charHeight), func(t *testing.T) {
			g := mustGeometry(t, charWidth*Columns, charHeight*2)

			patterns := make(map[int][]uint32, Count)
			for code := 0; code < Count; code++ {
				rows := make([]uint32, charHeight)
				for y := range rows {
					rows[y] = rand.Uint32() & (0xFFFFFFFF >> (32 - charWidth))
				}
				patterns[code] = rows
			}
			sheet := sheetFromCells(t, g, patterns)

			rows := make([]uint32, g.CharHeight)
			for code := 0; code < Count; code++ {
				Assemble(sheet, g, code, rows)
				for y, v := range rows {
					if v != patterns[code][y] {
						t.Fatalf("code %d row %d = %#x, want %#x", code, y, v, patterns[code][y])
					}
				}
			}
		})
	}
}
