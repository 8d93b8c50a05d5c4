// fonttobin converts a 2-colour BMP image of an ASCII character set into a
// text file of charWidth-bit rows, one line per glyph scanline, for use
// with $readmemb (or $readmemh with -hex) in Verilog.
//
// The sheet must have the first 64 characters on the top row and the last
// 64 on the bottom row, with no space between characters, and characters
// no wider than 32 pixels. The first output line is the first scanline of
// ASCII character 0x00; the last line is the last scanline of 0x7F.
//
//	fonttobin font.bmp
//
// writes font.bin to the current directory. A starting sheet can be
// rendered from the built-in Go mono font:
//
//	fonttobin -gen -cell-width 8 -cell-height 16 sheet.bmp
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pxcland/fonttobin/internal/bitmap"
	"github.com/pxcland/fonttobin/internal/bmp"
	"github.com/pxcland/fonttobin/internal/glyph"
	"github.com/pxcland/fonttobin/internal/rom"
	"github.com/pxcland/fonttobin/internal/sheet"
)

var (
	outName      = flag.String("o", "", "output path (default font.bin, or font.hex with -hex)")
	hexRows      = flag.Bool("hex", false, "write $readmemh hex rows instead of $readmemb binary rows")
	previewName  = flag.String("preview", "", "also write a PNG preview of the decoded sheet")
	previewScale = flag.Int("preview-scale", 4, "magnification factor for -preview")
	genSheet     = flag.Bool("gen", false, "generate a template font sheet BMP instead of converting")
	cellWidth    = flag.Int("cell-width", 8, "glyph cell width for -gen, in pixels (max 32)")
	cellHeight   = flag.Int("cell-height", 16, "glyph cell height for -gen, in pixels")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] font.bmp\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "       %s -gen [flags] sheet.bmp\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one file argument")
		flag.Usage()
		os.Exit(2)
	}

	if *genSheet {
		if err := generate(flag.Arg(0), *cellWidth, *cellHeight); err != nil {
			slog.Error("Couldn't generate font sheet", "dest", flag.Arg(0), "err", err)
			os.Exit(1)
		}
		return
	}

	out := *outName
	if out == "" {
		if *hexRows {
			out = "font.hex"
		} else {
			out = "font.bin"
		}
	}
	if err := convert(flag.Arg(0), out, *hexRows, *previewName, *previewScale); err != nil {
		slog.Error("Couldn't convert font sheet", "src", flag.Arg(0), "err", err)
		os.Exit(1)
	}
}

// convert runs the whole pipeline: decode the sheet, derive the cell
// geometry, and write 128 * charHeight rows to outPath, ASCII code 0
// first, top scanline first within each glyph.
func convert(srcPath string, outPath string, hexFormat bool, previewPath string, scale int) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("Couldn't open source font file %s:\n%w", srcPath, err)
	}
	defer src.Close()

	sheetBitmap, err := bmp.DecodeSheet(src)
	if err != nil {
		return err
	}
	geo, err := glyph.GeometryFor(sheetBitmap.Width(), sheetBitmap.Height())
	if err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d sheet, %dx%d glyph cells\n",
		srcPath, sheetBitmap.Width(), sheetBitmap.Height(), geo.CharWidth, geo.CharHeight)

	dst, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("Couldn't create destination file %s:\n%w", outPath, err)
	}
	defer dst.Close()

	w := bufio.NewWriter(dst)
	rows := make([]uint32, geo.CharHeight)
	for code := 0; code < glyph.Count; code++ {
		glyph.Assemble(sheetBitmap, geo, code, rows)
		if hexFormat {
			err = rom.WriteHex(w, rows, geo.CharWidth)
		} else {
			err = rom.WriteBinary(w, rows, geo.CharWidth)
		}
		if err != nil {
			return fmt.Errorf("Couldn't write rows for character %#x:\n%w", code, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("Couldn't flush destination file %s:\n%w", outPath, err)
	}

	if previewPath != "" {
		if err := writePreview(previewPath, sheetBitmap, scale); err != nil {
			return err
		}
	}
	return nil
}

func writePreview(path string, b bitmap.Bitmap, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Couldn't create preview file %s:\n%w", path, err)
	}
	defer f.Close()

	if err := sheet.WritePreview(f, b, scale); err != nil {
		return fmt.Errorf("Couldn't write preview:\n%w", err)
	}
	return nil
}

func generate(outPath string, cellWidth int, cellHeight int) error {
	b, err := sheet.Generate(cellWidth, cellHeight)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("Couldn't create sheet file %s:\n%w", outPath, err)
	}
	defer f.Close()

	if err := bmp.Encode(f, b); err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d sheet, %dx%d glyph cells\n", outPath, b.Width(), b.Height(), cellWidth, cellHeight)
	return nil
}
