// Package bmp reads and writes the small subset of the Windows bitmap
// format font sheets use: uncompressed, 1 bit per pixel, palette ignored.
// Only the pixel data offset, dimensions and bit depth are interpreted;
// everything else in the header is trusted.
package bmp

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pxcland/fonttobin/internal/bitmap"
)

// Fixed positions of the header fields we read. The info header is
// assumed to be a BITMAPINFOHEADER, which is what image editors write.
const (
	offPixelData = 0x0A
	offWidth     = 0x12
	offHeight    = 0x16
	offBitCount  = 0x1C
	headerLen    = 0x1E
)

// DecodeSheet loads a 1-bpp bitmap into a word-packed buffer. Pixel rows
// are stored bottom-to-top in the file and are flipped so that row 0 of
// the result is the top scanline. Each group of 4 file bytes becomes one
// word with the leftmost pixel in bit 31.
func DecodeSheet(r io.ReadSeeker) (*bitmap.WordBitmap, error) {
	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("Couldn't read bitmap header:\n%w", err)
	}
	if header[0] != 'B' || header[1] != 'M' {
		return nil, fmt.Errorf("not a BMP file (magic is %q)", header[0:2])
	}

	pixelOffset := int64(binary.LittleEndian.Uint32(header[offPixelData:]))
	width := int(int32(binary.LittleEndian.Uint32(header[offWidth:])))
	height := int(int32(binary.LittleEndian.Uint32(header[offHeight:])))
	bitCount := int(binary.LittleEndian.Uint16(header[offBitCount:]))

	if bitCount != 1 {
		return nil, fmt.Errorf("font sheet must be 1 bit per pixel, header declares %d", bitCount)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bad image dimensions %dx%d", width, height)
	}

	if _, err := r.Seek(pixelOffset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("Couldn't seek to pixel data:\n%w", err)
	}

	stride := wordsPerRow(width)
	words := make([]uint32, stride*height)
	row := make([]byte, rowSize(width))
	// the file stores the bottom row first, so fill the buffer from the last row up
	for y := height - 1; y >= 0; y-- {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, fmt.Errorf("Couldn't read pixel row %d:\n%w", y, err)
		}
		wordsFromRow(words[y*stride:(y+1)*stride], row)
	}

	return bitmap.FromWords(words, width, height)
}

// rowSize is the byte length of one pixel row in the file, padded to a
// 4-byte boundary as the format requires.
func rowSize(width int) int {
	return ((width + 31) / 32) * 4
}

func wordsPerRow(width int) int {
	return rowSize(width) / 4
}

// wordsFromRow reinterprets a row of file bytes as big-endian-ordered bit
// fields. The first byte of a row carries the leftmost 8 pixels MSB-first,
// so it becomes the high byte of its word and the row's first pixel lands
// in bit 31.
func wordsFromRow(dst []uint32, row []byte) {
	for i := range dst {
		dst[i] = binary.BigEndian.Uint32(row[i*4:])
	}
}
