package bmp

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pxcland/fonttobin/internal/bitmap"
)

// The writer emits a 14-byte file header, a 40-byte BITMAPINFOHEADER and a
// fixed 2-colour palette, so pixel data always starts at byte 62.
const (
	fileHeaderLen  = 14
	infoHeaderLen  = 40
	paletteLen     = 8
	pixelDataStart = fileHeaderLen + infoHeaderLen + paletteLen
)

// Encode writes b as an uncompressed 1-bpp BMP. Palette index 0 is white
// and index 1 is black, so set bits read back as ink pixels.
func Encode(w io.Writer, b bitmap.Bitmap) error {
	width, height := b.Width(), b.Height()
	stride := rowSize(width)

	header := make([]byte, pixelDataStart)
	header[0], header[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(header[0x02:], uint32(pixelDataStart+stride*height))
	binary.LittleEndian.PutUint32(header[offPixelData:], pixelDataStart)
	binary.LittleEndian.PutUint32(header[0x0E:], infoHeaderLen)
	binary.LittleEndian.PutUint32(header[offWidth:], uint32(width))
	binary.LittleEndian.PutUint32(header[offHeight:], uint32(height))
	binary.LittleEndian.PutUint16(header[0x1A:], 1) // colour planes
	binary.LittleEndian.PutUint16(header[offBitCount:], 1)
	binary.LittleEndian.PutUint32(header[0x22:], uint32(stride*height))
	binary.LittleEndian.PutUint32(header[0x2E:], 2) // colours used
	// palette entry 0: white, entry 1 stays zeroed (black)
	header[0x36], header[0x37], header[0x38] = 0xFF, 0xFF, 0xFF

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("Couldn't write bitmap header:\n%w", err)
	}

	row := make([]byte, stride)
	for y := height - 1; y >= 0; y-- {
		clear(row)
		for x := 0; x < width; x++ {
			if b.GetBit(x, y) != 0 {
				row[x/8] |= 1 << (7 - x%8)
			}
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("Couldn't write pixel row %d:\n%w", y, err)
		}
	}

	return nil
}
