// This file implements the word-packed bitmap representation the glyph
// extractor reads from. Pixels are packed 32 to a uint32, most significant
// bit first, so bit 31 of a word is the visually leftmost pixel of its
// 32-pixel span.

package bitmap

import "fmt"

const bitsPerWord = 32

// a bitmap packed in memory, one row is stride words wide
type WordBitmap struct {
	words                 []uint32
	width, height, stride int
}

// New allocates a zeroed word-packed bitmap. If the width is not a
// multiple of 32 the final word of each row is left-aligned: the row's
// last pixel occupies a high bit and the low bits are padding.
func New(width int, height int) *WordBitmap {
	stride := (width + bitsPerWord - 1) / bitsPerWord
	return &WordBitmap{
		words:  make([]uint32, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// FromWords wraps an already-packed word buffer. The buffer length must
// match the row stride implied by the width.
func FromWords(words []uint32, width int, height int) (*WordBitmap, error) {
	stride := (width + bitsPerWord - 1) / bitsPerWord
	if len(words) != stride*height {
		return nil, fmt.Errorf("word buffer has %d words, %dx%d needs %d", len(words), width, height, stride*height)
	}
	return &WordBitmap{words, width, height, stride}, nil
}

func (b *WordBitmap) Width() int {
	return b.width
}

func (b *WordBitmap) Height() int {
	return b.height
}

// Stride is the number of words per pixel row.
func (b *WordBitmap) Stride() int {
	return b.stride
}

// Gets a single bit from the bitmap at the (x, y) coordinate, returns either 0 or 1
func (b *WordBitmap) GetBit(x int, y int) byte {
	index := (y * b.stride) + (x / bitsPerWord)
	return byte((b.words[index] >> (bitsPerWord - 1 - x%bitsPerWord)) & 1)
}

// ReadBits returns n contiguous pixels starting at the given absolute bit
// position within the flattened word buffer, right-justified, with the
// first pixel in the most significant of the n result bits. n must be
// between 1 and 32; runs wider than a word are not representable.
func (b *WordBitmap) ReadBits(bit int, n int) uint32 {
	word, offset := bit/bitsPerWord, bit%bitsPerWord
	if offset+n <= bitsPerWord {
		mask := uint32(0xFFFFFFFF) >> (bitsPerWord - n)
		return (b.words[word] >> (bitsPerWord - n - offset)) & mask
	}

	// The run straddles a word boundary. Take the low (32-offset) bits of
	// the first word and the high remaining bits of the next, then stitch:
	//   XXXX XXXX XXX1 1111 | 111X XXXX XXXX XXXX
	// wants 1111 1111: shift the tail up by 3 and the head down by 13.
	low := bitsPerWord - offset
	rem := n - low
	tmp1 := b.words[word] & (1<<low - 1)
	tmp2 := b.words[word+1] >> (bitsPerWord - rem)
	return tmp1<<rem | tmp2
}

func (b *WordBitmap) String() string {
	return fmt.Sprintf("WordBitmap(%d,%d)", b.width, b.height)
}

// Pack copies data from any Bitmap implementation into the word-packed
// structure.
func Pack(b Bitmap) *WordBitmap {
	p := New(b.Width(), b.Height())
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			if b.GetBit(x, y) != 0 {
				p.words[(y*p.stride)+(x/bitsPerWord)] |= 1 << (bitsPerWord - 1 - x%bitsPerWord)
			}
		}
	}
	return p
}
