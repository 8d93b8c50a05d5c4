// Package rom serializes glyph scanlines in the text formats understood
// by the Verilog $readmemb and $readmemh memory initialization tasks.
package rom

import (
	"fmt"
	"io"
)

// WriteBinary emits one line per row value: width characters of '0'/'1'
// covering bits width-1 down to 0, most significant first, newline
// terminated.
func WriteBinary(w io.Writer, rows []uint32, width int) error {
	line := make([]byte, width+1)
	line[width] = '\n'
	for _, v := range rows {
		for i := 0; i < width; i++ {
			line[i] = '0' + byte((v>>(width-1-i))&1)
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// WriteHex emits one line per row value, zero-padded to the number of hex
// digits needed to cover width bits.
func WriteHex(w io.Writer, rows []uint32, width int) error {
	digits := (width + 3) / 4
	for _, v := range rows {
		if _, err := fmt.Fprintf(w, "%0*x\n", digits, v); err != nil {
			return err
		}
	}
	return nil
}
