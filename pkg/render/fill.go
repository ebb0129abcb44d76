// Package render turns a wrapped, planned table into final text. Filling
// pads every wrapped cell to a rectangular block; the layouts compose the
// resulting block grid as pure functions of (blocks, widths).
package render

import (
	"strings"

	"github.com/coltab/coltab/pkg/width"
)

// Block is a cell wrapped and padded to a rectangular (H, W) shape: every
// entry in Lines has the same display width W (trailing spaces added),
// except a line already wider than W, which is kept as is, and there are
// exactly H entries.
type Block struct {
	Lines []string
	W     int
}

// FillRow wraps every cell in a row at its column's width and pads all of
// that row's blocks to the row's tallest block, H = max over columns of
// len(wrap(cell)).
func FillRow(row []string, widths []int, opts width.Options) []Block {
	wrapped := make([][]string, len(row))
	h := 0
	for j, cell := range row {
		w := widths[j]
		lines := width.Wrap(cell, w, opts)
		wrapped[j] = lines
		if len(lines) > h {
			h = len(lines)
		}
	}

	blocks := make([]Block, len(row))
	for j, lines := range wrapped {
		w := widths[j]
		padded := make([]string, h)
		for i := 0; i < h; i++ {
			if i < len(lines) {
				padded[i] = padTo(lines[i], w)
			} else {
				padded[i] = strings.Repeat(" ", w)
			}
		}
		blocks[j] = Block{Lines: padded, W: w}
	}
	return blocks
}

// padTo right-pads s with spaces until its display width reaches w. If s is
// already over-width (an OverWidth condition the caller is responsible for
// reporting), it is returned unpadded rather than truncated.
func padTo(s string, w int) string {
	dw := width.DW(s)
	if dw >= w {
		return s
	}
	return s + strings.Repeat(" ", w-dw)
}
