package editor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	graphemeutil "github.com/iw2rmb/quill/internal/grapheme"
)

// cell is the on-screen form of one grapheme cluster at a given column.
type cell struct {
	text  string
	start int
	width int
}

// layoutLine maps the clusters of one logical line to terminal cells.
// Tabs expand to the next stop; C0 controls use caret notation (^M).
func layoutLine(clusters []string, tabWidth int) (cells []cell, width int) {
	cells = make([]cell, 0, len(clusters))
	col := 0
	for _, g := range clusters {
		text, w := displayCluster(g, col, tabWidth)
		cells = append(cells, cell{text: text, start: col, width: w})
		col += w
	}
	return cells, col
}

func displayCluster(g string, col, tabWidth int) (string, int) {
	if g == "\t" {
		w := tabAdvance(col, tabWidth)
		return strings.Repeat(" ", w), w
	}
	if r, size := utf8.DecodeRuneInString(g); size == len(g) && unicode.IsControl(r) {
		if r == 0x7f {
			return "^?", 2
		}
		if r < 0x20 {
			return "^" + string(r+'@'), 2
		}
		return "�", 1
	}
	return g, graphemeutil.Width(g)
}

func tabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - col%tabWidth
}

// colForCell returns the grapheme column whose cell covers x; x past the
// end of the line maps to the line end.
func colForCell(cells []cell, x int) int {
	for i, c := range cells {
		if x < c.start+c.width {
			return i
		}
	}
	return len(cells)
}

// cellForCol returns the starting cell of grapheme column col.
func cellForCol(cells []cell, width, col int) int {
	if col >= 0 && col < len(cells) {
		return cells[col].start
	}
	return width
}
