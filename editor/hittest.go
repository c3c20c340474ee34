package editor

import (
	"github.com/iw2rmb/quill/buffer"

	graphemeutil "github.com/iw2rmb/quill/internal/grapheme"
)

func (m *Model) lineCells(row int) ([]cell, int) {
	if m.buf == nil || row < 0 || row >= m.buf.LineCount() {
		return nil, 0
	}
	return layoutLine(graphemeutil.Split(m.buf.Line(row)), m.cfg.tabWidth())
}

// screenToDocPos maps editor-local cell coordinates to a document position.
// (0,0) is the top-left cell of the editor including the gutter. Clicks in
// the gutter map to the start of the line; positions past the last row or
// past a line end clamp to the nearest valid position.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	if m.buf == nil {
		return buffer.Pos{}
	}
	row := clampInt(m.viewport.YOffset+max(y, 0), 0, m.buf.LineCount()-1)

	gw := m.gutterWidth()
	if x < gw {
		return buffer.Pos{Row: row}
	}
	cells, _ := m.lineCells(row)
	return buffer.Pos{Row: row, GraphemeCol: colForCell(cells, x-gw+m.xOffset)}
}

// docToScreenPos is the inverse of screenToDocPos. ok is false when pos is
// scrolled out of view.
func (m *Model) docToScreenPos(pos buffer.Pos) (x, y int, ok bool) {
	if m.buf == nil {
		return 0, 0, false
	}
	row := clampInt(pos.Row, 0, m.buf.LineCount()-1)
	cells, width := m.lineCells(row)
	x = cellForCol(cells, width, pos.GraphemeCol) - m.xOffset + m.gutterWidth()
	y = row - m.viewport.YOffset

	if y < 0 || y >= m.visibleRowCount() {
		return x, y, false
	}
	if x < m.gutterWidth() || (m.viewport.Width > 0 && x >= m.viewport.Width) {
		return x, y, false
	}
	return x, y, true
}
