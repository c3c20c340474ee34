package editor

// visibleRowCount is the number of document rows the viewport shows.
func (m *Model) visibleRowCount() int {
	return max(m.viewport.Height-m.viewport.Style.GetVerticalFrameSize(), 0)
}

// contentWidth is the text area width after the gutter; 0 means unbounded.
func (m *Model) contentWidth() int {
	if m.viewport.Width <= 0 {
		return 0
	}
	return max(m.viewport.Width-m.viewport.Style.GetHorizontalFrameSize()-m.gutterWidth(), 1)
}

// refresh re-renders the viewport content. When follow is set, the
// offsets are first moved so the cursor is visible.
func (m *Model) refresh(follow bool) {
	if m.buf == nil {
		m.viewport.SetContent("")
		return
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()

	y := m.viewport.YOffset
	if follow {
		y = m.followRow(y)
		m.followColumn()
	}
	h := m.visibleRowCount()
	y = clampInt(y, 0, max(m.buf.LineCount()-h, 0))

	m.viewport.SetContent(m.renderContent(y, y+h))
	m.viewport.SetYOffset(y)
}

func (m *Model) followRow(y int) int {
	h := m.visibleRowCount()
	if h <= 0 {
		return y
	}
	row := m.buf.Cursor().Row
	if row < y {
		return row
	}
	if row >= y+h {
		return row - h + 1
	}
	return y
}

func (m *Model) followColumn() {
	w := m.contentWidth()
	if w <= 0 {
		m.xOffset = 0
		return
	}
	cur := m.buf.Cursor()
	cells, lineWidth := m.lineCells(cur.Row)
	x := cellForCol(cells, lineWidth, cur.GraphemeCol)
	if x < m.xOffset {
		m.xOffset = x
	}
	if x >= m.xOffset+w {
		m.xOffset = x - w + 1
	}
	m.xOffset = max(m.xOffset, 0)
}

// ScrollOffset returns the first visible row and the horizontal cell offset.
func (m Model) ScrollOffset() (row, x int) {
	return m.viewport.YOffset, m.xOffset
}
