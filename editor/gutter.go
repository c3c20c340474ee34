package editor

import "fmt"

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprint(lineCount))
}

// gutterWidth is the width of the line-number column plus its separator.
func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func (m *Model) renderGutter(row, digits int, active bool) string {
	st := m.cfg.Style.LineNum
	if active {
		st = m.cfg.Style.LineNumActive
	}
	return st.Render(fmt.Sprintf("%*d", digits, row+1)) + m.cfg.Style.Gutter.Render(" ")
}
