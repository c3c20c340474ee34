package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/buffer"
	graphemeutil "github.com/iw2rmb/quill/internal/grapheme"
)

// renderContent renders every document row. Only rows in [hlStart, hlEnd)
// are passed to the highlighter.
func (m *Model) renderContent(hlStart, hlEnd int) string {
	if m.buf == nil {
		return ""
	}
	n := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()

	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(n)
	}

	left := max(m.xOffset, 0)
	right := -1
	if w := m.contentWidth(); w > 0 {
		right = left + w
	}

	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		clusters := graphemeutil.Split(m.buf.Line(row))

		var spans []HighlightSpan
		if row >= hlStart && row < hlEnd {
			spans = m.highlightForLine(row, clusters)
		}

		var sb strings.Builder
		if m.cfg.ShowLineNums {
			sb.WriteString(m.renderGutter(row, digits, m.focused && row == cursor.Row))
		}
		lr := lineRender{
			st:       m.cfg.Style,
			clusters: clusters,
			tabWidth: m.cfg.tabWidth(),
			cursor:   -1,
			spans:    spans,
			left:     left,
			right:    right,
		}
		if m.focused && row == cursor.Row {
			lr.cursor = clampInt(cursor.GraphemeCol, 0, len(clusters))
		}
		lr.selStart, lr.selEnd, lr.hasSel = selectionColsForRow(sel, selOK, row, len(clusters))
		sb.WriteString(lr.render())
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) highlightForLine(row int, clusters []string) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}
	spans, err := m.cfg.Highlighter.HighlightLine(LineContext{
		Row:    row,
		Text:   graphemeutil.Join(clusters),
		Buffer: m.buf,
	})
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, len(clusters))
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok {
		return 0, 0, false
	}
	sel = buffer.NormalizeRange(sel)
	if row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = clampInt(sel.Start.GraphemeCol, 0, lineLen)
	}
	if row == sel.End.Row {
		end = clampInt(sel.End.GraphemeCol, 0, lineLen)
	}
	// A selected line break shows as one selected cell past the line end.
	if row < sel.End.Row {
		end = lineLen + 1
	}
	return start, end, start < end
}

type lineRender struct {
	st       Style
	clusters []string
	tabWidth int

	cursor           int // grapheme col, -1 when the cursor is not on this row
	selStart, selEnd int
	hasSel           bool
	spans            []HighlightSpan

	// Visible cell window; right < 0 means unbounded.
	left, right int
}

// run kinds; highlight spans use runHighlight+index.
const (
	runText = iota
	runSelection
	runCursor
	runHighlight
)

func (lr lineRender) render() string {
	cells, width := layoutLine(lr.clusters, lr.tabWidth)

	var (
		sb      strings.Builder
		run     strings.Builder
		runKind = -1
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(lr.styleFor(runKind).Render(run.String()))
		run.Reset()
	}
	emit := func(kind int, text string) {
		if kind != runKind || kind == runCursor {
			flush()
			runKind = kind
		}
		run.WriteString(text)
	}

	span := 0
	for i, c := range cells {
		text, ok := lr.clip(c)
		if !ok {
			continue
		}
		for span < len(lr.spans) && lr.spans[span].EndGraphemeCol <= i {
			span++
		}

		switch {
		case i == lr.cursor:
			if strings.TrimSpace(text) == "" {
				// Trailing spaces can be elided by terminals; keep the cursor visible.
				text = strings.ReplaceAll(text, " ", "\u00a0")
			}
			emit(runCursor, text)
		case lr.hasSel && i >= lr.selStart && i < lr.selEnd:
			emit(runSelection, text)
		case span < len(lr.spans) && lr.spans[span].StartGraphemeCol <= i:
			emit(runHighlight+span, text)
		default:
			emit(runText, text)
		}
	}

	eol := cell{text: " ", start: width, width: 1}
	if text, ok := lr.clip(eol); ok {
		switch {
		case lr.cursor == len(cells):
			emit(runCursor, text)
		case lr.hasSel && lr.selEnd > len(cells) && lr.selStart <= len(cells):
			emit(runSelection, text)
		}
	}
	flush()
	return sb.String()
}

// clip returns the visible part of c. A wide cluster cut by the window
// edge is replaced by blanks to keep columns aligned.
func (lr lineRender) clip(c cell) (string, bool) {
	l := max(c.start, lr.left)
	r := c.start + c.width
	if lr.right >= 0 {
		r = min(r, lr.right)
	}
	if l >= r {
		return "", false
	}
	if l == c.start && r == c.start+c.width {
		return c.text, true
	}
	return strings.Repeat(" ", r-l), true
}

func (lr lineRender) styleFor(kind int) lipgloss.Style {
	switch kind {
	case runText:
		return lr.st.Text
	case runSelection:
		return lr.st.Selection.Inherit(lr.st.Text)
	case runCursor:
		return lr.st.Cursor.Inherit(lr.st.Text)
	}
	return lr.spans[kind-runHighlight].Style.Inherit(lr.st.Text)
}
