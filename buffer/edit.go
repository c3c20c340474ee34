package buffer

import (
	"strings"

	"github.com/iw2rmb/quill/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
// An empty string deletes the selection, if any.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(r, s)
}

// InsertGrapheme inserts a single grapheme cluster.
func (b *Buffer) InsertGrapheme(g string) {
	if g == "" {
		return
	}
	b.InsertText(g)
}

func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics: the selection if present,
// otherwise the grapheme before the cursor, joining lines at column 0.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
		return
	}
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col > 0:
		b.edit(Range{Start: Pos{Row: row, GraphemeCol: col - 1}, End: b.cursor}, "")
	case row > 0:
		b.edit(Range{Start: Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
		return
	}
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col < len(b.lines[row]):
		b.edit(Range{Start: b.cursor, End: Pos{Row: row, GraphemeCol: col + 1}}, "")
	case row < len(b.lines)-1:
		b.edit(Range{Start: b.cursor, End: Pos{Row: row + 1, GraphemeCol: 0}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
	}
}

// edit replaces r with text as one undoable step.
func (b *Buffer) edit(r Range, text string) {
	prev := b.snapshot()
	nextCursor, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, false
	}
	if textForLinesRange(b.lines, b.crlf, r) == text {
		return b.cursor, false
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol

	// Re-split at the seams: inserted text may combine with neighbors into
	// a single cluster (e.g. a combining accent).
	prefix := grapheme.Join(b.lines[startRow][:startCol])
	suffix := grapheme.Join(b.lines[endRow][endCol:])

	parts := strings.Split(text, "\n")
	repl := make([][]string, len(parts))
	replCRLF := make([]bool, len(parts))
	for i, p := range parts {
		if i == 0 {
			p = prefix + p
		}
		if i == len(parts)-1 {
			lastLen := grapheme.Count(p)
			repl[i] = grapheme.Split(p + suffix)
			replCRLF[i] = b.crlf[endRow]
			nextCursor = Pos{Row: startRow + i, GraphemeCol: min(lastLen, len(repl[i]))}
			continue
		}
		if strings.HasSuffix(p, "\r") {
			p = p[:len(p)-1]
			replCRLF[i] = true
		} else {
			replCRLF[i] = b.newCRLF
		}
		repl[i] = grapheme.Split(p)
	}

	keep := len(b.lines) - (endRow - startRow) + len(repl) - 1
	out := make([][]string, 0, keep)
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)

	outCRLF := make([]bool, 0, keep)
	outCRLF = append(outCRLF, b.crlf[:startRow]...)
	outCRLF = append(outCRLF, replCRLF...)
	outCRLF = append(outCRLF, b.crlf[endRow+1:]...)

	b.lines, b.crlf = out, outCRLF
	return nextCursor, true
}

func textForLinesRange(lines [][]string, crlf []bool, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.GraphemeCol:r.End.GraphemeCol])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		} else if crlf[row-1] {
			sb.WriteString("\r\n")
		} else {
			sb.WriteByte('\n')
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}
