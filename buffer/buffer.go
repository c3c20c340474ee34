package buffer

import (
	"strings"

	"github.com/iw2rmb/quill/internal/grapheme"
)

const defaultHistoryLimit = 1000

type Options struct {
	// HistoryLimit bounds the undo depth. Zero means the default (1000);
	// a negative value disables history.
	HistoryLimit int
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the document state: text, cursor, and selection.
//
// Version advances on every observable change (text, cursor, selection).
// TextVersion advances only when the text itself changes.
type Buffer struct {
	lines [][]string
	// crlf[i] reports that line i ends in "\r\n" rather than "\n". The
	// last entry is always false.
	crlf []bool
	// newCRLF is the terminator used for line breaks typed into the
	// document: that of its first terminated line.
	newCRLF bool

	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = defaultHistoryLimit
	}
	lines, crlf := splitLines(text)
	return &Buffer{
		lines:   lines,
		crlf:    crlf,
		newCRLF: len(crlf) > 1 && crlf[0],
		opt:     opt,
	}
}

// Text returns the document with each line's own terminator, so it
// round-trips the input exactly.
func (b *Buffer) Text() string {
	return textForLinesRange(b.lines, b.crlf, Range{End: b.docEnd()})
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns anchor/end without normalization, so callers can tell
// which end the cursor sits on.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}
	if selectionStateEqual(b.sel, next) {
		return
	}
	prevRange, prevOK := b.Selection()
	b.sel = next
	if nextRange, nextOK := b.Selection(); prevOK == nextOK && prevRange == nextRange {
		return
	}
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	_, had := b.Selection()
	b.sel = selectionState{}
	if had {
		b.version++
	}
}

// SelectAll selects the whole document and moves the cursor to its end.
func (b *Buffer) SelectAll() {
	end := b.docEnd()
	if end == (Pos{}) {
		return
	}
	b.SetSelection(Range{Start: Pos{}, End: end})
	b.SetCursor(end)
}

// SelectedText returns the text covered by the active selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return textForLinesRange(b.lines, b.crlf, r)
}

func (b *Buffer) docEnd() Pos {
	last := len(b.lines) - 1
	return Pos{Row: last, GraphemeCol: len(b.lines[last])}
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

// splitLines splits text on "\n". A "\r" directly before a "\n" is part
// of the terminator, not of the line.
func splitLines(text string) (lines [][]string, crlf []bool) {
	parts := strings.Split(text, "\n")
	lines = make([][]string, len(parts))
	crlf = make([]bool, len(parts))
	for i, s := range parts {
		if i < len(parts)-1 && strings.HasSuffix(s, "\r") {
			s = s[:len(s)-1]
			crlf[i] = true
		}
		lines[i] = grapheme.Split(s)
	}
	return lines, crlf
}
