package editor

import (
	"testing"

	"github.com/iw2rmb/quill/buffer"
)

func TestHitTest_NoLineNums_ClampsAndYOffset(t *testing.T) {
	m := New(Config{Text: "abc\ndef\nghi"})
	m.viewport.YOffset = 1

	if got := m.screenToDocPos(2, 0); got != (buffer.Pos{Row: 1, GraphemeCol: 2}) {
		t.Fatalf("pos at (2,0) with yoffset=1: got %v, want %v", got, buffer.Pos{Row: 1, GraphemeCol: 2})
	}
	if got := m.screenToDocPos(999, 0); got != (buffer.Pos{Row: 1, GraphemeCol: 3}) {
		t.Fatalf("pos at (999,0): got %v, want %v", got, buffer.Pos{Row: 1, GraphemeCol: 3})
	}
	if got := m.screenToDocPos(0, 99); got != (buffer.Pos{Row: 2, GraphemeCol: 0}) {
		t.Fatalf("pos at (0,99): got %v, want %v", got, buffer.Pos{Row: 2, GraphemeCol: 0})
	}
}

func TestHitTest_WithLineNums_GutterMapsToStartOfLine(t *testing.T) {
	m := New(Config{Text: "abcd\nefgh", ShowLineNums: true})

	// 2 lines => 1 digit + 1 gutter space => width 2.
	for _, x := range []int{0, 1, 2} {
		if got := m.screenToDocPos(x, 1); got != (buffer.Pos{Row: 1}) {
			t.Fatalf("click x=%d: got %v, want %v", x, got, buffer.Pos{Row: 1})
		}
	}
	if got := m.screenToDocPos(3, 0); got != (buffer.Pos{Row: 0, GraphemeCol: 1}) {
		t.Fatalf("second cell x=3: got %v, want %v", got, buffer.Pos{Row: 0, GraphemeCol: 1})
	}
}

func TestHitTest_TabsAndWideCells(t *testing.T) {
	m := New(Config{Text: "\tx日y", TabWidth: 4})

	cases := []struct {
		x    int
		want int
	}{
		{0, 0}, {3, 0}, // inside the tab
		{4, 1},         // x
		{5, 2}, {6, 2}, // both halves of 日
		{7, 3},
		{8, 4},
	}
	for _, tc := range cases {
		if got := m.screenToDocPos(tc.x, 0).GraphemeCol; got != tc.want {
			t.Fatalf("x=%d: got col %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestHitTest_RoundTripWithHorizontalScroll(t *testing.T) {
	m := New(Config{Text: "0123456789abcdef", ShowLineNums: true}).SetSize(8, 2)
	m.buf.SetCursor(buffer.Pos{GraphemeCol: 12})
	m = m.Sync()

	x, y, ok := m.docToScreenPos(buffer.Pos{GraphemeCol: 12})
	if !ok {
		t.Fatalf("cursor position not visible: (%d,%d)", x, y)
	}
	if got := m.screenToDocPos(x, y); got != (buffer.Pos{GraphemeCol: 12}) {
		t.Fatalf("round trip: got %v, want col 12", got)
	}
	if _, _, ok := m.docToScreenPos(buffer.Pos{GraphemeCol: 0}); ok {
		t.Fatalf("scrolled-out column reported visible")
	}
}
