package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(runes("X"))
	if got := m.buf.Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, GraphemeCol: 2}) {
		t.Fatalf("cursor after insert: got %v, want %v", got, buffer.Pos{Row: 0, GraphemeCol: 2})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if got := m.buf.Text(); got != "a" {
		t.Fatalf("text after delete: got %q, want %q", got, "a")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := m.buf.Text(); got != "a\n\t " {
		t.Fatalf("text after enter/tab/space: got %q, want %q", got, "a\n\t ")
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := New(Config{Text: ""})
	m, _ = m.Update(runes("x"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.buf.Text(); got != "" {
		t.Fatalf("after undo: got %q, want empty", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.buf.Text(); got != "x" {
		t.Fatalf("after redo: got %q, want %q", got, "x")
	}
}

func TestActionForKey_ReadOnlySuppressesEdits(t *testing.T) {
	m := New(Config{Text: "ab", ReadOnly: true})

	for _, msg := range []tea.KeyMsg{
		runes("x"),
		{Type: tea.KeyBackspace},
		{Type: tea.KeyDelete},
		{Type: tea.KeyEnter},
		{Type: tea.KeyCtrlZ},
		{Type: tea.KeyCtrlV},
		{Type: tea.KeyRunes, Runes: []rune("pasted"), Paste: true},
	} {
		if a, ok := m.ActionForKey(msg); ok {
			t.Fatalf("read-only %v: got action %v, want none", msg, a.Kind)
		}
	}

	a, ok := m.ActionForKey(tea.KeyMsg{Type: tea.KeyRight})
	if !ok || a.Kind != ActionMove {
		t.Fatalf("read-only move: got (%v, %v), want move", a.Kind, ok)
	}
}

func TestActionForKey_BlurredIgnoresInput(t *testing.T) {
	m := New(Config{Text: "ab"}).Blur()
	if _, ok := m.ActionForKey(runes("x")); ok {
		t.Fatalf("blurred editor produced an action")
	}
}

func TestActionForKey_PasteNormalizesNewlines(t *testing.T) {
	m := New(Config{})
	a, ok := m.ActionForKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb\rc"), Paste: true})
	if !ok || a.Kind != ActionInsert {
		t.Fatalf("bracketed paste: got (%v, %v), want insert", a.Kind, ok)
	}
	if a.Text != "a\nb\nc" {
		t.Fatalf("paste text: got %q, want %q", a.Text, "a\nb\nc")
	}
}

func TestActionForKey_Clipboard(t *testing.T) {
	cb := &memClipboard{}
	m := New(Config{Text: "hello world", Clipboard: cb})
	m.buf.SetSelection(buffer.Range{End: buffer.Pos{GraphemeCol: 5}})

	a, ok := m.ActionForKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !ok || a.Kind != ActionCopy {
		t.Fatalf("copy: got (%v, %v), want copy", a.Kind, ok)
	}
	if cb.s != "hello" {
		t.Fatalf("clipboard after copy: got %q, want %q", cb.s, "hello")
	}
	if a.Apply(m.buf) {
		t.Fatalf("copy changed text")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := m.buf.Text(); got != " world" {
		t.Fatalf("text after cut: got %q, want %q", got, " world")
	}

	cb.s = "bye\r\n"
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.buf.Text(); got != "bye\n world" {
		t.Fatalf("text after paste: got %q, want %q", got, "bye\n world")
	}
}

func TestActionForKey_ClipboardFailureIsSilent(t *testing.T) {
	cb := &memClipboard{err: errors.New("no display")}
	m := New(Config{Text: "abc", Clipboard: cb})
	m.buf.SelectAll()

	if _, ok := m.ActionForKey(tea.KeyMsg{Type: tea.KeyCtrlC}); ok {
		t.Fatalf("copy with failing clipboard produced an action")
	}
	if _, ok := m.ActionForKey(tea.KeyMsg{Type: tea.KeyCtrlV}); ok {
		t.Fatalf("paste with failing clipboard produced an action")
	}
	if _, ok := m.ActionForKey(tea.KeyMsg{Type: tea.KeyCtrlX}); ok {
		t.Fatalf("cut with failing clipboard produced an action")
	}
	if got := m.buf.Text(); got != "abc" {
		t.Fatalf("text changed: got %q", got)
	}
}

func TestActionForKey_PageMovesByViewportHeight(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3\n4\n5\n6\n7\n8\n9"}).SetSize(10, 4)

	a, ok := m.ActionForKey(tea.KeyMsg{Type: tea.KeyPgDown})
	if !ok || a.Count != 3 {
		t.Fatalf("page down: got (%+v, %v), want count 3", a, ok)
	}
	a.Apply(m.buf)
	if got := m.buf.Cursor().Row; got != 3 {
		t.Fatalf("row after page down: got %d, want 3", got)
	}
}

func TestUpdate_MouseClickPlacesCursor(t *testing.T) {
	m := New(Config{Text: "abc\ndef"}).SetSize(10, 5)
	m.buf.SelectAll()

	m, _ = m.Update(tea.MouseMsg{X: 2, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 1, GraphemeCol: 2}) {
		t.Fatalf("cursor after click: got %v, want %v", got, buffer.Pos{Row: 1, GraphemeCol: 2})
	}
	if _, ok := m.buf.Selection(); ok {
		t.Fatalf("click kept the selection")
	}

	if _, ok := m.ActionForMouse(tea.MouseMsg{X: 1, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}); ok {
		t.Fatalf("release produced an action")
	}
}

func TestAction_ApplyReportsTextChange(t *testing.T) {
	b := buffer.New("ab", buffer.Options{})

	if (Action{Kind: ActionMove, Move: buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight}, Count: 2}).Apply(b) {
		t.Fatalf("move reported a text change")
	}
	if got := b.Cursor().GraphemeCol; got != 2 {
		t.Fatalf("cursor after counted move: got %d, want 2", got)
	}
	if !(Action{Kind: ActionInsert, Text: "c"}).Apply(b) {
		t.Fatalf("insert did not report a text change")
	}
	if (Action{Kind: ActionDelete, Delete: DeleteSelection}).Apply(b) {
		t.Fatalf("delete without selection reported a text change")
	}
	if !(Action{Kind: ActionUndo}).Apply(b) {
		t.Fatalf("undo did not report a text change")
	}
	if (Action{Kind: ActionUndo}).Apply(b) {
		t.Fatalf("undo on empty history reported a text change")
	}
	if (Action{Kind: ActionInsert}).Apply(nil) {
		t.Fatalf("nil buffer reported a text change")
	}
}

func TestAction_IsEdit(t *testing.T) {
	edits := map[ActionKind]bool{
		ActionInsert: true, ActionDelete: true, ActionUndo: true, ActionRedo: true,
		ActionMove: false, ActionSetCursor: false, ActionSelectAll: false, ActionCopy: false,
	}
	for k, want := range edits {
		if got := (Action{Kind: k}).IsEdit(); got != want {
			t.Fatalf("%s IsEdit: got %v, want %v", k, got, want)
		}
	}
}
