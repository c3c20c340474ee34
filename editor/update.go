package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

// ActionForKey maps a key press to an Action without applying it.
//
// Copy and cut write the clipboard as a side effect of mapping; paste reads
// it. Edits are suppressed while the editor is read-only or blurred.
func (m Model) ActionForKey(msg tea.KeyMsg) (Action, bool) {
	if !m.focused || m.buf == nil {
		return Action{}, false
	}
	ro := m.cfg.ReadOnly
	km := m.cfg.KeyMap

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if ro {
			return Action{}, false
		}
		return Action{Kind: ActionInsert, Text: normalizeNewlines(string(msg.Runes))}, true
	}

	move := func(unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) (Action, bool) {
		return Action{Kind: ActionMove, Move: buffer.Move{Unit: unit, Dir: dir, Extend: extend}}, true
	}
	edit := func(a Action) (Action, bool) {
		if ro {
			return Action{}, false
		}
		return a, true
	}

	switch {
	case key.Matches(msg, km.Left):
		return move(buffer.MoveGrapheme, buffer.DirLeft, false)
	case key.Matches(msg, km.Right):
		return move(buffer.MoveGrapheme, buffer.DirRight, false)
	case key.Matches(msg, km.Up):
		return move(buffer.MoveGrapheme, buffer.DirUp, false)
	case key.Matches(msg, km.Down):
		return move(buffer.MoveGrapheme, buffer.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		return move(buffer.MoveGrapheme, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		return move(buffer.MoveGrapheme, buffer.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		return move(buffer.MoveGrapheme, buffer.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		return move(buffer.MoveGrapheme, buffer.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		return move(buffer.MoveWord, buffer.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		return move(buffer.MoveWord, buffer.DirRight, false)

	case key.Matches(msg, km.Home):
		return move(buffer.MoveLine, buffer.DirHome, false)
	case key.Matches(msg, km.End):
		return move(buffer.MoveLine, buffer.DirEnd, false)
	case key.Matches(msg, km.DocStart):
		return move(buffer.MoveDoc, buffer.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		return move(buffer.MoveDoc, buffer.DirEnd, false)

	case key.Matches(msg, km.PageUp):
		a, ok := move(buffer.MoveGrapheme, buffer.DirUp, false)
		a.Count = m.pageSize()
		return a, ok
	case key.Matches(msg, km.PageDown):
		a, ok := move(buffer.MoveGrapheme, buffer.DirDown, false)
		a.Count = m.pageSize()
		return a, ok

	case key.Matches(msg, km.SelectAll):
		return Action{Kind: ActionSelectAll}, true

	case key.Matches(msg, km.Backspace):
		return edit(Action{Kind: ActionDelete, Delete: DeleteBackward})
	case key.Matches(msg, km.Delete):
		return edit(Action{Kind: ActionDelete, Delete: DeleteForward})
	case key.Matches(msg, km.Enter):
		return edit(Action{Kind: ActionInsert, Text: "\n"})
	case key.Matches(msg, km.Tab):
		return edit(Action{Kind: ActionInsert, Text: "\t"})

	case key.Matches(msg, km.Undo):
		return edit(Action{Kind: ActionUndo})
	case key.Matches(msg, km.Redo):
		return edit(Action{Kind: ActionRedo})

	case key.Matches(msg, km.Copy):
		if !m.copySelection() {
			return Action{}, false
		}
		return Action{Kind: ActionCopy}, true
	case key.Matches(msg, km.Cut):
		if !m.copySelection() {
			return Action{}, false
		}
		if ro {
			return Action{Kind: ActionCopy}, true
		}
		return Action{Kind: ActionDelete, Delete: DeleteSelection}, true
	case key.Matches(msg, km.Paste):
		if ro {
			return Action{}, false
		}
		s, ok := m.readClipboard()
		if !ok {
			return Action{}, false
		}
		return Action{Kind: ActionInsert, Text: s}, true
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
		return edit(Action{Kind: ActionInsert, Text: string(msg.Runes)})
	}
	if msg.Type == tea.KeySpace {
		return edit(Action{Kind: ActionInsert, Text: " "})
	}
	return Action{}, false
}

// ActionForMouse maps a left click at editor-local coordinates to a cursor
// placement. Other mouse events are not actions.
func (m Model) ActionForMouse(msg tea.MouseMsg) (Action, bool) {
	if m.buf == nil || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return Action{}, false
	}
	return Action{Kind: ActionSetCursor, Pos: m.screenToDocPos(msg.X, msg.Y)}, true
}

func isVerticalWheel(msg tea.MouseMsg) bool {
	return msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown
}

func (m Model) pageSize() int {
	return max(m.visibleRowCount()-1, 1)
}

func (m Model) copySelection() bool {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return false
	}
	s := m.buf.SelectedText()
	if s == "" {
		return false
	}
	return m.cfg.Clipboard.WriteText(s) == nil
}

func (m Model) readClipboard() (string, bool) {
	if m.cfg.Clipboard == nil {
		return "", false
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return "", false
	}
	return normalizeNewlines(s), true
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
