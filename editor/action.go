package editor

import "github.com/iw2rmb/quill/buffer"

// ActionKind identifies the semantic action produced by input handling.
type ActionKind uint8

const (
	ActionInsert ActionKind = iota
	ActionDelete
	ActionMove
	ActionSetCursor
	ActionSelectAll
	ActionUndo
	ActionRedo
	// ActionCopy has already written the clipboard when it is produced; it
	// never touches the buffer.
	ActionCopy
)

// DeleteDirection identifies delete semantics.
type DeleteDirection uint8

const (
	DeleteBackward DeleteDirection = iota
	DeleteForward
	DeleteSelection
)

// Action is one editing gesture. Hosts apply it with Apply.
type Action struct {
	Kind ActionKind

	Text   string          // ActionInsert
	Delete DeleteDirection // ActionDelete
	Move   buffer.Move     // ActionMove
	Count  int             // ActionMove repeat count; values below 1 mean 1
	Pos    buffer.Pos      // ActionSetCursor
}

// IsEdit reports whether the action kind may change text. Whether it did is
// reported by Apply.
func (a Action) IsEdit() bool {
	switch a.Kind {
	case ActionInsert, ActionDelete, ActionUndo, ActionRedo:
		return true
	}
	return false
}

// Apply performs a on b and reports whether the text changed.
func (a Action) Apply(b *buffer.Buffer) bool {
	if b == nil {
		return false
	}
	before := b.TextVersion()

	switch a.Kind {
	case ActionInsert:
		b.InsertText(a.Text)
	case ActionDelete:
		switch a.Delete {
		case DeleteBackward:
			b.DeleteBackward()
		case DeleteForward:
			b.DeleteForward()
		case DeleteSelection:
			b.DeleteSelection()
		}
	case ActionMove:
		for i := 0; i < max(a.Count, 1); i++ {
			b.Move(a.Move)
		}
	case ActionSetCursor:
		b.ClearSelection()
		b.SetCursor(a.Pos)
	case ActionSelectAll:
		b.SelectAll()
	case ActionUndo:
		b.Undo()
	case ActionRedo:
		b.Redo()
	}

	return b.TextVersion() != before
}

func (k ActionKind) String() string {
	switch k {
	case ActionInsert:
		return "insert"
	case ActionDelete:
		return "delete"
	case ActionMove:
		return "move"
	case ActionSetCursor:
		return "set-cursor"
	case ActionSelectAll:
		return "select-all"
	case ActionUndo:
		return "undo"
	case ActionRedo:
		return "redo"
	case ActionCopy:
		return "copy"
	}
	return "unknown"
}
