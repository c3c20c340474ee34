package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/quill/editor"
)

type KeyMap struct {
	Save, Open, New key.Binding
	Theme, Help     key.Binding
	Quit            key.Binding

	Editor editor.KeyMap
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Open:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		New:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new")),
		Theme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Help:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),

		Editor: editor.DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Open, k.New, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{k.ShortHelp()}, k.Editor.FullHelp()...)
}
