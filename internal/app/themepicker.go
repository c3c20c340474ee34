package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/internal/theme"
)

type themeItem struct{ t theme.Theme }

func (i themeItem) Title() string { return i.t.String() }

func (i themeItem) Description() string {
	if i.t.IsDark() {
		return i.t.ID() + " · dark"
	}
	return i.t.ID() + " · light"
}

func (i themeItem) FilterValue() string { return i.t.String() }

// themePicker is the theme selection overlay.
type themePicker struct {
	list list.Model
}

func newThemePicker(current theme.Theme, width, height int) themePicker {
	all := theme.All()
	items := make([]list.Item, len(all))
	for i, t := range all {
		items[i] = themeItem{t: t}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Theme"
	l.SetShowStatusBar(false)
	// The list would otherwise quit the whole program on q/esc.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	for i, it := range items {
		if it.(themeItem).t == current {
			l.Select(i)
		}
	}

	p := themePicker{list: l}
	return p.setSize(width, height)
}

func (p themePicker) setSize(width, height int) themePicker {
	p.list.SetSize(min(max(width-4, 20), 48), max(height-4, 6))
	return p
}

var (
	keyPick  = key.NewBinding(key.WithKeys("enter"))
	keyClose = key.NewBinding(key.WithKeys("esc"))
)

// update returns the chosen theme, or closed when the picker was dismissed.
func (p themePicker) update(msg tea.Msg) (themePicker, tea.Cmd, *theme.Theme, bool) {
	if km, ok := msg.(tea.KeyMsg); ok && p.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(km, keyPick):
			if it, ok := p.list.SelectedItem().(themeItem); ok {
				t := it.t
				return p, nil, &t, true
			}
			return p, nil, nil, true
		case key.Matches(km, keyClose) && p.list.FilterState() == list.Unfiltered:
			return p, nil, nil, true
		}
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd, nil, false
}

func (p themePicker) view() string { return p.list.View() }
