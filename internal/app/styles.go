package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/internal/dialog"
	"github.com/iw2rmb/quill/internal/theme"
)

// Styles are the chrome styles around the editor, derived from the theme.
type Styles struct {
	Bar            lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	ThemeLabel     lipgloss.Style

	Status      lipgloss.Style
	StatusError lipgloss.Style
	StatusMuted lipgloss.Style
	Dirty       lipgloss.Style
	Spinner     lipgloss.Style

	Overlay dialog.OverlayStyles
}

func newStyles(t theme.Theme) Styles {
	p := t.Palette()
	bar := lipgloss.NewStyle().Background(p.Bar).Foreground(p.Foreground)

	return Styles{
		Bar:            bar,
		Button:         bar.Foreground(p.Accent).Bold(true).Padding(0, 1),
		ButtonDisabled: bar.Foreground(p.Muted).Padding(0, 1),
		ThemeLabel:     bar.Foreground(p.Muted).Padding(0, 1),

		Status:      bar,
		StatusError: bar.Foreground(p.Error).Bold(true),
		StatusMuted: bar.Foreground(p.Muted),
		Dirty:       bar.Foreground(p.Accent),
		Spinner:     bar.Foreground(p.Accent),

		Overlay: dialog.OverlayStyles{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(p.Accent).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
			Hint:  lipgloss.NewStyle().Foreground(p.Muted),
		},
	}
}
