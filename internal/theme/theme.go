// Package theme is the closed set of color schemes. Each Theme maps to a
// chroma style; the UI chrome colors are derived from that style.
package theme

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/editor"
)

type Theme uint8

const (
	SolarizedDark Theme = iota
	SolarizedLight
	Monokai
	Dracula
	GitHub
	Nord
	Gruvbox
	Ocean
)

type entry struct {
	name   string
	chroma string
	dark   bool
}

var table = [...]entry{
	SolarizedDark:  {"Solarized Dark", "solarized-dark", true},
	SolarizedLight: {"Solarized Light", "solarized-light", false},
	Monokai:        {"Monokai", "monokai", true},
	Dracula:        {"Dracula", "dracula", true},
	GitHub:         {"GitHub", "github", false},
	Nord:           {"Nord", "nord", true},
	Gruvbox:        {"Gruvbox", "gruvbox", true},
	Ocean:          {"Ocean", "quill-ocean", true},
}

// All lists every theme in display order.
func All() []Theme {
	out := make([]Theme, len(table))
	for i := range table {
		out[i] = Theme(i)
	}
	return out
}

func Default() Theme { return SolarizedDark }

func (t Theme) valid() bool { return int(t) < len(table) }

func (t Theme) String() string {
	if !t.valid() {
		return fmt.Sprintf("Theme(%d)", t)
	}
	return table[t].name
}

// ID is the config identifier, e.g. "solarized-dark".
func (t Theme) ID() string {
	if !t.valid() {
		return ""
	}
	return table[t].chroma
}

func (t Theme) IsDark() bool { return t.valid() && table[t].dark }

// Parse resolves a config identifier or display name.
func Parse(s string) (Theme, error) {
	s = strings.TrimSpace(s)
	for i, e := range table {
		if strings.EqualFold(s, e.chroma) || strings.EqualFold(s, e.name) {
			return Theme(i), nil
		}
	}
	return 0, fmt.Errorf("unknown theme %q", s)
}

// IDs returns the config identifiers of all themes.
func IDs() []string {
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.chroma
	}
	return out
}

// ChromaStyle returns the registered chroma style, falling back to chroma's
// default when the name is missing from the registry.
func (t Theme) ChromaStyle() *chroma.Style {
	if !t.valid() {
		return styles.Fallback
	}
	return styles.Get(table[t].chroma)
}

// Palette holds the chrome colors around the text area.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Error      lipgloss.Color
	Selection  lipgloss.Color
	Bar        lipgloss.Color
}

func (t Theme) Palette() Palette {
	st := t.ChromaStyle()
	bg := st.Get(chroma.Background)
	text := st.Get(chroma.Text)

	fg := text.Colour
	if !fg.IsSet() {
		fg = bg.Colour
	}
	back := bg.Background
	if !back.IsSet() {
		back = defaultBackground(t.IsDark())
	}
	if !fg.IsSet() {
		fg = back.BrightenOrDarken(0.7)
	}

	sel := st.Get(chroma.LineHighlight).Background
	if !sel.IsSet() || sel == back {
		sel = back.BrightenOrDarken(0.15)
	}

	return Palette{
		Background: color(back),
		Foreground: color(fg),
		Muted:      color(pick(st.Get(chroma.Comment).Colour, back.BrightenOrDarken(0.45))),
		Accent:     color(pick(st.Get(chroma.Keyword).Colour, fg)),
		Error:      color(pick(st.Get(chroma.GenericDeleted).Colour, chroma.MustParseColour("#dc322f"))),
		Selection:  color(sel),
		Bar:        color(back.BrightenOrDarken(0.08)),
	}
}

// EditorStyle builds the editor styles for t.
func (t Theme) EditorStyle() editor.Style {
	p := t.Palette()
	text := lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Background)
	return editor.Style{
		Gutter:        lipgloss.NewStyle().Foreground(p.Muted).Background(p.Background),
		LineNum:       lipgloss.NewStyle().Foreground(p.Muted).Background(p.Background),
		LineNumActive: lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Background).Bold(true),
		Text:          text,
		Selection:     lipgloss.NewStyle().Background(p.Selection),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}

func pick(c, fallback chroma.Colour) chroma.Colour {
	if c.IsSet() {
		return c
	}
	return fallback
}

func defaultBackground(dark bool) chroma.Colour {
	if dark {
		return chroma.MustParseColour("#1e1e1e")
	}
	return chroma.MustParseColour("#ffffff")
}

func color(c chroma.Colour) lipgloss.Color { return lipgloss.Color(c.String()) }
