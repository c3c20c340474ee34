package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type button struct {
	label   string
	msg     tea.Msg
	enabled bool
}

// zone is the clickable cell range [x0, x1) of a toolbar item.
type zone struct {
	x0, x1 int
	msg    tea.Msg
}

// openThemePicker is sent by clicking the theme label.
type openThemePicker struct{}

func (m Model) buttons() []button {
	busy := m.state.Busy()
	return []button{
		{label: "Open", msg: RequestOpen{}, enabled: !busy},
		{label: "New", msg: NewDocument{}, enabled: !busy},
		{label: "Save", msg: RequestSave{}, enabled: !busy && m.state.Dirty},
	}
}

// renderToolbar draws the buttons on the left and the theme label on the
// right. Disabled buttons get no zone.
func (m Model) renderToolbar() (string, []zone) {
	st := m.styles
	var (
		sb    strings.Builder
		zones []zone
		x     int
	)
	for _, b := range m.buttons() {
		style := st.ButtonDisabled
		if b.enabled {
			style = st.Button
		}
		cell := style.Render("[" + b.label + "]")
		w := lipgloss.Width(cell)
		if b.enabled {
			zones = append(zones, zone{x0: x, x1: x + w, msg: b.msg})
		}
		sb.WriteString(cell)
		x += w
	}

	label := st.ThemeLabel.Render("Theme: " + m.state.Theme.String() + " ▾")
	lw := lipgloss.Width(label)
	gap := m.width - x - lw
	if gap < 1 {
		return st.Bar.Width(m.width).MaxWidth(m.width).Render(sb.String()), zones
	}
	sb.WriteString(st.Bar.Render(strings.Repeat(" ", gap)))
	sb.WriteString(label)
	zones = append(zones, zone{x0: x + gap, x1: x + gap + lw, msg: openThemePicker{}})
	return sb.String(), zones
}

func hitZone(zones []zone, x int) (tea.Msg, bool) {
	for _, z := range zones {
		if x >= z.x0 && x < z.x1 {
			return z.msg, true
		}
	}
	return nil, false
}
