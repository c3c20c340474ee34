package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/quill/internal/fileio"
)

// statusLeft is the plain text of the left side and the style of its
// first segment.
func (m *Model) statusLeft() (string, lipgloss.Style) {
	st := m.styles
	s := m.state

	var head string
	style := st.Status
	switch {
	case errors.Is(s.Err, fileio.ErrDialogClosed):
		head, style = "Dialog closed", st.StatusMuted
	case s.Err != nil:
		head, style = "Error: "+s.Err.Error(), st.StatusError
	case s.Path != "":
		head = s.Path
	default:
		head, style = "No file opened", st.StatusMuted
	}
	return head, style
}

func (m *Model) statusDetails() []string {
	s := m.state
	var parts []string
	if s.Dirty {
		parts = append(parts, "[+]")
	}
	stat := m.diff.Stat(s.Buffer.TextVersion(), s.Buffer.Text)
	if !stat.IsZero() {
		parts = append(parts, stat.String())
	}
	if s.Path != "" {
		parts = append(parts, humanize.Bytes(uint64(s.Size)))
	}
	return parts
}

func (m *Model) statusRight() string {
	line, col := m.editor.CursorPosition()
	right := fmt.Sprintf("%s  Ln %d, Col %d", m.highlighter.Language(), line, col)
	if m.state.Busy() {
		right = m.spinner.View() + " " + m.state.Pending.String() + "  " + right
	}
	return right
}

func (m *Model) renderStatus() string {
	st := m.styles
	head, headStyle := m.statusLeft()
	details := strings.Join(m.statusDetails(), " ")
	right := m.statusRight()

	room := m.width - lipgloss.Width(right) - 2
	if details != "" {
		room -= runewidth.StringWidth(details) + 1
	}
	if room < 1 {
		details = ""
		room = m.width - lipgloss.Width(right) - 2
	}
	head = runewidth.Truncate(head, max(room, 0), "…")

	left := st.Status.Render(" ") + headStyle.Render(head)
	if details != "" {
		left += st.Status.Render(" ") + st.Dirty.Render(details)
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-1, 0)
	return left + st.Status.Render(strings.Repeat(" ", gap)) + st.Status.Render(right+" ")
}
