package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
//
// Used standalone, Update applies key input to the buffer directly. Hosts
// that track document state themselves call ActionForKey instead and apply
// the returned Action, then call Sync.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.refresh(true)
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// SetBuffer replaces the document wholesale and scrolls to its origin.
func (m Model) SetBuffer(b *buffer.Buffer) Model {
	if b == nil {
		b = buffer.New("", buffer.Options{HistoryLimit: m.cfg.HistoryLimit})
	}
	m.buf = b
	m.xOffset = 0
	m.viewport.SetYOffset(0)
	m.refresh(true)
	return m
}

// SetText replaces the document with a fresh buffer holding text.
func (m Model) SetText(text string) Model {
	return m.SetBuffer(buffer.New(text, buffer.Options{HistoryLimit: m.cfg.HistoryLimit}))
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	m.refresh(true)
	return m
}

func (m Model) Width() int  { return m.viewport.Width }
func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.refresh(true)
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.refresh(false)
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) SetReadOnly(ro bool) Model {
	m.cfg.ReadOnly = ro
	return m
}

func (m Model) ReadOnly() bool { return m.cfg.ReadOnly }

func (m Model) SetHighlighter(h Highlighter) Model {
	m.cfg.Highlighter = h
	m.refresh(false)
	return m
}

func (m Model) SetStyle(st Style) Model {
	m.cfg.Style = st
	m.refresh(false)
	return m
}

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

// CursorPosition returns the 1-based line and column of the cursor.
// Columns count grapheme clusters.
func (m Model) CursorPosition() (line, col int) {
	if m.buf == nil {
		return 1, 1
	}
	c := m.buf.Cursor()
	return c.Row + 1, c.GraphemeCol + 1
}

// Sync re-renders after the buffer was changed outside of Update.
func (m Model) Sync() Model {
	if m.buf == nil {
		return m
	}
	ver, cur := m.buf.Version(), m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return m
	}
	m.refresh(true)
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if a, ok := m.ActionForKey(msg); ok {
			a.Apply(m.buf)
		}
		return m.Sync(), nil
	case tea.MouseMsg:
		if a, ok := m.ActionForMouse(msg); ok {
			a.Apply(m.buf)
			return m.Sync(), nil
		}
		if !isVerticalWheel(msg) {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Wheel scrolling leaves the cursor where it is.
		m.refresh(false)
		return m, cmd
	default:
		return m.Sync(), nil
	}
}

func (m Model) View() string { return m.viewport.View() }
