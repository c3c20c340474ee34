// Package app is the quill application: the document state machine and the
// root Bubble Tea model that renders it.
package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/internal/dialog"
	"github.com/iw2rmb/quill/internal/diffstat"
	"github.com/iw2rmb/quill/internal/fileio"
	"github.com/iw2rmb/quill/internal/highlight"
	"github.com/iw2rmb/quill/internal/logger"
	"github.com/iw2rmb/quill/internal/theme"
)

type Options struct {
	// DefaultFile is loaded on start.
	DefaultFile string
	// DefaultExtension picks the highlighter for untitled documents.
	DefaultExtension string

	LineNumbers  bool
	TabWidth     int
	HistoryLimit int
	Theme        theme.Theme

	Files Files
	// Prompt answers in-terminal dialog requests; nil when dialogs are
	// native only.
	Prompt    *dialog.Prompt
	Clipboard editor.Clipboard
	Log       *slog.Logger

	// Context bounds every file operation; cancel it on exit.
	Context context.Context
}

type Model struct {
	opts  Options
	state *State

	editor      editor.Model
	highlighter *highlight.Highlighter
	diff        diffstat.Tracker

	keys    KeyMap
	styles  Styles
	help    help.Model
	spinner spinner.Model

	picker  *themePicker
	overlay *dialog.Overlay

	width, height int
}

func New(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Log == nil {
		opts.Log = logger.Discard()
	}
	keys := DefaultKeyMap()
	m := Model{
		opts:  opts,
		state: NewState(opts.Theme, opts.HistoryLimit, opts.Log),
		keys:  keys,
		help:  help.New(),
		editor: editor.New(editor.Config{
			ShowLineNums: opts.LineNumbers,
			TabWidth:     opts.TabWidth,
			KeyMap:       keys.Editor,
			Clipboard:    opts.Clipboard,
			HistoryLimit: opts.HistoryLimit,
		}),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.editor = m.editor.SetBuffer(m.state.Buffer)
	m.applyTheme()
	m.resetDocument()
	return m
}

// State exposes the document state for inspection.
func (m Model) State() *State { return m.state }

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(quill.Title(""))}
	if req, ok := m.state.BeginLoad(m.opts.DefaultFile); ok {
		m.opts.Log.Info("loading default file", "path", req.Path)
		cmds = append(cmds, loadCmd(m.opts.Context, m.opts.Files, req), m.spinner.Tick)
	}
	if m.opts.Prompt != nil {
		cmds = append(cmds, m.opts.Prompt.Listen())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case dialog.RequestMsg:
		o, cmd := dialog.NewOverlay(msg.Request, m.dialogDir(), m.styles.Overlay)
		o = o.SetSize(m.width, m.height)
		m.overlay = &o
		m.editor = m.editor.Blur()
		return m, tea.Batch(cmd, m.opts.Prompt.Listen())

	case spinner.TickMsg:
		if !m.state.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case OpenCompleted:
		m.state.OpenCompleted(msg)
		m.logResult("open", msg.Path, msg.Err)
		if msg.Err != nil {
			m.syncEditor()
			return m, nil
		}
		m.resetDocument()
		return m, tea.SetWindowTitle(quill.Title(m.state.Path))

	case SaveCompleted:
		m.state.SaveCompleted(msg)
		m.logResult("save", msg.Path, msg.Err)
		if msg.Err != nil {
			m.syncEditor()
			return m, nil
		}
		m.diff.Reset(m.state.Baseline)
		m.refreshHighlighter()
		m.syncEditor()
		return m, tea.SetWindowTitle(quill.Title(m.state.Path))

	case NewDocument, RequestSave, RequestOpen, ThemeSelected, Edit:
		return m, m.handleEvent(msg)

	case openThemePicker:
		m.openPicker()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m, m.updateMouse(msg)
	}

	// Anything else (file picker directory reads, cursor blinks) belongs to
	// the open overlay.
	if m.overlay != nil {
		return m, m.updateOverlay(msg)
	}
	return m, nil
}

func (m *Model) handleEvent(ev tea.Msg) tea.Cmd {
	ctx, files := m.opts.Context, m.opts.Files
	switch ev := ev.(type) {
	case NewDocument:
		if m.state.NewDocument() {
			m.resetDocument()
			return tea.SetWindowTitle(quill.Title(""))
		}
	case RequestSave:
		if req, ok := m.state.RequestSave(); ok {
			m.opts.Log.Debug("save requested", "path", req.Path, "bytes", len(req.Text))
			m.syncEditor()
			return tea.Batch(saveCmd(ctx, files, req), m.spinner.Tick)
		}
	case RequestOpen:
		if req, ok := m.state.RequestOpen(); ok {
			m.opts.Log.Debug("open requested")
			m.syncEditor()
			return tea.Batch(openCmd(ctx, files, req), m.spinner.Tick)
		}
	case ThemeSelected:
		m.state.ThemeSelected(ev.Theme)
		m.opts.Log.Info("theme selected", "theme", ev.Theme.ID())
		m.applyTheme()
	case Edit:
		m.state.Edit(ev.Action)
		m.syncEditor()
	}
	return nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.overlay != nil {
			m.overlay.Cancel()
		}
		return m, tea.Quit
	}
	if m.overlay != nil {
		return m, m.updateOverlay(msg)
	}
	if m.picker != nil {
		p, cmd, chosen, done := m.picker.update(msg)
		m.picker = &p
		if done {
			m.picker = nil
			m.editor = m.editor.Focus()
			if chosen != nil {
				return m, tea.Batch(cmd, m.handleEvent(ThemeSelected{Theme: *chosen}))
			}
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Save):
		return m, m.handleEvent(RequestSave{})
	case key.Matches(msg, m.keys.Open):
		return m, m.handleEvent(RequestOpen{})
	case key.Matches(msg, m.keys.New):
		return m, m.handleEvent(NewDocument{})
	case key.Matches(msg, m.keys.Theme):
		m.openPicker()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	if a, ok := m.editor.ActionForKey(msg); ok {
		return m, m.handleEvent(Edit{Action: a})
	}
	return m, nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) tea.Cmd {
	if m.overlay != nil || m.picker != nil {
		return nil
	}
	if msg.Y == 0 {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		_, zones := m.renderToolbar()
		if ev, ok := hitZone(zones, msg.X); ok {
			if _, ok := ev.(openThemePicker); ok {
				m.openPicker()
				return nil
			}
			return m.handleEvent(ev)
		}
		return nil
	}

	local := msg
	local.Y--
	if local.Y >= m.editor.Height() {
		return nil
	}
	if a, ok := m.editor.ActionForMouse(local); ok {
		return m.handleEvent(Edit{Action: a})
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(local)
	return cmd
}

func (m *Model) updateOverlay(msg tea.Msg) tea.Cmd {
	o, cmd, done := m.overlay.Update(msg)
	if done {
		m.overlay = nil
		m.syncEditor()
		return cmd
	}
	m.overlay = &o
	return cmd
}

func (m *Model) openPicker() {
	p := newThemePicker(m.state.Theme, m.width, m.height)
	m.picker = &p
	m.editor = m.editor.Blur()
}

// resetDocument points the editor at the state's buffer after it was
// replaced, and resets everything keyed on the document.
func (m *Model) resetDocument() {
	m.editor = m.editor.SetBuffer(m.state.Buffer)
	m.diff.Reset(m.state.Baseline)
	m.refreshHighlighter()
	m.syncEditor()
}

func (m *Model) refreshHighlighter() {
	m.highlighter = highlight.New(m.state.Path, m.opts.DefaultExtension, m.state.Theme.ChromaStyle())
	m.editor = m.editor.SetHighlighter(m.highlighter)
}

func (m *Model) applyTheme() {
	m.styles = newStyles(m.state.Theme)
	m.spinner.Style = m.styles.Spinner
	m.editor = m.editor.SetStyle(m.state.Theme.EditorStyle())
	m.refreshHighlighter()
}

// syncEditor mirrors busy state and focus into the editor after a
// transition.
func (m *Model) syncEditor() {
	m.editor = m.editor.SetReadOnly(m.state.Busy())
	if m.overlay == nil && m.picker == nil {
		m.editor = m.editor.Focus()
	}
	m.editor = m.editor.Sync()
}

func (m *Model) helpHeight() int {
	if m.help.ShowAll {
		return lipgloss.Height(m.help.View(m.keys))
	}
	return 1
}

func (m *Model) layout() {
	m.help.Width = m.width
	m.editor = m.editor.SetSize(m.width, max(m.height-2-m.helpHeight(), 1))
	if m.overlay != nil {
		o := m.overlay.SetSize(m.width, m.height)
		m.overlay = &o
	}
	if m.picker != nil {
		p := m.picker.setSize(m.width, m.height)
		m.picker = &p
	}
}

func (m *Model) dialogDir() string {
	for _, p := range []string{m.state.Path, m.opts.DefaultFile} {
		if p == "" {
			continue
		}
		if dir := filepath.Dir(p); dirExists(dir) {
			return dir
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func dirExists(dir string) bool {
	fi, err := os.Stat(dir)
	return err == nil && fi.IsDir()
}

func (m *Model) logResult(op, path string, err error) {
	switch {
	case err == nil:
		m.opts.Log.Info(op+" completed", "path", path)
	case errors.Is(err, fileio.ErrDialogClosed):
		m.opts.Log.Debug(op+" cancelled")
	default:
		m.opts.Log.Warn(op+" failed", "err", err)
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.overlay != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.overlay.View())
	}
	if m.picker != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.styles.Overlay.Frame.Render(m.picker.view()))
	}

	bar, _ := m.renderToolbar()
	return lipgloss.JoinVertical(lipgloss.Left,
		bar,
		m.editor.View(),
		m.renderStatus(),
		m.help.View(m.keys),
	)
}
