package dialog

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	keyCancel  = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	keyConfirm = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm"))
)

type OverlayStyles struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Hint  lipgloss.Style
}

// Overlay is the in-terminal dialog for one Request: a file picker for
// open, a path input for save.
type Overlay struct {
	req    Request
	dir    string
	styles OverlayStyles

	picker filepicker.Model
	input  textinput.Model
}

// NewOverlay starts answering req. dir is where browsing starts and where
// relative save paths resolve.
func NewOverlay(req Request, dir string, styles OverlayStyles) (Overlay, tea.Cmd) {
	o := Overlay{req: req, dir: dir, styles: styles}

	if req.Kind == KindSave {
		o.input = textinput.New()
		o.input.Prompt = "› "
		o.input.Placeholder = "file name"
		o.input.SetValue(dir + string(filepath.Separator))
		o.input.CursorEnd()
		cmd := o.input.Focus()
		return o, cmd
	}

	o.picker = filepicker.New()
	o.picker.CurrentDirectory = dir
	o.picker.AutoHeight = true
	cmd := o.picker.Init()
	return o, cmd
}

func (o Overlay) Kind() Kind { return o.req.Kind }

// Cancel answers the request as if the user had dismissed it.
func (o Overlay) Cancel() { o.req.Answer("", ErrClosed) }

// SetSize fits the overlay into a width x height area.
func (o Overlay) SetSize(width, height int) Overlay {
	chrome := o.styles.Frame.GetVerticalFrameSize() + 6
	if o.req.Kind == KindSave {
		o.input.Width = max(width-o.styles.Frame.GetHorizontalFrameSize()-4, 10)
		return o
	}
	o.picker, _ = o.picker.Update(tea.WindowSizeMsg{Width: width, Height: max(height-chrome, 3)})
	return o
}

// Update returns done once the request has been answered.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, keyCancel) {
		o.req.Answer("", ErrClosed)
		return o, nil, true
	}

	if o.req.Kind == KindSave {
		if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, keyConfirm) {
			p := strings.TrimSpace(o.input.Value())
			if p == "" || strings.HasSuffix(p, string(filepath.Separator)) {
				return o, nil, false
			}
			if !filepath.IsAbs(p) {
				p = filepath.Join(o.dir, p)
			}
			o.req.Answer(p, nil)
			return o, nil, true
		}
		var cmd tea.Cmd
		o.input, cmd = o.input.Update(msg)
		return o, cmd, false
	}

	var cmd tea.Cmd
	o.picker, cmd = o.picker.Update(msg)
	if ok, path := o.picker.DidSelectFile(msg); ok {
		o.req.Answer(path, nil)
		return o, nil, true
	}
	return o, cmd, false
}

func (o Overlay) View() string {
	var body, hint string
	if o.req.Kind == KindSave {
		body = o.input.View()
		hint = "enter save • esc cancel"
	} else {
		body = o.picker.CurrentDirectory + "\n\n" + o.picker.View()
		hint = "enter open • ←/→ browse • esc cancel"
	}
	return o.styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		o.styles.Title.Render(o.req.Title),
		"",
		body,
		"",
		o.styles.Hint.Render(hint),
	))
}
