package app

import (
	"log/slog"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/internal/theme"
)

// State is the single source of truth for the open document. Only the
// Bubble Tea update loop mutates it.
type State struct {
	Path   string // empty for a never-saved document
	Buffer *buffer.Buffer
	Dirty  bool
	Err    error
	Theme  theme.Theme

	Pending  Op
	Baseline string // text at the last successful open or save
	Size     int64

	historyLimit int
	log          *slog.Logger
}

// NewState returns the startup state: no path, dirty, empty buffer.
func NewState(t theme.Theme, historyLimit int, log *slog.Logger) *State {
	return &State{
		Buffer:       buffer.New("", buffer.Options{HistoryLimit: historyLimit}),
		Dirty:        true,
		Theme:        t,
		historyLimit: historyLimit,
		log:          log,
	}
}

// Busy reports whether an async operation is in flight. Save, open and new
// are ignored and the text is read-only while busy.
func (s *State) Busy() bool { return s.Pending != OpNone }

// BeginLoad starts the startup load of path.
func (s *State) BeginLoad(path string) (LoadRequest, bool) {
	if s.Busy() {
		s.log.Debug("load ignored", "pending", s.Pending)
		return LoadRequest{}, false
	}
	s.Pending = OpLoad
	return LoadRequest{Path: path}, true
}

func (s *State) NewDocument() bool {
	if s.Busy() {
		s.log.Debug("new document ignored", "pending", s.Pending)
		return false
	}
	s.Path = ""
	s.Buffer = buffer.New("", buffer.Options{HistoryLimit: s.historyLimit})
	s.Dirty = true
	s.Err = nil
	s.Baseline = ""
	s.Size = 0
	return true
}

// Edit applies a to the buffer and reports whether the text changed.
func (s *State) Edit(a editor.Action) bool {
	if s.Busy() && a.IsEdit() {
		return false
	}
	changed := a.Apply(s.Buffer)
	s.Dirty = s.Dirty || changed
	s.Err = nil
	return changed
}

func (s *State) RequestSave() (SaveRequest, bool) {
	if s.Busy() {
		s.log.Debug("save ignored", "pending", s.Pending)
		return SaveRequest{}, false
	}
	s.Pending = OpSave
	return SaveRequest{Path: s.Path, Text: s.Buffer.Text()}, true
}

func (s *State) SaveCompleted(ev SaveCompleted) {
	if s.Pending == OpSave {
		s.Pending = OpNone
	}
	if ev.Err != nil {
		s.Err = ev.Err
		return
	}
	s.Path = ev.Path
	s.Dirty = false
	s.Err = nil
	s.Baseline = s.Buffer.Text()
	s.Size = ev.Size
}

func (s *State) RequestOpen() (OpenRequest, bool) {
	if s.Busy() {
		s.log.Debug("open ignored", "pending", s.Pending)
		return OpenRequest{}, false
	}
	s.Pending = OpOpen
	return OpenRequest{}, true
}

// OpenCompleted handles both picker opens and the startup load.
func (s *State) OpenCompleted(ev OpenCompleted) {
	if s.Pending == OpOpen || s.Pending == OpLoad {
		s.Pending = OpNone
	}
	if ev.Err != nil {
		s.Err = ev.Err
		return
	}
	s.Path = ev.Path
	s.Buffer = buffer.New(ev.Content, buffer.Options{HistoryLimit: s.historyLimit})
	s.Dirty = false
	s.Err = nil
	s.Baseline = ev.Content
	s.Size = ev.Size
}

func (s *State) ThemeSelected(t theme.Theme) {
	s.Theme = t
}
