package app

import (
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/internal/theme"
)

// Op is the async file operation in flight.
type Op uint8

const (
	OpNone Op = iota
	OpLoad
	OpOpen
	OpSave
)

func (o Op) String() string {
	switch o {
	case OpLoad:
		return "loading"
	case OpOpen:
		return "opening"
	case OpSave:
		return "saving"
	}
	return "idle"
}

// User events. They double as tea.Msg values so toolbar clicks and key
// presses go through the same path.
type (
	NewDocument   struct{}
	RequestSave   struct{}
	RequestOpen   struct{}
	Edit          struct{ Action editor.Action }
	ThemeSelected struct{ Theme theme.Theme }
)

// Completions of async operations; each request yields exactly one.
type (
	SaveCompleted struct {
		Path string
		Size int64
		Err  error
	}
	OpenCompleted struct {
		Path    string
		Content string
		Size    int64
		Err     error
	}
)

// Requests returned by transitions for the host to execute.
type (
	SaveRequest struct {
		Path string // empty asks for a destination first
		Text string
	}
	OpenRequest struct{}
	LoadRequest struct{ Path string }
)
