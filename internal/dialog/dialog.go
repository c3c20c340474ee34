// Package dialog asks the user for a file path, either through an OS
// helper program or through an overlay drawn inside the terminal UI.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Dialog picks a path. Both calls block until the user answers.
type Dialog interface {
	PickOpen(ctx context.Context, title string) (string, error)
	PickSave(ctx context.Context, title string) (string, error)
}

var (
	// ErrClosed means the user dismissed the dialog without choosing.
	ErrClosed = errors.New("dialog closed")
	// ErrUnavailable means no native helper program is installed.
	ErrUnavailable = errors.New("no native file dialog available")
)

// Auto tries Native first and falls back when it is unavailable.
type Auto struct {
	Native   Dialog
	Fallback Dialog
	Log      *slog.Logger
}

func (a *Auto) PickOpen(ctx context.Context, title string) (string, error) {
	p, err := a.Native.PickOpen(ctx, title)
	if errors.Is(err, ErrUnavailable) {
		a.Log.Debug("native dialog unavailable, using terminal dialog")
		return a.Fallback.PickOpen(ctx, title)
	}
	return p, err
}

func (a *Auto) PickSave(ctx context.Context, title string) (string, error) {
	p, err := a.Native.PickSave(ctx, title)
	if errors.Is(err, ErrUnavailable) {
		a.Log.Debug("native dialog unavailable, using terminal dialog")
		return a.Fallback.PickSave(ctx, title)
	}
	return p, err
}

// ForMode builds the dialog for a config mode (tui, native or auto). The
// returned Prompt is the one the UI must serve; it is nil in native mode,
// where nothing asks the terminal.
func ForMode(mode string, log *slog.Logger) (Dialog, *Prompt, error) {
	switch mode {
	case "", "tui":
		p := NewPrompt()
		return p, p, nil
	case "native":
		return NewNative(), nil, nil
	case "auto":
		p := NewPrompt()
		return &Auto{Native: NewNative(), Fallback: p, Log: log}, p, nil
	}
	return nil, nil, fmt.Errorf("unknown dialog mode %q", mode)
}
