package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/internal/fileio"
)

// Files is the file I/O service used by the model.
type Files interface {
	LoadFile(ctx context.Context, path string) (fileio.Document, error)
	PickFileToOpen(ctx context.Context) (fileio.Document, error)
	SaveFile(ctx context.Context, path, text string) (fileio.Document, error)
}

func loadCmd(ctx context.Context, files Files, req LoadRequest) tea.Cmd {
	return func() tea.Msg {
		doc, err := files.LoadFile(ctx, req.Path)
		return openCompleted(doc, err)
	}
}

func openCmd(ctx context.Context, files Files, _ OpenRequest) tea.Cmd {
	return func() tea.Msg {
		doc, err := files.PickFileToOpen(ctx)
		return openCompleted(doc, err)
	}
}

func saveCmd(ctx context.Context, files Files, req SaveRequest) tea.Cmd {
	return func() tea.Msg {
		doc, err := files.SaveFile(ctx, req.Path, req.Text)
		if err != nil {
			return SaveCompleted{Err: err}
		}
		return SaveCompleted{Path: doc.Path, Size: doc.Size}
	}
}

func openCompleted(doc fileio.Document, err error) OpenCompleted {
	if err != nil {
		return OpenCompleted{Err: err}
	}
	return OpenCompleted{Path: doc.Path, Content: doc.Content, Size: doc.Size}
}
