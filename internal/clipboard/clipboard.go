// Package clipboard connects the editor to the system clipboard.
package clipboard

import (
	"log/slog"

	"github.com/atotto/clipboard"
)

// System reads and writes the OS clipboard through atotto/clipboard. It
// keeps a process-local copy so copy/paste inside quill works on hosts
// without a clipboard utility (headless, SSH).
type System struct {
	log         *slog.Logger
	unsupported bool
	local       string
}

func New(log *slog.Logger) *System {
	if clipboard.Unsupported {
		log.Debug("system clipboard unavailable; using local clipboard")
	}
	return &System{log: log, unsupported: clipboard.Unsupported}
}

func (c *System) ReadText() (string, error) {
	if c.unsupported {
		return c.local, nil
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		c.log.Debug("clipboard read failed", "err", err)
		return c.local, nil
	}
	return s, nil
}

func (c *System) WriteText(s string) error {
	c.local = s
	if c.unsupported {
		return nil
	}
	if err := clipboard.WriteAll(s); err != nil {
		c.log.Debug("clipboard write failed", "err", err)
	}
	return nil
}
