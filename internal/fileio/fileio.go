// Package fileio loads and saves documents. Every call blocks; the UI runs
// them inside tea.Cmd goroutines.
package fileio

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/iw2rmb/quill/internal/dialog"
)

// Document is a file's path and full text.
type Document struct {
	Path    string
	Content string
	Size    int64
}

type Service struct {
	dialog dialog.Dialog
	log    *slog.Logger
}

func New(d dialog.Dialog, log *slog.Logger) *Service {
	return &Service{dialog: d, log: log}
}

// LoadFile reads path as UTF-8 text.
func (s *Service) LoadFile(ctx context.Context, path string) (doc Document, err error) {
	defer s.trace("load", path, time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, wrap("open", path, err)
	}
	if !utf8.Valid(data) {
		return Document{}, wrap("open", path, errInvalidUTF8)
	}
	return Document{Path: path, Content: string(data), Size: int64(len(data))}, nil
}

// PickFileToOpen asks for a file and loads it.
func (s *Service) PickFileToOpen(ctx context.Context) (Document, error) {
	path, err := s.dialog.PickOpen(ctx, "Open a text file")
	if err != nil {
		return Document{}, s.dialogErr(err)
	}
	return s.LoadFile(ctx, path)
}

// SaveFile writes text to path verbatim. An empty path asks for one first.
func (s *Service) SaveFile(ctx context.Context, path, text string) (doc Document, err error) {
	if path == "" {
		path, err = s.dialog.PickSave(ctx, "Save file as")
		if err != nil {
			return Document{}, s.dialogErr(err)
		}
	}
	defer s.trace("save", path, time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if err := writeFile(path, []byte(text)); err != nil {
		return Document{}, err
	}
	return Document{Path: path, Content: text, Size: int64(len(text))}, nil
}

func (s *Service) dialogErr(err error) error {
	switch {
	case errors.Is(err, dialog.ErrClosed):
		s.log.Debug("dialog closed")
		return ErrDialogClosed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	s.log.Warn("dialog failed", "err", err)
	return &IOError{Op: "pick", Kind: KindOther, Err: err}
}

func (s *Service) trace(op, path string, start time.Time, err *error) {
	if *err != nil {
		s.log.Debug(op+" failed", "path", path, "duration", time.Since(start), "err", *err)
		return
	}
	s.log.Debug(op+" done", "path", path, "duration", time.Since(start))
}

// writeFile replaces path through a temp file and rename so a failed write
// leaves the old content in place. When the directory is not writable but
// the file is, it writes in place. A symlinked path is written through to
// its target, so the link survives.
func writeFile(path string, data []byte) error {
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}

	mode := fs.FileMode(0o644)
	fi, err := os.Stat(target)
	switch {
	case err == nil && fi.IsDir():
		return &IOError{Op: "save", Path: path, Kind: KindIsDirectory, Err: &fs.PathError{Op: "write", Path: path, Err: errIsDir}}
	case err == nil:
		mode = fi.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return wrap("save", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		if errors.Is(err, fs.ErrPermission) && fi != nil {
			return wrap("save", path, os.WriteFile(target, data, mode))
		}
		return wrap("save", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return wrap("save", path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		return cleanup(err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return wrap("save", path, err)
	}
	return nil
}
