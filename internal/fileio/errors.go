package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrDialogClosed means the user dismissed a file dialog. It is not a
// failure; callers leave their state unchanged.
var ErrDialogClosed = errors.New("dialog closed")

var (
	errInvalidUTF8 = errors.New("file is not valid UTF-8")
	errIsDir       error = syscall.EISDIR
)

// Kind classifies I/O failures for display.
type Kind uint8

const (
	KindOther Kind = iota
	KindNotFound
	KindPermission
	KindIsDirectory
	KindInvalidData
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	case KindIsDirectory:
		return "is a directory"
	case KindInvalidData:
		return "not valid UTF-8 text"
	}
	return "I/O error"
}

// IOError is a failed file operation.
type IOError struct {
	Op   string // open, save, pick
	Path string
	Kind Kind
	Err  error
}

func (e *IOError) Error() string {
	var msg string
	if e.Path == "" {
		msg = e.Op + " failed"
	} else {
		msg = fmt.Sprintf("%s %s", e.Op, e.Path)
	}
	if e.Kind == KindOther && e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", msg, e.Kind)
}

func (e *IOError) Unwrap() error { return e.Err }

func classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, syscall.EISDIR):
		return KindIsDirectory
	case errors.Is(err, errInvalidUTF8):
		return KindInvalidData
	}
	return KindOther
}

func wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Kind: classify(err), Err: err}
}

// KindOf reports the Kind of an IOError anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ioErr.Kind, true
	}
	return KindOther, false
}
