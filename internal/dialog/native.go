package dialog

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

type helper struct {
	name string
	open func(title string) []string
	save func(title string) []string
}

var (
	zenity = helper{
		name: "zenity",
		open: func(title string) []string { return []string{"--file-selection", "--title=" + title} },
		save: func(title string) []string {
			return []string{"--file-selection", "--save", "--confirm-overwrite", "--title=" + title}
		},
	}
	kdialog = helper{
		name: "kdialog",
		open: func(title string) []string { return []string{"--title", title, "--getopenfilename", "."} },
		save: func(title string) []string { return []string{"--title", title, "--getsavefilename", "."} },
	}
	osascript = helper{
		name: "osascript",
		open: func(title string) []string {
			return []string{"-e", fmt.Sprintf("POSIX path of (choose file with prompt %q)", title)}
		},
		save: func(title string) []string {
			return []string{"-e", fmt.Sprintf("POSIX path of (choose file name with prompt %q)", title)}
		},
	}
)

// Native runs the platform's dialog program: osascript on macOS, zenity or
// kdialog elsewhere.
type Native struct {
	goos     string
	lookPath func(file string) (string, error)
	run      func(ctx context.Context, name string, args ...string) ([]byte, error)
}

func NewNative() *Native {
	return &Native{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
}

func (n *Native) PickOpen(ctx context.Context, title string) (string, error) {
	return n.pick(ctx, title, false)
}

func (n *Native) PickSave(ctx context.Context, title string) (string, error) {
	return n.pick(ctx, title, true)
}

func (n *Native) candidates() []helper {
	if n.goos == "darwin" {
		return []helper{osascript}
	}
	return []helper{zenity, kdialog}
}

func (n *Native) pick(ctx context.Context, title string, save bool) (string, error) {
	for _, h := range n.candidates() {
		bin, err := n.lookPath(h.name)
		if err != nil {
			continue
		}
		args := h.open(title)
		if save {
			args = h.save(title)
		}

		out, err := n.run(ctx, bin, args...)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			// All three helpers exit with status 1 on cancel.
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
				return "", ErrClosed
			}
			return "", fmt.Errorf("%s: %w", h.name, err)
		}

		path := strings.TrimRight(string(out), "\r\n")
		if path == "" {
			return "", ErrClosed
		}
		return path, nil
	}
	return "", ErrUnavailable
}
