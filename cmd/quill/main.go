package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/internal/app"
	"github.com/iw2rmb/quill/internal/clipboard"
	"github.com/iw2rmb/quill/internal/config"
	"github.com/iw2rmb/quill/internal/dialog"
	"github.com/iw2rmb/quill/internal/fileio"
	"github.com/iw2rmb/quill/internal/logger"
)

var errorFormat = color.New(color.FgHiRed, color.Bold).SprintFunc()

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorFormat("quill:"), err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdin and stdout must be a terminal")
	}

	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	log, closer, err := logger.New(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer closer.Close()
	log.Info("starting", "version", quill.Version(), "dialog", cfg.Dialog.Mode, "theme", cfg.UI.Theme)

	picker, prompt, err := dialog.ForMode(cfg.Dialog.Mode, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := app.New(app.Options{
		DefaultFile:      cfg.DefaultFile,
		DefaultExtension: cfg.UI.DefaultExtension,
		LineNumbers:      cfg.UI.LineNumbers,
		TabWidth:         cfg.UI.TabWidth,
		HistoryLimit:     cfg.Editor.HistoryLimit,
		Theme:            cfg.Theme(),
		Files:            fileio.New(picker, log),
		Prompt:           prompt,
		Clipboard:        clipboard.New(log),
		Log:              log,
		Context:          ctx,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	// Release any file operation still waiting on the UI.
	cancel()
	if err != nil {
		log.Error("program failed", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("exited")
	return nil
}
