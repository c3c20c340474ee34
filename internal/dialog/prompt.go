package dialog

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

type Kind uint8

const (
	KindOpen Kind = iota
	KindSave
)

func (k Kind) String() string {
	if k == KindSave {
		return "save"
	}
	return "open"
}

type answer struct {
	path string
	err  error
}

// Request is one pending question for the terminal UI.
type Request struct {
	Kind  Kind
	Title string

	reply chan answer
}

// Answer delivers the user's choice. Only the first answer counts.
func (r Request) Answer(path string, err error) {
	select {
	case r.reply <- answer{path: path, err: err}:
	default:
	}
}

// RequestMsg carries a Request into the Bubble Tea loop.
type RequestMsg struct{ Request Request }

// Prompt is a Dialog answered by the terminal UI. PickOpen and PickSave run
// inside a tea.Cmd goroutine and wait for the root model, which receives the
// request through Listen, to call Request.Answer.
type Prompt struct {
	requests chan Request
}

func NewPrompt() *Prompt {
	return &Prompt{requests: make(chan Request)}
}

func (p *Prompt) PickOpen(ctx context.Context, title string) (string, error) {
	return p.ask(ctx, KindOpen, title)
}

func (p *Prompt) PickSave(ctx context.Context, title string) (string, error) {
	return p.ask(ctx, KindSave, title)
}

func (p *Prompt) ask(ctx context.Context, kind Kind, title string) (string, error) {
	req := Request{Kind: kind, Title: title, reply: make(chan answer, 1)}
	select {
	case p.requests <- req:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	select {
	case a := <-req.reply:
		return a.path, a.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Listen waits for the next request. Hosts re-issue it after every
// RequestMsg.
func (p *Prompt) Listen() tea.Cmd {
	return func() tea.Msg {
		return RequestMsg{Request: <-p.requests}
	}
}
