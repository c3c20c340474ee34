// Package highlight adapts chroma lexers and styles to editor.Highlighter.
package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/internal/grapheme"
)

// Highlighter tokenizes the whole document with chroma and serves spans per
// line. Tokens are cached until the buffer's text version changes.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
	text  chroma.StyleEntry

	styles map[chroma.TokenType]lipgloss.Style

	buf     *buffer.Buffer
	version uint64
	lines   [][]editor.HighlightSpan

	tokenised int
}

// New picks a lexer for filename, then for fallbackExt, then plain text.
func New(filename, fallbackExt string, style *chroma.Style) *Highlighter {
	return &Highlighter{
		lexer:  chroma.Coalesce(lexerFor(filename, fallbackExt)),
		style:  style,
		text:   style.Get(chroma.Text),
		styles: make(map[chroma.TokenType]lipgloss.Style),
	}
}

func lexerFor(filename, fallbackExt string) chroma.Lexer {
	if filename != "" {
		if l := lexers.Match(filepath.Base(filename)); l != nil {
			return l
		}
	}
	if ext := strings.TrimPrefix(fallbackExt, "."); ext != "" {
		if l := lexers.Get(ext); l != nil {
			return l
		}
	}
	return lexers.Fallback
}

// Language is the lexer's display name.
func (h *Highlighter) Language() string { return h.lexer.Config().Name }

func (h *Highlighter) HighlightLine(ctx editor.LineContext) ([]editor.HighlightSpan, error) {
	if ctx.Buffer == nil {
		lines, err := h.tokenise(ctx.Text)
		if err != nil || len(lines) == 0 {
			return nil, err
		}
		return lines[0], nil
	}

	if ctx.Buffer != h.buf || ctx.Buffer.TextVersion() != h.version || h.lines == nil {
		lines, err := h.tokenise(ctx.Buffer.Text())
		if err != nil {
			return nil, err
		}
		h.buf, h.version, h.lines = ctx.Buffer, ctx.Buffer.TextVersion(), lines
	}
	if ctx.Row < 0 || ctx.Row >= len(h.lines) {
		return nil, nil
	}
	return h.lines[ctx.Row], nil
}

func (h *Highlighter) tokenise(text string) ([][]editor.HighlightSpan, error) {
	h.tokenised++
	it, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return nil, err
	}

	tokenLines := chroma.SplitTokensIntoLines(it.Tokens())
	out := make([][]editor.HighlightSpan, len(tokenLines))
	for row, toks := range tokenLines {
		col := 0
		var spans []editor.HighlightSpan
		for _, tok := range toks {
			n := grapheme.Count(strings.TrimSuffix(tok.Value, "\n"))
			if n == 0 {
				continue
			}
			if st, ok := h.styleFor(tok.Type); ok {
				spans = append(spans, editor.HighlightSpan{
					StartGraphemeCol: col,
					EndGraphemeCol:   col + n,
					Style:            st,
				})
			}
			col += n
		}
		out[row] = spans
	}
	return out, nil
}

// styleFor converts the chroma entry for tt. ok is false when the entry
// looks exactly like plain text.
func (h *Highlighter) styleFor(tt chroma.TokenType) (lipgloss.Style, bool) {
	if st, ok := h.styles[tt]; ok {
		return st, !isZeroStyle(st)
	}

	e := h.style.Get(tt)
	st := lipgloss.NewStyle()
	if e.Colour.IsSet() && e.Colour != h.text.Colour {
		st = st.Foreground(lipgloss.Color(e.Colour.String()))
	}
	if e.Bold == chroma.Yes && h.text.Bold != chroma.Yes {
		st = st.Bold(true)
	}
	if e.Italic == chroma.Yes && h.text.Italic != chroma.Yes {
		st = st.Italic(true)
	}
	if e.Underline == chroma.Yes && h.text.Underline != chroma.Yes {
		st = st.Underline(true)
	}
	h.styles[tt] = st
	return st, !isZeroStyle(st)
}

func isZeroStyle(st lipgloss.Style) bool {
	_, noFg := st.GetForeground().(lipgloss.NoColor)
	return noFg && !st.GetBold() && !st.GetItalic() && !st.GetUnderline()
}
