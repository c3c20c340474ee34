package highlight

import (
	"testing"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/editor"
)

func TestNew_PicksLexer(t *testing.T) {
	st := styles.Get("monokai")

	require.Equal(t, "Go", New("/tmp/main.go", "txt", st).Language())
	require.Equal(t, "Python", New("", "py", st).Language())
	require.Equal(t, "Python", New("", ".py", st).Language())
	require.Equal(t, "plaintext", New("", "txt", st).Language())
	require.Equal(t, lexers.Fallback.Config().Name, New("notes.unknownext", "", st).Language())
}

func TestHighlightLine_GoKeywordAndComment(t *testing.T) {
	h := New("main.go", "txt", styles.Get("monokai"))
	b := buffer.New("package main\n// hi", buffer.Options{})

	spans, err := h.HighlightLine(editor.LineContext{Row: 0, Text: "package main", Buffer: b})
	require.NoError(t, err)
	require.NotEmpty(t, spans)
	require.Equal(t, 0, spans[0].StartGraphemeCol)
	require.Equal(t, 7, spans[0].EndGraphemeCol)
	require.Equal(t, lipgloss.Color("#f92672"), spans[0].Style.GetForeground())

	spans, err = h.HighlightLine(editor.LineContext{Row: 1, Text: "// hi", Buffer: b})
	require.NoError(t, err)
	require.Len(t, spans, 1)
	require.Equal(t, 0, spans[0].StartGraphemeCol)
	require.Equal(t, 5, spans[0].EndGraphemeCol)
	require.NotEqual(t, lipgloss.NoColor{}, spans[0].Style.GetForeground())
}

func TestHighlightLine_CachesUntilTextChanges(t *testing.T) {
	h := New("main.go", "", styles.Get("monokai"))
	b := buffer.New("package main\nfunc f() {}", buffer.Options{})

	for row := 0; row < 2; row++ {
		_, err := h.HighlightLine(editor.LineContext{Row: row, Buffer: b})
		require.NoError(t, err)
	}
	require.Equal(t, 1, h.tokenised)

	b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	_, err := h.HighlightLine(editor.LineContext{Row: 0, Buffer: b})
	require.NoError(t, err)
	require.Equal(t, 1, h.tokenised, "cursor moves must not retokenise")

	b.InsertText("\n")
	_, err = h.HighlightLine(editor.LineContext{Row: 0, Buffer: b})
	require.NoError(t, err)
	require.Equal(t, 2, h.tokenised)

	spans, err := h.HighlightLine(editor.LineContext{Row: 99, Buffer: b})
	require.NoError(t, err)
	require.Nil(t, spans)
}

func TestHighlightLine_PlainTextHasNoSpans(t *testing.T) {
	h := New("notes.txt", "txt", styles.Get("solarized-dark"))
	b := buffer.New("just words", buffer.Options{})

	spans, err := h.HighlightLine(editor.LineContext{Row: 0, Buffer: b})
	require.NoError(t, err)
	require.Empty(t, spans)
}

func TestHighlightLine_GraphemeColumns(t *testing.T) {
	h := New("x.go", "", styles.Get("monokai"))

	spans, err := h.HighlightLine(editor.LineContext{Text: `"日本" + 1`})
	require.NoError(t, err)
	require.NotEmpty(t, spans)
	// The string literal covers four clusters: the quotes and two ideographs.
	require.Equal(t, 0, spans[0].StartGraphemeCol)
	require.Equal(t, 4, spans[0].EndGraphemeCol)
}
