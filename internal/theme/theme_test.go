package theme

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTripsEveryTheme(t *testing.T) {
	require.Len(t, All(), 8)
	for _, th := range All() {
		got, err := Parse(th.ID())
		require.NoError(t, err, th.ID())
		require.Equal(t, th, got)

		got, err = Parse(strings.ToUpper(th.String()))
		require.NoError(t, err, th.String())
		require.Equal(t, th, got)
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("papyrus")
	require.ErrorContains(t, err, "papyrus")
}

func TestDefault(t *testing.T) {
	require.Equal(t, SolarizedDark, Default())
	require.Equal(t, "solarized-dark", Default().ID())
	require.True(t, Default().IsDark())
	require.False(t, GitHub.IsDark())
}

func TestChromaStyle_EveryThemeIsRegistered(t *testing.T) {
	for _, th := range All() {
		st := th.ChromaStyle()
		require.Equal(t, th.ID(), st.Name, th.String())
	}
	require.Equal(t, "quill-ocean", styles.Get("quill-ocean").Name)
}

func TestPalette_ColorsAreHex(t *testing.T) {
	for _, th := range All() {
		p := th.Palette()
		for _, c := range []string{
			string(p.Background), string(p.Foreground), string(p.Muted),
			string(p.Accent), string(p.Error), string(p.Selection), string(p.Bar),
		} {
			require.Regexp(t, `^#[0-9a-f]{6}$`, c, th.String())
		}
		require.NotEqual(t, p.Background, p.Foreground, th.String())
	}
}

func TestEditorStyle_UsesPalette(t *testing.T) {
	p := Ocean.Palette()
	st := Ocean.EditorStyle()
	require.Equal(t, "#0f1c2e", string(p.Background))
	require.Equal(t, "#1d3351", string(p.Selection))
	require.Equal(t, p.Background, st.Text.GetBackground())
	require.Equal(t, p.Foreground, st.Text.GetForeground())
}

func TestString_OutOfRange(t *testing.T) {
	require.Equal(t, "Theme(99)", Theme(99).String())
	require.Equal(t, "", Theme(99).ID())
}
