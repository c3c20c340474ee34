package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/quill/internal/theme"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	require.Equal(t, filepath.Join(Dir(), "scratch.txt"), cfg.DefaultFile)
	require.Equal(t, "solarized-dark", cfg.UI.Theme)
	require.Equal(t, theme.SolarizedDark, cfg.Theme())
	require.True(t, cfg.UI.LineNumbers)
	require.Equal(t, 4, cfg.UI.TabWidth)
	require.Equal(t, "txt", cfg.UI.DefaultExtension)
	require.Equal(t, 1000, cfg.Editor.HistoryLimit)
	require.Equal(t, "tui", cfg.Dialog.Mode)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Log.File)
}

func TestLoad_OverridesAndExpandsHome(t *testing.T) {
	path := writeConfig(t, `
default_file: ~/notes/today.md
ui:
  theme: dracula
  line_numbers: false
  tab_width: 8
editor:
  history_limit: 50
dialog:
  mode: auto
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "notes", "today.md"), cfg.DefaultFile)
	require.Equal(t, theme.Dracula, cfg.Theme())
	require.False(t, cfg.UI.LineNumbers)
	require.Equal(t, 8, cfg.UI.TabWidth)
	require.Equal(t, "txt", cfg.UI.DefaultExtension)
	require.Equal(t, 50, cfg.Editor.HistoryLimit)
	require.Equal(t, "auto", cfg.Dialog.Mode)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeConfig(t, "ui: [unclosed"))
	require.ErrorContains(t, err, "error reading config file")
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := map[string]string{
		"theme":     "ui:\n  theme: papyrus\n",
		"tab_width": "ui:\n  tab_width: 0\n",
		"history":   "editor:\n  history_limit: -1\n",
		"dialog":    "dialog:\n  mode: telepathy\n",
		"log level": "log:\n  level: loud\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}

func TestExpandHome(t *testing.T) {
	require.Equal(t, "/abs/path", expandHome("/abs/path"))
	require.Equal(t, "rel/~x", expandHome("rel/~x"))
	require.Equal(t, "", expandHome(""))
}
