// Package config loads quill's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/iw2rmb/quill/internal/logger"
	"github.com/iw2rmb/quill/internal/theme"
)

// Config is the root configuration structure.
type Config struct {
	DefaultFile string       `mapstructure:"default_file"`
	UI          UIConfig     `mapstructure:"ui"`
	Editor      EditorConfig `mapstructure:"editor"`
	Dialog      DialogConfig `mapstructure:"dialog"`
	Log         LogConfig    `mapstructure:"log"`
}

type UIConfig struct {
	Theme            string `mapstructure:"theme"`
	LineNumbers      bool   `mapstructure:"line_numbers"`
	TabWidth         int    `mapstructure:"tab_width"`
	DefaultExtension string `mapstructure:"default_extension"`
}

type EditorConfig struct {
	HistoryLimit int `mapstructure:"history_limit"`
}

type DialogConfig struct {
	// Mode is tui, native or auto.
	Mode string `mapstructure:"mode"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

var dialogModes = []string{"tui", "native", "auto"}

// Dir is the directory holding config.yaml, the scratch file and the log.
func Dir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "quill")
}

// Load reads path, or <Dir>/config.yaml when path is empty. A missing file
// yields the defaults. The file is never written.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	applyDefaults(v)

	if path == "" {
		v.SetConfigName("config")
		v.AddConfigPath(Dir())
	} else {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.DefaultFile = expandHome(cfg.DefaultFile)
	cfg.Log.File = expandHome(cfg.Log.File)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("default_file", filepath.Join(Dir(), "scratch.txt"))

	v.SetDefault("ui.theme", theme.Default().ID())
	v.SetDefault("ui.line_numbers", true)
	v.SetDefault("ui.tab_width", 4)
	v.SetDefault("ui.default_extension", "txt")

	v.SetDefault("editor.history_limit", 1000)

	v.SetDefault("dialog.mode", "tui")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Validate checks the configuration values.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.DefaultFile) == "" {
		return fmt.Errorf("default_file cannot be empty")
	}
	if _, err := theme.Parse(cfg.UI.Theme); err != nil {
		return fmt.Errorf("ui.theme must be one of: %v, got %s", theme.IDs(), cfg.UI.Theme)
	}
	if cfg.UI.TabWidth < 1 || cfg.UI.TabWidth > 16 {
		return fmt.Errorf("ui.tab_width must be between 1 and 16, got %d", cfg.UI.TabWidth)
	}
	if cfg.Editor.HistoryLimit < 0 {
		return fmt.Errorf("editor.history_limit must be >= 0, got %d", cfg.Editor.HistoryLimit)
	}
	if !slices.Contains(dialogModes, cfg.Dialog.Mode) {
		return fmt.Errorf("dialog.mode must be one of: %v, got %s", dialogModes, cfg.Dialog.Mode)
	}
	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level must be one of: [debug info warn error], got %s", cfg.Log.Level)
	}
	return nil
}

// Theme returns the configured theme; Validate guarantees it parses.
func (c *Config) Theme() theme.Theme {
	t, err := theme.Parse(c.UI.Theme)
	if err != nil {
		return theme.Default()
	}
	return t
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
