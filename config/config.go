// Package config loads the calc configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the complete configuration.
type Config struct {
	REPL REPLConfig `toml:"repl"`
	Log  LogConfig  `toml:"log"`
}

// REPLConfig holds interactive session settings.
type REPLConfig struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
	Trace     bool   `toml:"trace"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		REPL: REPLConfig{
			Prompt:      "> ",
			HistoryFile: "~/.calc_history",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/calc/config.toml or its platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "calc.toml"
	}
	return filepath.Join(dir, "calc", "config.toml")
}

// Load reads the file at path over the defaults. A missing file yields the
// defaults; unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("load config %s: %w", path, err)
	default:
		if err := checkUndecoded(path, meta); err != nil {
			return nil, err
		}
	}

	cfg.REPL.HistoryFile = ExpandHome(cfg.REPL.HistoryFile)
	cfg.Log.File = ExpandHome(cfg.Log.File)
	return cfg, nil
}

func checkUndecoded(path string, meta toml.MetaData) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
