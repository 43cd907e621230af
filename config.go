package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Layout values accepted in the config file and on the command line.
const (
	layoutAuto       = "auto"
	layoutStandard   = "standard"
	layoutScientific = "scientific"
)

// ErrInvalidLayout indicates an unknown keypad layout name.
var ErrInvalidLayout = errors.New("invalid layout")

// Config holds user settings read from config.toml.
type Config struct {
	// Layout is "auto" (follow the window shape), "standard" or "scientific".
	Layout string `toml:"layout"`
	// DebugLog, when set, is the file debug logs are appended to.
	DebugLog string `toml:"debug_log"`
	Theme    Theme  `toml:"theme"`
}

// Theme holds the colors of the keypad and panels.
type Theme struct {
	Accent     string `toml:"accent"`
	Digit      string `toml:"digit"`
	Operator   string `toml:"operator"`
	Scientific string `toml:"scientific"`
	Equals     string `toml:"equals"`
	Dim        string `toml:"dim"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Layout: layoutAuto,
		Theme: Theme{
			Accent:     "#ff9e64",
			Digit:      "#c0caf5",
			Operator:   "#e0af68",
			Scientific: "#7dcfff",
			Equals:     "#9ece6a",
			Dim:        "#565f89",
		},
	}
}

// ConfigError reports a config file that could not be used.
type ConfigError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("config %s at line %d, column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// defaultConfigPath returns $XDG_CONFIG_HOME/keycalc/config.toml or the
// platform equivalent, or "" if no config directory is known.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keycalc", "config.toml")
}

// LoadConfig reads the config file at path. A missing file, or an empty
// path, yields the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return ParseConfig(path, data)
}

// ParseConfig decodes TOML data over the defaults. Unknown keys are
// rejected so typos do not go unnoticed.
func ParseConfig(source string, data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		cerr := &ConfigError{Path: source, Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			cerr.Line, cerr.Column = derr.Position()
		}
		return Config{}, cerr
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, &ConfigError{Path: source, Err: err}
	}
	return cfg, nil
}

// Validate checks setting values.
func (c Config) Validate() error {
	switch c.Layout {
	case layoutAuto, layoutStandard, layoutScientific:
		return nil
	}
	return fmt.Errorf("%w %q: want %s, %s or %s", ErrInvalidLayout, c.Layout, layoutAuto, layoutStandard, layoutScientific)
}
