// Package config handles the optional xvm.toml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the settings file looked up next to the program
const FileName = "xvm.toml"

var ErrUnknownKeys = errors.New("unknown configuration keys")

// Config represents an xvm.toml file
type Config struct {
	Interpreter Interpreter `toml:"interpreter"`
	Debugger    Debugger    `toml:"debugger"`
	Log         Log         `toml:"log"`

	// Path is the file the configuration was read from, empty for defaults
	Path string `toml:"-"`
}

type Interpreter struct {
	MaxSteps int  `toml:"max_steps"`
	Dump     bool `toml:"dump"`
	Trace    bool `toml:"trace"`
}

type Debugger struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"` // relative to $HOME, empty disables history
	Breakpoints []int  `toml:"breakpoints"`
	ShowSource  bool   `toml:"show_source"`
}

type Log struct {
	Verbose bool `toml:"verbose"`
	NoColor bool `toml:"no_color"`
}

// Default returns the settings used when no file is found
func Default() *Config {
	return &Config{
		Debugger: Debugger{
			Prompt:      ">> ",
			HistoryFile: ".xvm_history",
			ShowSource:  true,
		},
	}
}

// Load parses the file at path on top of the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownKeys, strings.Join(keys, ", "))
	}

	if c.Interpreter.MaxSteps < 0 {
		return nil, fmt.Errorf("%s: max_steps must not be negative, got %d", path, c.Interpreter.MaxSteps)
	}

	c.Path = path
	return c, nil
}

// FindAndLoad walks up from startDir looking for xvm.toml. Defaults are
// returned when no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// HistoryPath returns where the debugger keeps its command history, or ""
// when history is disabled
func (c *Config) HistoryPath() string {
	name := c.Debugger.HistoryFile
	if name == "" || filepath.IsAbs(name) {
		return name
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, name)
}
