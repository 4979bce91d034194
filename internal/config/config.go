// Package config loads skim settings from an optional TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/skim/buffer"
)

// Backend selects the terminal frontend.
type Backend string

const (
	BackendTea   Backend = "tea"
	BackendANSI  Backend = "ansi"
	BackendTcell Backend = "tcell"
)

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendTea, BackendANSI, BackendTcell:
		return b, nil
	}
	return "", fmt.Errorf("unknown backend %q (want tea, ansi or tcell)", s)
}

// Syntax values besides a language name.
const (
	SyntaxAuto = "auto"
	SyntaxOff  = "off"
)

// Settings is the resolved configuration of one run.
type Settings struct {
	EmptyMode buffer.EmptyMode
	StatusBar bool
	Backend   Backend
	// Syntax is SyntaxAuto, SyntaxOff or a lexer name.
	Syntax string
	Theme  string
	// DebugLog is a file path for diagnostics. Empty disables logging.
	DebugLog string
}

func Defaults() Settings {
	return Settings{
		EmptyMode: buffer.EmptyBlank,
		StatusBar: true,
		Backend:   BackendTea,
		Syntax:    SyntaxAuto,
	}
}

// File is the on-disk form. Nil fields leave the setting untouched.
type File struct {
	EmptyMode *string `toml:"empty_mode" yaml:"empty_mode"`
	StatusBar *bool   `toml:"status_bar" yaml:"status_bar"`
	Backend   *string `toml:"backend" yaml:"backend"`
	Syntax    *string `toml:"syntax" yaml:"syntax"`
	Theme     *string `toml:"theme" yaml:"theme"`
	DebugLog  *string `toml:"debug_log" yaml:"debug_log"`
}

// ParseError reports a malformed config file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads path. A missing file yields an empty File.
func Load(path string) (File, error) {
	return LoadFS(buffer.OSFS{}, path)
}

// LoadFS reads path from fsys. The format follows the extension: .yaml and
// .yml are YAML, anything else is TOML.
func LoadFS(fsys fs.ReadFileFS, path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil
		}
		return f, fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		err = toml.Unmarshal(data, &f)
	}
	if err != nil {
		return File{}, &ParseError{Path: path, Err: err}
	}
	return f, nil
}

// Apply overlays the fields set in f onto s.
func (f File) Apply(s Settings) (Settings, error) {
	if f.EmptyMode != nil {
		m, ok := buffer.ParseEmptyMode(*f.EmptyMode)
		if !ok {
			return s, fmt.Errorf("empty_mode: unknown mode %q (want blank or greeting)", *f.EmptyMode)
		}
		s.EmptyMode = m
	}
	if f.StatusBar != nil {
		s.StatusBar = *f.StatusBar
	}
	if f.Backend != nil {
		b, err := ParseBackend(*f.Backend)
		if err != nil {
			return s, fmt.Errorf("backend: %w", err)
		}
		s.Backend = b
	}
	if f.Syntax != nil {
		s.Syntax = *f.Syntax
	}
	if f.Theme != nil {
		s.Theme = *f.Theme
	}
	if f.DebugLog != nil {
		s.DebugLog = *f.DebugLog
	}
	return s, nil
}
