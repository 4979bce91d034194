package buffer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNotFound reports that the requested file does not exist.
var ErrNotFound = errors.New("file not found")

// Load reads the file at path into a document.
func Load(path string) (*Document, error) {
	return LoadFS(OSFS{}, path)
}

// LoadFS reads path from fsys.
func LoadFS(fsys fs.ReadFileFS, path string) (*Document, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	d := FromText(string(data))
	d.name = path
	return d, nil
}

// Open loads path, falling back to the mode's document on failure. The
// returned document is never nil; err is only informative.
func Open(path string, mode EmptyMode) (*Document, error) {
	if path == "" {
		return Fallback(mode), nil
	}
	d, err := Load(path)
	if err != nil {
		return Fallback(mode), err
	}
	return d, nil
}

// OSFS reads host files by path. Unlike os.DirFS it accepts relative and
// absolute paths as given on the command line.
type OSFS struct{}

func (OSFS) Open(name string) (fs.File, error) { return os.Open(name) }
func (OSFS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }
