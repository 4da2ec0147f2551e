// Package input locates puzzle input text.
package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/polarkac/advent-of-code/internal/puzzle"
)

// ErrNotFound is returned when no input exists for a puzzle.
var ErrNotFound = errors.New("input: not found")

// Provider returns the input text of a puzzle.
type Provider interface {
	Input(key puzzle.Key) (string, error)
}

// Dir reads inputs laid out as <root>/<year>/<day:02>.txt.
type Dir struct {
	Root string
}

// Path returns the file that holds the input for key.
func (d Dir) Path(key puzzle.Key) string {
	return filepath.Join(d.Root, fmt.Sprint(key.Year), fmt.Sprintf("%02d.txt", key.Day))
}

// Input reads the input file for key.
func (d Dir) Input(key puzzle.Key) (string, error) {
	path := d.Path(key)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s (expected %s)", ErrNotFound, key, path)
	}
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", path, err)
	}
	return string(data), nil
}

// File reads a single explicit input file regardless of the puzzle.
type File string

// Input reads the file.
func (f File) Input(puzzle.Key) (string, error) {
	data, err := os.ReadFile(string(f))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, string(f))
	}
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", string(f), err)
	}
	return string(data), nil
}

// Static serves inputs from memory.
type Static map[puzzle.Key]string

// Input returns the stored text for key.
func (s Static) Input(key puzzle.Key) (string, error) {
	text, ok := s[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return text, nil
}
