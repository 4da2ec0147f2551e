// Package puzzle defines what a daily puzzle is, the registry the runner
// looks puzzles up in, and the runner itself.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicate is returned when two puzzles are registered for one date.
var ErrDuplicate = errors.New("puzzle: already registered")

// Part solves one half of a puzzle. It receives the raw puzzle input and
// returns the answer in its display form.
type Part func(input string) (string, error)

// Puzzle is a registered daily puzzle.
type Puzzle struct {
	Year  int
	Day   int
	Title string

	// Parts run in order; part numbers are 1-based indices into Parts.
	Parts []Part
}

// Key returns the puzzle's date.
func (p Puzzle) Key() Key {
	return Key{Year: p.Year, Day: p.Day}
}

// Registry maps dates to puzzles. The zero value is not usable; call
// NewRegistry.
type Registry struct {
	puzzles map[Key]Puzzle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{puzzles: make(map[Key]Puzzle)}
}

// Register adds p. It fails for dates outside the calendar, puzzles with no
// parts and dates already taken.
func (r *Registry) Register(p Puzzle) error {
	key := p.Key()
	if err := key.Validate(); err != nil {
		return err
	}
	if len(p.Parts) == 0 {
		return fmt.Errorf("puzzle: %s has no parts", key)
	}
	if _, ok := r.puzzles[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, key)
	}
	r.puzzles[key] = p
	return nil
}

// MustRegister is like Register but panics on error. Intended for building
// static catalogs at startup.
func (r *Registry) MustRegister(p Puzzle) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Lookup returns the puzzle registered for key.
func (r *Registry) Lookup(key Key) (Puzzle, error) {
	if err := key.Validate(); err != nil {
		return Puzzle{}, err
	}
	p, ok := r.puzzles[key]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %s", ErrInvalidDate, key)
	}
	return p, nil
}

// All returns every registered puzzle ordered by date.
func (r *Registry) All() []Puzzle {
	all := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Year != all[j].Year {
			return all[i].Year < all[j].Year
		}
		return all[i].Day < all[j].Day
	})
	return all
}

// Len returns the number of registered puzzles.
func (r *Registry) Len() int {
	return len(r.puzzles)
}
