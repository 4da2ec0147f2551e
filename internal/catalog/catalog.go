// Package catalog assembles the registry of every implemented puzzle.
package catalog

import (
	"github.com/polarkac/advent-of-code/internal/puzzle"
	"github.com/polarkac/advent-of-code/internal/year15"
	"github.com/polarkac/advent-of-code/internal/year24"
)

// Default returns a registry holding every puzzle in the repository.
func Default() *puzzle.Registry {
	reg := puzzle.NewRegistry()
	for _, year := range [][]puzzle.Puzzle{year15.Puzzles(), year24.Puzzles()} {
		for _, p := range year {
			reg.MustRegister(p)
		}
	}
	return reg
}
