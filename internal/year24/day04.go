package year24

import (
	"strconv"

	"github.com/polarkac/advent-of-code/internal/grid"
)

const word = "XMAS"

// compass lists the eight straight-line directions a word can run in.
var compass = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Day04Part1 counts occurrences of XMAS in the word search, in any of the
// eight directions, overlaps included.
func Day04Part1(input string) (string, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return "", err
	}

	count := 0
	for _, start := range g.Find(func(c byte) bool { return c == word[0] }) {
		for _, d := range compass {
			if spells(g, start, d[0], d[1]) {
				count++
			}
		}
	}
	return strconv.Itoa(count), nil
}

func spells(g *grid.Grid, start grid.Position, dr, dc int) bool {
	p := start
	for i := 0; i < len(word); i++ {
		c, ok := g.CellAt(p)
		if !ok || c != word[i] {
			return false
		}
		p = p.Add(dr, dc)
	}
	return true
}
