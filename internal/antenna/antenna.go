// Package antenna locates antinodes produced by pairs of same-frequency
// antennas on a city map.
//
// For an ordered pair (A, B) of distinct antennas sharing a frequency, the
// antinode is the point reflected past B: B - (A - B). Considering both
// orderings yields the two antinodes on either side of the pair. Candidates
// from every frequency are merged into one set and anything outside the map
// is discarded.
package antenna

import (
	"sort"
	"strings"

	"github.com/polarkac/advent-of-code/internal/grid"
	"github.com/polarkac/advent-of-code/internal/parse"
)

const (
	cellEmpty    = '.'
	cellAntinode = '#'
)

// Map is a parsed antenna map. It is immutable after ParseMap.
type Map struct {
	area     *grid.Grid
	antennas map[byte][]grid.Position
}

// ParseMap reads a map made of '.' and ASCII letters or digits. Each letter
// or digit is an antenna tuned to that frequency.
func ParseMap(text string) (*Map, error) {
	area, err := grid.Parse(text)
	if err != nil {
		return nil, err
	}
	m := &Map{area: area, antennas: make(map[byte][]grid.Position)}
	var bad *parse.Error
	area.Each(func(p grid.Position, c byte) {
		switch {
		case c == cellEmpty:
		case isFrequency(c):
			m.antennas[c] = append(m.antennas[c], p)
		default:
			if bad == nil {
				bad = parse.Errorf(p.Row+1, "unexpected map symbol %q at column %d", c, p.Col+1)
			}
		}
	})
	if bad != nil {
		return nil, bad
	}
	return m, nil
}

func isFrequency(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// Frequencies returns the frequencies present on the map in ascending order.
func (m *Map) Frequencies() []byte {
	out := make([]byte, 0, len(m.antennas))
	for f := range m.antennas {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Antennas returns the positions of every antenna tuned to freq.
func (m *Map) Antennas(freq byte) []grid.Position {
	return m.antennas[freq]
}

// Project returns the raw antinode candidates for one frequency group,
// including candidates that lie off the map.
func Project(group []grid.Position) map[grid.Position]struct{} {
	out := make(map[grid.Position]struct{})
	for i, a := range group {
		for j, b := range group {
			if i == j || a == b {
				continue
			}
			v := a.Sub(b)
			out[b.Sub(v)] = struct{}{}
		}
	}
	return out
}

// Antinodes returns the set of in-bounds antinodes across all frequencies.
func (m *Map) Antinodes() map[grid.Position]struct{} {
	out := make(map[grid.Position]struct{})
	for _, group := range m.antennas {
		for p := range Project(group) {
			if m.area.InBounds(p) {
				out[p] = struct{}{}
			}
		}
	}
	return out
}

// CountAntinodes returns the number of distinct in-bounds antinodes.
func (m *Map) CountAntinodes() int {
	return len(m.Antinodes())
}

// Render draws the map with antinodes marked '#'. Antinodes take
// precedence over antennas.
func (m *Map) Render() string {
	nodes := m.Antinodes()
	var b strings.Builder
	m.area.Each(func(p grid.Position, c byte) {
		if p.Col == 0 && p.Row > 0 {
			b.WriteByte('\n')
		}
		if _, ok := nodes[p]; ok {
			b.WriteByte(cellAntinode)
			return
		}
		b.WriteByte(c)
	})
	return b.String()
}
