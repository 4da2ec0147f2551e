// Package patrol simulates a guard walking a grid under a turn-right rule
// until the guard leaves the map.
//
// The guard steps forward one cell at a time. If the cell ahead is an
// obstruction the guard rotates 90° clockwise without moving; if the cell
// ahead is off the map the patrol ends. Every cell the guard stands on,
// including the start, is counted once.
package patrol

import (
	"errors"
	"strings"

	"github.com/polarkac/advent-of-code/internal/grid"
	"github.com/polarkac/advent-of-code/internal/parse"
)

const (
	cellFloor       = '.'
	cellObstruction = '#'
)

var (
	// ErrNoGuard indicates the map has no guard marker.
	ErrNoGuard = errors.New("patrol: map has no guard marker")
	// ErrMultipleGuards indicates the map has more than one guard marker.
	ErrMultipleGuards = errors.New("patrol: map has more than one guard marker")
	// ErrTrapped indicates the guard rotated a full turn without being able to move.
	ErrTrapped = errors.New("patrol: guard is boxed in on all four sides")
	// ErrLoop indicates the guard returned to an earlier position and heading
	// and would therefore never leave the map.
	ErrLoop = errors.New("patrol: guard route loops forever")
)

// Guard is the walker state: where the guard stands and which way it faces.
type Guard struct {
	Pos    grid.Position
	Facing grid.Direction
}

// Map is a parsed patrol area. It is immutable after ParseMap.
type Map struct {
	area         *grid.Grid
	obstructions map[grid.Position]struct{}
	guard        Guard
}

// ParseMap reads a map made of '.', '#' and exactly one guard marker
// ('^', '>', 'v' or '<').
func ParseMap(text string) (*Map, error) {
	area, err := grid.Parse(text)
	if err != nil {
		return nil, err
	}
	m := &Map{
		area:         area,
		obstructions: make(map[grid.Position]struct{}),
	}
	guards := 0
	var bad *parse.Error
	area.Each(func(p grid.Position, c byte) {
		switch {
		case c == cellObstruction:
			m.obstructions[p] = struct{}{}
		case c == cellFloor:
		default:
			d, ok := grid.DirectionFromRune(c)
			if !ok {
				if bad == nil {
					bad = parse.Errorf(p.Row+1, "unexpected map symbol %q at column %d", c, p.Col+1)
				}
				return
			}
			guards++
			m.guard = Guard{Pos: p, Facing: d}
		}
	})
	if bad != nil {
		return nil, bad
	}
	switch {
	case guards == 0:
		return nil, parse.Wrap(0, ErrNoGuard)
	case guards > 1:
		return nil, parse.Wrap(0, ErrMultipleGuards)
	}
	return m, nil
}

// Guard returns the starting guard state.
func (m *Map) Guard() Guard { return m.guard }

// Obstructed reports whether p holds an obstruction.
func (m *Map) Obstructed(p grid.Position) bool {
	_, ok := m.obstructions[p]
	return ok
}

// Patrol walks the guard off the map and returns the number of distinct
// positions visited.
func (m *Map) Patrol() (int, error) {
	route, err := m.Route()
	if err != nil {
		return 0, err
	}
	return len(route), nil
}

// Route walks the guard off the map and returns the set of visited positions.
//
// Returns ErrTrapped if the guard turns four times in a row without moving
// and ErrLoop if an earlier (position, heading) state repeats.
func (m *Map) Route() (map[grid.Position]struct{}, error) {
	g := m.guard
	visited := map[grid.Position]struct{}{g.Pos: {}}
	seen := map[Guard]struct{}{g: {}}
	turns := 0

	for {
		next, ok := m.area.Step(g.Pos, g.Facing)
		if !ok {
			return visited, nil
		}
		if m.Obstructed(next) {
			turns++
			if turns == 4 {
				return nil, ErrTrapped
			}
			g.Facing = g.Facing.RotateRight()
			continue
		}
		turns = 0
		g.Pos = next
		visited[g.Pos] = struct{}{}

		if _, dup := seen[g]; dup {
			return nil, ErrLoop
		}
		seen[g] = struct{}{}
	}
}

// String renders the map with the guard at its starting position.
func (m *Map) String() string {
	var b strings.Builder
	for y := 0; y < m.area.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.area.Width(); x++ {
			p := grid.Position{Row: y, Col: x}
			switch {
			case m.Obstructed(p):
				b.WriteByte(cellObstruction)
			case p == m.guard.Pos:
				b.WriteByte(m.guard.Facing.Rune())
			default:
				b.WriteByte(cellFloor)
			}
		}
	}
	return b.String()
}
