package grid

import (
	"strings"

	"github.com/polarkac/advent-of-code/internal/parse"
)

// Grid is a rectangular field of byte cells. It is immutable once built.
type Grid struct {
	width, height int
	cells         [][]byte
}

// Parse builds a Grid from newline-separated rows. Each row is trimmed and
// blank rows are dropped before the shape is validated.
func Parse(text string) (*Grid, error) {
	lines := parse.Lines(text)
	rows := make([][]byte, len(lines))
	for i, line := range lines {
		rows[i] = []byte(line)
	}
	return New(rows)
}

// New constructs a Grid from pre-split rows, deep-copying the input.
// Returns ErrEmptyGrid or ErrNonRectangular wrapped in a *parse.Error.
func New(rows [][]byte) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, parse.Wrap(0, ErrEmptyGrid)
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]byte, h)
	for y, row := range rows {
		if len(row) != w {
			return nil, parse.Wrap(y+1, ErrNonRectangular)
		}
		cells[y] = make([]byte, w)
		copy(cells[y], row)
	}
	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within [0,Height) × [0,Width).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// CellAt returns the cell at p, or ok == false if p is out of range.
func (g *Grid) CellAt(p Position) (cell byte, ok bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.Row][p.Col], true
}

// Step moves one cell from p in direction d. ok is false when the result
// would leave the grid.
func (g *Grid) Step(p Position, d Direction) (next Position, ok bool) {
	dr, dc := d.Delta()
	next = p.Add(dr, dc)
	return next, g.InBounds(next)
}

// Neighbors returns the in-bounds orthogonal neighbours of p in
// Up, Right, Down, Left order.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, d := range Directions {
		if n, ok := g.Step(p, d); ok {
			out = append(out, n)
		}
	}
	return out
}

// Find returns every position whose cell satisfies match, in row-major order.
func (g *Grid) Find(match func(cell byte) bool) []Position {
	var out []Position
	for y, row := range g.cells {
		for x, c := range row {
			if match(c) {
				out = append(out, Position{Row: y, Col: x})
			}
		}
	}
	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p Position, cell byte)) {
	for y, row := range g.cells {
		for x, c := range row {
			fn(Position{Row: y, Col: x}, c)
		}
	}
}

// String renders the grid back to newline-separated rows.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.Write(row)
	}
	return b.String()
}
