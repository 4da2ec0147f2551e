package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Position is a (Row, Col) coordinate. Row grows downwards, Col to the right.
type Position struct {
	Row, Col int
}

// Add returns p translated by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Sub returns the vector p - q expressed as a Position.
func (p Position) Sub(q Position) Position {
	return Position{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

// Direction is one of the four orthogonal headings.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four headings in clockwise order starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

var deltas = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// RotateRight returns the heading 90° clockwise from d.
func (d Direction) RotateRight() Direction {
	return (d + 1) % 4
}

// Delta returns the row and column offsets of a single step in d.
func (d Direction) Delta() (dr, dc int) {
	return deltas[d%4][0], deltas[d%4][1]
}

// Rune returns the guard marker drawn for d.
func (d Direction) Rune() byte {
	return "^>v<"[d%4]
}

func (d Direction) String() string {
	return [...]string{"up", "right", "down", "left"}[d%4]
}

// DirectionFromRune maps a marker (^ > v <) to its Direction.
func DirectionFromRune(r byte) (Direction, bool) {
	switch r {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}
