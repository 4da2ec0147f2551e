package patrol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polarkac/advent-of-code/internal/grid"
	"github.com/polarkac/advent-of-code/internal/parse"
)

const previewMap = `
            ....#.....
            .........#
            ..........
            ..#.......
            .......#..
            ..........
            .#..^.....
            ........#.
            #.........
            ......#...`

func TestPatrol_Preview(t *testing.T) {
	m, err := ParseMap(previewMap)
	require.NoError(t, err)

	n, err := m.Patrol()
	require.NoError(t, err)
	assert.Equal(t, 41, n)
}

func TestParseMap_RoundTrip(t *testing.T) {
	m, err := ParseMap(previewMap)
	require.NoError(t, err)

	want := "....#.....\n" +
		".........#\n" +
		"..........\n" +
		"..#.......\n" +
		".......#..\n" +
		"..........\n" +
		".#..^.....\n" +
		"........#.\n" +
		"#.........\n" +
		"......#..."
	assert.Equal(t, want, m.String())
	assert.Equal(t, Guard{Pos: grid.Position{Row: 6, Col: 4}, Facing: grid.Up}, m.Guard())
}

func TestRoute_IncludesStart(t *testing.T) {
	m, err := ParseMap(previewMap)
	require.NoError(t, err)

	route, err := m.Route()
	require.NoError(t, err)
	assert.Contains(t, route, m.Guard().Pos)
	for p := range route {
		assert.False(t, m.Obstructed(p), "guard stood on obstruction at %v", p)
	}
}

func TestPatrol_ExitsImmediately(t *testing.T) {
	m, err := ParseMap(`
        .^.
        ...`)
	require.NoError(t, err)

	n, err := m.Patrol()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPatrol_TurnsWithoutConsumingStep(t *testing.T) {
	// Guard faces a wall, turns right and walks to the edge.
	m, err := ParseMap(`
        .#..
        .^..`)
	require.NoError(t, err)

	n, err := m.Patrol()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPatrol_Trapped(t *testing.T) {
	m, err := ParseMap(`
        .#.
        #^#
        .#.`)
	require.NoError(t, err)

	_, err = m.Patrol()
	assert.ErrorIs(t, err, ErrTrapped)
}

func TestPatrol_Loop(t *testing.T) {
	m, err := ParseMap(`
        .#...
        ....#
        .^...
        #....
        ...#.`)
	require.NoError(t, err)

	_, err = m.Patrol()
	assert.ErrorIs(t, err, ErrLoop)
}

func TestParseMap_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"NoGuard", "...\n.#.", ErrNoGuard},
		{"TwoGuards", "^..\n..>", ErrMultipleGuards},
		{"Ragged", "..^\n..", grid.ErrNonRectangular},
		{"Empty", "\n\n", grid.ErrEmptyGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMap(tc.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
			assert.True(t, errors.Is(err, parse.ErrMalformedInput))
		})
	}
}

func TestParseMap_UnknownSymbol(t *testing.T) {
	_, err := ParseMap("..^\n.X.")
	require.Error(t, err)
	assert.True(t, parse.IsMalformed(err))
	assert.Contains(t, err.Error(), "line 2")
}
