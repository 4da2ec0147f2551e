package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polarkac/advent-of-code/internal/puzzle"
)

func TestDefault(t *testing.T) {
	reg := Default()
	assert.Equal(t, 12, reg.Len())

	all := reg.All()
	require.NotEmpty(t, all)
	assert.Equal(t, puzzle.Key{Year: 2015, Day: 1}, all[0].Key())
	assert.Equal(t, puzzle.Key{Year: 2024, Day: 11}, all[len(all)-1].Key())
}

func TestDefault_LookupRuns(t *testing.T) {
	p, err := Default().Lookup(puzzle.Key{Year: 2024, Day: 9})
	require.NoError(t, err)

	answers, err := puzzle.Run(p, "2333133121414131402", puzzle.RunOptions{})
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, "1928", answers[0].Value)
}

func TestDefault_UnknownDate(t *testing.T) {
	_, err := Default().Lookup(puzzle.Key{Year: 2024, Day: 25})
	assert.ErrorIs(t, err, puzzle.ErrInvalidDate)
}
