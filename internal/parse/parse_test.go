package parse

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_TrimsAndDropsBlank(t *testing.T) {
	text := `
            ab
        cd

            ef   `
	assert.Equal(t, []string{"ab", "cd", "ef"}, Lines(text))
	assert.Empty(t, Lines("   \n\n  "))
}

func TestSections(t *testing.T) {
	text := "47|53\n  97|13\n\n  75,47\n 61,13\n\n\n"
	sections := Sections(text)
	require.Len(t, sections, 2)
	assert.Equal(t, []string{"47|53", "97|13"}, sections[0])
	assert.Equal(t, []string{"75,47", "61,13"}, sections[1])
}

func TestUint64(t *testing.T) {
	v, err := Uint64(1, " 3749 ")
	require.NoError(t, err)
	assert.Equal(t, uint64(3749), v)

	_, err = Uint64(4, "-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedInput))
	assert.Contains(t, err.Error(), "line 4")
}

func TestInts(t *testing.T) {
	v, err := Ints(1, "75,47,61", ",")
	require.NoError(t, err)
	assert.Equal(t, []int{75, 47, 61}, v)

	v, err = Ints(1, "7 6  4", "")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 6, 4}, v)

	_, err = Ints(2, "1,x", ",")
	assert.True(t, IsMalformed(err))
}

func TestUint64s(t *testing.T) {
	v, err := Uint64s(1, "125 17")
	require.NoError(t, err)
	assert.Equal(t, []uint64{125, 17}, v)
}

func TestError_WrapsCause(t *testing.T) {
	cause := errors.New("grid: all rows must have the same length")
	err := fmt.Errorf("loading map: %w", Wrap(3, cause))

	assert.True(t, errors.Is(err, ErrMalformedInput))
	assert.True(t, errors.Is(err, cause))

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
	assert.Equal(t, "loading map: malformed input: line 3: grid: all rows must have the same length", err.Error())
}

func TestErrorf_NoLine(t *testing.T) {
	err := Errorf(0, "empty input")
	assert.Equal(t, "malformed input: empty input", err.Error())
}
