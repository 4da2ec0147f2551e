package harness

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polarkac/advent-of-code/internal/catalog"
	"github.com/polarkac/advent-of-code/internal/puzzle"
)

func testRegistry(t *testing.T) *puzzle.Registry {
	t.Helper()
	reg := puzzle.NewRegistry()
	upper := func(in string) (string, error) { return strings.ToUpper(strings.TrimSpace(in)), nil }
	count := func(in string) (string, error) { return string(rune('0' + len(strings.TrimSpace(in)))), nil }
	fail := func(string) (string, error) { return "", errors.New("boom") }
	reg.MustRegister(puzzle.Puzzle{Year: 2024, Day: 20, Title: "Upper", Parts: []puzzle.Part{upper, count}})
	reg.MustRegister(puzzle.Puzzle{Year: 2024, Day: 21, Title: "Broken", Parts: []puzzle.Part{upper, fail}})
	return reg
}

func TestRun_Pass(t *testing.T) {
	s := &Scenario{
		Name: "upper", Year: 2024, Day: 20, Input: "abc\n",
		Expect: []Expectation{{Part: 2, Answer: "3"}},
	}
	result, err := Run(testRegistry(t), s)
	require.NoError(t, err)

	assert.True(t, result.Pass, result.Errors)
	assert.Equal(t, []PartResult{
		{Part: 1, Answer: "ABC"},
		{Part: 2, Answer: "3", Expected: "3"},
	}, result.Parts)
}

func TestRun_WrongAnswer(t *testing.T) {
	s := &Scenario{
		Name: "upper", Year: 2024, Day: 20, Input: "abc",
		Expect: []Expectation{{Part: 1, Answer: "abc"}},
	}
	result, err := Run(testRegistry(t), s)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	assert.Equal(t, []string{`part 1: expected "abc", got "ABC"`}, result.Errors)
}

func TestRun_PartFails(t *testing.T) {
	s := &Scenario{
		Name: "broken", Year: 2024, Day: 21, Input: "abc",
		Expect: []Expectation{{Part: 1, Answer: "ABC"}},
	}
	result, err := Run(testRegistry(t), s)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	assert.Len(t, result.Parts, 1)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "2024/21 part 2: boom")
}

func TestRun_ExpectedPartMissing(t *testing.T) {
	s := &Scenario{
		Name: "upper", Year: 2024, Day: 20, Input: "abc",
		Expect: []Expectation{{Part: 3, Answer: "x"}},
	}
	result, err := Run(testRegistry(t), s)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	assert.Equal(t, []string{"part 3: puzzle 2024/20 has only 2 part(s)"}, result.Errors)
}

func TestRun_UnknownPuzzle(t *testing.T) {
	s := &Scenario{Name: "nope", Year: 2024, Day: 24, Input: "x", Expect: []Expectation{{Part: 1, Answer: "1"}}}
	_, err := Run(testRegistry(t), s)
	assert.ErrorIs(t, err, puzzle.ErrInvalidDate)
}

func TestRunWithGolden_Scenarios(t *testing.T) {
	files, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	reg := catalog.Default()
	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			s, err := LoadScenario(file)
			require.NoError(t, err)

			result, err := RunWithGolden(t, reg, s)
			require.NoError(t, err)
			assert.True(t, result.Pass, result.Errors)
		})
	}
}

func TestGolden_WriteThenCompare(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "golden")
	s := &Scenario{Name: "upper", Year: 2024, Day: 20, Input: "abc", Expect: []Expectation{{Part: 1, Answer: "ABC"}}}
	result, err := Run(testRegistry(t), s)
	require.NoError(t, err)

	_, err = CompareGolden(dir, s, result)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, WriteGolden(dir, s, result))
	data, err := os.ReadFile(GoldenPath(dir, s))
	require.NoError(t, err)
	assert.Equal(t,
		`{"day":20,"parts":[{"answer":"ABC","part":1},{"answer":"3","part":2}],"scenario":"upper","year":2024}`,
		string(data))

	match, err := CompareGolden(dir, s, result)
	require.NoError(t, err)
	assert.True(t, match)

	result.Parts[1].Answer = "4"
	match, err = CompareGolden(dir, s, result)
	require.NoError(t, err)
	assert.False(t, match)
}
