package harness

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/polarkac/advent-of-code/internal/puzzle"
	"github.com/polarkac/advent-of-code/internal/testutil"
)

// clockStep is the fixed duration every part appears to take.
const clockStep = time.Millisecond

// Run executes a scenario against the registry and returns the result.
//
// Infrastructure problems (unknown puzzle, unreadable input) are returned as
// errors. Failing parts and wrong answers are recorded in the result.
func Run(reg *puzzle.Registry, scenario *Scenario) (*Result, error) {
	p, err := reg.Lookup(scenario.Key())
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	text, err := scenario.Text()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	answers, runErr := puzzle.Run(p, text, puzzle.RunOptions{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:  testutil.NewStepClock(time.Unix(0, 0).UTC(), clockStep),
	})

	result := NewResult()
	expected := make(map[int]string, len(scenario.Expect))
	for _, e := range scenario.Expect {
		expected[e.Part] = e.Answer
	}

	for _, a := range answers {
		pr := PartResult{Part: a.Part, Answer: a.Value, Expected: expected[a.Part]}
		result.Parts = append(result.Parts, pr)
		if pr.Expected != "" && pr.Expected != pr.Answer {
			result.AddError(fmt.Sprintf("part %d: expected %q, got %q", a.Part, pr.Expected, pr.Answer))
		}
	}
	if runErr != nil {
		result.AddError(runErr.Error())
	}

	for _, e := range scenario.Expect {
		if e.Part > len(p.Parts) {
			result.AddError(fmt.Sprintf("part %d: puzzle %s has only %d part(s)", e.Part, p.Key(), len(p.Parts)))
		}
	}

	return result, nil
}
