package puzzle

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/polarkac/advent-of-code/internal/bench"
)

// Answer is the result of one part.
type Answer struct {
	Part    int
	Value   string
	Elapsed time.Duration
}

// RunOptions configures Run. The zero value is valid.
type RunOptions struct {
	// Logger receives per-part progress at debug level. Nil discards.
	Logger *slog.Logger

	// Clock times each part. Nil uses the system clock.
	Clock bench.Clock
}

// Run executes every part of p against input in order. It stops at the
// first failing part and returns the answers produced so far with the error.
func Run(p Puzzle, input string, opts RunOptions) ([]Answer, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	clock := opts.Clock
	if clock == nil {
		clock = bench.SystemClock{}
	}

	answers := make([]Answer, 0, len(p.Parts))
	for i, part := range p.Parts {
		n := i + 1
		logger.Debug("running part", "year", p.Year, "day", p.Day, "part", n)

		start := clock.Now()
		value, err := part(input)
		elapsed := clock.Now().Sub(start)
		if err != nil {
			return answers, fmt.Errorf("%s part %d: %w", p.Key(), n, err)
		}

		logger.Debug("part finished", "year", p.Year, "day", p.Day, "part", n, "elapsed", elapsed)
		answers = append(answers, Answer{Part: n, Value: value, Elapsed: elapsed})
	}
	return answers, nil
}
