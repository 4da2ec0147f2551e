package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polarkac/advent-of-code/internal/bench"
	"github.com/polarkac/advent-of-code/internal/input"
	"github.com/polarkac/advent-of-code/internal/parse"
	"github.com/polarkac/advent-of-code/internal/puzzle"
	"github.com/polarkac/advent-of-code/internal/report"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Bench   bool
	Samples int
	Input   string // explicit input file
	Inputs  string // input directory root

	// Clock allows overriding the timing clock (for testing).
	// If nil, defaults to bench.SystemClock.
	Clock bench.Clock

	// TraceIDs allows overriding the trace id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	TraceIDs IDGenerator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <year> <day>",
		Short: "Solve a puzzle",
		Long: `Run every part of a puzzle against its input and print the answers.

Input is read from <inputs>/<year>/<day>.txt (day zero-padded to two
digits) unless --input names a file. With --bench each part is timed
over --samples runs and min/max/avg are reported instead of answers.

Exit codes:
  0 - All parts produced an answer
  1 - A part failed (malformed input, no solution, etc.)
  2 - Command error (invalid date, missing input, etc.)

Examples:
  aoc run 2024 6
  aoc run 2024 11 --input ./stones.txt
  aoc run 2024 7 --bench --samples 50
  aoc run 2015 1 --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPuzzle(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Bench, "bench", false, "benchmark each part instead of printing answers")
	cmd.Flags().IntVar(&opts.Samples, "samples", bench.DefaultSamples, "number of timed runs per part with --bench")
	cmd.Flags().StringVar(&opts.Input, "input", "", "read input from this file")
	cmd.Flags().StringVar(&opts.Inputs, "inputs", "input", "root directory of puzzle inputs")

	return cmd
}

func runPuzzle(opts *RunOptions, yearArg, dayArg string, cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	traceIDs := opts.TraceIDs
	if traceIDs == nil {
		traceIDs = UUIDv7Generator{}
	}
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		TraceIDs:  traceIDs,
	}

	key, err := puzzle.ParseKey(yearArg, dayArg)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidDate, err)
	}
	p, err := opts.registry().Lookup(key)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidDate, err)
	}
	if opts.Bench && opts.Samples < 1 {
		return formatter.Fail(ExitCommandError, ErrCodeBadFlag, fmt.Errorf("--samples must be positive, got %d", opts.Samples))
	}

	var provider input.Provider = input.Dir{Root: opts.Inputs}
	if opts.Input != "" {
		provider = input.File(opts.Input)
	}
	text, err := provider.Input(key)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInputNotFound, err)
	}
	logger.Debug("input loaded", "year", key.Year, "day", key.Day, "bytes", len(text))

	if opts.Bench {
		return benchPuzzle(opts, formatter, p, text, cmd)
	}

	answers, err := puzzle.Run(p, text, puzzle.RunOptions{Logger: logger, Clock: opts.Clock})
	if err != nil {
		code := ErrCodePartFailed
		if errors.Is(err, parse.ErrMalformedInput) {
			code = ErrCodeMalformedInput
		}
		return formatter.Fail(ExitFailure, code, err)
	}

	if opts.Format == "json" {
		return formatter.Success(report.Run(p, answers))
	}

	styles := NewStyles(cmd.OutOrStdout(), opts.Color)
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, styles.Title.Render(fmt.Sprintf("%s %s", p.Key(), p.Title)))
	for _, a := range answers {
		fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf("= Part %d =", a.Part)))
		fmt.Fprintln(w, styles.Answer.Render(a.Value))
	}
	return nil
}

func benchPuzzle(opts *RunOptions, formatter *OutputFormatter, p puzzle.Puzzle, text string, cmd *cobra.Command) error {
	stats := make([]bench.Stats, 0, len(p.Parts))
	for i, part := range p.Parts {
		s, err := bench.Measure(opts.Clock, opts.Samples, func() error {
			_, err := part(text)
			return err
		})
		if err != nil {
			code := ErrCodePartFailed
			if errors.Is(err, parse.ErrMalformedInput) {
				code = ErrCodeMalformedInput
			}
			return formatter.Fail(ExitFailure, code, fmt.Errorf("%s part %d: %w", p.Key(), i+1, err))
		}
		stats = append(stats, s)
	}

	if opts.Format == "json" {
		return formatter.Success(report.Bench(p, stats))
	}

	styles := NewStyles(cmd.OutOrStdout(), opts.Color)
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, styles.Title.Render(fmt.Sprintf("%s %s", p.Key(), p.Title)))
	for i, s := range stats {
		fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf("= Part %d =", i+1)))
		fmt.Fprintln(w, "Min\tMax\tAvg")
		fmt.Fprintf(w, "%s\t%s\t%s\n", bench.Humanize(s.Min), bench.Humanize(s.Max), bench.Humanize(s.Avg))
	}
	return nil
}
