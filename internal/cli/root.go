package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/polarkac/advent-of-code/internal/catalog"
	"github.com/polarkac/advent-of-code/internal/puzzle"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Color   string // "auto" | "always" | "never"

	// Registry allows overriding the puzzle catalog (for testing).
	// If nil, defaults to catalog.Default().
	Registry *puzzle.Registry
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// ValidColors defines the allowed colour modes.
var ValidColors = []string{"auto", "always", "never"}

// NewRootCommand creates the root command for the aoc CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code solutions",
		Long:  "Run, benchmark and verify Advent of Code puzzle solutions.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return NewExitError(ExitCommandError, err.Error())
			}
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), opts.Verbose))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Color, "color", "auto", "colour output (auto|always|never)")

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

func (o *RootOptions) validate() error {
	if !slices.Contains(ValidFormats, o.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", o.Format, ValidFormats)
	}
	if o.Color != "" && !slices.Contains(ValidColors, o.Color) {
		return fmt.Errorf("invalid color %q: must be one of %v", o.Color, ValidColors)
	}
	return nil
}

// registry returns the configured puzzle catalog.
func (o *RootOptions) registry() *puzzle.Registry {
	if o.Registry == nil {
		o.Registry = catalog.Default()
	}
	return o.Registry
}

// newLogger builds the text logger used by every command: Info by default,
// Debug with --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}
