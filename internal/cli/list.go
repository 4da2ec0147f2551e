package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polarkac/advent-of-code/internal/report"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List implemented puzzles",
		Long: `List every implemented puzzle with its title and number of parts.

Examples:
  aoc list
  aoc list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzles := rootOpts.registry().All()

			if rootOpts.Format == "json" {
				formatter := &OutputFormatter{Format: "json", Writer: cmd.OutOrStdout()}
				return formatter.Success(report.Catalog(puzzles))
			}

			styles := NewStyles(cmd.OutOrStdout(), rootOpts.Color)
			w := cmd.OutOrStdout()
			for _, p := range puzzles {
				parts := "parts"
				if len(p.Parts) == 1 {
					parts = "part"
				}
				fmt.Fprintf(w, "%s  %s  %s\n",
					styles.Title.Render(p.Key().String()),
					p.Title,
					styles.Muted.Render(fmt.Sprintf("(%d %s)", len(p.Parts), parts)))
			}
			return nil
		},
	}
}
