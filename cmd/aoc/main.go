// Command aoc runs, benchmarks and verifies Advent of Code solutions.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/polarkac/advent-of-code/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		// Commands report their own ExitErrors; anything else (usage
		// errors from cobra) still needs printing.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) || exitErr.Err == nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	os.Exit(cli.GetExitCode(err))
}
