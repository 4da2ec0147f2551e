// Package year15 holds the Advent of Code 2015 puzzles.
package year15

import (
	"errors"
	"strconv"

	"github.com/polarkac/advent-of-code/internal/puzzle"
)

// ErrNeverBasement is returned when the instructions never reach floor -1.
var ErrNeverBasement = errors.New("year15: instructions never enter the basement")

// Puzzles returns every implemented 2015 puzzle.
func Puzzles() []puzzle.Puzzle {
	return []puzzle.Puzzle{
		{Year: 2015, Day: 1, Title: "Not Quite Lisp", Parts: []puzzle.Part{Day01Part1, Day01Part2}},
	}
}

// Day01Part1 returns the floor Santa ends on. '(' goes up, ')' goes down and
// every other character is ignored.
func Day01Part1(input string) (string, error) {
	floor := 0
	for i := 0; i < len(input); i++ {
		floor += move(input[i])
	}
	return strconv.Itoa(floor), nil
}

// Day01Part2 returns the 1-based position of the instruction that first
// takes Santa to floor -1.
func Day01Part2(input string) (string, error) {
	floor := 0
	for i := 0; i < len(input); i++ {
		floor += move(input[i])
		if floor == -1 {
			return strconv.Itoa(i + 1), nil
		}
	}
	return "", ErrNeverBasement
}

func move(c byte) int {
	switch c {
	case '(':
		return 1
	case ')':
		return -1
	}
	return 0
}
