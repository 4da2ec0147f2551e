// Package year24 holds the Advent of Code 2024 puzzles.
//
// Days 1 to 5 are solved inline. Days 6 to 11 parse their input and hand it
// to the reusable kernels (patrol, calibrate, antenna, disk, trail and
// stones); the code here only converts between puzzle text and answers.
package year24

import "github.com/polarkac/advent-of-code/internal/puzzle"

const year = 2024

// Puzzles returns every implemented 2024 puzzle.
func Puzzles() []puzzle.Puzzle {
	return []puzzle.Puzzle{
		{Year: year, Day: 1, Title: "Historian Hysteria", Parts: []puzzle.Part{Day01Part1, Day01Part2}},
		{Year: year, Day: 2, Title: "Red-Nosed Reports", Parts: []puzzle.Part{Day02Part1, Day02Part2}},
		{Year: year, Day: 3, Title: "Mull It Over", Parts: []puzzle.Part{Day03Part1, Day03Part2}},
		{Year: year, Day: 4, Title: "Ceres Search", Parts: []puzzle.Part{Day04Part1}},
		{Year: year, Day: 5, Title: "Print Queue", Parts: []puzzle.Part{Day05Part1, Day05Part2}},
		{Year: year, Day: 6, Title: "Guard Gallivant", Parts: []puzzle.Part{Day06Part1}},
		{Year: year, Day: 7, Title: "Bridge Repair", Parts: []puzzle.Part{Day07Part1, Day07Part2}},
		{Year: year, Day: 8, Title: "Resonant Collinearity", Parts: []puzzle.Part{Day08Part1}},
		{Year: year, Day: 9, Title: "Disk Fragmenter", Parts: []puzzle.Part{Day09Part1}},
		{Year: year, Day: 10, Title: "Hoof It", Parts: []puzzle.Part{Day10Part1, Day10Part2}},
		{Year: year, Day: 11, Title: "Plutonian Pebbles", Parts: []puzzle.Part{Day11Part1, Day11Part2}},
	}
}
