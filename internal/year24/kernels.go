package year24

import (
	"strconv"

	"github.com/polarkac/advent-of-code/internal/antenna"
	"github.com/polarkac/advent-of-code/internal/calibrate"
	"github.com/polarkac/advent-of-code/internal/disk"
	"github.com/polarkac/advent-of-code/internal/patrol"
	"github.com/polarkac/advent-of-code/internal/stones"
	"github.com/polarkac/advent-of-code/internal/trail"
)

// Blink counts for day 11.
const (
	shortBlinks = 25
	longBlinks  = 75
)

// Day06Part1 counts the distinct cells the guard visits before leaving the
// map.
func Day06Part1(input string) (string, error) {
	m, err := patrol.ParseMap(input)
	if err != nil {
		return "", err
	}
	visited, err := m.Patrol()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(visited), nil
}

// Day07Part1 sums the targets reachable with + and *.
func Day07Part1(input string) (string, error) {
	return calibrationTotal(input, calibrate.Basic)
}

// Day07Part2 sums the targets reachable with +, * and ||.
func Day07Part2(input string) (string, error) {
	return calibrationTotal(input, calibrate.Extended)
}

func calibrationTotal(input string, ops []calibrate.Operator) (string, error) {
	eqs, err := calibrate.ParseEquations(input)
	if err != nil {
		return "", err
	}
	total, err := calibrate.Total(eqs, ops)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(total, 10), nil
}

// Day08Part1 counts distinct in-bounds antinode positions.
func Day08Part1(input string) (string, error) {
	m, err := antenna.ParseMap(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(m.CountAntinodes()), nil
}

// Day09Part1 compacts the disk block by block and returns its checksum.
func Day09Part1(input string) (string, error) {
	d, err := disk.ParseDiskMap(input)
	if err != nil {
		return "", err
	}
	d.Compact()
	return strconv.Itoa(d.Checksum()), nil
}

// Day10Part1 sums the trailhead scores.
func Day10Part1(input string) (string, error) {
	hm, err := trail.ParseHeightMap(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(hm.Score()), nil
}

// Day10Part2 sums the trailhead ratings.
func Day10Part2(input string) (string, error) {
	hm, err := trail.ParseHeightMap(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(hm.Rating()), nil
}

// Day11Part1 counts stones after 25 blinks.
func Day11Part1(input string) (string, error) {
	return stonesAfter(input, shortBlinks)
}

// Day11Part2 counts stones after 75 blinks.
func Day11Part2(input string) (string, error) {
	return stonesAfter(input, longBlinks)
}

func stonesAfter(input string, blinks int) (string, error) {
	m, err := stones.Parse(input)
	if err != nil {
		return "", err
	}
	evolved, err := m.Evolve(blinks)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(evolved.Total(), 10), nil
}
