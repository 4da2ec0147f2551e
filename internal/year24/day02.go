package year24

import (
	"strconv"

	"github.com/polarkac/advent-of-code/internal/parse"
)

// Day02Part1 counts safe reports.
func Day02Part1(input string) (string, error) {
	return countReports(input, safe)
}

// Day02Part2 counts reports that are safe after removing at most one level.
func Day02Part2(input string) (string, error) {
	return countReports(input, safeWithTolerance)
}

func countReports(input string, ok func([]int) bool) (string, error) {
	count := 0
	for i, line := range parse.Lines(input) {
		report, err := parse.Ints(i+1, line, "")
		if err != nil {
			return "", err
		}
		if ok(report) {
			count++
		}
	}
	return strconv.Itoa(count), nil
}

// safe reports whether the levels strictly increase or strictly decrease
// with every step between 1 and 3.
func safe(report []int) bool {
	increasing, decreasing := true, true
	for i := 1; i < len(report); i++ {
		d := report[i] - report[i-1]
		if d < 1 || d > 3 {
			increasing = false
		}
		if d > -1 || d < -3 {
			decreasing = false
		}
	}
	return increasing || decreasing
}

func safeWithTolerance(report []int) bool {
	if safe(report) {
		return true
	}
	dampened := make([]int, 0, len(report))
	for skip := range report {
		dampened = dampened[:0]
		dampened = append(dampened, report[:skip]...)
		dampened = append(dampened, report[skip+1:]...)
		if safe(dampened) {
			return true
		}
	}
	return false
}
