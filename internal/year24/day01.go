package year24

import (
	"sort"
	"strconv"

	"github.com/polarkac/advent-of-code/internal/parse"
)

// Day01Part1 sums the distances between the sorted left and right lists.
func Day01Part1(input string) (string, error) {
	left, right, err := parseLocationLists(input)
	if err != nil {
		return "", err
	}
	sort.Ints(left)
	sort.Ints(right)

	total := 0
	for i := range left {
		d := left[i] - right[i]
		if d < 0 {
			d = -d
		}
		total += d
	}
	return strconv.Itoa(total), nil
}

// Day01Part2 sums every left value multiplied by how often it appears in the
// right list.
func Day01Part2(input string) (string, error) {
	left, right, err := parseLocationLists(input)
	if err != nil {
		return "", err
	}
	occurrences := make(map[int]int, len(right))
	for _, v := range right {
		occurrences[v]++
	}

	score := 0
	for _, v := range left {
		score += v * occurrences[v]
	}
	return strconv.Itoa(score), nil
}

func parseLocationLists(input string) (left, right []int, err error) {
	for i, line := range parse.Lines(input) {
		pair, err := parse.Ints(i+1, line, "")
		if err != nil {
			return nil, nil, err
		}
		if len(pair) != 2 {
			return nil, nil, parse.Errorf(i+1, "expected two location ids, got %d", len(pair))
		}
		left = append(left, pair[0])
		right = append(right, pair[1])
	}
	return left, right, nil
}
