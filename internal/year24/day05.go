package year24

import (
	"strconv"
	"strings"

	"github.com/polarkac/advent-of-code/internal/parse"
)

type pageRule struct {
	before, after int
}

type printQueue struct {
	rules   map[pageRule]struct{}
	updates [][]int
}

// Day05Part1 sums the middle page of every update that is already in order.
func Day05Part1(input string) (string, error) {
	q, err := parsePrintQueue(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, update := range q.updates {
		if q.ordered(update) {
			total += update[len(update)/2]
		}
	}
	return strconv.Itoa(total), nil
}

// Day05Part2 puts every out-of-order update in order and sums their middle
// pages.
func Day05Part2(input string) (string, error) {
	q, err := parsePrintQueue(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, update := range q.updates {
		if q.ordered(update) {
			continue
		}
		fixed, ok := q.reorder(update)
		if !ok {
			return "", parse.Errorf(0, "rules for update %v contain a cycle", update)
		}
		total += fixed[len(fixed)/2]
	}
	return strconv.Itoa(total), nil
}

// reorder returns update in an order satisfying every rule between its
// pages. Among pages that are free to go next, the one appearing earliest in
// update is placed first. ok is false when the rules form a cycle.
func (q *printQueue) reorder(update []int) ([]int, bool) {
	blockers := make([]int, len(update))
	for i, before := range update {
		for j, after := range update {
			if _, ruled := q.rules[pageRule{before: before, after: after}]; ruled && i != j {
				blockers[j]++
			}
		}
	}
	placed := make([]bool, len(update))
	out := make([]int, 0, len(update))
	for len(out) < len(update) {
		next := -1
		for i := range update {
			if !placed[i] && blockers[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			return nil, false
		}
		placed[next] = true
		out = append(out, update[next])
		for j, after := range update {
			if _, ruled := q.rules[pageRule{before: update[next], after: after}]; ruled && !placed[j] {
				blockers[j]--
			}
		}
	}
	return out, true
}

// ordered reports whether no rule places a later page before an earlier one.
func (q *printQueue) ordered(update []int) bool {
	for i := range update {
		for j := i + 1; j < len(update); j++ {
			if _, broken := q.rules[pageRule{before: update[j], after: update[i]}]; broken {
				return false
			}
		}
	}
	return true
}

func parsePrintQueue(input string) (*printQueue, error) {
	sections := parse.Sections(input)
	if len(sections) != 2 {
		return nil, parse.Errorf(0, "expected rules and updates sections, got %d sections", len(sections))
	}

	q := &printQueue{rules: make(map[pageRule]struct{})}
	for i, line := range sections[0] {
		before, after, ok := strings.Cut(line, "|")
		if !ok {
			return nil, parse.Errorf(i+1, "ordering rule %q is missing '|'", line)
		}
		b, err := parse.Int(i+1, before)
		if err != nil {
			return nil, err
		}
		a, err := parse.Int(i+1, after)
		if err != nil {
			return nil, err
		}
		q.rules[pageRule{before: b, after: a}] = struct{}{}
	}

	offset := len(sections[0])
	for i, line := range sections[1] {
		pages, err := parse.Ints(offset+i+1, line, ",")
		if err != nil {
			return nil, err
		}
		q.updates = append(q.updates, pages)
	}
	return q, nil
}
