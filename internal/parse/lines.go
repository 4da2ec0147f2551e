// Package parse holds the small text helpers shared by every puzzle parser
// and the MalformedInput error taxonomy.
package parse

import (
	"strconv"
	"strings"
)

// Lines splits text on newlines, trims incidental whitespace from every line
// and drops blank lines.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Sections splits text into blank-line separated blocks, each returned as
// its trimmed non-blank lines. Empty blocks are dropped.
func Sections(text string) [][]string {
	var (
		sections [][]string
		current  []string
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(current) > 0 {
				sections = append(sections, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		sections = append(sections, current)
	}
	return sections
}

// Uint64 parses a non-negative decimal integer found on the given line.
func Uint64(line int, s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, &Error{Line: line, Msg: "expected a non-negative integer", Err: err}
	}
	return v, nil
}

// Int parses a signed decimal integer found on the given line.
func Int(line int, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &Error{Line: line, Msg: "expected an integer", Err: err}
	}
	return v, nil
}

// Uint64s parses whitespace-separated non-negative integers.
func Uint64s(line int, s string) ([]uint64, error) {
	fields := strings.Fields(s)
	values := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := Uint64(line, f)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Ints parses integers separated by sep. An empty sep splits on whitespace.
func Ints(line int, s, sep string) ([]int, error) {
	var fields []string
	if sep == "" {
		fields = strings.Fields(s)
	} else {
		fields = strings.Split(s, sep)
	}
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := Int(line, f)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
