package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Supported puzzle calendar.
const (
	FirstYear = 2015
	LastYear  = 2024
	FirstDay  = 1
	LastDay   = 25
)

// Date errors.
var (
	ErrParseYear   = errors.New("puzzle: year is not a number")
	ErrInvalidYear = fmt.Errorf("puzzle: year must be between %d and %d", FirstYear, LastYear)
	ErrParseDay    = errors.New("puzzle: day is not a number")
	ErrInvalidDay  = fmt.Errorf("puzzle: day must be between %d and %d", FirstDay, LastDay)
	ErrInvalidDate = errors.New("puzzle: no puzzle for this date")
)

// Key identifies a puzzle by its calendar date.
type Key struct {
	Year int
	Day  int
}

// String formats the key as "2024/06".
func (k Key) String() string {
	return fmt.Sprintf("%d/%02d", k.Year, k.Day)
}

// Validate checks that the key lies inside the supported calendar.
func (k Key) Validate() error {
	if k.Year < FirstYear || k.Year > LastYear {
		return fmt.Errorf("%w: got %d", ErrInvalidYear, k.Year)
	}
	if k.Day < FirstDay || k.Day > LastDay {
		return fmt.Errorf("%w: got %d", ErrInvalidDay, k.Day)
	}
	return nil
}

// ParseYear parses and validates a year argument.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParseYear, s)
	}
	if year < FirstYear || year > LastYear {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidYear, year)
	}
	return year, nil
}

// ParseDay parses and validates a day argument. Leading zeros are accepted.
func ParseDay(s string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParseDay, s)
	}
	if day < FirstDay || day > LastDay {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidDay, day)
	}
	return day, nil
}

// ParseKey parses a year and day pair.
func ParseKey(year, day string) (Key, error) {
	y, err := ParseYear(year)
	if err != nil {
		return Key{}, err
	}
	d, err := ParseDay(day)
	if err != nil {
		return Key{}, err
	}
	return Key{Year: y, Day: d}, nil
}
