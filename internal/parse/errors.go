package parse

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is matched by every error produced while turning puzzle
// text into a kernel structure. Use errors.Is to test for it.
var ErrMalformedInput = errors.New("malformed input")

// Error describes a parse failure at a specific input line.
//
// Line is 1-based and counts only the non-blank lines handed to the parser;
// zero means the failure is not tied to a single line (e.g. an empty input).
type Error struct {
	// Line is the 1-based line number, or 0 when not applicable.
	Line int

	// Msg is a human-readable description.
	Msg string

	// Err is an optional underlying cause (a sentinel such as
	// grid.ErrNonRectangular, or a strconv error).
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", ErrMalformedInput, e.Line, msg)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedInput, msg)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedInput.
func (e *Error) Is(target error) bool {
	return target == ErrMalformedInput
}

// Errorf creates an Error for the given line.
func Errorf(line int, format string, args ...any) *Error {
	return &Error{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error for the given line around an existing cause.
func Wrap(line int, err error) *Error {
	return &Error{Line: line, Err: err}
}

// IsMalformed returns true if err is (or wraps) a malformed input error.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}
