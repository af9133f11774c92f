package puzzle

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when an input holds nothing to solve.
var ErrEmptyInput = errors.New("empty input")

// ParseError reports malformed puzzle input.
type ParseError struct {
	Day     int
	Line    int // 1-based; 0 when the error is not tied to a line
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("day %d: line %d: %s", e.Day, e.Line, msg)
	}
	return fmt.Sprintf("day %d: %s", e.Day, msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is, or wraps, a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

func parseErr(day int, l line, err error, format string, args ...any) *ParseError {
	return &ParseError{Day: day, Line: l.num, Message: fmt.Sprintf(format, args...), Err: err}
}
