package interval

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes remapping errors.
type ErrorCode string

const (
	// ErrCodeInvalidInterval indicates start >= end for a query or a rule part.
	ErrCodeInvalidInterval ErrorCode = "INVALID_INTERVAL"

	// ErrCodeMalformedRule indicates a rule whose source and destination
	// lengths differ.
	ErrCodeMalformedRule ErrorCode = "MALFORMED_RULE"

	// ErrCodeOverlappingRules indicates a rule whose source overlaps a rule
	// already held by the table.
	ErrCodeOverlappingRules ErrorCode = "OVERLAPPING_RULES"
)

// Error is returned for malformed input to the remapper.
// Nothing is coerced: the offending call fails and reports what it saw.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newInvalidInterval(iv Interval, role string) *Error {
	return &Error{
		Code:    ErrCodeInvalidInterval,
		Message: fmt.Sprintf("%s %s is empty or reversed", role, iv),
	}
}

func newMalformedRule(r Rule) *Error {
	return &Error{
		Code:    ErrCodeMalformedRule,
		Message: fmt.Sprintf("source %s (len %d) and destination %s (len %d) differ in length", r.Source, r.Source.Len(), r.Dest, r.Dest.Len()),
	}
}

func newOverlap(r, existing Rule) *Error {
	return &Error{
		Code:    ErrCodeOverlappingRules,
		Message: fmt.Sprintf("source %s overlaps source %s", r.Source, existing.Source),
	}
}

// IsInvalidInterval reports whether err is an INVALID_INTERVAL error.
func IsInvalidInterval(err error) bool {
	return hasCode(err, ErrCodeInvalidInterval)
}

// IsMalformedRule reports whether err is a MALFORMED_RULE error.
func IsMalformedRule(err error) bool {
	return hasCode(err, ErrCodeMalformedRule)
}

// IsOverlap reports whether err is an OVERLAPPING_RULES error.
func IsOverlap(err error) bool {
	return hasCode(err, ErrCodeOverlappingRules)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
