package scenario

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by *ParseError.
var (
	ErrUnexpectedEOF  = errors.New("scenario: unexpected end of input")
	ErrBadCount       = errors.New("scenario: count must be a non-negative integer")
	ErrBadCost        = errors.New("scenario: cost must be a non-negative integer")
	ErrDanglingEdge   = errors.New("scenario: destination without a cost")
	ErrUnknownVertex  = errors.New("scenario: role references a vertex not in the graph")
	ErrUnknownCompany = errors.New("scenario: company is not configured")
	ErrCountMismatch  = errors.New("scenario: item count does not match its header")
	ErrRoleConflict   = errors.New("scenario: vertex already has another role")
)

// ParseError locates a structural problem in scenario input.
type ParseError struct {
	Line  int    // 1-based; 0 when the input ended early
	Field string // which part of the input was being read
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("scenario: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("scenario: line %d: %s: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
