package query

import (
	"fmt"
)

// ParseError is malformed query: missing operand, misplaced combinator,
// mismatched grouping
type ParseError struct {
	// Pos is index of offending token, len(tokens) when query ended prematurely
	Pos     int
	Token   string
	Message string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parsing failed at end of query: %s", e.Message)
	}
	return fmt.Sprintf("parsing failed at %q (token %d): %s", e.Token, e.Pos+1, e.Message)
}

// ResolutionError is unknown field or selector in predicate, predicate matches nothing
type ResolutionError struct {
	Field  string
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unable to resolve field %s: %s", e.Field, e.Reason)
}

// ComparisonError is invalid operand (regexp), predicate matches nothing
type ComparisonError struct {
	Operand string
	Err     error
}

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("invalid regular expression %q: %s", e.Operand, e.Err)
}

// Unwrap returns underlying regexp error
func (e *ComparisonError) Unwrap() error {
	return e.Err
}
