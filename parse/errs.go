package parse

import "errors"

var (
	// ErrSyntax wraps every parse-level failure.
	ErrSyntax = errors.New("syntax error")
	// ErrDepth is returned when nesting exceeds the configured limit.
	ErrDepth = errors.New("max nesting depth exceeded")
)
