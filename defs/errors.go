package defs

import "errors"

var (
	// ErrInvalidArgument marks caller defects detected at construction time:
	// blank identifiers, zero-value references, missing required values.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a lookup for an identifier that was never declared.
	ErrNotFound = errors.New("not found")
)
