package validate

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidPack is wrapped by Result.Err when a pack has content errors.
var ErrInvalidPack = errors.New("invalid definition pack")

// Result is the outcome of validating a pack: every content error found, in
// the order the checks ran.
type Result struct {
	errs []string
}

// Errors returns a copy of the accumulated messages.
func (r Result) Errors() []string { return slices.Clone(r.errs) }

// IsValid reports whether no errors were found.
func (r Result) IsValid() bool { return len(r.errs) == 0 }

// Err returns nil for a valid pack. Otherwise it returns an error wrapping
// ErrInvalidPack that joins every message.
func (r Result) Err() error {
	if r.IsValid() {
		return nil
	}
	errs := make([]error, len(r.errs))
	for i, msg := range r.errs {
		errs[i] = errors.New(msg)
	}
	return fmt.Errorf("%w: %w", ErrInvalidPack, errors.Join(errs...))
}
