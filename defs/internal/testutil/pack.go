// Package testutil provides shared test infrastructure for the defs packages:
// building derived packs from the reference content and asserting on
// validation messages.
package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alivastudio/motorracing-manager/defs"
	"github.com/alivastudio/motorracing-manager/defs/refpack"
)

// F1 returns a fresh copy of the F1 reference pack.
func F1(t testing.TB) *defs.Pack {
	t.Helper()
	return refpack.F1()
}

// IndyCar returns a fresh copy of the IndyCar reference pack.
func IndyCar(t testing.TB) *defs.Pack {
	t.Helper()
	return refpack.IndyCar()
}

// Mutate copies p, applies edit to the copy and builds a new pack from it.
// The edit must only introduce content errors; programmer errors rejected by
// defs.NewPack fail the test.
func Mutate(t testing.TB, p *defs.Pack, edit func(c *defs.PackContents)) *defs.Pack {
	t.Helper()
	c := p.Contents()
	edit(&c)
	out, err := defs.NewPack(c)
	require.NoError(t, err, "mutated pack rejected by NewPack")
	return out
}

// AssertHasError fails unless some message in errs contains fragment.
func AssertHasError(t testing.TB, errs []string, fragment string) {
	t.Helper()
	for _, msg := range errs {
		if strings.Contains(msg, fragment) {
			return
		}
	}
	t.Errorf("no error contains %q; got:\n  %s", fragment, strings.Join(errs, "\n  "))
}

// AssertNoError fails if some message in errs contains fragment.
func AssertNoError(t testing.TB, errs []string, fragment string) {
	t.Helper()
	for _, msg := range errs {
		if strings.Contains(msg, fragment) {
			t.Errorf("unexpected error containing %q: %s", fragment, msg)
		}
	}
}
