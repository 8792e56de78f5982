// Package testutil provides shared fixtures for bitrel tests.
package testutil

import (
	"testing"

	"github.com/roach88/bitrel/engine/bitgrid"
	"github.com/roach88/bitrel/rel"
)

// Seed fixes the bitgrid random source for reproducible RandomFill.
const Seed = 0x6b697474656e

// NewContext creates a context on a seeded bitgrid engine and closes it
// when the test ends.
func NewContext(t *testing.T) *rel.Context {
	t.Helper()
	ctx, err := rel.NewContext(rel.WithEngine(bitgrid.New(bitgrid.WithSeed(Seed))))
	if err != nil {
		t.Fatalf("create context: %v", err)
	}
	t.Cleanup(ctx.Close)
	return ctx
}

// MustNew mints a relation or fails the test.
func MustNew(t *testing.T, ctx *rel.Context, rows, cols int, bits ...[]int) *rel.Relation {
	t.Helper()
	r, err := ctx.New(rows, cols, bits...)
	if err != nil {
		t.Fatalf("new %dx%d relation: %v", rows, cols, err)
	}
	return r
}
