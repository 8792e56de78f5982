package rel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bitrel/engine"
)

// fullRow returns the (row, col) pairs of one entirely set row.
func fullRow(row, cols int) [][]int {
	pairs := make([][]int, cols)
	for col := 0; col < cols; col++ {
		pairs[col] = []int{row, col}
	}
	return pairs
}

// TestRelation_VectorFirst tests the canonical first vector.
func TestRelation_VectorFirst(t *testing.T) {
	ctx := newTestContext(t)

	r, err := ctx.New(4, 3, []int{2, 2})
	require.NoError(t, err)

	require.NoError(t, r.Vector(0))
	assertBits(t, r, fullRow(0, 3))
}

// TestRelation_VectorAtIndex tests positioning past the first vector.
func TestRelation_VectorAtIndex(t *testing.T) {
	ctx := newTestContext(t)

	r, err := ctx.New(4, 3)
	require.NoError(t, err)

	require.NoError(t, r.Vector(2))
	assertBits(t, r, fullRow(2, 3))
}

// TestRelation_VectorNext tests stepping through the enumeration.
func TestRelation_VectorNext(t *testing.T) {
	ctx := newTestContext(t)

	r, err := ctx.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, r.Vector(0))

	require.NoError(t, r.VectorNext(1))
	assertBits(t, r, fullRow(1, 2))

	require.NoError(t, r.VectorNext(1))
	assertBits(t, r, fullRow(2, 2))
}

// TestRelation_VectorExhausted tests that advancing past the last row
// fails with the engine's exhausted code and is terminal.
func TestRelation_VectorExhausted(t *testing.T) {
	ctx := newTestContext(t)

	r, err := ctx.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, r.Vector(2)) // last row

	err = r.VectorNext(1)
	require.Error(t, err)
	assert.True(t, IsEngineFailure(err))

	var relErr *Error
	require.ErrorAs(t, err, &relErr)
	assert.Equal(t, engine.CodeExhausted, relErr.EngineCode)

	// Restarting the enumeration recovers the handle.
	require.NoError(t, r.Vector(0))
	assertBits(t, r, fullRow(0, 2))
}

// TestRelation_VectorArguments tests local validation of the index and
// increment.
func TestRelation_VectorArguments(t *testing.T) {
	ctx := newTestContext(t)

	r, err := ctx.New(3, 2)
	require.NoError(t, err)

	err = r.Vector(-1)
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))

	require.NoError(t, r.Vector(0))
	err = r.VectorNext(-2)
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))

	// Zero increment is a no-op.
	require.NoError(t, r.VectorNext(0))
	assertBits(t, r, fullRow(0, 2))
}
