package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	err := Errorf(CodeOutOfRange, "bit (%d, %d) outside %dx%d relation", 3, 5, 4, 4)
	assert.Equal(t, "engine: bit (3, 5) outside 4x4 relation (code=1)", err.Error())
}

func TestAsError_Wrapped(t *testing.T) {
	inner := Errorf(CodeExhausted, "vector enumeration exhausted")
	wrapped := fmt.Errorf("advance: %w", inner)

	e, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeExhausted, e.Code)

	assert.True(t, IsExhausted(wrapped))
	assert.False(t, IsExhausted(Errorf(CodeOutOfRange, "nope")))
	assert.False(t, IsExhausted(nil))
}
