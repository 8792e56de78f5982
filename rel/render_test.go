package rel

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// TestRelation_StringIdentity pins the rendered identity grid.
func TestRelation_StringIdentity(t *testing.T) {
	ctx := newTestContext(t)

	r, err := ctx.New(4, 4)
	require.NoError(t, err)
	id, err := r.Identity()
	require.NoError(t, err)

	newGoldie(t).Assert(t, "identity4", []byte(id.String()))
}

// TestRelation_StringComposition pins the rendered composition result.
func TestRelation_StringComposition(t *testing.T) {
	ctx := newTestContext(t)

	a, err := ctx.New(4, 4, []int{0, 1}, []int{2, 3})
	require.NoError(t, err)
	b, err := ctx.New(4, 4, []int{1, 3}, []int{3, 3})
	require.NoError(t, err)
	ab, err := a.Compose(b)
	require.NoError(t, err)

	newGoldie(t).Assert(t, "compose", []byte(ab.String()))
}

// TestRelation_RenderGlyphs tests custom glyphs.
func TestRelation_RenderGlyphs(t *testing.T) {
	ctx := newTestContext(t)

	r, err := ctx.New(2, 2, []int{0, 0}, []int{1, 1})
	require.NoError(t, err)

	s, err := r.Render('#', '-')
	require.NoError(t, err)
	assert.Equal(t, "#-\n-#", s)
}

// TestRelation_StringDestroyed tests that rendering never panics on a
// destroyed relation.
func TestRelation_StringDestroyed(t *testing.T) {
	ctx := newTestContext(t)

	r, err := ctx.New(2, 2)
	require.NoError(t, err)
	ctx.Destroy(r)

	assert.Equal(t, "<destroyed relation>", r.String())

	_, err = r.Render('X', '.')
	require.Error(t, err)
	assert.True(t, IsTypeMismatch(err))
}

// TestRelation_StringEmptyDimension tests the 0x0 rendering.
func TestRelation_StringEmptyDimension(t *testing.T) {
	ctx := newTestContext(t)

	r, err := ctx.New(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "", r.String())
}
