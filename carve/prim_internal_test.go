package carve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/rng"
)

// TestKeyOf_Unordered checks both directions of an edge share one key.
func TestKeyOf_Unordered(t *testing.T) {
	a, b := grid.Point{Row: 2, Col: 2}, grid.Point{Row: 2, Col: 4}
	assert.Equal(t, keyOf(a, b), keyOf(b, a))
	assert.NotEqual(t, keyOf(a, b), keyOf(a, grid.Point{Row: 4, Col: 2}))
}

// TestPrimFrontier_AdmitsOnce checks an undirected pair enters the frontier
// at most once, whichever endpoint pushes it.
func TestPrimFrontier_AdmitsOnce(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	f := newPrimFrontier(8)
	f.push(g, grid.Point{Row: 2, Col: 2})
	require.Len(t, f.edges, 4)

	f.push(g, grid.Point{Row: 2, Col: 2})
	assert.Len(t, f.edges, 4, "re-push must not duplicate")

	f.push(g, grid.Point{Row: 2, Col: 4}) // shares (2,2)-(2,4); adds N and S
	assert.Len(t, f.edges, 6)
	assert.Equal(t, 6, f.admitted.Size())

	src := rng.New(1)
	seen := map[edgeKey]bool{}
	for len(f.edges) > 0 {
		e := f.pop(src)
		k := keyOf(e.from, e.to)
		assert.False(t, seen[k], "edge %v popped twice", k)
		seen[k] = true
	}
}

// TestCarvePrim_FrontierExhausted forces the invariant violation: with every
// cell pre-carved, no edge can ever be used and the frontier drains early.
func TestCarvePrim_FrontierExhausted(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	for _, p := range g.Cells() {
		require.NoError(t, g.Carve(p))
	}
	o := newOptions(WithSeed(1))
	assert.ErrorIs(t, carvePrim(g, &o), ErrFrontierExhausted)
}

// TestNewFrame_AllDirections checks a frame lists the four neighbours once each.
func TestNewFrame_AllDirections(t *testing.T) {
	c := grid.Point{Row: 4, Col: 4}
	f := newFrame(c, rng.New(2))
	assert.ElementsMatch(t, []grid.Point{
		{Row: 4, Col: 6}, {Row: 4, Col: 2}, {Row: 2, Col: 4}, {Row: 6, Col: 4},
	}, f.next[:])
	assert.Zero(t, f.cursor)
}
