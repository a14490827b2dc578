package carve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/grid"
)

var allBiases = []carve.Bias{carve.NW, carve.NE, carve.SW, carve.SE}

// TestBinaryTree_BiasCorner checks that the corner named by the bias never
// opens a connector of its own, while every other cell opens exactly one.
func TestBinaryTree_BiasCorner(t *testing.T) {
	for _, b := range allBiases {
		t.Run(b.String(), func(t *testing.T) {
			opened := map[grid.Point]int{}
			hook := func(_ grid.View, from, to grid.Point) {
				if from != to {
					opened[from]++
				}
			}
			g, shape, err := carve.BinaryTree(9, 7, carve.WithSeed(4), carve.WithBias(b), carve.WithOnCarve(hook))
			require.NoError(t, err)
			require.NoError(t, grid.Validate(g))

			corner := b.Corner(shape)
			assert.Zero(t, opened[corner], "corner %v opened a connector", corner)
			for _, p := range g.Cells() {
				if p != corner {
					assert.Equal(t, 1, opened[p], "cell %v", p)
				}
			}
		})
	}
}

// TestBinaryTree_Direction checks every opening points along one of the two
// bias directions.
func TestBinaryTree_Direction(t *testing.T) {
	allowed := map[carve.Bias][][2]int{
		carve.NW: {{-2, 0}, {0, -2}},
		carve.NE: {{-2, 0}, {0, 2}},
		carve.SW: {{2, 0}, {0, -2}},
		carve.SE: {{2, 0}, {0, 2}},
	}
	for _, b := range allBiases {
		hook := func(_ grid.View, from, to grid.Point) {
			if from == to {
				return
			}
			d := [2]int{to.Row - from.Row, to.Col - from.Col}
			assert.Contains(t, allowed[b], d, "bias %v step %v->%v", b, from, to)
		}
		_, _, err := carve.BinaryTree(11, 11, carve.WithSeed(8), carve.WithBias(b), carve.WithOnCarve(hook))
		require.NoError(t, err)
	}
}

// TestBinaryTree_StraightEdges checks the corridors along the two edges the
// bias points at are fully open.
func TestBinaryTree_StraightEdges(t *testing.T) {
	for _, b := range allBiases {
		g, shape, err := carve.BinaryTree(15, 11, carve.WithSeed(6), carve.WithBias(b))
		require.NoError(t, err)

		corner := b.Corner(shape)
		for c := 1; c < shape.Cols; c += 2 {
			assert.Equal(t, grid.Passage, g.At(grid.Point{Row: corner.Row, Col: c}), "bias %v row corridor", b)
		}
		for r := 1; r < shape.Rows; r += 2 {
			assert.Equal(t, grid.Passage, g.At(grid.Point{Row: r, Col: corner.Col}), "bias %v column corridor", b)
		}
	}
}

// TestBinaryTree_DefaultBias checks NW is used when no bias is given.
func TestBinaryTree_DefaultBias(t *testing.T) {
	a, _, err := carve.BinaryTree(9, 9, carve.WithSeed(12))
	require.NoError(t, err)
	b, _, err := carve.BinaryTree(9, 9, carve.WithSeed(12), carve.WithBias(carve.NW))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Equal(t, carve.NW, carve.DefaultOptions().Bias)
}

// TestParseBias covers case folding, whitespace and rejection.
func TestParseBias(t *testing.T) {
	tests := []struct {
		in   string
		want carve.Bias
		ok   bool
	}{
		{"NW", carve.NW, true},
		{"ne", carve.NE, true},
		{" Sw ", carve.SW, true},
		{"se", carve.SE, true},
		{"N", carve.NW, false},
		{"", carve.NW, false},
	}
	for _, tc := range tests {
		got, err := carve.ParseBias(tc.in)
		if !tc.ok {
			assert.ErrorIs(t, err, carve.ErrUnknownBias, "input %q", tc.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, got, mustParse(t, got.String()))
	}
	assert.Equal(t, "Bias(9)", carve.Bias(9).String())
}

func mustParse(t *testing.T, s string) carve.Bias {
	t.Helper()
	b, err := carve.ParseBias(s)
	require.NoError(t, err)
	return b
}

// TestOptions_Panics checks option constructors reject meaningless input.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { carve.WithSource(nil) })
	assert.Panics(t, func() { carve.WithBias(carve.Bias(4)) })
	assert.NotPanics(t, func() { carve.WithOnCarve(nil) })
}
