package carve_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/carve"
)

// BenchmarkBinaryTree measures a single pass over a 201×201 grid.
func BenchmarkBinaryTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = carve.BinaryTree(201, 201, carve.WithSeed(int64(i)))
	}
}

// BenchmarkPrim measures randomized Prim on a 201×201 grid.
func BenchmarkPrim(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = carve.Prim(201, 201, carve.WithSeed(int64(i)))
	}
}

// BenchmarkBacktracker measures the explicit-stack DFS on a 201×201 grid.
func BenchmarkBacktracker(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = carve.Backtracker(201, 201, carve.WithSeed(int64(i)))
	}
}
