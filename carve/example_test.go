package carve_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/render"
)

// ExamplePrim generates the 5×5 maze from a fixed seed and checks it is a
// spanning tree: 9 cells joined by 8 connectors.
func ExamplePrim() {
	g, shape, err := carve.Prim(5, 5, carve.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	st := grid.Stats(g)
	fmt.Printf("shape %dx%d, cells %d, connectors %d, perfect %v\n",
		shape.Rows, shape.Cols, st.Cells, st.CarvedConnectors, grid.Validate(g) == nil)
	// Output: shape 5x5, cells 9, connectors 8, perfect true
}

// ExampleBinaryTree shows a one-row maze: with NW bias every cell can only
// open west, so the result is a single straight corridor.
func ExampleBinaryTree() {
	g, _, err := carve.BinaryTree(9, 1, carve.WithSeed(1), carve.WithBias(carve.NW))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(render.ASCII(g, render.WithBorder()))
	// Output:
	// ###########
	// #.........#
	// ###########
}

// ExampleGenerate dispatches by method name, as a CLI would.
func ExampleGenerate() {
	for _, m := range carve.Methods() {
		g, _, err := carve.Generate(m, 20, 10, carve.WithSeed(7))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: %v\n", m, grid.Validate(g) == nil)
	}
	// Output:
	// binary-tree: true
	// prim: true
	// backtracker: true
}
