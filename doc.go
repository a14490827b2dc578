// Package labyrinth generates perfect mazes: grid-shaped graphs with exactly
// one path between any two cells, i.e. a spanning tree over a grid lattice.
//
// What is inside?
//
//	grid/   — the odd-sized cell-state matrix, read-only View, stats and
//	          spanning-tree validation
//	rng/    — injectable random source (seeded or wall-clock seeded)
//	carve/  — three carvers: BinaryTree (bias NW/NE/SW/SE), Prim, Backtracker,
//	          plus the Generate dispatcher and functional options
//	render/ — ASCII and lipgloss-styled text output (pillars, outer frame)
//
// Lattice layout (5×5 grid, 3×3 cells):
//
//	C w C w C     C = cell      (even, even)
//	w + w + w     w = connector (one odd coordinate)
//	C w C w C     + = pillar    (odd, odd), never carved
//	w + w + w
//	C w C w C
//
// Quick start:
//
//	g, shape, err := carve.Prim(40, 20, carve.WithSeed(42))
//	if err != nil { ... }
//	fmt.Print(render.ASCII(g, render.WithBorder()))
//	_ = shape // (21, 41)
//
// Generation is single-threaded; a fixed seed reproduces the matrix bit for bit.
package labyrinth
