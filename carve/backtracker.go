package carve

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/rng"
)

// Backtracker generates a width×height maze with randomized depth-first
// backtracking.
//
// Each cell moves through three states:
//
//	Unvisited (still Wall) → Visiting (its frame is on the stack) → Done (frame popped)
//
// Steps:
//  1. Pick a start cell uniformly at random, carve it, push its frame.
//  2. Look at the top frame and advance its cursor over its shuffled neighbours.
//     The first candidate that is in bounds and still Wall gets carved along
//     with the connector, and its own frame is pushed.
//  3. A frame with no candidates left is popped (backtrack).
//  4. Stop when the stack is empty; every cell is then Done.
//
// The stack lives on the heap, so depth is bounded by the number of cells and
// not by the goroutine stack.
//
// Complexity: O(cells) time, O(cells) memory for the stack in the worst case.
func Backtracker(width, height int, opts ...Option) (*grid.Grid, grid.Shape, error) {
	return Generate(MethodBacktracker, width, height, opts...)
}

// dfsFrame is one Visiting cell: its neighbours in shuffled order and how many
// of them have been tried.
type dfsFrame struct {
	cell   grid.Point
	next   [4]grid.Point
	cursor int
}

// newFrame enumerates all four neighbours of c (bounds are checked on use)
// and shuffles them.
func newFrame(c grid.Point, src rng.Source) dfsFrame {
	f := dfsFrame{cell: c}
	f.next = [4]grid.Point{c.Add(0, 2), c.Add(0, -2), c.Add(-2, 0), c.Add(2, 0)}
	rng.ShufflePoints(src, f.next[:])
	return f
}

// carveBacktracker runs the iterative depth-first carver over g in place.
func carveBacktracker(g *grid.Grid, o *Options) error {
	shape := g.Shape()
	start := shape.CellAt(
		rng.PickIndex(o.Source, shape.CellRows()),
		rng.PickIndex(o.Source, shape.CellCols()),
	)
	if err := g.Carve(start); err != nil {
		return fmt.Errorf("%s: %w", MethodBacktracker, err)
	}
	o.emit(g, start, start)

	stack := make([]dfsFrame, 0, shape.CellCount())
	stack = append(stack, newFrame(start, o.Source))

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.cursor == len(top.next) {
			stack = stack[:len(stack)-1] // Done
			continue
		}
		n := top.next[top.cursor]
		top.cursor++
		if !g.InBounds(n) || g.At(n) != grid.Wall {
			continue
		}
		from := top.cell
		if err := g.CarveBetween(from, n); err != nil {
			return fmt.Errorf("%s: %w", MethodBacktracker, err)
		}
		o.emit(g, from, n)
		stack = append(stack, newFrame(n, o.Source))
	}
	return nil
}
