package carve

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/rng"
)

// BinaryTree generates a width×height maze with the binary-tree carver.
// The bias comes from WithBias (default NW).
//
// Steps:
//  1. Visit every lattice cell in row-major order and carve it.
//  2. Collect the in-bounds neighbours in the two bias directions.
//  3. If any exist, shuffle them, take the first, and carve it together with
//     the connector between the two cells.
//
// The cell at Bias.Corner has no candidates and opens nothing itself; that is
// expected. A 1×1 lattice yields one carved cell and no connectors.
//
// Complexity: O(cells) time, O(1) extra memory.
func BinaryTree(width, height int, opts ...Option) (*grid.Grid, grid.Shape, error) {
	return Generate(MethodBinaryTree, width, height, opts...)
}

// carveBinaryTree runs the binary-tree pass over g in place.
func carveBinaryTree(g *grid.Grid, o *Options) error {
	steps := o.Bias.offsets()
	candidates := make([]grid.Point, 0, len(steps))
	shape := g.Shape()

	for r := 0; r < shape.Rows; r += 2 {
		for c := 0; c < shape.Cols; c += 2 {
			p := grid.Point{Row: r, Col: c}
			if err := g.Carve(p); err != nil {
				return fmt.Errorf("%s: %w", MethodBinaryTree, err)
			}
			o.emit(g, p, p)

			candidates = candidates[:0]
			for _, d := range steps {
				if q := p.Add(d[0], d[1]); g.InBounds(q) {
					candidates = append(candidates, q)
				}
			}
			if len(candidates) == 0 {
				continue
			}
			rng.ShufflePoints(o.Source, candidates)
			if err := g.CarveBetween(p, candidates[0]); err != nil {
				return fmt.Errorf("%s: %w", MethodBinaryTree, err)
			}
			o.emit(g, p, candidates[0])
		}
	}
	return nil
}
