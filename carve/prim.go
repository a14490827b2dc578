package carve

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/rng"
)

// Prim generates a width×height maze with randomized Prim's algorithm.
//
// Steps:
//  1. Pick a root cell uniformly at random and carve it.
//  2. Seed the frontier with the root's edges to in-bounds neighbours.
//  3. While the frontier is non-empty: remove a uniformly random edge; if its
//     far cell is still wall, carve the far cell and the connector, then push
//     the far cell's edges.
//
// Each unordered cell pair enters the frontier at most once, so an edge and
// its reverse are never both considered. The frontier empties exactly when
// every cell is carved; if it does not, ErrFrontierExhausted is returned.
//
// Complexity: O(cells) time and memory (≤ 2·cells edges ever admitted).
func Prim(width, height int, opts ...Option) (*grid.Grid, grid.Shape, error) {
	return Generate(MethodPrim, width, height, opts...)
}

// frontierEdge is a directed wall-edge from a carved cell to a candidate.
type frontierEdge struct {
	from, to grid.Point
}

// edgeKey identifies an undirected cell pair; a precedes b in row-major order.
type edgeKey struct {
	a, b grid.Point
}

func keyOf(u, v grid.Point) edgeKey {
	if v.Row < u.Row || (v.Row == u.Row && v.Col < u.Col) {
		u, v = v, u
	}
	return edgeKey{a: u, b: v}
}

// primFrontier is the pending edge list plus the set of pairs already admitted.
type primFrontier struct {
	edges    []frontierEdge
	admitted mapset.Set[edgeKey]
}

func newPrimFrontier(capacity int) *primFrontier {
	return &primFrontier{
		edges:    make([]frontierEdge, 0, capacity),
		admitted: mapset.New[edgeKey](),
	}
}

// push admits c's edges to in-bounds neighbours not seen before.
func (f *primFrontier) push(g *grid.Grid, c grid.Point) {
	for _, n := range g.CellNeighbors(c) {
		k := keyOf(c, n)
		if f.admitted.Has(k) {
			continue
		}
		f.admitted.Put(k)
		f.edges = append(f.edges, frontierEdge{from: c, to: n})
	}
}

// pop removes and returns a uniformly random edge (swap-remove).
func (f *primFrontier) pop(src rng.Source) frontierEdge {
	i := rng.PickIndex(src, len(f.edges))
	last := len(f.edges) - 1
	e := f.edges[i]
	f.edges[i] = f.edges[last]
	f.edges = f.edges[:last]
	return e
}

// carvePrim runs randomized Prim over g in place.
func carvePrim(g *grid.Grid, o *Options) error {
	shape := g.Shape()
	root := shape.CellAt(
		rng.PickIndex(o.Source, shape.CellRows()),
		rng.PickIndex(o.Source, shape.CellCols()),
	)
	if err := g.Carve(root); err != nil {
		return fmt.Errorf("%s: %w", MethodPrim, err)
	}
	o.emit(g, root, root)

	carved := 1
	frontier := newPrimFrontier(2 * shape.CellCount())
	frontier.push(g, root)

	for len(frontier.edges) > 0 {
		e := frontier.pop(o.Source)
		if g.At(e.to) != grid.Wall {
			continue
		}
		if err := g.CarveBetween(e.from, e.to); err != nil {
			return fmt.Errorf("%s: %w", MethodPrim, err)
		}
		carved++
		o.emit(g, e.from, e.to)
		frontier.push(g, e.to)
	}

	if carved != shape.CellCount() {
		return fmt.Errorf("%s: %w: carved %d of %d cells",
			MethodPrim, ErrFrontierExhausted, carved, shape.CellCount())
	}
	return nil
}
