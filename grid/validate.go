package grid

import (
	"fmt"

	"github.com/spakin/disjoint"
)

// Validate checks that v is a perfect maze: every lattice cell is carved,
// no corner pillar is carved, and the carved connectors form a spanning tree
// over the lattice (exactly cells-1 connectors, no cycle, one component).
//
// Steps:
//  1. Scan cells and pillars.
//  2. Union the two endpoint cells of every carved connector; a connector
//     whose endpoints already share a set closes a cycle.
//  3. Require cells-1 connectors and full BFS reachability from the origin.
//
// Returns nil or one of ErrUncarvedCell, ErrPillarCarved, ErrCycle,
// ErrDisconnected wrapped with the offending position.
// Complexity: O(rows×cols·α(cells)).
func Validate(v View) error {
	s := v.Shape()
	sets := make([]*disjoint.Element, s.CellCount())
	for r := 0; r < s.Rows; r += 2 {
		for c := 0; c < s.Cols; c += 2 {
			p := Point{Row: r, Col: c}
			if v.At(p) != Passage {
				return fmt.Errorf("%w at %v", ErrUncarvedCell, p)
			}
			sets[s.cellIndex(p)] = disjoint.NewElement()
		}
	}

	connectors := 0
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			p := Point{Row: r, Col: c}
			if v.At(p) != Passage {
				continue
			}
			if p.IsPillar() {
				return fmt.Errorf("%w at %v", ErrPillarCarved, p)
			}
			if !p.IsConnector() {
				continue
			}
			a, b := connectorEnds(p)
			ea, eb := sets[s.cellIndex(a)], sets[s.cellIndex(b)]
			if ea.Find() == eb.Find() {
				return fmt.Errorf("%w through %v", ErrCycle, p)
			}
			disjoint.Union(ea, eb)
			connectors++
		}
	}

	if want := s.CellCount() - 1; connectors != want {
		return fmt.Errorf("%w: %d connectors, want %d", ErrDisconnected, connectors, want)
	}
	if n := len(Reachable(v, Point{})); n != s.CellCount() {
		return fmt.Errorf("%w: reached %d of %d cells", ErrDisconnected, n, s.CellCount())
	}
	return nil
}

// connectorEnds returns the two cells separated by connector p.
// A connector on an odd row joins the cells above and below; one on an odd
// column joins the cells to the left and right.
func connectorEnds(p Point) (Point, Point) {
	if p.Row%2 != 0 {
		return p.Add(-1, 0), p.Add(1, 0)
	}
	return p.Add(0, -1), p.Add(0, 1)
}
