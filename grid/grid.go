package grid

import "fmt"

// Grid is the cell-state matrix for one generation run.
// It is owned by a single carver while generation runs and handed to the
// caller afterwards; readers outside the carver should use the View interface.
type Grid struct {
	shape Shape
	cells []State // row-major, len = Rows*Cols
}

// View is the read-only surface of a Grid. Renderers and progress hooks
// receive a View so they cannot change cell state.
type View interface {
	Shape() Shape
	At(p Point) State
	InBounds(p Point) bool
}

// New allocates a grid for the requested width and height, filled with Wall.
// Dimensions are validated before any allocation.
// Complexity: O(rows×cols) time and memory.
func New(width, height int) (*Grid, error) {
	shape, err := ShapeFor(width, height)
	if err != nil {
		return nil, err
	}
	return &Grid{
		shape: shape,
		cells: make([]State, shape.Rows*shape.Cols), // zero value is Wall
	}, nil
}

// Shape returns the resolved (rows, cols).
func (g *Grid) Shape() Shape { return g.shape }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool { return g.shape.InBounds(p) }

// At returns the state at p, or Wall when p is out of bounds.
func (g *Grid) At(p Point) State {
	if !g.shape.InBounds(p) {
		return Wall
	}
	return g.cells[p.Row*g.shape.Cols+p.Col]
}

// Carve marks p as Passage.
// Returns ErrOutOfBounds if p lies outside the grid.
func (g *Grid) Carve(p Point) error {
	if !g.shape.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.shape.Rows, g.shape.Cols)
	}
	g.cells[p.Row*g.shape.Cols+p.Col] = Passage
	return nil
}

// CarveBetween carves cell b and the connector between cells a and b.
// a is expected to be carved already; it is not touched.
// Returns ErrNotAdjacent unless a and b are lattice cells exactly two units
// apart along one axis, and ErrOutOfBounds if either lies outside the grid.
func (g *Grid) CarveBetween(a, b Point) error {
	if !a.IsCell() || !b.IsCell() || !adjacent(a, b) {
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
	}
	if !g.shape.InBounds(a) || !g.shape.InBounds(b) {
		return fmt.Errorf("%w: %v or %v in %dx%d", ErrOutOfBounds, a, b, g.shape.Rows, g.shape.Cols)
	}
	g.cells[b.Row*g.shape.Cols+b.Col] = Passage
	m := a.Midpoint(b)
	g.cells[m.Row*g.shape.Cols+m.Col] = Passage
	return nil
}

// CellNeighbors returns the in-bounds lattice cells two units away from p,
// in N, E, S, W order. Out-of-bounds neighbours are filtered here so that
// no carver ever sees them.
// Complexity: O(1).
func (g *Grid) CellNeighbors(p Point) []Point {
	return cellNeighbors(g.shape, p)
}

// Cells returns every lattice cell in row-major order.
// Complexity: O(cells).
func (g *Grid) Cells() []Point {
	out := make([]Point, 0, g.shape.CellCount())
	for r := 0; r < g.shape.Rows; r += 2 {
		for c := 0; c < g.shape.Cols; c += 2 {
			out = append(out, Point{Row: r, Col: c})
		}
	}
	return out
}

// Clone returns a deep copy of g. Useful for taking animation frames.
func (g *Grid) Clone() *Grid {
	cells := make([]State, len(g.cells))
	copy(cells, g.cells)
	return &Grid{shape: g.shape, cells: cells}
}

// Rows returns a fresh [][]State copy of the matrix, indexed [row][col].
// Mutating the result does not affect g.
func (g *Grid) Rows() [][]State {
	out := make([][]State, g.shape.Rows)
	for r := range out {
		out[r] = make([]State, g.shape.Cols)
		copy(out[r], g.cells[r*g.shape.Cols:(r+1)*g.shape.Cols])
	}
	return out
}

// Equal reports whether g and other have the same shape and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.shape != other.shape {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// adjacent reports whether a and b differ by exactly two along one axis.
func adjacent(a, b Point) bool {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	return (dr == 2 && dc == 0) || (dr == 0 && dc == 2)
}

func cellNeighbors(s Shape, p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range cellOffsets {
		q := p.Add(d[0], d[1])
		if s.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ReadOnly wraps g in a View that cannot be type-asserted back to *Grid.
// Carvers hand this to progress hooks so observers cannot mutate a grid
// that is still being generated.
func ReadOnly(g *Grid) View {
	return readOnlyView{g: g}
}

type readOnlyView struct {
	g *Grid
}

func (v readOnlyView) Shape() Shape          { return v.g.shape }
func (v readOnlyView) At(p Point) State      { return v.g.At(p) }
func (v readOnlyView) InBounds(p Point) bool { return v.g.InBounds(p) }
