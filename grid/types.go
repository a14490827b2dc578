package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrNotAdjacent indicates two points that are not lattice cells two units apart.
	ErrNotAdjacent = errors.New("grid: points are not adjacent cells")

	// ErrUncarvedCell indicates a lattice cell that is still a wall.
	ErrUncarvedCell = errors.New("grid: lattice cell left uncarved")
	// ErrPillarCarved indicates an odd-odd corner position was carved.
	ErrPillarCarved = errors.New("grid: corner pillar carved")
	// ErrCycle indicates the carved passages contain a loop.
	ErrCycle = errors.New("grid: carved passages contain a cycle")
	// ErrDisconnected indicates some cell cannot be reached from the others.
	ErrDisconnected = errors.New("grid: carved passages are disconnected")
)

// State is the content of one grid position.
type State uint8

const (
	// Wall is solid rock; every position starts as Wall.
	Wall State = iota
	// Passage is open space carved by a generator.
	Passage
	// Pillar is a decorative marker for odd-odd corners. Generation never sets it.
	Pillar
)

// String returns a short lowercase name for s.
func (s State) String() string {
	switch s {
	case Wall:
		return "wall"
	case Passage:
		return "passage"
	case Pillar:
		return "pillar"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Point addresses a grid position by row and column.
type Point struct {
	Row, Col int
}

// Add returns p shifted by (dr, dc).
func (p Point) Add(dr, dc int) Point {
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// Midpoint returns the position halfway between p and q.
// For two neighbouring cells this is the connector separating them.
func (p Point) Midpoint(q Point) Point {
	return Point{Row: p.Row + (q.Row-p.Row)/2, Col: p.Col + (q.Col-p.Col)/2}
}

// IsCell reports whether both coordinates are even.
func (p Point) IsCell() bool {
	return p.Row%2 == 0 && p.Col%2 == 0
}

// IsConnector reports whether exactly one coordinate is odd.
func (p Point) IsConnector() bool {
	return (p.Row%2 != 0) != (p.Col%2 != 0)
}

// IsPillar reports whether both coordinates are odd.
func (p Point) IsPillar() bool {
	return p.Row%2 != 0 && p.Col%2 != 0
}

// String formats p as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Shape is the resolved matrix size; both fields are always odd.
type Shape struct {
	Rows, Cols int
}

// ShapeFor derives the odd grid shape for a requested width and height.
// Returns ErrInvalidDimensions when either value is ≤ 0.
// Complexity: O(1).
func ShapeFor(width, height int) (Shape, error) {
	if width <= 0 || height <= 0 {
		return Shape{}, fmt.Errorf("%w: width=%d height=%d", ErrInvalidDimensions, width, height)
	}
	return Shape{Rows: 2*(height/2) + 1, Cols: 2*(width/2) + 1}, nil
}

// CellRows is the number of lattice rows (even row indices).
func (s Shape) CellRows() int { return s.Rows/2 + 1 }

// CellCols is the number of lattice columns (even column indices).
func (s Shape) CellCols() int { return s.Cols/2 + 1 }

// CellCount is the number of lattice cells, i.e. spanning-tree vertices.
func (s Shape) CellCount() int { return s.CellRows() * s.CellCols() }

// InBounds reports whether p lies inside [0,Rows)×[0,Cols).
func (s Shape) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}

// CellAt maps lattice coordinates (i,j) to the grid point (2i,2j).
func (s Shape) CellAt(i, j int) Point {
	return Point{Row: 2 * i, Col: 2 * j}
}

// cellIndex maps a lattice cell to a row-major index over the lattice.
func (s Shape) cellIndex(p Point) int {
	return (p.Row/2)*s.CellCols() + p.Col/2
}

// cellOffsets are the four axis-aligned steps to the neighbouring cells: N, E, S, W.
var cellOffsets = [4][2]int{{-2, 0}, {0, 2}, {2, 0}, {0, -2}}
