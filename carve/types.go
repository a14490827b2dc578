package carve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// ErrUnknownMethod indicates Generate received a method name it does not know.
var ErrUnknownMethod = errors.New("carve: unknown method")

// ErrUnknownBias indicates ParseBias received an unrecognised bias name.
var ErrUnknownBias = errors.New("carve: unknown bias")

// ErrFrontierExhausted indicates Prim's frontier emptied while cells were still
// uncarved. It signals a broken invariant and is never retried.
var ErrFrontierExhausted = errors.New("carve: frontier exhausted before all cells were carved")

// MethodBinaryTree selects the bias-directed binary-tree carver.
const MethodBinaryTree = "binary-tree"

// MethodPrim selects the randomized Prim carver.
const MethodPrim = "prim"

// MethodBacktracker selects the randomized depth-first backtracking carver.
const MethodBacktracker = "backtracker"

// Methods lists every supported method name in a stable order.
func Methods() []string {
	return []string{MethodBinaryTree, MethodPrim, MethodBacktracker}
}

// Bias is the diagonal preference of the binary-tree carver. Each value
// names the two directions a cell may open toward.
type Bias uint8

const (
	// NW opens north or west.
	NW Bias = iota
	// NE opens north or east.
	NE
	// SW opens south or west.
	SW
	// SE opens south or east.
	SE
)

var biasNames = [...]string{NW: "NW", NE: "NE", SW: "SW", SE: "SE"}

// String returns the two-letter compass name.
func (b Bias) String() string {
	if b.valid() {
		return biasNames[b]
	}
	return fmt.Sprintf("Bias(%d)", uint8(b))
}

func (b Bias) valid() bool {
	return int(b) < len(biasNames)
}

// ParseBias parses "NW", "ne", " Sw " and so on.
// Returns ErrUnknownBias for anything else.
func ParseBias(s string) (Bias, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range biasNames {
		if n == name {
			return Bias(i), nil
		}
	}
	return NW, fmt.Errorf("%w: %q", ErrUnknownBias, s)
}

// offsets returns the cell steps for the bias: vertical first, then horizontal.
func (b Bias) offsets() [2][2]int {
	switch b {
	case NE:
		return [2][2]int{{-2, 0}, {0, 2}}
	case SW:
		return [2][2]int{{2, 0}, {0, -2}}
	case SE:
		return [2][2]int{{2, 0}, {0, 2}}
	default:
		return [2][2]int{{-2, 0}, {0, -2}}
	}
}

// Corner returns the lattice corner that the bias points at. The cell there
// has no candidate neighbour and never opens a connector of its own.
func (b Bias) Corner(s grid.Shape) grid.Point {
	switch b {
	case NE:
		return grid.Point{Row: 0, Col: s.Cols - 1}
	case SW:
		return grid.Point{Row: s.Rows - 1, Col: 0}
	case SE:
		return grid.Point{Row: s.Rows - 1, Col: s.Cols - 1}
	default:
		return grid.Point{}
	}
}

// Result is the outcome of one generation run.
type Result struct {
	// Grid is the finished maze; the caller owns it.
	Grid *grid.Grid
	// Shape is the resolved odd (rows, cols).
	Shape grid.Shape
	// Method is the strategy that produced Grid.
	Method string
	// Seed is the seed the run used, when known.
	Seed int64
	// SeedKnown is false when a caller-supplied Source was used.
	SeedKnown bool
}
