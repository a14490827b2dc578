package carve

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Generate dispatches to the carver named by method and returns the finished
// grid with its resolved shape.
//
//   - MethodBinaryTree  → binary-tree carving with Options.Bias.
//   - MethodPrim        → randomized Prim.
//   - MethodBacktracker → randomized depth-first backtracking.
//
// Returns ErrUnknownMethod for any other name and a wrapped
// grid.ErrInvalidDimensions when width or height ≤ 0; in both cases nothing
// is allocated.
func Generate(method string, width, height int, opts ...Option) (*grid.Grid, grid.Shape, error) {
	res, err := GenerateResult(method, width, height, opts...)
	if err != nil {
		return nil, grid.Shape{}, err
	}
	return res.Grid, res.Shape, nil
}

// GenerateResult is Generate plus run metadata (method and seed), so a
// time-seeded run can be replayed with WithSeed(res.Seed).
func GenerateResult(method string, width, height int, opts ...Option) (Result, error) {
	var run func(*grid.Grid, *Options) error
	switch method {
	case MethodBinaryTree:
		run = carveBinaryTree
	case MethodPrim:
		run = carvePrim
	case MethodBacktracker:
		run = carveBacktracker
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	g, err := grid.New(width, height)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", method, err)
	}

	o := newOptions(opts...)
	if err = run(g, &o); err != nil {
		return Result{}, err
	}

	return Result{
		Grid:      g,
		Shape:     g.Shape(),
		Method:    method,
		Seed:      o.Seed,
		SeedKnown: o.SeedKnown,
	}, nil
}
