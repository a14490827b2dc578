// Package carve generates perfect mazes by carving a spanning tree into a grid.Grid.
//
// Three interchangeable strategies share one grid representation and one random
// source:
//
//   - BinaryTree: one row-major pass; every cell opens a connector toward one of
//     the two directions named by a Bias (NW, NE, SW, SE). O(cells), no memory
//     beyond the grid. The result shows long straight corridors along the two
//     edges the bias points at.
//
//   - Prim: randomized Prim. A frontier of directed cell-to-neighbour edges is
//     grown from a random root; each step pops a uniformly random edge and, if the
//     far cell is still wall, carves it and pushes its own edges. Each unordered
//     cell pair is admitted to the frontier at most once. O(cells) edges in total.
//     Short, evenly branching corridors.
//
//   - Backtracker: randomized depth-first search with an explicit heap stack of
//     frames (cell, shuffled neighbours, cursor). Long winding corridors with few
//     branches. Memory O(cells) regardless of call-stack limits.
//
// Every strategy guarantees the carved connectors number exactly cells-1 and
// connect every cell (see grid.Validate).
//
// Options:
//
//   - WithSeed(seed)     reproducible runs; default is a wall-clock seed.
//   - WithSource(src)    inject any rng.Source.
//   - WithBias(b)        BinaryTree direction pair; default NW.
//   - WithOnCarve(fn)    read-only progress hook after every carve step.
//
// Errors:
//
//   - grid.ErrInvalidDimensions  width or height ≤ 0, reported before allocation.
//   - ErrUnknownMethod           Generate called with an unsupported method name.
//   - ErrUnknownBias             ParseBias on an unrecognised string.
//   - ErrFrontierExhausted       Prim's frontier emptied early (internal invariant).
//
// Generation is single-threaded and synchronous. Each call owns its grid from
// allocation until it returns.
package carve
