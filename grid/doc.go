// Package grid holds the cell-state matrix that every maze carver mutates.
//
// What:
//
//   - Grid is a rows×cols matrix of State values (Wall, Passage, Pillar).
//   - Both dimensions are always odd: rows = 2*(height/2)+1, cols = 2*(width/2)+1.
//   - A cell is a Point with both coordinates even; a connector (wall slot) has
//     exactly one odd coordinate and sits halfway between two cells; odd-odd
//     points are corner pillars and are never carved.
//
// Why:
//
//   - Carvers only need "carve a cell" and "carve the wall between two cells";
//     keeping the lattice arithmetic here keeps the algorithms short.
//   - Renderers and progress hooks receive a View, which exposes reads only.
//
// Complexity:
//
//   - New, Clone, Rows:  O(rows×cols) time and memory.
//   - Stats, Reachable:  O(rows×cols).
//   - Validate:          O(rows×cols·α(cells)) with union-find.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ 0 (rejected before allocation).
//   - ErrOutOfBounds:       a point outside [0,rows)×[0,cols).
//   - ErrNotAdjacent:       CarveBetween on points that are not neighbouring cells.
//   - ErrUncarvedCell, ErrPillarCarved, ErrCycle, ErrDisconnected: Validate failures.
package grid
