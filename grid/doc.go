// Package grid models one floor of a building as an immutable 2D grid of
// typed cells and answers the questions a router asks about it.
//
// What:
//
//   - Grid wraps a rectangular [][]int of cell codes (0 walkable, 1 wall,
//     2 stairs, 3 elevator) and deep-copies it at construction.
//   - Cell is a (row, col) coordinate with structural equality.
//   - Neighbors enumerates the 4-connected neighborhood in a fixed
//     north, south, west, east order.
//   - Regions labels the connected components of passable cells so two
//     cells can be tested for mutual reachability in O(1).
//
// Complexity:
//
//   - New:        O(R×C) time and memory.
//   - CellType:   O(1).
//   - NewRegions: O(R×C×4) time, O(R×C) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCellType: a cell code outside 0..3.
//   - ErrOutOfBounds: a checked query addressed a cell outside the grid.
//
// A Grid is never mutated after New returns, so it can be shared across
// goroutines without locking.
package grid
