package grid

import "fmt"

// Grid is an immutable rows×cols array of cell types, stored row-major.
type Grid struct {
	rows, cols int
	cells      []CellType
}

// New constructs a Grid from a non-empty, rectangular 2D slice of cell codes.
// It deep-copies the input so later changes to values do not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrUnknownCellType
// if a code is not one of the CellType constants.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	cells := make([]CellType, 0, rows*cols)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, v := range row {
			t := CellType(v)
			if !t.Valid() {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownCellType, v, r, c)
			}
			cells = append(cells, t)
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// MustNew is like New but panics on error. Intended for literals in tests
// and examples.
func MustNew(values [][]int) *Grid {
	g, err := New(values)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// CellType returns the type of c, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) CellType(c Cell) (CellType, error) {
	if !g.InBounds(c) {
		return Wall, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return g.cells[g.Index(c)], nil
}

// TypeAt is the unchecked variant of CellType: cells outside the grid
// report Wall.
func (g *Grid) TypeAt(c Cell) CellType {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[g.Index(c)]
}

// Passable reports whether c is inside the grid and not a wall.
func (g *Grid) Passable(c Cell) bool {
	return g.TypeAt(c).Passable()
}

// Neighbors appends to buf the in-bounds, passable 4-neighbors of c in
// north, south, west, east order and returns the extended slice.
// Pass buf[:0] of a reused slice to avoid allocation in hot loops.
func (g *Grid) Neighbors(c Cell, buf []Cell) []Cell {
	for _, d := range offsets {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.Passable(n) {
			buf = append(buf, n)
		}
	}
	return buf
}

// Count returns how many cells have type t.
func (g *Grid) Count(t CellType) int {
	n := 0
	for _, v := range g.cells {
		if v == t {
			n++
		}
	}
	return n
}

// Values returns a fresh copy of the grid as cell codes.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		row := make([]int, g.cols)
		for c := range row {
			row[c] = int(g.cells[r*g.cols+c])
		}
		out[r] = row
	}
	return out
}

// Index maps c to its row-major index: row*Cols + col.
// The caller guarantees InBounds(c).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}
