package grid

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownCellType indicates a cell code that is not a known CellType.
	ErrUnknownCellType = errors.New("grid: unknown cell type")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// CellType describes what occupies a cell and therefore whether and how it
// can be traversed.
type CellType int

const (
	// Walkable is open floor.
	Walkable CellType = iota
	// Wall is never traversable.
	Wall
	// Stairs are traversable but unsuitable for wheelchairs.
	Stairs
	// Elevator is traversable in every mode.
	Elevator
)

// Valid reports whether t is one of the known cell types.
func (t CellType) Valid() bool {
	return t >= Walkable && t <= Elevator
}

// Passable reports whether a walker may stand on a cell of this type.
func (t CellType) Passable() bool {
	return t.Valid() && t != Wall
}

func (t CellType) String() string {
	switch t {
	case Walkable:
		return "walkable"
	case Wall:
		return "wall"
	case Stairs:
		return "stairs"
	case Elevator:
		return "elevator"
	default:
		return fmt.Sprintf("CellType(%d)", int(t))
	}
}

// Cell is a (row, col) coordinate on a grid. Row 0 is the northern edge.
type Cell struct {
	Row int
	Col int
}

// At is shorthand for Cell{Row: row, Col: col}.
func At(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// MarshalJSON encodes the cell as a [row, col] pair.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Row, c.Col})
}

// UnmarshalJSON decodes a [row, col] pair.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("grid: decode cell: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("grid: decode cell: want [row, col], got %d values", len(pair))
	}
	c.Row, c.Col = pair[0], pair[1]
	return nil
}

// offsets is the 4-connected neighborhood in north, south, west, east order.
var offsets = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
