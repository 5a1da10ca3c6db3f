package directions

import (
	"fmt"

	"github.com/katalvlaran/wayfind/grid"
)

// Direction is a compass heading on the grid.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Of classifies the step from → to. The row delta is consulted first.
// It reports false when the two cells coincide.
func Of(from, to grid.Cell) (Direction, bool) {
	switch {
	case to.Row < from.Row:
		return North, true
	case to.Row > from.Row:
		return South, true
	case to.Col < from.Col:
		return West, true
	case to.Col > from.Col:
		return East, true
	default:
		return 0, false
	}
}

// Segment is a run of consecutive steps sharing one direction.
type Segment struct {
	Direction Direction
	Steps     int
}
