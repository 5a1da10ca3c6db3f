package directions

import (
	"fmt"

	"github.com/katalvlaran/wayfind/grid"
)

// Sentences used by Generate.
const (
	AlreadyThere = "already at destination"
	startFormat  = "starting from %s"
	arriveFormat = "arrived at %s"
)

// Instructions is an ordered list of sentences describing a path.
type Instructions []string

// Segments run-length encodes the steps of path by direction. Every step is
// counted exactly once, so the Steps of the result sum to len(path)-1.
//
// A repeated cell (a step with no movement) cannot come out of a path
// search and is treated as a caller bug: Segments panics.
func Segments(path []grid.Cell) []Segment {
	if len(path) < 2 {
		return nil
	}
	var out []Segment
	for i := 1; i < len(path); i++ {
		d, ok := Of(path[i-1], path[i])
		if !ok {
			panic(fmt.Sprintf("directions: zero-length step at index %d: %v", i, path[i]))
		}
		if n := len(out); n > 0 && out[n-1].Direction == d {
			out[n-1].Steps++
			continue
		}
		out = append(out, Segment{Direction: d, Steps: 1})
	}
	return out
}

// Sentence renders one segment.
func (s Segment) Sentence() string {
	if s.Steps == 1 {
		return fmt.Sprintf("move %s", s.Direction)
	}
	return fmt.Sprintf("move %s for %d steps", s.Direction, s.Steps)
}

// Generate describes path from startName to endName. Paths shorter than two
// cells yield Instructions{AlreadyThere}.
func Generate(path []grid.Cell, startName, endName string) Instructions {
	if len(path) < 2 {
		return Instructions{AlreadyThere}
	}
	segs := Segments(path)
	out := make(Instructions, 0, len(segs)+2)
	out = append(out, fmt.Sprintf(startFormat, startName))
	for _, s := range segs {
		out = append(out, s.Sentence())
	}
	out = append(out, fmt.Sprintf(arriveFormat, endName))
	return out
}
