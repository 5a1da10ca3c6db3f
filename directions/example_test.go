// File: directions/example_test.go
package directions_test

import (
	"fmt"

	"github.com/katalvlaran/wayfind/directions"
	"github.com/katalvlaran/wayfind/grid"
)

// ExampleGenerate describes an L-shaped walk: two steps east, three south.
func ExampleGenerate() {
	path := []grid.Cell{
		grid.At(0, 0), grid.At(0, 1), grid.At(0, 2),
		grid.At(1, 2), grid.At(2, 2), grid.At(3, 2),
	}
	for _, line := range directions.Generate(path, "Room 101", "Room 102") {
		fmt.Println(line)
	}

	// Output:
	// starting from Room 101
	// move east for 2 steps
	// move south for 3 steps
	// arrived at Room 102
}
