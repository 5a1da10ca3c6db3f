// File: pathsearch/example_test.go
package pathsearch_test

import (
	"fmt"

	"github.com/katalvlaran/wayfind/grid"
	"github.com/katalvlaran/wayfind/pathsearch"
)

// ExampleFindPath contrasts the two cost modes on a floor whose shortcut is
// a flight of stairs.
//
//	0 0 0
//	2 1 0
//	0 0 0
func ExampleFindPath() {
	g, _ := grid.New([][]int{
		{0, 0, 0},
		{2, 1, 0},
		{0, 0, 0},
	})
	start, end := grid.At(0, 0), grid.At(2, 0)

	std := pathsearch.FindPath(g, start, end)
	acc := pathsearch.FindPath(g, start, end, pathsearch.WithMode(pathsearch.Accessible))

	fmt.Println("standard:  ", std)
	fmt.Println("accessible:", acc)

	// Output:
	// standard:   [(0,0) (1,0) (2,0)]
	// accessible: [(0,0) (0,1) (0,2) (1,2) (2,2) (2,1) (2,0)]
}
