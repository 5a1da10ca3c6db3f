package pathsearch

import "github.com/katalvlaran/wayfind/grid"

// Unreachable marks cells that a distance field cannot reach.
const Unreachable = -1

// StepDistances returns, for every cell in row-major order, the minimum
// number of orthogonal steps from src, or Unreachable. Walls and cells of
// other regions are Unreachable. If src is not passable every entry is
// Unreachable.
//
// This is a plain breadth-first search; it ignores cost modes.
// Time: O(R×C×4), Memory: O(R×C).
func StepDistances(g *grid.Grid, src grid.Cell) []int {
	dist := make([]int, g.Size())
	for i := range dist {
		dist[i] = Unreachable
	}
	if !g.Passable(src) {
		return dist
	}

	s := g.Index(src)
	dist[s] = 0
	queue := make([]int, 0, g.Size())
	queue = append(queue, s)
	var buf [4]grid.Cell
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, nb := range g.Neighbors(g.Coordinate(u), buf[:0]) {
			v := g.Index(nb)
			if dist[v] == Unreachable {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return dist
}

// ShortestSteps returns the minimum number of orthogonal steps between a and
// b, or Unreachable.
func ShortestSteps(g *grid.Grid, a, b grid.Cell) int {
	if !g.Passable(a) || !g.Passable(b) {
		return Unreachable
	}
	return StepDistances(g, a)[g.Index(b)]
}
