package pathsearch

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/wayfind/grid"
)

// FindPath returns a cost-minimal path from start to end under the options'
// cost mode, or an empty Path when none exists.
//
// Preconditions (violations yield an empty Path, not a panic):
//  1. start and end lie within the grid.
//  2. Neither start nor end is a wall.
//
// Options customization:
//
//   - WithMode(Accessible): surcharge stairs cells by StairsPenalty.
//   - WithStairsPenalty(p): override the default surcharge of 10.
//   - WithMaxExpansions(n): give up after n expansions.
//
// Complexity:
//
//   - Time:  O(R×C × log(R×C))
//   - Space: O(R×C)
func FindPath(g *grid.Grid, start, end grid.Cell, opts ...Option) Path {
	if g == nil {
		return Path{}
	}
	if !g.Passable(start) || !g.Passable(end) {
		return Path{}
	}
	if start == end {
		return Path{start}
	}

	r := newRunner(g, end, buildOptions(opts))
	target, ok := r.run(g.Index(start))
	if !ok {
		return Path{}
	}

	return r.reconstruct(target)
}

// Cost returns the cost of walking p under the options' mode: the sum of
// step costs for every cell after the first. It returns -1 if p contains a
// wall, leaves the grid, or makes a move that is not a single orthogonal step.
func Cost(g *grid.Grid, p Path, opts ...Option) int {
	cfg := buildOptions(opts)
	total := 0
	for i, c := range p {
		if !g.Passable(c) {
			return -1
		}
		if i == 0 {
			continue
		}
		if p[i-1].Manhattan(c) != 1 {
			return -1
		}
		total += cfg.stepCost(g.TypeAt(c))
	}
	return total
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *grid.Grid // read-only
	options  Options
	goal     grid.Cell
	gScore   []int  // row-major index → best known cost from start
	cameFrom []int  // row-major index → predecessor index, -1 for none
	closed   []bool // finalized cells
	open     openSet
	seq      uint64 // insertion counter for FIFO tie-breaking
}

func newRunner(g *grid.Grid, goal grid.Cell, cfg Options) *runner {
	n := g.Size()
	r := &runner{
		g:        g,
		options:  cfg,
		goal:     goal,
		gScore:   make([]int, n),
		cameFrom: make([]int, n),
		closed:   make([]bool, n),
		open:     make(openSet, 0, 64),
	}
	for i := range r.gScore {
		r.gScore[i] = math.MaxInt
		r.cameFrom[i] = -1
	}
	return r
}

// run expands cells in increasing f until the goal is popped.
// Returns the goal index and true on success.
func (r *runner) run(src int) (int, bool) {
	goal := r.g.Index(r.goal)
	r.gScore[src] = 0
	r.push(src, r.heuristic(src))

	expansions := 0
	var buf [4]grid.Cell
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*openItem)
		u := item.idx
		// stale entry from lazy decrease-key
		if r.closed[u] {
			continue
		}
		if u == goal {
			return u, true
		}
		r.closed[u] = true

		expansions++
		if r.options.MaxExpansions > 0 && expansions > r.options.MaxExpansions {
			return -1, false
		}

		for _, nb := range r.g.Neighbors(r.g.Coordinate(u), buf[:0]) {
			v := r.g.Index(nb)
			if r.closed[v] {
				continue
			}
			tentative := r.gScore[u] + r.options.stepCost(r.g.TypeAt(nb))
			if tentative >= r.gScore[v] {
				continue
			}
			r.gScore[v] = tentative
			r.cameFrom[v] = u
			r.push(v, tentative+r.heuristic(v))
		}
	}

	return -1, false
}

func (r *runner) push(idx, f int) {
	r.seq++
	heap.Push(&r.open, &openItem{idx: idx, f: f, seq: r.seq})
}

// heuristic is the Manhattan distance from idx to the goal.
func (r *runner) heuristic(idx int) int {
	return r.g.Coordinate(idx).Manhattan(r.goal)
}

// reconstruct walks cameFrom backward from target and reverses the result.
func (r *runner) reconstruct(target int) Path {
	var p Path
	for at := target; at >= 0; at = r.cameFrom[at] {
		p = append(p, r.g.Coordinate(at))
	}
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// openItem is a cell index with its f score and insertion sequence.
type openItem struct {
	idx int
	f   int
	seq uint64
}

// openSet is a min-heap of *openItem ordered by f, then by insertion.
// Outdated entries stay in the heap and are skipped when popped
// (checked via closed).
type openSet []*openItem

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq openSet) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openSet) Push(x any) { *pq = append(*pq, x.(*openItem)) }

func (pq *openSet) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
