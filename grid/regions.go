package grid

// Regions labels every passable cell of a grid with the id of the
// 4-connected component ("region") it belongs to. Walls carry label -1.
// Two cells are mutually reachable exactly when they share a label,
// whatever cost model a search applies on top.
type Regions struct {
	g      *Grid
	labels []int
	count  int
}

// NewRegions floods every passable cell with a BFS and returns the labeling.
// Region ids are assigned in row-major order of each region's first cell.
//
// Time:   O(R×C×4).
// Memory: O(R×C) for labels and the queue.
func NewRegions(g *Grid) *Regions {
	labels := make([]int, g.Size())
	for i := range labels {
		labels[i] = -1
	}
	rg := &Regions{g: g, labels: labels}

	queue := make([]int, 0, 64)
	var buf [4]Cell
	for i0, t := range g.cells {
		if !t.Passable() || labels[i0] >= 0 {
			continue
		}
		id := rg.count
		rg.count++
		labels[i0] = id
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, v := range g.Neighbors(u, buf[:0]) {
				vi := g.Index(v)
				if labels[vi] < 0 {
					labels[vi] = id
					queue = append(queue, vi)
				}
			}
		}
	}

	return rg
}

// Len returns the number of regions.
func (rg *Regions) Len() int { return rg.count }

// Label returns the region id of c, or -1 for walls and cells outside the grid.
func (rg *Regions) Label(c Cell) int {
	if !rg.g.InBounds(c) {
		return -1
	}
	return rg.labels[rg.g.Index(c)]
}

// Connected reports whether a and b are passable and in the same region.
func (rg *Regions) Connected(a, b Cell) bool {
	la := rg.Label(a)
	return la >= 0 && la == rg.Label(b)
}

// Cells returns the cells of region id in row-major order,
// or nil when id is out of range.
func (rg *Regions) Cells(id int) []Cell {
	if id < 0 || id >= rg.count {
		return nil
	}
	var out []Cell
	for i, l := range rg.labels {
		if l == id {
			out = append(out, rg.g.Coordinate(i))
		}
	}
	return out
}
