package gridgraph

// ConnectedComponents finds all contiguous regions of walkable cells
// according to gg.Conn connectivity. Components are ordered by their first
// cell in row-major order; cells inside a component are in BFS order from
// that first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	_, comps := gg.flood()
	return comps
}

// SameComponent reports whether b is reachable from a. Both cells must be
// walkable; otherwise it reports false.
func (gg *GridGraph) SameComponent(a, b Cell) bool {
	if !gg.Walkable(a) || !gg.Walkable(b) {
		return false
	}
	labels, _ := gg.flood()

	return labels[gg.index(a.X, a.Y)] == labels[gg.index(b.X, b.Y)]
}

// flood labels every walkable cell with its component id (-1 for blocked
// cells) and collects the cells of each component.
func (gg *GridGraph) flood() ([]int, [][]Cell) {
	labels := make([]int, gg.Width*gg.Height)
	for i := range labels {
		labels[i] = -1
	}

	var comps [][]Cell
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			start := Cell{X: x, Y: y}
			i0 := gg.index(x, y)
			if labels[i0] >= 0 || !gg.Walkable(start) {
				continue
			}
			id := len(comps)
			labels[i0] = id
			comp := []Cell{start}
			for qi := 0; qi < len(comp); qi++ {
				for _, v := range gg.Neighbors(comp[qi]) {
					vi := gg.index(v.X, v.Y)
					if labels[vi] < 0 {
						labels[vi] = id
						comp = append(comp, v)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return labels, comps
}
