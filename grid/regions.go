package grid

// Regions finds all contiguous regions of passable cells using
// 4-connectivity. Regions are discovered in row-major order of their first
// cell; cells inside a region are listed in breadth-first order following
// Directions.
//
// Time:   O(Rows·Cols).
// Memory: O(Rows·Cols) for seen flags and output.
func (g *Grid) Regions() [][]Point {
	seen := make([]bool, g.Len())
	var regions [][]Point

	for i0 := range g.walls {
		if g.walls[i0] || seen[i0] {
			continue
		}
		// BFS to collect region
		queue := []int{i0}
		seen[i0] = true
		var region []Point

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			region = append(region, u)
			for _, v := range g.Neighbors(u) {
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// Connected reports whether a and b are passable and lie in the same region.
// Complexity: O(Rows·Cols) worst case.
func (g *Grid) Connected(a, b Point) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	target := g.index(b)
	seen := make([]bool, g.Len())
	queue := []int{g.index(a)}
	seen[queue[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == target {
			return true
		}
		for _, v := range g.Neighbors(g.Coordinate(u)) {
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return false
}
