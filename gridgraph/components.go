package gridgraph

// ConnectedComponents finds all contiguous regions of occupied cells
// (label ≥ Unlabeled) according to conn, scanning seeds in row-major order
// and growing each region breadth-first.
// Returns a slice of components; each component lists coordinates in BFS
// visit order. Labels are not inspected beyond "occupied or not", so two
// touching clusters with different labels come back as one component.
//
// This is the reference labeling the cluster indexer is checked against; it
// does not mutate g.
//
// Time:   O(N²·d), where d = 4 or 8.
// Memory: O(N²) for visited flags and output.
func (g *Grid) ConnectedComponents(conn Connectivity) [][]Coordinate {
	seen := make([]bool, len(g.cells))
	var comps [][]Coordinate
	offsets := conn.Offsets()

	for i0, v := range g.cells {
		if v < Unlabeled || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Coordinate

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			comp = append(comp, u)
			for _, d := range offsets {
				nb := u.Translate(d[0], d[1])
				if !g.Contains(nb) {
					continue
				}
				vi := g.Index(nb)
				if g.cells[vi] < Unlabeled || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
