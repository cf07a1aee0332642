package gridgraph

// Reachable returns every passable node connected to from by 4-directional
// moves, in breadth-first order starting with from itself. It reads
// passability directly from cell states and ignores precomputed neighbour
// lists, so it can cross-check a search on the same grid.
//
// Returns nil if from is nil, foreign to g, or a barrier.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Reachable(from *Node) []*Node {
	if !g.Contains(from) || from.IsBarrier() {
		return nil
	}
	seen := make([]bool, g.Len())
	seen[g.index(from.Row(), from.Col())] = true
	queue := []*Node{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range neighborOffsets {
			v := g.Node(u.Row()+d[0], u.Col()+d[1])
			if v == nil || v.IsBarrier() {
				continue
			}
			vi := g.index(v.Row(), v.Col())
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}
