package graph

// SplitGraphs partitions the graph around a separating pair (a, b) per
// spec.md §4.1: two deep copies have a and b deleted, the remainder is
// flood-filled from an arbitrary surviving vertex to partition it into
// explored/unexplored sets, G1 keeps the unexplored set and G2 keeps the
// explored set, and fresh copies of a and b are re-inserted into both,
// each reconnected to exactly the incident edges whose other endpoint
// survives in that sub-graph.
func (g *Graph) SplitGraphs(a, b *Element) (*Graph, *Graph) {
	g1 := g.DeepCopy()
	g2 := g.DeepCopy()

	a1 := g1.FindVertexByID(a.ID)
	b1 := g1.FindVertexByID(b.ID)
	_ = g1.DeleteVertex(a1)
	_ = g1.DeleteVertex(b1)

	a2 := g2.FindVertexByID(a.ID)
	b2 := g2.FindVertexByID(b.ID)
	_ = g2.DeleteVertex(a2)
	_ = g2.DeleteVertex(b2)

	// Flood-fill the remainder (using g1's copy, which has identical
	// surviving vertex ids to g2's) to partition vertices into explored
	// and unexplored sets.
	var explored map[uint64]bool
	if len(g1.vertices) > 0 {
		g1.ResetExploration()
		g1.FloodFill(g1.vertices[0])
		explored = make(map[uint64]bool, len(g1.vertices))
		for _, v := range g1.vertices {
			if v.explored {
				explored[v.ID] = true
			}
		}
		g1.ResetExploration()
	} else {
		explored = make(map[uint64]bool)
	}

	keepUnexplored := func(h *Graph) {
		var toRemove []*Element
		for _, v := range h.vertices {
			if explored[v.ID] {
				toRemove = append(toRemove, v)
			}
		}
		for _, v := range toRemove {
			_ = h.DeleteVertex(v)
		}
	}
	keepExplored := func(h *Graph) {
		var toRemove []*Element
		for _, v := range h.vertices {
			if !explored[v.ID] {
				toRemove = append(toRemove, v)
			}
		}
		for _, v := range toRemove {
			_ = h.DeleteVertex(v)
		}
	}

	keepUnexplored(g1)
	keepExplored(g2)

	// The direct a-b edge (if one exists in g) is reinserted into g1 only,
	// mirroring the original: duplicating it into both sides would
	// over-count it in g2's edge multiset and deficit.
	reinsertPair(g, g1, a, b, true)
	reinsertPair(g, g2, a, b, false)

	g1.ResetExploration()
	g2.ResetExploration()

	return g1, g2
}

// reinsertPair re-inserts fresh copies of a and b into sub, connecting
// each to exactly those incident edges (from the original graph g) whose
// other endpoint survives in sub. A single original edge directly between
// a and b is reinserted only when includeDirectEdge is set (it is
// considered incident to a here, not duplicated when processing b).
func reinsertPair(g, sub *Graph, a, b *Element, includeDirectEdge bool) {
	na := NewElementWithID(a.ID, a.Type, a.Label)
	nb := NewElementWithID(b.ID, b.Type, b.Label)
	sub.AddVertex(na)
	sub.AddVertex(nb)

	for _, inc := range a.edges {
		if inc.neighborID == b.ID {
			// The a-b edge itself: reinsert only on the side designated to
			// keep it.
			if includeDirectEdge {
				c := g.FindEdgeByID(inc.constraintID)
				nc := NewConstraintWithID(c.ID, c.Type, c.Label, c.Value, c.HasValue)
				_ = sub.Connect(na, nb, nc)
			}
			continue
		}
		if other := sub.FindVertexByID(inc.neighborID); other != nil {
			c := g.FindEdgeByID(inc.constraintID)
			nc := NewConstraintWithID(c.ID, c.Type, c.Label, c.Value, c.HasValue)
			_ = sub.Connect(na, other, nc)
		}
	}

	for _, inc := range b.edges {
		if inc.neighborID == a.ID {
			// Already handled above while processing a's incidences.
			continue
		}
		if other := sub.FindVertexByID(inc.neighborID); other != nil {
			c := g.FindEdgeByID(inc.constraintID)
			nc := NewConstraintWithID(c.ID, c.Type, c.Label, c.Value, c.HasValue)
			_ = sub.Connect(nb, other, nc)
		}
	}
}
