package graph

// FloodFill performs a standard BFS over the adjacency starting at start,
// marking explored and recording parent/parentEdge on each discovered
// vertex. Does not reset exploration state before running, so repeated
// calls accumulate into the same wave unless the caller resets first.
func (g *Graph) FloodFill(start *Element) {
	if start == nil || !g.Contains(start) {
		return
	}
	start.explored = true
	queue := []*Element{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, inc := range cur.edges {
			next := g.FindVertexByID(inc.neighborID)
			if next == nil || next.explored {
				continue
			}
			next.explored = true
			next.hasParent = true
			next.parent = cur.ID
			next.parentEdge = inc.constraintID
			queue = append(queue, next)
		}
	}
}

// Connected reports whether the graph is a single connected component.
// Flood-fills from any vertex whose explored flag is false, then checks
// that every vertex ended up explored. Resets exploration before
// returning, regardless of the result.
func (g *Graph) Connected() bool {
	defer g.ResetExploration()

	if len(g.vertices) == 0 {
		return true
	}
	g.ResetExploration()
	g.FloodFill(g.vertices[0])

	for _, v := range g.vertices {
		if !v.explored {
			return false
		}
	}
	return true
}

// BFSPath runs a breadth-first search from start to end, skipping any
// edge whose transient flow field is non-zero (used by the max-flow
// residual search). Returns the ordered sequence of constraints along the
// discovered path, or (nil, false) if no such path exists. Clears
// exploration flags before returning.
func (g *Graph) BFSPath(start, end *Element) ([]*Constraint, bool) {
	defer g.ResetExploration()
	g.ResetExploration()

	if start == nil || end == nil || !g.Contains(start) || !g.Contains(end) {
		return nil, false
	}
	if start.ID == end.ID {
		return nil, true
	}

	start.explored = true
	queue := []*Element{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, inc := range cur.edges {
			c := g.FindEdgeByID(inc.constraintID)
			if c == nil || c.Flow() != 0 {
				continue
			}
			next := g.FindVertexByID(inc.neighborID)
			if next == nil || next.explored {
				continue
			}
			next.explored = true
			next.hasParent = true
			next.parent = cur.ID
			next.parentEdge = inc.constraintID
			queue = append(queue, next)

			if next.ID == end.ID {
				return g.reconstructPath(end), true
			}
		}
	}

	return nil, false
}

// reconstructPath walks parent pointers from end back to the (implicit)
// start, returning the constraints traversed in start-to-end order.
func (g *Graph) reconstructPath(end *Element) []*Constraint {
	var path []*Constraint
	cur := end
	for cur.hasParent {
		c := g.FindEdgeByID(cur.parentEdge)
		path = append([]*Constraint{c}, path...)
		cur = g.FindVertexByID(cur.parent)
	}
	return path
}

// GetReachable returns the set of vertex ids reachable from start,
// without disturbing BFSPath/FloodFill's shared explored state: it uses
// its own local visited set.
func (g *Graph) GetReachable(start *Element) map[uint64]bool {
	reachable := make(map[uint64]bool)
	if start == nil || !g.Contains(start) {
		return reachable
	}

	reachable[start.ID] = true
	queue := []*Element{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, inc := range cur.edges {
			if reachable[inc.neighborID] {
				continue
			}
			next := g.FindVertexByID(inc.neighborID)
			if next == nil {
				continue
			}
			reachable[next.ID] = true
			queue = append(queue, next)
		}
	}
	return reachable
}
