package graph

// MaxFlow computes the Ford-Fulkerson maximum flow between source and
// sink over unit-capacity edges: repeatedly find a BFS path over edges
// with zero flow, increment flow on every edge of that path by 1, and
// count augmenting paths found. Resets every edge's flow to 0 before
// returning, so a caller never observes transient state.
func (g *Graph) MaxFlow(source, sink *Element) int {
	flow := 0
	for {
		path, ok := g.BFSPath(source, sink)
		if !ok {
			break
		}
		for _, c := range path {
			c.SetFlow(c.Flow() + 1)
		}
		flow++
	}

	for _, c := range g.edges {
		c.SetFlow(0)
	}
	return flow
}

// Triconnected reports whether every unordered pair of distinct vertices
// has max-flow >= 3 over unit-capacity edges. By Menger's theorem this is
// equivalent to every pair being joined by at least three edge-disjoint
// paths (3-edge-connectivity).
func (g *Graph) Triconnected() bool {
	n := len(g.vertices)
	if n <= 3 {
		// A graph of size <= 3 is trivially a base case for the
		// decomposer (spec.md §4.2); it is treated as "atomically
		// solvable" rather than tested for 3-connectivity here.
		return true
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.MaxFlow(g.vertices[i], g.vertices[j]) < 3 {
				return false
			}
		}
	}
	return true
}

// SeparatingVertices scans unordered pairs (a, b), marking both explored
// (excluding them from traversal) and testing whether the remainder of
// the graph stays connected. Returns the first pair found to disconnect
// the graph, or (nil, nil) if none exists (the graph is then
// 3-connected).
func (g *Graph) SeparatingVertices() (*Element, *Element) {
	n := len(g.vertices)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := g.vertices[i], g.vertices[j]
			if g.disconnectsWithout(a, b) {
				return a, b
			}
		}
	}
	return nil, nil
}

// disconnectsWithout reports whether the graph, with a and b excluded
// from traversal, fails to be connected.
func (g *Graph) disconnectsWithout(a, b *Element) bool {
	defer g.ResetExploration()
	g.ResetExploration()
	a.explored = true
	b.explored = true

	var start *Element
	for _, v := range g.vertices {
		if v.ID != a.ID && v.ID != b.ID {
			start = v
			break
		}
	}
	if start == nil {
		// Fewer than 3 vertices remain outside {a, b}: nothing to
		// disconnect.
		return false
	}

	g.FloodFillExcluding(start, a, b)

	for _, v := range g.vertices {
		if v.ID == a.ID || v.ID == b.ID {
			continue
		}
		if !v.explored {
			return true
		}
	}
	return false
}

// FloodFillExcluding behaves like FloodFill but never traverses through
// excluded vertices (their explored flags are assumed already set by the
// caller).
func (g *Graph) FloodFillExcluding(start, excludeA, excludeB *Element) {
	queue := []*Element{start}
	start.explored = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, inc := range cur.edges {
			if inc.neighborID == excludeA.ID || inc.neighborID == excludeB.ID {
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
		}
	}
}
