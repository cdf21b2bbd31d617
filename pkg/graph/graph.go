package graph

import (
	"fmt"
)

// Graph is a labelled undirected multigraph: a ConstraintGraph per
// spec.md §4.1. Vertices and edges are held in an arena (a slice plus an
// id index) rather than as owning pointers, so the naturally cyclic
// structure (clusters are 3-connected) never needs reference cycles.
type Graph struct {
	vertices    []*Element
	edges       []*Constraint
	vertexIndex map[uint64]int
	edgeIndex   map[uint64]int
}

// New creates an empty constraint graph.
func New() *Graph {
	return &Graph{
		vertexIndex: make(map[uint64]int),
		edgeIndex:   make(map[uint64]int),
	}
}

// Vertices returns the graph's vertices in insertion order. Callers must
// not mutate the returned slice's backing array.
func (g *Graph) Vertices() []*Element {
	return g.vertices
}

// Edges returns the graph's edges (constraints) in insertion order.
func (g *Graph) Edges() []*Constraint {
	return g.edges
}

// Order returns the number of vertices, |V(G)|.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns the number of edges, |E(G)|.
func (g *Graph) Size() int { return len(g.edges) }

// AddVertex appends an element to the graph's vertex list. No failure
// mode: the element is simply recorded.
func (g *Graph) AddVertex(e *Element) {
	g.vertexIndex[e.ID] = len(g.vertices)
	g.vertices = append(g.vertices, e)
}

// Contains reports whether v (by id) is a member of the graph.
func (g *Graph) Contains(v *Element) bool {
	if v == nil {
		return false
	}
	_, ok := g.vertexIndex[v.ID]
	return ok
}

// FindVertexByID performs a lookup by id, returning nil when absent.
func (g *Graph) FindVertexByID(id uint64) *Element {
	if i, ok := g.vertexIndex[id]; ok {
		return g.vertices[i]
	}
	return nil
}

// FindEdgeByID performs a lookup by id, returning nil when absent.
func (g *Graph) FindEdgeByID(id uint64) *Constraint {
	if i, ok := g.edgeIndex[id]; ok {
		return g.edges[i]
	}
	return nil
}

// Connect appends c to the graph's edge list and records the incidence on
// both a and b's adjacency. Both a and b must already be members of the
// graph. Multi-edges between the same pair are permitted.
func (g *Graph) Connect(a, b *Element, c *Constraint) error {
	if !g.Contains(a) {
		return fmt.Errorf("graph: connect: vertex %d is not in the graph", a.ID)
	}
	if !g.Contains(b) {
		return fmt.Errorf("graph: connect: vertex %d is not in the graph", b.ID)
	}

	c.A, c.B = a.ID, b.ID
	g.edgeIndex[c.ID] = len(g.edges)
	g.edges = append(g.edges, c)

	a.addIncidence(c.ID, b.ID)
	b.addIncidence(c.ID, a.ID)
	return nil
}

// AddVirtualEdge inserts a new VIRTUAL constraint between a and b,
// recording a structural rigidity assumption made by the decomposer
// without changing the geometric problem.
func (g *Graph) AddVirtualEdge(a, b *Element) (*Constraint, error) {
	c := NewConstraint(ConstraintVirtual)
	if err := g.Connect(a, b, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteVertex removes v from the vertex list; every constraint incident
// to v is also removed from the edge list and from the far endpoint's
// adjacency. Post-condition: no dangling reference to v or its incident
// constraints remains anywhere in the graph.
func (g *Graph) DeleteVertex(v *Element) error {
	vi, ok := g.vertexIndex[v.ID]
	if !ok {
		return fmt.Errorf("graph: delete vertex: %d is not in the graph", v.ID)
	}

	// Snapshot incident constraint ids before mutating v's adjacency.
	incident := make([]uint64, len(v.edges))
	for i, inc := range v.edges {
		incident[i] = inc.constraintID
	}

	for _, cid := range incident {
		c := g.FindEdgeByID(cid)
		if c == nil {
			continue
		}
		other := g.FindVertexByID(c.Other(v.ID))
		if other != nil {
			other.removeIncidenceByConstraint(cid)
		}
		g.removeEdge(cid)
	}
	v.edges = nil

	g.removeVertexAt(vi)
	return nil
}

func (g *Graph) removeVertexAt(i int) {
	removedID := g.vertices[i].ID
	g.vertices = append(g.vertices[:i], g.vertices[i+1:]...)
	delete(g.vertexIndex, removedID)
	for id, idx := range g.vertexIndex {
		if idx > i {
			g.vertexIndex[id] = idx - 1
		}
	}
}

func (g *Graph) removeEdge(id uint64) {
	i, ok := g.edgeIndex[id]
	if !ok {
		return
	}
	g.edges = append(g.edges[:i], g.edges[i+1:]...)
	delete(g.edgeIndex, id)
	for cid, idx := range g.edgeIndex {
		if idx > i {
			g.edgeIndex[cid] = idx - 1
		}
	}
}

// Adjacent reports whether at least one constraint joins a and b.
func (g *Graph) Adjacent(a, b *Element) bool {
	for _, inc := range a.edges {
		if inc.neighborID == b.ID {
			return true
		}
	}
	return false
}

// Deficit computes 2|V| - 3 - |E|, the structural measure of remaining
// degrees of freedom used by decomposition. Every edge counts once
// regardless of Constraint.Weight, including VIRTUAL edges — the same
// bookkeeping the decomposer's split/recombine invariant relies on.
func (g *Graph) Deficit() int {
	return 2*len(g.vertices) - 3 - len(g.edges)
}

// DeepCopy returns a new graph whose vertices and constraints are fresh
// objects carrying the same ids as the originals, with identical
// connectivity. Exploration flags and BFS parent-pointer state are reset.
func (g *Graph) DeepCopy() *Graph {
	out := New()
	for _, v := range g.vertices {
		out.AddVertex(NewElementWithID(v.ID, v.Type, v.Label))
	}
	for _, c := range g.edges {
		a := out.FindVertexByID(c.A)
		b := out.FindVertexByID(c.B)
		nc := NewConstraintWithID(c.ID, c.Type, c.Label, c.Value, c.HasValue)
		// Connect cannot fail here: a and b were just inserted above.
		_ = out.Connect(a, b, nc)
	}
	return out
}

// ResetExploration clears the explored/parent/parentEdge transient state
// on every vertex. Traversals that depend on this state call it before
// returning, so callers never observe stale flags.
func (g *Graph) ResetExploration() {
	for _, v := range g.vertices {
		v.explored = false
		v.hasParent = false
		v.parent = 0
		v.parentEdge = 0
	}
}
