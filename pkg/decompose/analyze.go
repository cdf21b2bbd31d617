package decompose

import (
	"fmt"

	"github.com/dshills/sketchcore/pkg/graph"
)

// Analyze recursively decomposes G into an S-tree, per spec.md §4.2:
//
//	if G is 3-connected or |V(G)| <= 3:
//	    return leaf(G)
//	else:
//	    (a, b) <- G.separatingVertices()
//	    (G1, G2) <- G.splitGraphs(a, b)
//	    if deficit(G1) > deficit(G2): G1.addVirtualEdge(a, b)
//	    else:                         G2.addVirtualEdge(a, b)
//	    return node(G, analyze(G1), analyze(G2))
//
// The virtual edge is inserted into the side that is currently more
// under-constrained, since it represents the rigidity the other side will
// later provide through its own decomposition.
//
// Every split strictly reduces the vertex count on each side, and the
// base cases trap any graph of <= 3 vertices, so Analyze terminates for
// every finite connected G.
func Analyze(g *graph.Graph) (*STree, error) {
	if g.Order() <= 3 || g.Triconnected() {
		return &STree{Cluster: g}, nil
	}

	a, b := g.SeparatingVertices()
	if a == nil || b == nil {
		// Triconnected() should have already caught this, but a graph
		// that claims not to be 3-connected must produce a separating
		// pair; absence here is a structural error.
		return nil, fmt.Errorf("decompose: graph reported non-3-connected but no separating pair was found")
	}

	g1, g2 := g.SplitGraphs(a, b)

	parentDeficit := g.Deficit()

	// Decide which side is more under-constrained before inserting the
	// virtual edge, using each side's pre-insertion deficit.
	if g1.Deficit() > g2.Deficit() {
		if _, err := g1.AddVirtualEdge(g1.FindVertexByID(a.ID), g1.FindVertexByID(b.ID)); err != nil {
			return nil, fmt.Errorf("decompose: adding virtual edge: %w", err)
		}
	} else {
		if _, err := g2.AddVirtualEdge(g2.FindVertexByID(a.ID), g2.FindVertexByID(b.ID)); err != nil {
			return nil, fmt.Errorf("decompose: adding virtual edge: %w", err)
		}
	}

	// Splitting duplicates the separating pair into both sides, so the
	// raw post-split deficits sum to parentDeficit+1 before the virtual
	// edge is added. The virtual edge counts as one structural edge
	// (Graph.Deficit ignores Constraint.Weight), dropping the side it
	// lands in by exactly 1 and restoring the balance — so the invariant
	// must be checked against the post-insertion deficits, not the
	// pre-insertion ones.
	if err := checkDeficitInvariant(parentDeficit, g1.Deficit(), g2.Deficit()); err != nil {
		return nil, err
	}

	left, err := Analyze(g1)
	if err != nil {
		return nil, err
	}
	right, err := Analyze(g2)
	if err != nil {
		return nil, err
	}

	return &STree{Cluster: g, Left: left, Right: right}, nil
}
