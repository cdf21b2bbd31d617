package decompose

import (
	"github.com/dshills/sketchcore/pkg/graph"
)

// STree is a binary tree whose every node owns one cluster (a
// *graph.Graph). Leaves are clusters the analyser considers atomically
// solvable (either 3-connected or of size <= 3). Internal nodes' graphs
// are the parent of the union of their children's clusters plus a
// VIRTUAL edge joining the separating pair that split them.
type STree struct {
	Cluster *graph.Graph
	Left    *STree
	Right   *STree
}

// IsLeaf reports whether this node has no children.
func (t *STree) IsLeaf() bool {
	return t.Left == nil && t.Right == nil
}

// Depth returns 1 + max(child depth), with nil children contributing 0.
func (t *STree) Depth() int {
	if t == nil {
		return 0
	}
	l, r := t.Left.Depth(), t.Right.Depth()
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// Size returns the total vertex count across the subtree rooted at t:
// the root's own cluster order when t is a leaf, or the sum of the two
// children's sizes for an internal node (their clusters partition the
// root's vertices, save for the duplicated separating pair).
func (t *STree) Size() int {
	if t == nil {
		return 0
	}
	if t.IsLeaf() {
		return t.Cluster.Order()
	}
	return t.Left.Size() + t.Right.Size()
}

// Leaves returns every leaf cluster in the subtree, left-to-right.
func (t *STree) Leaves() []*graph.Graph {
	if t == nil {
		return nil
	}
	if t.IsLeaf() {
		return []*graph.Graph{t.Cluster}
	}
	return append(t.Left.Leaves(), t.Right.Leaves()...)
}
