// Package graph provides the constraint graph data structure and its
// structural analysis: connectivity, flow-masked BFS, max-flow via
// Ford-Fulkerson, 3-connectivity testing, and separating-pair search.
//
// The constraint graph is a labelled undirected multigraph: vertices are
// GeometricElement values (points or lines), edges are Constraint values.
// Multiple edges between the same pair of vertices are permitted (e.g. two
// distance-like constraints on the same pair).
package graph
