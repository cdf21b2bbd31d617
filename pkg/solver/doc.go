// Package solver is the numeric realiser: given an S-tree leaf (a
// 3-connected cluster), it computes positions of its entities by
// stochastic gradient descent on a sum-of-squared-residuals objective
// derived from the cluster's constraints (spec.md §4.3).
//
// The solver never touches the sketch model directly — it operates on a
// Realisation, a transient per-cluster numeric snapshot keyed by vertex
// id, and is oblivious to whether a vertex represents a point or a line;
// callers interpret a Realisation's two-component values according to
// each vertex's graph.ElementType.
package solver
