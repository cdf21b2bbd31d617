// Package decompose recursively splits a constraint graph into an S-tree:
// a binary decomposition into maximally rigid sub-clusters joined at
// separating pairs with virtual edges (spec.md §4.2).
package decompose
