// Package sketch owns the full set of geometric entities and constraints
// a user has drawn, plus derived "guided" geometry (trimmed lines) that is
// drawn but not directly solved for (spec.md §3, §4.4).
//
// A Sketch mirrors its entities and constraints into an internal
// *graph.Graph so the structural analysis and decomposition packages can
// operate on it without the sketch package depending on them.
package sketch
