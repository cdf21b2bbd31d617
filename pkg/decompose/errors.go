package decompose

import "errors"

// ErrStructuralCorruption is returned (in non-debug builds) when a split
// produces sub-graphs whose deficits do not sum to the parent's deficit —
// an invariant of SplitGraphs being violated, which indicates corrupt
// graph bookkeeping rather than an ordinary solver failure (spec.md §7,
// error kind 1).
var ErrStructuralCorruption = errors.New("decompose: structural corruption: child deficits do not sum to parent deficit")
