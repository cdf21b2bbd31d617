package app

import (
	"context"
	"fmt"

	"github.com/dshills/sketchcore/pkg/decompose"
	"github.com/dshills/sketchcore/pkg/solver"
)

// Result is the outcome of a full sketch solve: the realised positions
// of every entity in the sketch, and whether the root cluster converged
// within tolerance (spec.md §4.3 "Global solve").
type Result struct {
	Values    map[uint64]solver.Vec2
	Residual  float64
	Converged bool
}

// Solve runs the full graph -> decompose -> realise pipeline over the
// current sketch (spec.md §4.3 "Global solve"):
//
//  1. Build a fresh constraint graph from the sketch.
//  2. Decompose it into an S-tree via decompose.Analyze.
//  3. Solve the realisations bottom-up (leaves first), copying each
//     child's converged positions into its parent's initial conditions.
//  4. Return the root's realisation if it converged; on success, the
//     sketch's true entity positions are updated from it.
//
// Structural corruption (decompose.ErrStructuralCorruption) is a fatal
// data-structure invariant violation (spec.md §7 error kind 1): Solve
// returns it wrapped (errors.Is still matches it) and leaves the sketch's prior numeric state
// untouched. An unsolved root cluster (spec.md §7 error kind 3) is
// reported via Result.Converged == false, not as an error; the sketch's
// prior numeric state is likewise retained.
func (s *State) Solve(ctx context.Context) (*Result, error) {
	// Stage A: build a fresh constraint graph, isolated from the live
	// sketch so the analyser's destructive splitting never touches it.
	g := s.Sketch.BuildGraph()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// Stage B: decompose into an S-tree.
	tree, err := decompose.Analyze(g)
	if err != nil {
		return nil, fmt.Errorf("app: solve: decomposition: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// Stage C: realise bottom-up, leaves first.
	_, fixed := s.Sketch.Positions()
	fixedSet := make(map[uint64]bool, len(fixed))
	for id, f := range fixed {
		if f {
			fixedSet[id] = true
		}
	}

	values, residual, converged, err := s.solveSubtree(ctx, tree, fixedSet)
	if err != nil {
		return nil, fmt.Errorf("app: solve: realisation: %w", err)
	}

	result := &Result{Values: values, Residual: residual, Converged: converged}
	if converged {
		s.Sketch.ApplyPositions(toPositions(values))
	}
	return result, nil
}

// solveSubtree solves t's cluster, recursing into children first so each
// leaf's converged positions seed its parent's initial conditions
// (spec.md §4.3 "Global solve" step 4).
func (s *State) solveSubtree(ctx context.Context, t *decompose.STree, fixed map[uint64]bool) (map[uint64]solver.Vec2, float64, bool, error) {
	select {
	case <-ctx.Done():
		return nil, 0, false, ctx.Err()
	default:
	}

	seed := map[uint64]solver.Vec2{}
	if !t.IsLeaf() {
		leftVals, _, _, err := s.solveSubtree(ctx, t.Left, fixed)
		if err != nil {
			return nil, 0, false, err
		}
		rightVals, _, _, err := s.solveSubtree(ctx, t.Right, fixed)
		if err != nil {
			return nil, 0, false, err
		}
		for id, v := range leftVals {
			seed[id] = v
		}
		for id, v := range rightVals {
			if _, ok := seed[id]; !ok {
				seed[id] = v
			}
		}
	} else {
		live, _ := s.Sketch.Positions()
		for _, v := range t.Cluster.Vertices() {
			if val, ok := live[v.ID]; ok {
				seed[v.ID] = solver.Vec2{A: val[0], B: val[1]}
			}
		}
	}

	realisation := solver.NewRealisation(t.Cluster, seed, fixed, s.rng)
	residual, converged, err := realisation.Solve(ctx, s.Config)
	if err != nil {
		return nil, residual, converged, err
	}
	return realisation.Values, residual, converged, nil
}

func toPositions(values map[uint64]solver.Vec2) map[uint64][2]float64 {
	out := make(map[uint64][2]float64, len(values))
	for id, v := range values {
		out[id] = [2]float64{v.A, v.B}
	}
	return out
}
