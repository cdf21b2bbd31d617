package solver

import (
	"fmt"
	"sort"

	"github.com/dshills/sketchcore/pkg/graph"
	"github.com/dshills/sketchcore/pkg/rng"
)

// Realisation is a transient, per-cluster numeric snapshot: a copy of a
// cluster's vertex list paired with two-component values. It is created
// from a graph.Graph, mutated only by SGD steps, and read back by the
// caller once it converges; it never references the sketch model.
type Realisation struct {
	Cluster *graph.Graph
	Values  map[uint64]Vec2
	Fixed   map[uint64]bool
}

// NewRealisation builds a realisation for g, drawing an initial value for
// every vertex not already present in seed from r. Vertices are visited
// in sorted-id order so initial placement is reproducible independent of
// the graph's internal slice order, mirroring the determinism discipline
// in embedding.ForceDirectedEmbedder.initializePositions.
func NewRealisation(g *graph.Graph, seed map[uint64]Vec2, fixed map[uint64]bool, r *rng.RNG) *Realisation {
	values := make(map[uint64]Vec2, g.Order())

	ids := make([]uint64, 0, g.Order())
	for _, v := range g.Vertices() {
		ids = append(ids, v.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if v, ok := seed[id]; ok {
			values[id] = v
			continue
		}
		values[id] = Vec2{A: r.Float64(), B: r.Float64()}
	}

	f := make(map[uint64]bool, len(fixed))
	for id, v := range fixed {
		f[id] = v
	}

	return &Realisation{Cluster: g, Values: values, Fixed: f}
}

// endpointOf resolves a vertex id to a typed Endpoint for residual and
// gradient evaluation. Returns an error if the id is not a member of the
// realisation's cluster, which would indicate a constraint referencing a
// vertex outside its own graph — a structural bug, never expected in
// practice.
func (r *Realisation) endpointOf(id uint64) (Endpoint, error) {
	v := r.Cluster.FindVertexByID(id)
	if v == nil {
		return Endpoint{}, fmt.Errorf("solver: vertex %d not found in cluster", id)
	}
	val, ok := r.Values[id]
	if !ok {
		return Endpoint{}, fmt.Errorf("solver: vertex %d has no realised value", id)
	}
	return Endpoint{Type: v.Type, Value: val}, nil
}
