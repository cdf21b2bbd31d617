package solver

import (
	"context"
	"fmt"
)

// Step performs one SGD pass over every edge of the cluster, accumulating
// each constraint's gradient onto its two endpoints, dividing by the
// configured batch factor, and applying the scaled update to every
// non-fixed vertex. It returns the mean per-constraint residual observed
// before the update was applied.
//
// Multi-edges contribute independently: each edge in Cluster.Edges() is
// visited exactly once, so a vertex with several incident constraints
// accumulates one gradient term per edge, never double-counted. Fixed
// vertices still receive accumulated gradient (harmless, since the
// update loop below skips applying it), which keeps this function free
// of a branch inside the accumulation loop.
func (r *Realisation) Step(cfg *Config) (float64, error) {
	grads := make(map[uint64]Vec2, len(r.Values))
	totalResidual := 0.0
	count := 0

	for _, c := range r.Cluster.Edges() {
		a, err := r.endpointOf(c.A)
		if err != nil {
			return 0, err
		}
		b, err := r.endpointOf(c.B)
		if err != nil {
			return 0, err
		}

		totalResidual += Residual(c, a, b)
		count++

		ga, gb := Gradient(c, a, b)
		grads[c.A] = grads[c.A].Add(ga)
		grads[c.B] = grads[c.B].Add(gb)
	}

	batch := float64(cfg.BatchFactor)
	if batch <= 0 {
		batch = 1
	}

	for id, v := range r.Values {
		if r.Fixed[id] {
			continue
		}
		g := grads[id].Scale(1.0 / batch)
		r.Values[id] = v.Sub(g.Scale(cfg.StepSize))
	}

	if count == 0 {
		return 0, nil
	}
	return totalResidual / float64(count), nil
}

// Solve runs Step repeatedly until the mean residual drops below
// cfg.Tolerance or cfg.MaxIterations is exhausted, checking ctx between
// steps so a caller solving many clusters can cancel a runaway one.
// Returns the final mean residual and whether it met the tolerance.
func (r *Realisation) Solve(ctx context.Context, cfg *Config) (float64, bool, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	meanResidual := 0.0
	for i := 0; i < cfg.MaxIterations; i++ {
		select {
		case <-ctx.Done():
			return meanResidual, false, fmt.Errorf("solver: solve cancelled: %w", ctx.Err())
		default:
		}

		var err error
		meanResidual, err = r.Step(cfg)
		if err != nil {
			return meanResidual, false, err
		}
		if meanResidual < cfg.Tolerance {
			return meanResidual, true, nil
		}
	}
	return meanResidual, meanResidual < cfg.Tolerance, nil
}
