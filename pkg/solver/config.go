package solver

// Config tunes the SGD stepper, grounded on the same knobs
// embedding.Config uses to tune its force-directed simulation
// (iteration cap, damping, stability threshold).
type Config struct {
	// StepSize scales the gradient before it is subtracted from each
	// vertex's value on every step.
	StepSize float64
	// MaxIterations bounds the number of SGD steps a single cluster solve
	// will run before giving up.
	MaxIterations int
	// Tolerance is the mean-residual value below which a cluster is
	// considered converged.
	Tolerance float64
	// BatchFactor divides the accumulated gradient before it is applied,
	// matching spec.md §4.3's "mini-batch factor B (default 1)".
	BatchFactor int
}

// DefaultConfig returns the solver defaults named in spec.md §4.3.
func DefaultConfig() *Config {
	return &Config{
		StepSize:      0.02,
		MaxIterations: 1000,
		Tolerance:     1e-6,
		BatchFactor:   1,
	}
}
