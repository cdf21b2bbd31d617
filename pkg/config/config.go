package config

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config specifies the parameters of a solve session: the master seed
// and the numeric realiser's tunables. Supports YAML parsing and
// includes validation, mirroring dungeon.Config's pattern.
type Config struct {
	// Seed is the master seed for deterministic initial placement and
	// solver RNG derivation. Use 0 to auto-generate from current time.
	Seed uint64 `yaml:"seed" json:"seed"`

	// Solver tunes the SGD stepper (spec.md §4.3).
	Solver SolverCfg `yaml:"solver" json:"solver"`
}

// SolverCfg mirrors solver.Config's fields for YAML/JSON (de)serialisation,
// kept as a separate type so pkg/config never imports pkg/solver: the
// config layer only describes numbers, it never depends on the package
// that interprets them.
type SolverCfg struct {
	// StepSize scales the gradient on every SGD update (default 0.02).
	StepSize float64 `yaml:"stepSize" json:"stepSize"`

	// MaxIterations bounds SGD steps per cluster solve (default 1000).
	MaxIterations int `yaml:"maxIterations" json:"maxIterations"`

	// Tolerance is the mean-residual convergence threshold (default
	// 1e-6).
	Tolerance float64 `yaml:"tolerance" json:"tolerance"`

	// BatchFactor divides the accumulated gradient before it is applied
	// (default 1).
	BatchFactor int `yaml:"batchFactor" json:"batchFactor"`
}

// DefaultSolverCfg returns the solver defaults named in spec.md §4.3.
func DefaultSolverCfg() SolverCfg {
	return SolverCfg{
		StepSize:      0.02,
		MaxIterations: 1000,
		Tolerance:     1e-6,
		BatchFactor:   1,
	}
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
// Useful for testing and programmatic config generation.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := Config{Solver: DefaultSolverCfg()}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing YAML: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks all configuration constraints, returning an error
// describing the first failure.
func (c *Config) Validate() error {
	if c.Solver.StepSize <= 0 {
		return fmt.Errorf("solver.stepSize must be positive, got %v", c.Solver.StepSize)
	}
	if c.Solver.MaxIterations <= 0 {
		return fmt.Errorf("solver.maxIterations must be positive, got %d", c.Solver.MaxIterations)
	}
	if c.Solver.Tolerance <= 0 {
		return fmt.Errorf("solver.tolerance must be positive, got %v", c.Solver.Tolerance)
	}
	if c.Solver.BatchFactor <= 0 {
		return fmt.Errorf("solver.batchFactor must be positive, got %d", c.Solver.BatchFactor)
	}
	return nil
}

// ToYAML serialises the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic SHA-256 hash of the configuration,
// used to derive the solver's per-run RNG sub-seed (pkg/rng.NewRNG's
// configHash argument), exactly as dungeon.Config.Hash feeds rng.NewRNG.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], c.Seed)
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

// generateSeed derives a seed from the current time for configs that
// don't pin one explicitly.
func generateSeed() uint64 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint64(now)
	if seed == 0 {
		seed = 1
	}
	return seed
}
