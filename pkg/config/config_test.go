package config

import "testing"

func TestLoadConfigFromBytes_Defaults(t *testing.T) {
	cfg, err := LoadConfigFromBytes([]byte(`seed: 42`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.Solver.StepSize != 0.02 || cfg.Solver.MaxIterations != 1000 {
		t.Fatalf("expected solver defaults to apply, got %+v", cfg.Solver)
	}
}

func TestLoadConfigFromBytes_SeedAutoGeneratedWhenZero(t *testing.T) {
	cfg, err := LoadConfigFromBytes([]byte(`seed: 0`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed == 0 {
		t.Fatal("expected a non-zero auto-generated seed")
	}
}

func TestConfig_ValidateRejectsNonPositiveStepSize(t *testing.T) {
	cfg := &Config{Seed: 1, Solver: SolverCfg{StepSize: 0, MaxIterations: 1, Tolerance: 1, BatchFactor: 1}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for zero step size")
	}
}

func TestConfig_HashDeterministic(t *testing.T) {
	cfg := &Config{Seed: 7, Solver: DefaultSolverCfg()}
	h1 := cfg.Hash()
	h2 := cfg.Hash()
	if len(h1) == 0 || string(h1) != string(h2) {
		t.Fatal("expected Hash to be deterministic")
	}

	other := &Config{Seed: 8, Solver: DefaultSolverCfg()}
	if string(cfg.Hash()) == string(other.Hash()) {
		t.Fatal("expected different configs to hash differently")
	}
}
