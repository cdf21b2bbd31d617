package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/sketchcore/pkg/app"
	"github.com/dshills/sketchcore/pkg/config"
	"github.com/dshills/sketchcore/pkg/event"
	"github.com/dshills/sketchcore/pkg/export"
	"github.com/dshills/sketchcore/pkg/modestack"
	"github.com/dshills/sketchcore/pkg/solver"
)

const version = "0.1.0"

// CLI flags
var (
	configPath  = flag.String("config", "", "Path to YAML configuration file (required)")
	historyPath = flag.String("history", "", "Path to a serialised event history JSON file (optional)")
	outputDir   = flag.String("output", ".", "Output directory for generated files")
	format      = flag.String("format", "json", "Export format: json, svg, or all")
	seedFlag    = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	verbose     = flag.Bool("verbose", false, "Enable verbose output")
	versionF    = flag.Bool("version", false, "Print version and exit")
	help        = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("sketchcore version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// noInput is an InputSource reporting no live device activity, used when
// sketchcore drives a sketch purely from a replayed history file rather
// than an interactive input loop.
type noInput struct{}

func (noInput) PressedKeys() []modestack.KeyPress       { return nil }
func (noInput) ReleasedKeys() []modestack.KeyPress      { return nil }
func (noInput) PressedButtons() []modestack.MousePress  { return nil }
func (noInput) ReleasedButtons() []modestack.MousePress { return nil }

func run() error {
	ctx := context.Background()

	if *verbose {
		fmt.Printf("Loading configuration from %s\n", *configPath)
	}
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", cfg.Seed, *seedFlag)
		}
		cfg.Seed = *seedFlag
	}
	if *verbose {
		fmt.Printf("Using seed: %d\n", cfg.Seed)
		fmt.Printf("Solver: %+v\n", cfg.Solver)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	solverCfg := &solver.Config{
		StepSize:      cfg.Solver.StepSize,
		MaxIterations: cfg.Solver.MaxIterations,
		Tolerance:     cfg.Solver.Tolerance,
		BatchFactor:   cfg.Solver.BatchFactor,
	}
	state := app.New(noInput{}, solverCfg, cfg.Seed, cfg.Hash())

	if *historyPath != "" {
		if *verbose {
			fmt.Printf("Replaying history from %s\n", *historyPath)
		}
		if err := replayHistory(state, *historyPath); err != nil {
			return fmt.Errorf("failed to replay history: %w", err)
		}
	}

	if err := state.Drain(ctx); err != nil {
		return fmt.Errorf("failed to drain pending events: %w", err)
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Solving sketch...")
	}
	result, err := state.Solve(ctx)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}
	elapsed := time.Since(start)
	if *verbose {
		fmt.Printf("Solve completed in %v (converged=%v residual=%g)\n", elapsed, result.Converged, result.Residual)
	}

	baseName := fmt.Sprintf("sketch_%d", cfg.Seed)

	if *format == "json" || *format == "all" {
		if err := exportJSON(state, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(state, baseName, cfg.Seed); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully solved sketch (seed=%d) in %v\n", cfg.Seed, elapsed)
	return nil
}

func replayHistory(state *app.State, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading history file: %w", err)
	}
	events, skipped, err := event.DeserializeHistory(data)
	if err != nil {
		return fmt.Errorf("parsing history: %w", err)
	}
	if *verbose {
		for _, s := range skipped {
			fmt.Printf("  skipped history entry %d (%s): %s\n", s.Index, s.Tag, s.Reason)
		}
	}
	for _, e := range events {
		state.PostEvent(e)
	}
	return nil
}

func exportJSON(state *app.State, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}
	snap := export.NewSnapshot(state.Sketch)
	if err := export.SaveJSONToFile(snap, filename); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	historyFile := filepath.Join(*outputDir, baseName+"_history.json")
	if err := export.SaveHistoryToFile(state.Events, historyFile); err != nil {
		return fmt.Errorf("failed to export history: %w", err)
	}
	if *verbose {
		info, _ := os.Stat(filename)
		fmt.Printf("  Wrote %d bytes\n", info.Size())
	}
	return nil
}

func exportSVG(state *app.State, baseName string, seed uint64) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}
	opts := export.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("sketch (seed=%d)", seed)

	data, err := export.ExportSVG(state.Sketch, opts)
	if err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write SVG file: %w", err)
	}
	if *verbose {
		fmt.Printf("  Wrote %d bytes\n", len(data))
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: sketchcore -config <config.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'sketchcore -help' for detailed help")
}

func printHelp() {
	fmt.Printf("sketchcore version %s\n\n", version)
	fmt.Println("A command-line tool for solving and exporting constraint sketches.")
	fmt.Println("\nUsage:")
	fmt.Println("  sketchcore -config <config.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -history string")
	fmt.Println("        Path to a serialised event history JSON file")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json, svg, or all (default: json)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from config (0 = use config seed) (default: 0)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Solve a sketch built from a replayed history, export JSON")
	fmt.Println("  sketchcore -config sketch.yaml -history session.json")
	fmt.Println("\n  # Solve with a seed override and export both formats")
	fmt.Println("  sketchcore -config sketch.yaml -seed 12345 -format all -output ./out")
}
