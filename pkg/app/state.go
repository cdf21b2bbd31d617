package app

import (
	"context"

	"github.com/dshills/sketchcore/pkg/event"
	"github.com/dshills/sketchcore/pkg/graph"
	"github.com/dshills/sketchcore/pkg/modestack"
	"github.com/dshills/sketchcore/pkg/rng"
	"github.com/dshills/sketchcore/pkg/sketch"
	"github.com/dshills/sketchcore/pkg/solver"
)

// pickThreshold is the default squared-distance tolerance used when a
// sketchClick event selects an entity, expressed in sketch-plane units.
// It is divided by the square of the click's zoom scale so picking stays
// a constant number of screen pixels regardless of zoom level.
const pickThreshold = 0.01

// maxSelection bounds how many entities a click-to-select flow tracks at
// once: binary constraints (the whole taxonomy except VIRTUAL, which the
// decomposer alone inserts) need exactly two operands.
const maxSelection = 2

// State is the application's single instance of everything the core
// owns: the sketch being edited, its pending/history event queue, and
// the mode stack that dispatches input to it (spec.md §4, §5, §9).
type State struct {
	Sketch *sketch.Sketch
	Events *event.Queue
	Modes  *modestack.Stack
	Config *solver.Config

	rng *rng.RNG

	exitRequested bool
	selection     []sketch.Entity
	pending       *graph.Constraint

	// SkippedEvents counts events recovered locally per spec.md §7 error
	// kind 2 (an event referencing state that doesn't support it, e.g. a
	// sketchConstrain posted with fewer than two entities selected).
	SkippedEvents int
}

// New constructs a fresh application state. cfg may be nil, in which
// case solver.DefaultConfig() is used. seed and configHash derive the
// process's solver RNG via the same stage-derivation scheme as
// pkg/rng (stage name "realisation").
func New(input modestack.InputSource, cfg *solver.Config, seed uint64, configHash []byte) *State {
	if cfg == nil {
		cfg = solver.DefaultConfig()
	}
	return &State{
		Sketch: sketch.New(),
		Events: event.NewQueue(),
		Modes:  modestack.NewStack(input),
		Config: cfg,
		rng:    rng.NewRNG(seed, "realisation", configHash),
	}
}

// PostEvent records e onto the pending event queue (spec.md §4.5).
func (s *State) PostEvent(e event.Event) {
	s.Events.Post(e)
}

// ExitRequested reports whether an exitProgram event has been processed;
// the main loop observes this at its next iteration (spec.md §5).
func (s *State) ExitRequested() bool {
	return s.exitRequested
}

// Drain processes every event currently pending, in FIFO order, stopping
// early if ctx is cancelled between events. Events posted by a handler
// during drain (e.g. a mode pushing a follow-up event) are processed in
// the same drain call, matching spec.md §5's "events posted by a handler
// during drain are processed in the same frame."
func (s *State) Drain(ctx context.Context) error {
	for !s.Events.Empty() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		e, err := s.Events.Pop()
		if err != nil {
			return err
		}
		if s.Modes.DispatchEvent(e) {
			continue
		}
		s.apply(e)
	}
	return nil
}

// apply handles the subset of the event taxonomy the core itself
// understands directly: sketch input and the bare admin/pop-mode
// variants. Mode-toggle variants carry no core-level behaviour of their
// own — they exist to drive a concrete Mode implementation (external to
// the core, spec.md §1), and are expected to be consumed by the mode
// stack before reaching here.
func (s *State) apply(e event.Event) {
	switch e.Tag {
	case event.ExitProgram:
		s.exitRequested = true

	case event.PopMode:
		s.Modes.Pop()

	case event.SketchPlaneHit:
		d, ok := e.Data.(event.SketchPlaneHitData)
		if !ok {
			s.SkippedEvents++
			return
		}
		s.Sketch.AddPoint(d.X, d.Y, false)

	case event.SketchClick:
		d, ok := e.Data.(event.SketchClickData)
		if !ok {
			s.SkippedEvents++
			return
		}
		s.handleClick(d)

	case event.SketchConstrain:
		d, ok := e.Data.(event.SketchConstrainData)
		if !ok {
			s.SkippedEvents++
			return
		}
		s.handleConstrain(d)

	case event.ConfirmDimension:
		d, _ := e.Data.(event.ConfirmDimensionData)
		s.handleConfirmDimension(d)

	default:
		// enableSketchMode, disableSketchMode, toggleSketchMode,
		// togglePointMode, toggleLineMode, toggleTLineMode,
		// toggleExtrudeMode, toggleDimensionMode, dumpShapes: no
		// core-level behaviour beyond mode dispatch.
	}
}

func (s *State) handleClick(d event.SketchClickData) {
	thresh := pickThreshold
	if d.ZoomScale > 0 {
		thresh /= d.ZoomScale * d.ZoomScale
	}
	found := s.Sketch.FindEntityByPosition(d.X, d.Y, thresh)
	if found == nil {
		return
	}
	s.toggleSelection(found)
}

func (s *State) toggleSelection(e sketch.Entity) {
	for i, sel := range s.selection {
		if sel.ID() == e.ID() {
			s.selection = append(s.selection[:i], s.selection[i+1:]...)
			return
		}
	}
	s.selection = append(s.selection, e)
	if len(s.selection) > maxSelection {
		s.selection = s.selection[len(s.selection)-maxSelection:]
	}
}

func (s *State) handleConstrain(d event.SketchConstrainData) {
	ctype, err := graph.ParseConstraintType(d.Type)
	if err != nil {
		s.SkippedEvents++
		return
	}
	if len(s.selection) < maxSelection {
		// Missing entity (spec.md §7 error kind 2): a constraint was
		// requested without enough selected operands. Recovered locally.
		s.SkippedEvents++
		return
	}

	a, b := s.selection[0], s.selection[1]
	switch ctype {
	case graph.ConstraintDistance, graph.ConstraintAngle, graph.ConstraintEqual:
		c, err := s.Sketch.Connect(a, b, ctype)
		if err == nil {
			s.pending = c
		}
	default:
		_, _ = s.Sketch.Connect(a, b, ctype)
	}
	s.selection = nil
}

func (s *State) handleConfirmDimension(d event.ConfirmDimensionData) {
	if s.pending == nil || !d.HasValue {
		s.pending = nil
		return
	}
	s.pending.Value = d.Value
	s.pending.HasValue = true
	s.pending = nil
}
