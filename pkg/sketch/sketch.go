package sketch

import (
	"fmt"

	"github.com/dshills/sketchcore/pkg/graph"
)

// Sketch owns the full set of geometric entities (points, lines), the
// full set of constraints, and the guided entities derived from them
// (spec.md §3, §4.4). It mirrors its entities and constraints into an
// internal *graph.Graph so BuildGraph can hand the structural-analysis
// packages a graph without those packages knowing anything about
// sketch-level concepts like fixed points or guided geometry.
type Sketch struct {
	g        *graph.Graph
	entities map[uint64]Entity

	points  []*Point
	lines   []*Line
	trimmed []*TrimmedLine

	seq int
}

// New returns an empty sketch.
func New() *Sketch {
	return &Sketch{
		g:        graph.New(),
		entities: make(map[uint64]Entity),
	}
}

func (s *Sketch) nextSeq() int {
	s.seq++
	return s.seq
}

// AddPoint creates a new point at (x, y), registers it in the internal
// graph, and returns it.
func (s *Sketch) AddPoint(x, y float64, fixed bool) *Point {
	elem := graph.NewElement(graph.ElementPoint)
	s.g.AddVertex(elem)
	p := newPoint(elem, x, y, s.nextSeq(), fixed)
	s.points = append(s.points, p)
	s.entities[p.ID()] = p
	return p
}

// AddLine creates a new line with slope k and intercept m.
func (s *Sketch) AddLine(k, m float64, fixed bool) *Line {
	elem := graph.NewElement(graph.ElementLine)
	s.g.AddVertex(elem)
	l := newLine(elem, k, m, s.nextSeq(), fixed)
	s.lines = append(s.lines, l)
	s.entities[l.ID()] = l
	return l
}

// AddTrimmedLine registers a guided trimmed-line segment. All of start,
// end and line must already belong to this sketch (spec.md §4.4).
func (s *Sketch) AddTrimmedLine(start, end *Point, line *Line) (*TrimmedLine, error) {
	for _, e := range []Entity{start, end, line} {
		if s.entities[e.ID()] != e {
			return nil, fmt.Errorf("sketch: add trimmed line: entity %d is not owned by this sketch", e.ID())
		}
	}
	tl := &TrimmedLine{Start: start, End: end, Line: line}
	s.trimmed = append(s.trimmed, tl)
	return tl, nil
}

// Connect records a constraint of the given type (with no numeric value)
// between a and b, mirroring the relation into the internal graph.
func (s *Sketch) Connect(a, b Entity, ctype graph.ConstraintType) (*graph.Constraint, error) {
	return s.connect(a, b, ctype, 0, false)
}

// ConnectValue is Connect for constraint types that carry a numeric
// parameter (DISTANCE, ANGLE, EQUAL).
func (s *Sketch) ConnectValue(a, b Entity, ctype graph.ConstraintType, value float64) (*graph.Constraint, error) {
	return s.connect(a, b, ctype, value, true)
}

func (s *Sketch) connect(a, b Entity, ctype graph.ConstraintType, value float64, hasValue bool) (*graph.Constraint, error) {
	if s.entities[a.ID()] != a {
		return nil, fmt.Errorf("sketch: connect: entity %d is not owned by this sketch", a.ID())
	}
	if s.entities[b.ID()] != b {
		return nil, fmt.Errorf("sketch: connect: entity %d is not owned by this sketch", b.ID())
	}

	c := graph.NewConstraint(ctype)
	c.Value = value
	c.HasValue = hasValue
	if err := s.g.Connect(a.Element(), b.Element(), c); err != nil {
		return nil, fmt.Errorf("sketch: connect: %w", err)
	}
	return c, nil
}

// DeleteEntity removes e and purges every constraint touching it from
// the sketch, including from the adjacency lists of surviving entities
// (spec.md §4.4, and the same contract as graph.Graph.DeleteVertex).
// Guided entities referencing e are also dropped, since their defining
// geometry no longer exists.
func (s *Sketch) DeleteEntity(e Entity) error {
	if s.entities[e.ID()] != e {
		return fmt.Errorf("sketch: delete entity: %d is not owned by this sketch", e.ID())
	}
	if err := s.g.DeleteVertex(e.Element()); err != nil {
		return fmt.Errorf("sketch: delete entity: %w", err)
	}
	delete(s.entities, e.ID())

	switch v := e.(type) {
	case *Point:
		s.points = removePoint(s.points, v)
	case *Line:
		s.lines = removeLine(s.lines, v)
	}

	var survivors []*TrimmedLine
	for _, tl := range s.trimmed {
		if tl.Start.ID() == e.ID() || tl.End.ID() == e.ID() || tl.Line.ID() == e.ID() {
			continue
		}
		survivors = append(survivors, tl)
	}
	s.trimmed = survivors

	return nil
}

func removePoint(ps []*Point, target *Point) []*Point {
	out := ps[:0]
	for _, p := range ps {
		if p != target {
			out = append(out, p)
		}
	}
	return out
}

func removeLine(ls []*Line, target *Line) []*Line {
	out := ls[:0]
	for _, l := range ls {
		if l != target {
			out = append(out, l)
		}
	}
	return out
}

// FindEntityByID performs a linear lookup by id, returning nil when
// absent.
func (s *Sketch) FindEntityByID(id uint64) Entity {
	return s.entities[id]
}

// FindEntityByPosition returns the entity with highest selection
// priority whose squared distance to (x, y) is below threshSq; ties are
// broken by insertion order (spec.md §4.4, §5). Points outrank lines.
func (s *Sketch) FindEntityByPosition(x, y, threshSq float64) Entity {
	var best Entity
	for _, p := range s.points {
		if p.DistSq(x, y) < threshSq && better(p, best) {
			best = p
		}
	}
	for _, l := range s.lines {
		if l.DistSq(x, y) < threshSq && better(l, best) {
			best = l
		}
	}
	return best
}

// better reports whether candidate should replace current as the best
// match: higher priority wins, then lower (earlier) sequence number.
func better(candidate, current Entity) bool {
	if current == nil {
		return true
	}
	if candidate.Priority() != current.Priority() {
		return candidate.Priority() > current.Priority()
	}
	return candidate.Seq() < current.Seq()
}

// Points returns the sketch's points in insertion order. Callers must
// not mutate the returned slice's backing array.
func (s *Sketch) Points() []*Point { return s.points }

// Lines returns the sketch's lines in insertion order.
func (s *Sketch) Lines() []*Line { return s.lines }

// TrimmedLines returns the sketch's guided trimmed-line segments.
func (s *Sketch) TrimmedLines() []*TrimmedLine { return s.trimmed }

// BuildGraph returns a fresh deep copy of the sketch's internal
// constraint graph, ready to be handed to decompose.Analyze without
// risking the analyser's mutations (vertex/edge deletion during
// SplitGraphs) leaking back into the live sketch (spec.md §4.3 "Global
// solve", step 1).
func (s *Sketch) BuildGraph() *graph.Graph {
	return s.g.DeepCopy()
}

// Positions captures every point/line's current numeric value and fixed
// flag, keyed by entity id — the seed fed into a fresh solver
// realisation (spec.md §4.3 "Initial positions", "Fixed points").
func (s *Sketch) Positions() (values map[uint64][2]float64, fixed map[uint64]bool) {
	values = make(map[uint64][2]float64, len(s.entities))
	fixed = make(map[uint64]bool, len(s.entities))
	for _, p := range s.points {
		values[p.ID()] = [2]float64{p.X, p.Y}
		fixed[p.ID()] = p.Fixed
	}
	for _, l := range s.lines {
		values[l.ID()] = [2]float64{l.K, l.M}
		fixed[l.ID()] = l.Fixed
	}
	return values, fixed
}

// ApplyPositions copies a converged realisation's values back into the
// sketch's true entity state (spec.md §4.3 step 5: "the Sketch... update
// true positions once the realisation converges"). Fixed entities are
// left untouched even if the map supplies a value for them, since the
// solver itself never moves them but a caller may pass a stale snapshot.
func (s *Sketch) ApplyPositions(values map[uint64][2]float64) {
	for _, p := range s.points {
		if p.Fixed {
			continue
		}
		if v, ok := values[p.ID()]; ok {
			p.X, p.Y = v[0], v[1]
		}
	}
	for _, l := range s.lines {
		if l.Fixed {
			continue
		}
		if v, ok := values[l.ID()]; ok {
			l.K, l.M = v[0], v[1]
		}
	}
}
