package sketch

import (
	"github.com/dshills/sketchcore/pkg/graph"
)

// Entity is the common surface of everything a sketch can select and
// solve for: a drawable, constrainable geometric entity backed by a
// graph.Element. Points and lines both implement it; selection priority
// breaks ties in FindEntityByPosition (spec.md §4.4, §5).
type Entity interface {
	// ID returns the backing graph.Element's stable id.
	ID() uint64
	// Element returns the backing graph vertex.
	Element() *graph.Element
	// Priority orders candidates in FindEntityByPosition: higher wins.
	// Points outrank lines.
	Priority() int
	// DistSq returns the squared distance from (x, y) to this entity,
	// used by FindEntityByPosition's threshold test.
	DistSq(x, y float64) float64
	// Seq returns the entity's insertion sequence number, the tie-break
	// among candidates of equal priority within the pick threshold
	// (distance is not compared).
	Seq() int
	// IsFixed reports whether the numeric solver must leave this
	// entity's coordinates untouched.
	IsFixed() bool
}

// Point is a 2D point entity: x, y coordinates plus whether the solver
// is permitted to move it (spec.md §4.3 "Fixed points").
type Point struct {
	elem  *graph.Element
	seq   int
	X, Y  float64
	Fixed bool
}

// newPoint constructs a point backed by elem, with the given initial
// position, insertion sequence number, and fixed flag.
func newPoint(elem *graph.Element, x, y float64, seq int, fixed bool) *Point {
	return &Point{elem: elem, X: x, Y: y, seq: seq, Fixed: fixed}
}

func (p *Point) ID() uint64            { return p.elem.ID }
func (p *Point) Element() *graph.Element { return p.elem }
func (p *Point) Priority() int         { return 1 }
func (p *Point) Seq() int              { return p.seq }
func (p *Point) IsFixed() bool         { return p.Fixed }
func (p *Point) DistSq(x, y float64) float64 {
	dx, dy := p.X-x, p.Y-y
	return dx*dx + dy*dy
}

// Line is an infinite line entity parameterised by slope k and
// intercept m (y = k*x + m), matching GeometricElement's LINE weight of
// 2 degrees of freedom (spec.md §3).
type Line struct {
	elem  *graph.Element
	seq   int
	K, M  float64
	Fixed bool
}

func newLine(elem *graph.Element, k, m float64, seq int, fixed bool) *Line {
	return &Line{elem: elem, K: k, M: m, seq: seq, Fixed: fixed}
}

func (l *Line) ID() uint64              { return l.elem.ID }
func (l *Line) Element() *graph.Element { return l.elem }
func (l *Line) Priority() int           { return 0 }
func (l *Line) Seq() int                { return l.seq }
func (l *Line) IsFixed() bool           { return l.Fixed }

// DistSq approximates the squared perpendicular distance from (x, y) to
// the line, used only for selection picking, never for the solver.
func (l *Line) DistSq(x, y float64) float64 {
	num := l.K*x - y + l.M
	denom := l.K*l.K + 1
	d := num / denom
	return d * d * denom
}

// GuidedEntity is derived geometry that is drawn but never itself solved
// for: it is driven by the underlying entities it references (spec.md
// §3 "Sketch").
type GuidedEntity interface {
	guided()
}

// TrimmedLine holds direct pointers to the two endpoints and the line it
// trims, mirroring the
// original's TrimmedLine{start, end, line}.
type TrimmedLine struct {
	Start *Point
	End   *Point
	Line  *Line
}

func (*TrimmedLine) guided() {}
