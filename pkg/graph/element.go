package graph

import (
	"fmt"

	"github.com/dshills/sketchcore/pkg/ids"
)

// ElementType distinguishes the two kinds of geometric entity the core
// understands. Curves other than straight lines are out of scope.
type ElementType int

const (
	// ElementPoint is a 2D point (2 degrees of freedom: x, y).
	ElementPoint ElementType = iota
	// ElementLine is an infinite line (2 degrees of freedom: slope, intercept).
	ElementLine
)

// String returns the string representation of an ElementType.
func (t ElementType) String() string {
	switch t {
	case ElementPoint:
		return "POINT"
	case ElementLine:
		return "LINE"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// incidence pairs an incident constraint with the neighbour it connects to.
type incidence struct {
	constraintID uint64
	neighborID   uint64
}

// Element is a vertex of the constraint graph: a point or a line.
//
// Adjacency is tracked as a list of (constraint id, neighbour id) pairs
// rather than owning pointers, so the graph can be cyclic without creating
// reference cycles (see the design notes in spec.md §9).
type Element struct {
	ID    uint64
	Type  ElementType
	Label string

	edges []incidence

	// explored, parent and parentEdge are transient BFS/flood-fill state.
	// They are reset by ResetExploration before any traversal that
	// depends on them, and after DeepCopy.
	explored   bool
	parent     uint64
	hasParent  bool
	parentEdge uint64
}

// NewElement allocates a fresh element of the given type with a freshly
// issued id.
func NewElement(t ElementType) *Element {
	return &Element{ID: ids.Elements.Next(), Type: t}
}

// NewElementWithID constructs an element carrying an explicit id. Used by
// DeepCopy to preserve identifier stability across graph copies.
func NewElementWithID(id uint64, t ElementType, label string) *Element {
	return &Element{ID: id, Type: t, Label: label}
}

// Weight returns the element's degrees of freedom: 2 for both POINT (x, y)
// and LINE (slope, intercept).
func (e *Element) Weight() int {
	return 2
}

// Edges returns a copy of the element's incident (constraint id, neighbour
// id) pairs, in insertion order.
func (e *Element) Edges() [][2]uint64 {
	out := make([][2]uint64, len(e.edges))
	for i, inc := range e.edges {
		out[i] = [2]uint64{inc.constraintID, inc.neighborID}
	}
	return out
}

// Degree returns the number of incident constraints.
func (e *Element) Degree() int {
	return len(e.edges)
}

func (e *Element) addIncidence(constraintID, neighborID uint64) {
	e.edges = append(e.edges, incidence{constraintID: constraintID, neighborID: neighborID})
}

// removeIncidenceByConstraint removes any incidence referencing the given
// constraint id. There may be more than one instance is never expected
// (an element has each of its own constraints listed once), but the loop
// is written defensively.
func (e *Element) removeIncidenceByConstraint(constraintID uint64) {
	out := e.edges[:0]
	for _, inc := range e.edges {
		if inc.constraintID != constraintID {
			out = append(out, inc)
		}
	}
	e.edges = out
}

// String returns a human-readable representation of the Element.
func (e *Element) String() string {
	if e.Label != "" {
		return fmt.Sprintf("Element[%d:%s %q]", e.ID, e.Type, e.Label)
	}
	return fmt.Sprintf("Element[%d:%s]", e.ID, e.Type)
}
