package graph

import (
	"fmt"

	"github.com/dshills/sketchcore/pkg/ids"
)

// ConstraintType enumerates the relations the core understands between
// geometric elements.
type ConstraintType int

const (
	ConstraintCoincident ConstraintType = iota
	ConstraintEqual
	ConstraintParallel
	ConstraintPerpendicular
	ConstraintMidpoint
	ConstraintColinear
	ConstraintDistance
	ConstraintAngle
	ConstraintHorizontal
	ConstraintVertical
	// ConstraintVirtual is inserted by the decomposer to preserve
	// structural rigidity of split subgraphs without changing the
	// geometric problem. It contributes zero residual and zero scalar
	// equations to the numeric solver; decomposition-time bookkeeping
	// (Graph.Deficit) counts it structurally as one edge regardless of
	// Weight, same as every other constraint type.
	ConstraintVirtual
)

// String returns the wire/display name of a ConstraintType.
func (k ConstraintType) String() string {
	switch k {
	case ConstraintCoincident:
		return "COINCIDENT"
	case ConstraintEqual:
		return "EQUAL"
	case ConstraintParallel:
		return "PARALLEL"
	case ConstraintPerpendicular:
		return "PERPENDICULAR"
	case ConstraintMidpoint:
		return "MIDPOINT"
	case ConstraintColinear:
		return "COLINEAR"
	case ConstraintDistance:
		return "DISTANCE"
	case ConstraintAngle:
		return "ANGLE"
	case ConstraintHorizontal:
		return "HORIZONTAL"
	case ConstraintVertical:
		return "VERTICAL"
	case ConstraintVirtual:
		return "VIRTUAL"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// ParseConstraintType maps a wire-level name (spec.md §6) back to a
// ConstraintType. Returns an error for unrecognised names.
func ParseConstraintType(name string) (ConstraintType, error) {
	switch name {
	case "COINCIDENT":
		return ConstraintCoincident, nil
	case "EQUAL":
		return ConstraintEqual, nil
	case "PARALLEL":
		return ConstraintParallel, nil
	case "PERPENDICULAR":
		return ConstraintPerpendicular, nil
	case "MIDPOINT":
		return ConstraintMidpoint, nil
	case "COLINEAR":
		return ConstraintColinear, nil
	case "DISTANCE":
		return ConstraintDistance, nil
	case "ANGLE":
		return ConstraintAngle, nil
	case "HORIZONTAL":
		return ConstraintHorizontal, nil
	case "VERTICAL":
		return ConstraintVertical, nil
	case "VIRTUAL":
		return ConstraintVirtual, nil
	default:
		return 0, fmt.Errorf("unknown constraint type %q", name)
	}
}

// Constraint is an edge of the constraint graph: a relation between two
// elements, plus transient max-flow bookkeeping.
type Constraint struct {
	ID    uint64
	Type  ConstraintType
	Label string

	// Value holds the target numeric parameter, meaningful only for
	// DISTANCE, ANGLE and EQUAL.
	Value float64
	// HasValue reports whether Value was set; a nil-ish alternative
	// without introducing a pointer.
	HasValue bool

	// A, B are the endpoint element ids. Recorded on the constraint as
	// well as in each endpoint's adjacency, so endpoints can be found
	// without a graph lookup (e.g. by the solver).
	A, B uint64

	// flow is transient Ford-Fulkerson bookkeeping; always 0 outside of
	// an in-progress MaxFlow call.
	flow int
}

// NewConstraint allocates a fresh constraint of the given type with a
// freshly issued id.
func NewConstraint(t ConstraintType) *Constraint {
	return &Constraint{ID: ids.Constraints.Next(), Type: t}
}

// NewConstraintWithID constructs a constraint carrying an explicit id.
// Used by DeepCopy to preserve identifier stability across graph copies.
func NewConstraintWithID(id uint64, t ConstraintType, label string, value float64, hasValue bool) *Constraint {
	return &Constraint{ID: id, Type: t, Label: label, Value: value, HasValue: hasValue}
}

// Weight returns the count of scalar equations the constraint contributes
// to the numeric solver. Not used by Graph.Deficit, which counts edges
// structurally regardless of type.
func (c *Constraint) Weight() int {
	switch c.Type {
	case ConstraintCoincident:
		return 2
	case ConstraintVirtual:
		return 0
	default:
		return 1
	}
}

// Flow returns the constraint's transient max-flow label.
func (c *Constraint) Flow() int { return c.flow }

// SetFlow sets the constraint's transient max-flow label.
func (c *Constraint) SetFlow(f int) { c.flow = f }

// Other returns the endpoint of the constraint that is not v. Panics if v
// is neither endpoint — a programmer error, since callers only invoke this
// having already established v is incident.
func (c *Constraint) Other(v uint64) uint64 {
	switch v {
	case c.A:
		return c.B
	case c.B:
		return c.A
	default:
		panic(fmt.Sprintf("graph: vertex %d is not an endpoint of constraint %d", v, c.ID))
	}
}

// String returns a human-readable representation of the Constraint.
func (c *Constraint) String() string {
	if c.Label != "" {
		return fmt.Sprintf("Constraint[%d:%s %d-%d %q]", c.ID, c.Type, c.A, c.B, c.Label)
	}
	return fmt.Sprintf("Constraint[%d:%s %d-%d]", c.ID, c.Type, c.A, c.B)
}
