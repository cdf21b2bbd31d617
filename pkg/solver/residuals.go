package solver

import (
	"math"

	"github.com/dshills/sketchcore/pkg/graph"
)

// Endpoint bundles an edge endpoint's element kind with its current
// realised value, so a residual/gradient function can tell a point from
// a line regardless of which side of the constraint it was stored on.
type Endpoint struct {
	Type  graph.ElementType
	Value Vec2
}

// Residual returns the scalar squared-error contribution of c given its
// two endpoints' current values, per spec.md §4.3's residual table.
//
// EQUAL and MIDPOINT are inherently ternary relations (equal length needs
// two independent segments; a midpoint needs the two points it sits
// between) that do not fit the binary-edge constraint graph spec.md §4.1
// defines. Rather than invent a third endpoint field that would break the
// structural analysis in pkg/graph and pkg/decompose (both of which
// assume exactly two endpoints per edge), these two types are carried as
// zero-residual placeholders, matching their treatment in the original
// implementation (see Open Question (a), spec.md §9).
func Residual(c *graph.Constraint, a, b Endpoint) float64 {
	switch c.Type {
	case graph.ConstraintCoincident:
		d := a.Value.Sub(b.Value)
		return d.Dot(d)

	case graph.ConstraintDistance:
		d := a.Value.Sub(b.Value)
		target := 0.0
		if c.HasValue {
			target = c.Value
		}
		diff := d.Norm() - target
		return diff * diff

	case graph.ConstraintHorizontal:
		diff := a.Value.B - b.Value.B
		return diff * diff

	case graph.ConstraintVertical:
		diff := a.Value.A - b.Value.A
		return diff * diff

	case graph.ConstraintParallel:
		diff := a.Value.A - b.Value.A
		return diff * diff

	case graph.ConstraintPerpendicular:
		k := a.Value.A*b.Value.A + 1
		return k * k

	case graph.ConstraintAngle:
		theta := math.Atan(a.Value.A) - math.Atan(b.Value.A)
		target := 0.0
		if c.HasValue {
			target = c.Value
		}
		diff := theta - target
		return diff * diff

	case graph.ConstraintColinear:
		point, line, ok := colinearOperands(a, b)
		if !ok {
			return 0
		}
		num, denom := colinearNumDenom(point, line)
		return num * num / denom

	case graph.ConstraintEqual, graph.ConstraintMidpoint, graph.ConstraintVirtual:
		return 0

	default:
		return 0
	}
}

// Gradient returns the partial derivatives of Residual(c, a, b) with
// respect to a's and b's values.
func Gradient(c *graph.Constraint, a, b Endpoint) (ga, gb Vec2) {
	switch c.Type {
	case graph.ConstraintCoincident:
		d := a.Value.Sub(b.Value)
		ga = d.Scale(2)
		gb = d.Scale(-2)
		return

	case graph.ConstraintDistance:
		d := a.Value.Sub(b.Value)
		length := d.Norm()
		if length < 1e-12 {
			return Vec2{}, Vec2{}
		}
		target := 0.0
		if c.HasValue {
			target = c.Value
		}
		coeff := 2 * (length - target) / length
		ga = d.Scale(coeff)
		gb = d.Scale(-coeff)
		return

	case graph.ConstraintHorizontal:
		diff := a.Value.B - b.Value.B
		ga = Vec2{0, 2 * diff}
		gb = Vec2{0, -2 * diff}
		return

	case graph.ConstraintVertical:
		diff := a.Value.A - b.Value.A
		ga = Vec2{2 * diff, 0}
		gb = Vec2{-2 * diff, 0}
		return

	case graph.ConstraintParallel:
		diff := a.Value.A - b.Value.A
		ga = Vec2{2 * diff, 0}
		gb = Vec2{-2 * diff, 0}
		return

	case graph.ConstraintPerpendicular:
		k := a.Value.A*b.Value.A + 1
		ga = Vec2{2 * k * b.Value.A, 0}
		gb = Vec2{2 * k * a.Value.A, 0}
		return

	case graph.ConstraintAngle:
		theta := math.Atan(a.Value.A) - math.Atan(b.Value.A)
		target := 0.0
		if c.HasValue {
			target = c.Value
		}
		diff := theta - target
		ga = Vec2{2 * diff / (1 + a.Value.A*a.Value.A), 0}
		gb = Vec2{-2 * diff / (1 + b.Value.A*b.Value.A), 0}
		return

	case graph.ConstraintColinear:
		point, line, ok := colinearOperands(a, b)
		if !ok {
			return Vec2{}, Vec2{}
		}
		num, denom := colinearNumDenom(point, line)
		gPoint := Vec2{
			A: 2 * num * line.A / denom,
			B: -2 * num / denom,
		}
		gLine := Vec2{
			A: 2*num*point.A/denom - 2*num*num*line.A/(denom*denom),
			B: 2 * num / denom,
		}
		if a.Type == graph.ElementPoint {
			return gPoint, gLine
		}
		return gLine, gPoint

	case graph.ConstraintEqual, graph.ConstraintMidpoint, graph.ConstraintVirtual:
		return Vec2{}, Vec2{}

	default:
		return Vec2{}, Vec2{}
	}
}

// colinearOperands sorts a COLINEAR constraint's two endpoints into
// (point, line) order, reporting false if they are not one of each.
func colinearOperands(a, b Endpoint) (point, line Vec2, ok bool) {
	switch {
	case a.Type == graph.ElementPoint && b.Type == graph.ElementLine:
		return a.Value, b.Value, true
	case a.Type == graph.ElementLine && b.Type == graph.ElementPoint:
		return b.Value, a.Value, true
	default:
		return Vec2{}, Vec2{}, false
	}
}

// colinearNumDenom computes the signed-distance numerator and denominator
// shared by Residual and Gradient for a point (px, py) against a line
// with slope k and intercept m: distance = (k*px - py + m) / sqrt(k^2+1).
func colinearNumDenom(point, line Vec2) (num, denom float64) {
	k, m := line.A, line.B
	num = k*point.A - point.B + m
	denom = k*k + 1
	return num, denom
}
