package solver

import "math"

// Vec2 is a generic pair of scalar components. For an ElementPoint vertex
// the components are (x, y); for an ElementLine vertex they are (slope,
// intercept). The solver treats both uniformly and leaves the
// interpretation to callers that know the vertex's graph.ElementType.
type Vec2 struct {
	A, B float64
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.A + o.A, v.B + o.B}
}

// Sub returns the component-wise difference.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.A - o.A, v.B - o.B}
}

// Scale returns v with both components multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.A * s, v.B * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.A*o.A + v.B*o.B
}

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}
