package export

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/sketchcore/pkg/graph"
	"github.com/dshills/sketchcore/pkg/sketch"
)

// SVGOptions controls ExportSVG's rendering, mirroring the teacher's
// SVGOptions/DefaultSVGOptions pattern.
type SVGOptions struct {
	Width, Height int
	Margin        int

	PointRadius int
	LineWidth   int

	ShowLabels     bool
	ShowConstraint bool
	ShowFixed      bool

	Title string
}

// DefaultSVGOptions returns sensible defaults for a standalone preview.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:          800,
		Height:         600,
		Margin:         40,
		PointRadius:    4,
		LineWidth:      2,
		ShowLabels:     true,
		ShowConstraint: true,
		ShowFixed:      true,
		Title:          "sketch",
	}
}

// ExportSVG renders s's current geometry to SVG: points as circles,
// trimmed lines as segments (untrimmed lines are not drawn), and — when opts.ShowConstraint is set — small glyphs
// marking HORIZONTAL/VERTICAL/PARALLEL/PERPENDICULAR constraints. This is
// a concrete, testable stand-in for the raster renderer the realtime
// application treats as an external collaborator.
func ExportSVG(s *sketch.Sketch, opts SVGOptions) ([]byte, error) {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(opts.Width, opts.Height)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:white")

	project := newProjector(s, opts)

	for _, tl := range s.TrimmedLines() {
		sx, sy := project(tl.Start.X, tl.Start.Y)
		ex, ey := project(tl.End.X, tl.End.Y)
		style := "stroke:black;stroke-width:2"
		if tl.Line.Fixed {
			style = "stroke:gray;stroke-width:2;stroke-dasharray:4,2"
		}
		canvas.Line(sx, sy, ex, ey, style)
	}

	if opts.ShowConstraint {
		drawConstraintGlyphs(canvas, s, project, opts)
	}

	for _, p := range s.Points() {
		x, y := project(p.X, p.Y)
		color := "fill:steelblue"
		if p.Fixed && opts.ShowFixed {
			color = "fill:firebrick"
		}
		canvas.Circle(x, y, opts.PointRadius, color)
		if opts.ShowLabels {
			label := p.Element().Label
			if label == "" {
				label = fmt.Sprintf("p%d", p.ID())
			}
			canvas.Text(x+opts.PointRadius+2, y-opts.PointRadius, label, "font-size:10px;fill:black")
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}

// projector maps sketch-space coordinates to SVG pixel coordinates,
// fitting every point within the margin-inset canvas and flipping Y
// (sketch Y grows up, SVG Y grows down).
type projector func(x, y float64) (int, int)

func newProjector(s *sketch.Sketch, opts SVGOptions) projector {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	any := false
	for _, p := range s.Points() {
		any = true
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	if !any {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	innerW := float64(opts.Width - 2*opts.Margin)
	innerH := float64(opts.Height - 2*opts.Margin)
	scale := math.Min(innerW/spanX, innerH/spanY)

	return func(x, y float64) (int, int) {
		px := opts.Margin + int((x-minX)*scale)
		py := opts.Height - opts.Margin - int((y-minY)*scale)
		return px, py
	}
}

// drawConstraintGlyphs adds small markers near constrained entities: a
// tick mark for HORIZONTAL/VERTICAL, a double-tick for PARALLEL, and a
// right-angle corner for PERPENDICULAR.
func drawConstraintGlyphs(canvas *svg.SVG, s *sketch.Sketch, project projector, opts SVGOptions) {
	g := s.BuildGraph()
	for _, c := range g.Edges() {
		switch c.Type {
		case graph.ConstraintHorizontal, graph.ConstraintVertical:
			drawTickGlyph(canvas, s, c, project)
		case graph.ConstraintParallel:
			drawParallelGlyph(canvas, s, c, project)
		case graph.ConstraintPerpendicular:
			drawPerpendicularGlyph(canvas, s, c, project)
		}
	}
}

func midpointOf(s *sketch.Sketch, c *graph.Constraint) (float64, float64, bool) {
	a := s.FindEntityByID(c.A)
	b := s.FindEntityByID(c.B)
	if a == nil {
		return 0, 0, false
	}
	ax, ay := entityXY(a)
	if b == nil {
		return ax, ay, true
	}
	bx, by := entityXY(b)
	return (ax + bx) / 2, (ay + by) / 2, true
}

func entityXY(e sketch.Entity) (float64, float64) {
	switch v := e.(type) {
	case *sketch.Point:
		return v.X, v.Y
	case *sketch.Line:
		return v.M, 0
	default:
		return 0, 0
	}
}

func drawTickGlyph(canvas *svg.SVG, s *sketch.Sketch, c *graph.Constraint, project projector) {
	mx, my, ok := midpointOf(s, c)
	if !ok {
		return
	}
	x, y := project(mx, my)
	canvas.Line(x-5, y-5, x+5, y+5, "stroke:darkgreen;stroke-width:1")
}

func drawParallelGlyph(canvas *svg.SVG, s *sketch.Sketch, c *graph.Constraint, project projector) {
	mx, my, ok := midpointOf(s, c)
	if !ok {
		return
	}
	x, y := project(mx, my)
	canvas.Line(x-6, y-4, x-6, y+4, "stroke:purple;stroke-width:1")
	canvas.Line(x-3, y-4, x-3, y+4, "stroke:purple;stroke-width:1")
}

func drawPerpendicularGlyph(canvas *svg.SVG, s *sketch.Sketch, c *graph.Constraint, project projector) {
	mx, my, ok := midpointOf(s, c)
	if !ok {
		return
	}
	x, y := project(mx, my)
	canvas.Polyline([]int{x - 5, x - 5, x + 5}, []int{y + 5, y - 5, y - 5}, "fill:none;stroke:orange;stroke-width:1")
}
