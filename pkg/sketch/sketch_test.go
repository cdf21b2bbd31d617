package sketch

import (
	"testing"

	"github.com/dshills/sketchcore/pkg/graph"
)

func TestSketch_AddAndConnect(t *testing.T) {
	s := New()
	a := s.AddPoint(0, 0, true)
	b := s.AddPoint(1, 1, false)

	c, err := s.ConnectValue(a, b, graph.ConstraintDistance, 3.0)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if c.Type != graph.ConstraintDistance || !c.HasValue || c.Value != 3.0 {
		t.Fatalf("unexpected constraint: %+v", c)
	}

	g := s.BuildGraph()
	if g.Order() != 2 || g.Size() != 1 {
		t.Fatalf("expected a 2-vertex 1-edge graph, got order=%d size=%d", g.Order(), g.Size())
	}
}

func TestSketch_ConnectRejectsForeignEntity(t *testing.T) {
	s1 := New()
	s2 := New()
	a := s1.AddPoint(0, 0, false)
	b := s2.AddPoint(0, 0, false)

	if _, err := s1.Connect(a, b, graph.ConstraintCoincident); err == nil {
		t.Fatal("expected error connecting an entity from a different sketch")
	}
}

func TestSketch_DeleteEntityPurgesConstraints(t *testing.T) {
	s := New()
	a := s.AddPoint(0, 0, false)
	b := s.AddPoint(1, 1, false)
	c := s.AddPoint(2, 2, false)

	if _, err := s.Connect(a, b, graph.ConstraintCoincident); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Connect(b, c, graph.ConstraintCoincident); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteEntity(b); err != nil {
		t.Fatalf("delete: %v", err)
	}

	g := s.BuildGraph()
	if g.Order() != 2 {
		t.Fatalf("expected 2 surviving vertices, got %d", g.Order())
	}
	if g.Size() != 0 {
		t.Fatalf("expected no surviving edges, got %d", g.Size())
	}
	if s.FindEntityByID(b.ID()) != nil {
		t.Fatal("deleted entity is still findable")
	}
}

func TestSketch_DeleteEntityDropsTrimmedLines(t *testing.T) {
	s := New()
	p1 := s.AddPoint(0, 0, false)
	p2 := s.AddPoint(1, 0, false)
	l := s.AddLine(0, 0, false)

	tl, err := s.AddTrimmedLine(p1, p2, l)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.TrimmedLines()) != 1 || s.TrimmedLines()[0] != tl {
		t.Fatal("trimmed line was not recorded")
	}

	if err := s.DeleteEntity(p1); err != nil {
		t.Fatal(err)
	}
	if len(s.TrimmedLines()) != 0 {
		t.Fatal("trimmed line referencing a deleted endpoint must be dropped")
	}
}

func TestSketch_FindEntityByPosition_PointsOutrankLines(t *testing.T) {
	s := New()
	s.AddLine(0, 0, false) // passes through the origin
	p := s.AddPoint(0, 0, false)

	found := s.FindEntityByPosition(0, 0, 0.01)
	if found == nil || found.ID() != p.ID() {
		t.Fatalf("expected the point to win selection priority, got %v", found)
	}
}

func TestSketch_FindEntityByPosition_TieBreaksOnInsertionOrder(t *testing.T) {
	s := New()
	first := s.AddPoint(0, 0, false)
	s.AddPoint(0, 0, false)

	found := s.FindEntityByPosition(0, 0, 0.01)
	if found == nil || found.ID() != first.ID() {
		t.Fatalf("expected the first-inserted point to win the tie, got %v", found)
	}
}

func TestSketch_ApplyPositionsSkipsFixed(t *testing.T) {
	s := New()
	fixed := s.AddPoint(0, 0, true)
	free := s.AddPoint(1, 1, false)

	s.ApplyPositions(map[uint64][2]float64{
		fixed.ID(): {9, 9},
		free.ID():  {5, 5},
	})

	if fixed.X != 0 || fixed.Y != 0 {
		t.Fatalf("fixed point must not move, got (%v, %v)", fixed.X, fixed.Y)
	}
	if free.X != 5 || free.Y != 5 {
		t.Fatalf("free point should have moved, got (%v, %v)", free.X, free.Y)
	}
}
