package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/sketchcore/pkg/event"
	"github.com/dshills/sketchcore/pkg/graph"
	"github.com/dshills/sketchcore/pkg/sketch"
)

func buildTestSketch(t *testing.T) *sketch.Sketch {
	t.Helper()
	s := sketch.New()
	a := s.AddPoint(0, 0, true)
	b := s.AddPoint(3, 0, false)
	s.AddLine(0, 0, false)
	if _, err := s.Connect(a, b, graph.ConstraintHorizontal); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if _, err := s.ConnectValue(a, b, graph.ConstraintDistance, 3); err != nil {
		t.Fatalf("ConnectValue: %v", err)
	}
	if _, err := s.AddTrimmedLine(a, b, s.Lines()[0]); err != nil {
		t.Fatalf("AddTrimmedLine: %v", err)
	}
	return s
}

func TestNewSnapshot_CapturesGeometry(t *testing.T) {
	s := buildTestSketch(t)
	snap := NewSnapshot(s)

	if len(snap.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(snap.Points))
	}
	if len(snap.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(snap.Lines))
	}
	if len(snap.TrimmedLines) != 1 {
		t.Fatalf("expected 1 trimmed line, got %d", len(snap.TrimmedLines))
	}
	if !snap.Points[0].Fixed {
		t.Fatal("expected first point to be fixed")
	}
}

func TestExportJSON_RoundTrips(t *testing.T) {
	s := buildTestSketch(t)
	snap := NewSnapshot(s)

	data, err := ExportJSON(snap)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Points) != len(snap.Points) {
		t.Fatalf("point count mismatch after round trip: %d vs %d", len(decoded.Points), len(snap.Points))
	}
}

func TestExportJSONCompact_NoIndentation(t *testing.T) {
	s := buildTestSketch(t)
	snap := NewSnapshot(s)

	compact, err := ExportJSONCompact(snap)
	if err != nil {
		t.Fatalf("ExportJSONCompact: %v", err)
	}
	indented, err := ExportJSON(snap)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if len(compact) >= len(indented) {
		t.Fatalf("expected compact form to be shorter: compact=%d indented=%d", len(compact), len(indented))
	}
}

func TestSaveJSONToFile_WritesReadableFile(t *testing.T) {
	s := buildTestSketch(t)
	snap := NewSnapshot(s)
	path := filepath.Join(t.TempDir(), "snapshot.json")

	if err := SaveJSONToFile(snap, path); err != nil {
		t.Fatalf("SaveJSONToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal saved file: %v", err)
	}
}

func TestSaveHistoryToFile_WritesSerialisedHistory(t *testing.T) {
	q := event.NewQueue()
	q.Post(event.Event{Tag: event.ExitProgram})
	if _, err := q.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}
	path := filepath.Join(t.TempDir(), "history.json")

	if err := SaveHistoryToFile(q, path); err != nil {
		t.Fatalf("SaveHistoryToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty history file")
	}
}

func TestExportSVG_ProducesWellFormedDocument(t *testing.T) {
	s := buildTestSketch(t)
	data, err := ExportSVG(s, DefaultSVGOptions())
	if err != nil {
		t.Fatalf("ExportSVG: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("expected a well-formed SVG document, got: %s", out)
	}
	if !strings.Contains(out, "<circle") {
		t.Fatal("expected at least one rendered point")
	}
}

func TestExportSVG_EmptySketchStillRenders(t *testing.T) {
	s := sketch.New()
	data, err := ExportSVG(s, DefaultSVGOptions())
	if err != nil {
		t.Fatalf("ExportSVG on empty sketch: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Fatal("expected an SVG document even for an empty sketch")
	}
}
