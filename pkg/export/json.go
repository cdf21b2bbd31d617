package export

import (
	"encoding/json"
	"os"

	"github.com/dshills/sketchcore/pkg/event"
	"github.com/dshills/sketchcore/pkg/sketch"
)

// PointSnapshot is the JSON-serialisable shape of one sketch point.
type PointSnapshot struct {
	ID    uint64  `json:"id"`
	Label string  `json:"label,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Fixed bool    `json:"fixed"`
}

// LineSnapshot is the JSON-serialisable shape of one sketch line.
type LineSnapshot struct {
	ID    uint64  `json:"id"`
	Label string  `json:"label,omitempty"`
	K     float64 `json:"slope"`
	M     float64 `json:"intercept"`
	Fixed bool    `json:"fixed"`
}

// TrimmedLineSnapshot is the JSON-serialisable shape of one guided
// trimmed-line entity, referencing its defining entities by id.
type TrimmedLineSnapshot struct {
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`
	Line  uint64 `json:"line"`
}

// Snapshot is a point-in-time export of a sketch's geometry: spec.md §6's
// "renderer interface consumed" publishes exactly this, on demand, for a
// passive renderer to draw.
type Snapshot struct {
	Points       []PointSnapshot       `json:"points"`
	Lines        []LineSnapshot        `json:"lines"`
	TrimmedLines []TrimmedLineSnapshot `json:"trimmedLines,omitempty"`
}

// NewSnapshot captures s's current entity state.
func NewSnapshot(s *sketch.Sketch) *Snapshot {
	snap := &Snapshot{}
	for _, p := range s.Points() {
		snap.Points = append(snap.Points, PointSnapshot{
			ID: p.ID(), Label: p.Element().Label, X: p.X, Y: p.Y, Fixed: p.Fixed,
		})
	}
	for _, l := range s.Lines() {
		snap.Lines = append(snap.Lines, LineSnapshot{
			ID: l.ID(), Label: l.Element().Label, K: l.K, M: l.M, Fixed: l.Fixed,
		})
	}
	for _, tl := range s.TrimmedLines() {
		snap.TrimmedLines = append(snap.TrimmedLines, TrimmedLineSnapshot{
			Start: tl.Start.ID(), End: tl.End.ID(), Line: tl.Line.ID(),
		})
	}
	return snap
}

// ExportJSON serialises snap with 2-space indentation for readability.
func ExportJSON(snap *Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// ExportJSONCompact serialises snap without indentation, suitable for
// storage or transmission.
func ExportJSONCompact(snap *Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// SaveJSONToFile exports snap to an indented JSON file.
func SaveJSONToFile(snap *Snapshot, path string) error {
	data, err := ExportJSON(snap)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SaveHistoryToFile serialises q's event history (spec.md §6) and
// writes it to path.
func SaveHistoryToFile(q *event.Queue, path string) error {
	data, err := q.SerializeHistory()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
