package event

import "testing"

func TestQueue_PostPopFIFO(t *testing.T) {
	q := NewQueue()
	q.Post(Event{Tag: EnableSketchMode})
	q.Post(Event{Tag: TogglePointMode})

	e1, err := q.Pop()
	if err != nil || e1.Tag != EnableSketchMode {
		t.Fatalf("expected EnableSketchMode first, got %v err=%v", e1.Tag, err)
	}
	e2, err := q.Pop()
	if err != nil || e2.Tag != TogglePointMode {
		t.Fatalf("expected TogglePointMode second, got %v err=%v", e2.Tag, err)
	}
	if !q.Empty() {
		t.Fatal("queue should be empty after draining both events")
	}
	if _, err := q.Pop(); err != ErrEmptyQueue {
		t.Fatalf("expected ErrEmptyQueue, got %v", err)
	}
}

func TestQueue_NonSerialisableEventsExcludedFromHistory(t *testing.T) {
	q := NewQueue()
	q.Post(Event{Tag: EnableSketchMode})
	q.Post(Event{Tag: StartRotate})
	q.Post(Event{Tag: ExitProgram})

	if len(q.History()) != 1 {
		t.Fatalf("expected 1 serialisable history entry, got %d", len(q.History()))
	}
	if q.History()[0].Tag != EnableSketchMode {
		t.Fatalf("unexpected history entry: %v", q.History()[0].Tag)
	}
}

// TestScenario_HistoryReplay implements spec.md §8 S6: post a sequence of
// sketch-mode events, serialise, reset, deserialise, and confirm the
// reconstructed event sequence matches.
func TestScenario_HistoryReplay(t *testing.T) {
	q := NewQueue()
	q.Post(Event{Tag: EnableSketchMode})
	q.Post(Event{Tag: TogglePointMode})
	q.Post(Event{Tag: SketchPlaneHit, Data: SketchPlaneHitData{X: 1, Y: 0, Z: 0}})
	q.Post(Event{Tag: SketchPlaneHit, Data: SketchPlaneHitData{X: 0, Y: 2, Z: 0}})
	q.Post(Event{Tag: SketchPlaneHit, Data: SketchPlaneHitData{X: 0, Y: 0, Z: 3}})

	wire, err := q.SerializeHistory()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	replayed, skipped, err := DeserializeHistory(wire)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("unexpected skipped events: %+v", skipped)
	}
	if len(replayed) != len(q.History()) {
		t.Fatalf("expected %d replayed events, got %d", len(q.History()), len(replayed))
	}

	hits := 0
	for _, e := range replayed {
		if e.Tag == SketchPlaneHit {
			hits++
		}
	}
	if hits != 3 {
		t.Fatalf("expected 3 sketchPlaneHit events, got %d", hits)
	}

	// The replayed sequence, posted into a fresh queue, must come out in
	// the same order it went in (spec.md §4.5's replay contract).
	fresh := NewQueue()
	for _, e := range replayed {
		fresh.Post(e)
	}
	for i, want := range q.History() {
		got, err := fresh.Pop()
		if err != nil {
			t.Fatalf("pop %d: %v", i, err)
		}
		if got.Tag != want.Tag {
			t.Fatalf("event %d: want tag %v, got %v", i, want.Tag, got.Tag)
		}
	}
}

func TestDeserializeHistory_SkipsMalformedConstraintType(t *testing.T) {
	payload := []byte(`{"history":[
		{"tag":"sketchConstrain","data":{"type":"NOT_A_REAL_TYPE"}},
		{"tag":"enableSketchMode","data":{}}
	]}`)

	events, skipped, err := DeserializeHistory(payload)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if len(events) != 1 || events[0].Tag != EnableSketchMode {
		t.Fatalf("expected only the valid event to survive, got %+v", events)
	}
	if len(skipped) != 1 || skipped[0].Index != 0 {
		t.Fatalf("expected the malformed entry to be reported skipped, got %+v", skipped)
	}
}

func TestDeserializeHistory_RejectsUnreadableDocument(t *testing.T) {
	if _, _, err := DeserializeHistory([]byte(`not json`)); err == nil {
		t.Fatal("expected an error for an unparseable document")
	}
}

func TestTag_RoundTripsThroughWireName(t *testing.T) {
	for tag := EnableSketchMode; tag <= ExitProgram; tag++ {
		name := tag.String()
		parsed, err := ParseTag(name)
		if err != nil {
			t.Fatalf("tag %d (%s): %v", tag, name, err)
		}
		if parsed != tag {
			t.Fatalf("round trip mismatch: %d -> %q -> %d", tag, name, parsed)
		}
	}
}
