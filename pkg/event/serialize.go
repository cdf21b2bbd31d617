package event

import (
	"encoding/json"
	"fmt"

	"github.com/dshills/sketchcore/pkg/graph"
)

// wireEvent is the on-the-wire shape of one history entry (spec.md §6):
// {"tag": <variant-name>, "data": <variant-payload>}.
type wireEvent struct {
	Tag  string          `json:"tag"`
	Data json.RawMessage `json:"data"`
}

// wireHistory is the top-level serialised document: a single array
// field named "history".
type wireHistory struct {
	History []wireEvent `json:"history"`
}

// SerializeHistory renders q's recorded history to the structured wire
// format of spec.md §6. Fields of non-serialisable variants are never
// written, because Post never appends them to history in the first
// place.
func (q *Queue) SerializeHistory() ([]byte, error) {
	doc := wireHistory{History: make([]wireEvent, 0, len(q.history))}
	for _, e := range q.history {
		data, err := json.Marshal(e.Data)
		if err != nil {
			return nil, fmt.Errorf("event: serialize history: marshalling %s payload: %w", e.Tag, err)
		}
		if e.Data == nil {
			data = []byte("{}")
		}
		doc.History = append(doc.History, wireEvent{Tag: e.Tag.String(), Data: data})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// SkippedEvent records one history entry that failed schema validation
// during DeserializeHistory, along with why (spec.md §7 error kind 4).
type SkippedEvent struct {
	Index  int
	Tag    string
	Reason string
}

// DeserializeHistory parses payload as a wire history document and
// reconstructs the event sequence. An event whose tag is unrecognised or
// whose payload fails schema validation is skipped rather than aborting
// the whole replay; the caller receives a summary of what was skipped.
// Only a malformed top-level document (not valid JSON, or missing the
// "history" array) is a hard error.
func DeserializeHistory(payload []byte) ([]Event, []SkippedEvent, error) {
	var doc wireHistory
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, nil, fmt.Errorf("event: deserialize history: %w", err)
	}
	if doc.History == nil {
		return nil, nil, fmt.Errorf("event: deserialize history: missing \"history\" array")
	}

	events := make([]Event, 0, len(doc.History))
	var skipped []SkippedEvent

	for i, we := range doc.History {
		tag, err := ParseTag(we.Tag)
		if err != nil {
			skipped = append(skipped, SkippedEvent{Index: i, Tag: we.Tag, Reason: err.Error()})
			continue
		}
		if !tag.Serialisable() {
			skipped = append(skipped, SkippedEvent{Index: i, Tag: we.Tag, Reason: "tag is not serialisable"})
			continue
		}

		data, err := decodePayload(tag, we.Data)
		if err != nil {
			skipped = append(skipped, SkippedEvent{Index: i, Tag: we.Tag, Reason: err.Error()})
			continue
		}

		events = append(events, Event{Tag: tag, Data: data})
	}

	return events, skipped, nil
}

// decodePayload unmarshals raw into the payload type appropriate for
// tag, validating fields that carry cross-referenced semantics (e.g. a
// sketchConstrain's constraint-type name) beyond plain JSON shape.
func decodePayload(tag Tag, raw json.RawMessage) (any, error) {
	switch tag {
	case SketchPlaneHit:
		var d SketchPlaneHitData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("sketchPlaneHit payload: %w", err)
		}
		return d, nil

	case SketchClick:
		var d SketchClickData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("sketchClick payload: %w", err)
		}
		return d, nil

	case SketchConstrain:
		var d SketchConstrainData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("sketchConstrain payload: %w", err)
		}
		if _, err := graph.ParseConstraintType(d.Type); err != nil {
			return nil, fmt.Errorf("sketchConstrain payload: %w", err)
		}
		return d, nil

	case ConfirmDimension:
		if len(raw) == 0 || string(raw) == "null" || string(raw) == "{}" {
			return ConfirmDimensionData{}, nil
		}
		var d ConfirmDimensionData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("confirmDimension payload: %w", err)
		}
		d.HasValue = true
		return d, nil

	default:
		// Mode toggles and popMode carry an empty object and no payload.
		return nil, nil
	}
}
