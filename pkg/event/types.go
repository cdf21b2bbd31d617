package event

import (
	"encoding/json"
	"fmt"
)

// Tag identifies which variant an Event carries. The set is fixed at
// compile time (spec.md §4.5).
type Tag int

const (
	// Mode toggles.
	EnableSketchMode Tag = iota
	DisableSketchMode
	ToggleSketchMode
	PopMode
	TogglePointMode
	ToggleLineMode
	ToggleTLineMode
	ToggleExtrudeMode
	ToggleDimensionMode

	// Camera (non-serialisable: transient viewport state).
	StartRotate
	StopRotate
	IncreaseZoom
	DecreaseZoom

	// Layout (non-serialisable: pane/area split manager is external).
	SplitPaneHorizontally
	SplitPaneVertically
	CollapseBoundary

	// Sketch input.
	SketchPlaneHit
	SketchClick
	SketchConstrain
	ConfirmDimension

	// Admin.
	DumpShapes
	ExitProgram
)

var tagNames = map[Tag]string{
	EnableSketchMode:     "enableSketchMode",
	DisableSketchMode:    "disableSketchMode",
	ToggleSketchMode:     "toggleSketchMode",
	PopMode:              "popMode",
	TogglePointMode:      "togglePointMode",
	ToggleLineMode:       "toggleLineMode",
	ToggleTLineMode:      "toggleTLineMode",
	ToggleExtrudeMode:    "toggleExtrudeMode",
	ToggleDimensionMode:  "toggleDimensionMode",
	StartRotate:          "startRotate",
	StopRotate:           "stopRotate",
	IncreaseZoom:         "increaseZoom",
	DecreaseZoom:         "decreaseZoom",
	SplitPaneHorizontally: "splitPaneHorizontally",
	SplitPaneVertically:  "splitPaneVertically",
	CollapseBoundary:     "collapseBoundary",
	SketchPlaneHit:       "sketchPlaneHit",
	SketchClick:          "sketchClick",
	SketchConstrain:      "sketchConstrain",
	ConfirmDimension:     "confirmDimension",
	DumpShapes:           "dumpShapes",
	ExitProgram:          "exitProgram",
}

var namesToTag = func() map[string]Tag {
	m := make(map[string]Tag, len(tagNames))
	for t, n := range tagNames {
		m[n] = t
	}
	return m
}()

// String returns the wire-level name of a Tag (spec.md §6).
func (t Tag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Unknown(%d)", int(t))
}

// ParseTag maps a wire-level tag name back to a Tag. Returns an error
// for unrecognised names.
func ParseTag(name string) (Tag, error) {
	if t, ok := namesToTag[name]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("event: unknown tag %q", name)
}

// Serialisable reports whether events carrying this tag are persisted to
// history. Layout, camera, exitProgram and dumpShapes affect transient
// UI/process state only and are excluded (spec.md §3 "Event", §6).
func (t Tag) Serialisable() bool {
	switch t {
	case StartRotate, StopRotate, IncreaseZoom, DecreaseZoom,
		SplitPaneHorizontally, SplitPaneVertically, CollapseBoundary,
		DumpShapes, ExitProgram:
		return false
	default:
		return true
	}
}

// Ray is the direction a sketchPlaneHit was cast along, matching the
// wire schema of spec.md §6.
type Ray struct {
	Origin [3]float64 `json:"origin"`
	Dir    [3]float64 `json:"dir"`
}

// SketchPlaneHitData is the payload of a sketchPlaneHit event: the 3D
// point where a pick ray crossed the active sketch plane, plus the ray
// itself.
type SketchPlaneHitData struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Z   float64 `json:"z"`
	Ray Ray     `json:"ray"`
}

// SketchClickData is the payload of a sketchClick event: a 2D sketch-
// plane click plus the zoom scale in effect when it occurred.
type SketchClickData struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	ZoomScale float64 `json:"zoomScale"`
}

// SketchConstrainData is the payload of a sketchConstrain event: which
// constraint type the currently selected entities should be joined by.
type SketchConstrainData struct {
	Type string `json:"type"`
}

// ConfirmDimensionData is the payload of a confirmDimension event.
// spec.md §6 specifies an empty object for the minimal wire contract;
// Value is an additive, optional field (DimensionMode's confirm path in
// original_source carries the typed-in numeric value) and is omitted
// from the wire form entirely when HasValue is false.
type ConfirmDimensionData struct {
	Value    float64 `json:"value,omitempty"`
	HasValue bool    `json:"-"`
}

// MarshalJSON writes {} when HasValue is false and {"value": v} otherwise,
// so a confirmed value of 0 survives a history round trip.
func (d ConfirmDimensionData) MarshalJSON() ([]byte, error) {
	if !d.HasValue {
		return []byte("{}"), nil
	}
	return json.Marshal(struct {
		Value float64 `json:"value"`
	}{d.Value})
}

// PanePos is the screen position a layout event (split, collapse) was
// issued at.
type PanePos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Event is a tagged variant: a Tag plus a payload whose concrete type
// depends on the tag. Variants with no payload (mode toggles, popMode,
// the admin group) carry Data == nil.
type Event struct {
	Tag  Tag
	Data any
}
