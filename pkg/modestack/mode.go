package modestack

import "github.com/dshills/sketchcore/pkg/event"

// Key identifies a keyboard key. The concrete key-code space is owned by
// the external input adapter; the core only ever compares keys for
// equality.
type Key int

// MouseButton identifies a mouse button.
type MouseButton int

// KeyPress bundles a key with the modifier keys held at the time of the
// press or release, mirroring the original's KeyPress{key, shift, ctrl,
// lAlt, rAlt}.
type KeyPress struct {
	Key   Key
	Shift bool
	Ctrl  bool
	LAlt  bool
	RAlt  bool
}

// MousePress bundles a mouse button with its modifier state.
type MousePress struct {
	Button MouseButton
	Shift  bool
	Ctrl   bool
	LAlt   bool
	RAlt   bool
}

// Mode is polymorphic over the capability set spec.md §4.6 names: a mode
// may consume a posted Event, or a raw key/mouse press or release. A
// handler returns true if it consumed the input, which stops further
// dispatch down the stack.
type Mode interface {
	ProcessEvent(e event.Event) bool
	KeyPress(p KeyPress) bool
	KeyRelease(p KeyPress) bool
	MousePress(p MousePress) bool
	MouseRelease(p MousePress) bool
}

// InputSource reports which keys and mouse buttons transitioned state
// since the last poll. It is the seam where a concrete windowing/input
// library plugs in; the core never polls a device directly (spec.md
// §1, §9).
type InputSource interface {
	PressedKeys() []KeyPress
	ReleasedKeys() []KeyPress
	PressedButtons() []MousePress
	ReleasedButtons() []MousePress
}
