package modestack

import "github.com/dshills/sketchcore/pkg/event"

// Stack is a LIFO stack of Modes with first-consumer-wins dispatch
// (spec.md §4.6). Handlers run synchronously on a single thread; no mode
// is re-entered recursively (spec.md §5).
type Stack struct {
	modes []Mode
	input InputSource
}

// NewStack returns an empty mode stack polling input from src.
func NewStack(src InputSource) *Stack {
	return &Stack{input: src}
}

// Push appends mode to the top of the stack.
func (s *Stack) Push(m Mode) {
	s.modes = append(s.modes, m)
}

// Pop removes the top of the stack. No-op if the stack is empty.
func (s *Stack) Pop() {
	if len(s.modes) == 0 {
		return
	}
	s.modes = s.modes[:len(s.modes)-1]
}

// Peek returns the mode at index i (0 = bottom of stack), or nil if i is
// out of range.
func (s *Stack) Peek(i int) Mode {
	if i < 0 || i >= len(s.modes) {
		return nil
	}
	return s.modes[i]
}

// Size returns the number of modes currently on the stack.
func (s *Stack) Size() int {
	return len(s.modes)
}

// Exit pops every mode from the top down to and including mode. No-op if
// mode is not on the stack.
func (s *Stack) Exit(mode Mode) {
	idx := s.indexOf(mode)
	if idx < 0 {
		return
	}
	s.modes = s.modes[:idx]
}

// IsActive reports whether mode is anywhere on the stack.
func (s *Stack) IsActive(mode Mode) bool {
	return s.indexOf(mode) >= 0
}

// IsInnerMostMode reports whether mode is the top of the stack.
func (s *Stack) IsInnerMostMode(mode Mode) bool {
	return len(s.modes) > 0 && s.modes[len(s.modes)-1] == mode
}

func (s *Stack) indexOf(mode Mode) int {
	for i, m := range s.modes {
		if m == mode {
			return i
		}
	}
	return -1
}

// DispatchEvent delivers e to modes from top to bottom, stopping at the
// first one whose ProcessEvent returns true. Returns whether any mode
// consumed it.
func (s *Stack) DispatchEvent(e event.Event) bool {
	for i := len(s.modes) - 1; i >= 0; i-- {
		if s.modes[i].ProcessEvent(e) {
			return true
		}
	}
	return false
}

// Update polls the input source once and delivers each press/release to
// the stack, top to bottom, stopping at the first consumer per input
// (spec.md §4.6 "update()").
func (s *Stack) Update() {
	for _, p := range s.input.PressedKeys() {
		s.dispatchKey(p, Mode.KeyPress)
	}
	for _, p := range s.input.ReleasedKeys() {
		s.dispatchKey(p, Mode.KeyRelease)
	}
	for _, p := range s.input.PressedButtons() {
		s.dispatchMouse(p, Mode.MousePress)
	}
	for _, p := range s.input.ReleasedButtons() {
		s.dispatchMouse(p, Mode.MouseRelease)
	}
}

func (s *Stack) dispatchKey(p KeyPress, handler func(Mode, KeyPress) bool) {
	for i := len(s.modes) - 1; i >= 0; i-- {
		if handler(s.modes[i], p) {
			return
		}
	}
}

func (s *Stack) dispatchMouse(p MousePress, handler func(Mode, MousePress) bool) {
	for i := len(s.modes) - 1; i >= 0; i-- {
		if handler(s.modes[i], p) {
			return
		}
	}
}
