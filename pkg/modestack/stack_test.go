package modestack

import (
	"testing"

	"github.com/dshills/sketchcore/pkg/event"
)

// recordingMode consumes whatever consumesEvent/consumesKey/consumesMouse
// say to, and records every call it received.
type recordingMode struct {
	name          string
	consumesEvent bool
	consumesKey   bool
	consumesMouse bool
	calls         []string
}

func (m *recordingMode) ProcessEvent(e event.Event) bool {
	m.calls = append(m.calls, "event:"+e.Tag.String())
	return m.consumesEvent
}
func (m *recordingMode) KeyPress(p KeyPress) bool {
	m.calls = append(m.calls, "keyPress")
	return m.consumesKey
}
func (m *recordingMode) KeyRelease(p KeyPress) bool {
	m.calls = append(m.calls, "keyRelease")
	return m.consumesKey
}
func (m *recordingMode) MousePress(p MousePress) bool {
	m.calls = append(m.calls, "mousePress")
	return m.consumesMouse
}
func (m *recordingMode) MouseRelease(p MousePress) bool {
	m.calls = append(m.calls, "mouseRelease")
	return m.consumesMouse
}

type fakeInput struct {
	pressedKeys  []KeyPress
	releasedKeys []KeyPress
}

func (f *fakeInput) PressedKeys() []KeyPress        { return f.pressedKeys }
func (f *fakeInput) ReleasedKeys() []KeyPress       { return f.releasedKeys }
func (f *fakeInput) PressedButtons() []MousePress   { return nil }
func (f *fakeInput) ReleasedButtons() []MousePress  { return nil }

func TestStack_PushPopPeek(t *testing.T) {
	s := NewStack(&fakeInput{})
	a := &recordingMode{name: "a"}
	b := &recordingMode{name: "b"}
	s.Push(a)
	s.Push(b)

	if s.Peek(0) != a || s.Peek(1) != b {
		t.Fatalf("unexpected peek order")
	}
	if s.Peek(2) != nil {
		t.Fatal("peek out of range should be nil")
	}
	if !s.IsInnerMostMode(b) {
		t.Fatal("b should be innermost")
	}

	s.Pop()
	if s.Size() != 1 || s.Peek(0) != a {
		t.Fatalf("pop did not remove the top mode")
	}
}

func TestStack_ExitPopsDownToAndIncludingMode(t *testing.T) {
	s := NewStack(&fakeInput{})
	a, b, c := &recordingMode{}, &recordingMode{}, &recordingMode{}
	s.Push(a)
	s.Push(b)
	s.Push(c)

	s.Exit(b)

	if s.Size() != 1 || s.Peek(0) != a {
		t.Fatalf("expected only a to remain, got size=%d", s.Size())
	}
	if s.IsActive(b) || s.IsActive(c) {
		t.Fatal("b and c should no longer be active")
	}
}

func TestStack_ExitNoopIfNotOnStack(t *testing.T) {
	s := NewStack(&fakeInput{})
	a := &recordingMode{}
	s.Push(a)

	s.Exit(&recordingMode{})
	if s.Size() != 1 {
		t.Fatal("exiting an absent mode must not mutate the stack")
	}
}

func TestStack_DispatchEventFirstConsumerWins(t *testing.T) {
	s := NewStack(&fakeInput{})
	bottom := &recordingMode{consumesEvent: true}
	top := &recordingMode{consumesEvent: false}
	s.Push(bottom)
	s.Push(top)

	consumed := s.DispatchEvent(event.Event{Tag: event.TogglePointMode})
	if !consumed {
		t.Fatal("expected the event to be consumed")
	}
	if len(top.calls) != 1 || len(bottom.calls) != 1 {
		t.Fatal("both modes should have been offered the event")
	}
}

func TestStack_DispatchEventStopsAtFirstConsumer(t *testing.T) {
	s := NewStack(&fakeInput{})
	bottom := &recordingMode{consumesEvent: true}
	top := &recordingMode{consumesEvent: true}
	s.Push(bottom)
	s.Push(top)

	s.DispatchEvent(event.Event{Tag: event.TogglePointMode})
	if len(top.calls) != 1 {
		t.Fatal("the innermost consumer should have been offered the event")
	}
	if len(bottom.calls) != 0 {
		t.Fatal("dispatch must stop once the top mode consumes the event")
	}
}

func TestStack_UpdatePollsAndDispatchesKeys(t *testing.T) {
	input := &fakeInput{
		pressedKeys:  []KeyPress{{Key: 1}},
		releasedKeys: []KeyPress{{Key: 2}},
	}
	s := NewStack(input)
	m := &recordingMode{consumesKey: true}
	s.Push(m)

	s.Update()

	if len(m.calls) != 2 || m.calls[0] != "keyPress" || m.calls[1] != "keyRelease" {
		t.Fatalf("expected one keyPress then one keyRelease, got %v", m.calls)
	}
}
