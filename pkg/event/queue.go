package event

import "errors"

// ErrEmptyQueue is returned by Pop when the pending FIFO is empty. Per
// spec.md §7 error kind 5, this is a programmer-error condition: correct
// callers check Empty() first, or simply don't call Pop without posting.
var ErrEmptyQueue = errors.New("event: pop from empty queue")

// Queue holds a FIFO of pending events awaiting processing and a
// separate ordered history of every serialisable event that has ever
// passed through postEvent. History is the source of truth for replay
// (spec.md §4.5).
type Queue struct {
	pending []Event
	history []Event

	replayIdx int
}

// NewQueue returns an empty event queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Post pushes e onto the pending FIFO, and additionally appends it to
// history if e's tag is serialisable.
func (q *Queue) Post(e Event) {
	q.pending = append(q.pending, e)
	if e.Tag.Serialisable() {
		q.history = append(q.history, e)
	}
}

// Pop removes and returns the front of the pending FIFO. Returns
// ErrEmptyQueue if the FIFO is empty.
func (q *Queue) Pop() (Event, error) {
	if len(q.pending) == 0 {
		return Event{}, ErrEmptyQueue
	}
	e := q.pending[0]
	q.pending = q.pending[1:]
	return e, nil
}

// Empty reports whether the pending FIFO is empty.
func (q *Queue) Empty() bool {
	return len(q.pending) == 0
}

// History returns the recorded serialisable event history, in the order
// events were posted. Callers must not mutate the returned slice's
// backing array.
func (q *Queue) History() []Event {
	return q.history
}

// ResetHistoryIndex rewinds the replay cursor to the start of history.
func (q *Queue) ResetHistoryIndex() {
	q.replayIdx = 0
}

// NextHistoryEvent returns the next event in history after the replay
// cursor, advancing it, or (Event{}, false) once history is exhausted.
func (q *Queue) NextHistoryEvent() (Event, bool) {
	if q.replayIdx >= len(q.history) {
		return Event{}, false
	}
	e := q.history[q.replayIdx]
	q.replayIdx++
	return e, true
}

// ReplayInto posts every recorded history event, in order, onto a fresh
// Queue's pending FIFO, rewinding the replay cursor first. Used when
// rebuilding application state from a deserialised history (spec.md
// §4.5's replay contract).
func (q *Queue) ReplayInto(dst *Queue) {
	q.ResetHistoryIndex()
	for {
		e, ok := q.NextHistoryEvent()
		if !ok {
			return
		}
		dst.Post(e)
	}
}
