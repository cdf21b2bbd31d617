// Package event implements the closed event taxonomy that drives the
// application (spec.md §4.5, §6): a tagged variant type, a FIFO queue of
// pending events paired with a replayable history, and the history's
// wire serialisation.
//
// The set of recognised tags is fixed at compile time. Some tags are
// marked non-serialisable (layout, camera, program exit, debug dumps):
// they affect transient UI state only and never enter the persisted
// history.
package event
