// Package ids provides monotonic, process-wide sources of fresh integer
// identifiers for geometric elements and constraints.
//
// Ids are never reused: a deep-copied graph's vertices carry the same ids
// as the originals, which is essential for cross-graph lookup during
// decomposition (see package decompose). Two independent counters are
// exposed, one per identifier namespace, mirroring the original C++
// implementation's separate `static int nextId` counters on
// GeometricElement and Constraint.
package ids

// Allocator is a monotonic counter. The zero value is ready to use and
// starts issuing ids from 1 (0 is reserved as "no id").
type Allocator struct {
	next uint64
}

// Next returns a fresh id, never before returned by this allocator.
func (a *Allocator) Next() uint64 {
	a.next++
	return a.next
}

// Peek returns the id that the next call to Next will return, without
// consuming it. Intended for tests and diagnostics.
func (a *Allocator) Peek() uint64 {
	return a.next + 1
}

// Elements issues stable ids for GeometricElement values (points, lines).
var Elements Allocator

// Constraints issues stable ids for Constraint values.
var Constraints Allocator
