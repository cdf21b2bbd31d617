// Package export serialises a sketch and its event history to
// inspectable formats: JSON (spec.md §6's wire format, plus a sketch
// position snapshot) and SVG (a concrete, testable stand-in for the
// raster renderer spec.md §1 treats as an external collaborator).
package export
