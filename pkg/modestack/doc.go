// Package modestack implements a last-in, first-out stack of input-
// consuming modes with first-consumer-wins dispatch (spec.md §4.6).
//
// The concrete keyboard/mouse polling and event production that drives a
// Stack live outside the core (spec.md §1's "external adapters"); Stack
// depends only on the InputSource seam, never on a concrete renderer or
// windowing library.
package modestack
