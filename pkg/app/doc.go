// Package app owns the process-wide application state: the live sketch,
// its event queue, and its mode stack, and orchestrates the
// graph -> decompose -> realise solve pipeline (spec.md §4.3 "Global
// solve", §5, §9).
//
// spec.md §9 resolves the original's singleton application state into
// "an explicit context handle passed into mode handlers and event
// processors": State is that handle. A process constructs exactly one
// State at startup and threads it through every mode handler and event
// processor for the life of the program.
package app
