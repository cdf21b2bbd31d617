// Package config loads and validates the YAML document that configures a
// solve session: the master seed and the numeric realiser's tunables
// (step size, iteration cap, tolerance, batch factor).
//
// Ported from the teacher's pkg/dungeon.Config: LoadConfig/Validate/Hash,
// with the dungeon-specific size/branching/pacing/theme fields replaced
// by solver.Config's fields.
package config
