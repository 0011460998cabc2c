// Package core defines the domain model for deterministic day planning.
//
// Everything here is read-only input to the engine: tasks, the recurring
// daily work window, and absolute blocked intervals. Derived artifacts
// (orderings, schedule blocks, warnings) live in their own packages so the
// model stays free of scheduling policy.
package core
