// Package dag builds and orders the task dependency graph.
//
// It is intentionally split into:
//   - Structural validation (NewGraph): ID uniqueness, duration positivity,
//     dependency existence, and cycle detection with a named cycle witness.
//   - Deterministic ordering (Graph.Order): a ready-heap topological sort
//     whose tie-break precedence is an explicit policy.
//
// The graph is immutable after construction and safe for concurrent reads.
package dag
