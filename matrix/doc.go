// Package matrix provides the all-pairs travel-time table for a valve network.
//
// The matrix package provides:
//
//   - FloydWarshall, building a Distances table from a core.Network where
//     every tunnel costs one minute.
//   - Distances, a dense read-only table with O(1) lookups, a dedicated
//     Unreachable marker, equality, symmetry checks and sub-table extraction.
//
// Tables cost O(V²) memory and O(V³) time to build, which is fine for the
// tens of valves a real network holds. Build once, share freely: a
// Distances value is never mutated after FloydWarshall returns.
package matrix
