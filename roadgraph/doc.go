// Package roadgraph models a static city map as a weighted adjacency-list
// graph of locations (nodes) and roads (edges).
//
// What:
//
//   - Graph holds a fixed vertex count, per-vertex adjacency slices of Road
//     entries, and an id→Location metadata map populated lazily.
//   - AddRoad inserts a bidirectional road as two directed entries with
//     identical weight and name; AddDirectedRoad inserts one direction.
//   - The graph is append-only: roads and locations may be added after
//     construction but never removed, and no mutation ever happens during
//     request processing.
//
// Why:
//
//   - Ride matching: the dispatch engine routes drivers over this map.
//   - Demos and tests: citygen synthesizes valid inputs for it.
//
// Complexity:
//
//   - Storage:   O(V + E)
//   - AddRoad:   O(1) amortized
//   - Neighbors: O(deg(v)) (returns a defensive copy)
//   - Validate:  O(V + E)
//
// Errors (sentinel, use errors.Is):
//
//   - ErrBadVertexCount: constructor given a non-positive vertex count.
//   - ErrVertexRange:    a vertex index falls outside [0, NumVertices).
//   - ErrNegativeWeight: a road weight is negative.
//   - ErrLocationNotFound: no metadata registered for the requested id.
//
// All sentinel errors signal contract misuse by the caller; they are
// returned before any mutation, so a failed call never leaves the graph
// partially updated.
package roadgraph
