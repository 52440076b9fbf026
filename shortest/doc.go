// Package shortest implements Dijkstra's shortest-path algorithm over a
// roadgraph.Graph, using the indexed min-heap for extraction and true
// decrease-key updates.
//
// What:
//
//   - Engine wraps a read-only *roadgraph.Graph plus routing options.
//   - Distances(source) produces full distance and predecessor tables for
//     a single source, together with an ordered step log ("Processing
//     node …", "Relaxing edge …") for observability.
//   - Path(source, destination) reconstructs one route: vertex sequence,
//     total distance, ETA in minutes, and the display name of each road
//     along the way. Unreachable or unknown endpoints yield a not-found
//     result, never an error.
//
// Why:
//
//   - Ride matching: driver→pickup and pickup→destination routing both
//     reduce to single-pair shortest paths on the static city map.
//
// Numeric semantics:
//
//   - Distances are float64; +Inf marks an unreached vertex. Reachability
//     checks compare against exact +Inf (math.IsInf), never an epsilon.
//   - ETA = (distance / average speed) × 60 minutes; the default average
//     speed is 40 distance-units per hour.
//
// Complexity:
//
//   - Distances: O((V + E) log V) time, O(V) space (one heap entry per
//     vertex at most, thanks to indexed decrease-key).
//   - Path:      one Distances run plus O(len(path)) reconstruction.
//
// Errors (sentinel, use errors.Is):
//
//   - ErrNilGraph:      Engine constructed over a nil graph.
//   - ErrInvalidSource: Distances asked for a source with no registered
//     location metadata.
package shortest
