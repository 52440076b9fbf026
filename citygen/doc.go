// Package citygen procedurally synthesizes a plausible city: a connected
// weighted road network with named locations, plus a seed driver roster
// and optional synthetic ride requests for demos and tests.
//
// What:
//
//   - Generate(n) lays out n locations on a sector grid around a downtown
//     anchor with jittered coordinates, then weaves five road layers over
//     them: highways, arterial roads, local streets, inner/outer ring
//     roads, and a handful of shortcuts. A final union-find pass bridges
//     any disconnected components with connector highways, so the result
//     is always fully connected.
//   - Road weights derive from haversine distance between endpoints,
//     scaled per layer (highways cheapest per km, local streets dearest).
//   - SeedDrivers(n) returns the fixed demo roster with locations folded
//     into [0, n); RandomRequests draws synthetic requests with
//     uuid-stamped ids.
//
// Why:
//
//   - The dispatch core treats the generator as an opaque data source: it
//     only ever produces valid inputs (in-range ids, non-negative
//     weights), which the graph's Validate can assert.
//
// Determinism:
//
//   - All randomness flows through one *rand.Rand resolved from options:
//     WithSeed(s) for reproducible maps, WithRand(r) to share a source.
//     The default is a fixed seed, so two unconfigured runs agree.
//
// Errors (sentinel, use errors.Is):
//
//   - ErrTooFewNodes: Generate needs at least MinNodes locations to lay
//     out its road layers.
package citygen
