// Package dispatch orchestrates end-to-end ride matching: a FIFO request
// queue, greedy nearest-driver search over Dijkstra routing, driver state
// mutation, and bounded sliding-window demand analytics.
//
// What:
//
//   - Engine combines a read-only roadgraph.Graph, a drivers.Registry and
//     a shortest.Engine into one synchronous matching core.
//   - ProcessRequest runs the full pipeline for one request:
//     validate → find-nearest-driver → route pickup→destination →
//     assemble result → mark driver busy. ProcessNext does the same for
//     the queue head; FindRide is the queue-free point-in-time variant.
//   - Every accepted request joins a bounded FIFO window (WindowSize=20);
//     AnalyzeDemand computes windowed totals, lifetime match/fail
//     counters, average wait, and the top hotspot pickup locations.
//
// Why:
//
//   - The greedy search intentionally runs one full single-source
//     relaxation per candidate driver, O(D · (V+E) log V): simple,
//     predictable, and exactly reproducible. The selection contract is
//     the global minimum reachable distance among available drivers.
//
// Failure semantics:
//
//   - Expected outcomes (unknown pickup, pickup equals destination, no
//     available or reachable driver, unreachable destination, empty
//     queue) are structured results with Success=false and a message,
//     never errors or panics. A failed match leaves the registry
//     untouched: the driver is only marked busy after the entire match,
//     including pickup→destination routing, has succeeded.
//
// Tie-breaks (documented for reproducibility):
//
//   - Hotspots of equal frequency rank by ascending location id.
//   - Equidistant candidate drivers: the strict less-than comparison
//     keeps the earliest enumerated candidate, and enumeration is sorted
//     by driver id; the upstream contract leaves this tie unspecified,
//     so callers must not rely on it.
//
// Concurrency:
//
//   - The engine is synchronous and single-threaded. When embedding in a
//     concurrent host, serialize each full call externally (one mutex or
//     a single-writer actor); there is no internal locking, no timeout,
//     and no cancellation by design.
package dispatch
