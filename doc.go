// Package ridegraph is an in-memory ride-dispatch engine: a weighted city
// graph, an indexed min-heap, Dijkstra routing, a driver registry and a
// greedy dispatch orchestrator with sliding-window demand analytics.
//
// 🚀 What is ridegraph?
//
//	A synchronous, embeddable matching core that brings together:
//		• roadgraph/ — static city map: locations + weighted, optionally named roads
//		• minheap/   — indexed min-heap with true decrease-key and O(1) position lookup
//		• shortest/  — Dijkstra single-source distances & single-pair path reconstruction
//		• drivers/   — keyed driver registry with availability and location state
//		• dispatch/  — FIFO request queue, greedy nearest-driver matching,
//		               bounded sliding-window demand statistics
//		• citygen/   — procedural city generator: plausible road networks + seed drivers
//
// ✨ Why choose ridegraph?
//
//   - Deterministic – sorted iteration everywhere, documented tie-breaks
//   - Fail-soft – expected outcomes are structured results, never panics
//   - Observable – every component feeds an optional, detachable log sink
//   - Pure core – no network, no storage; embed it behind any transport
//
// The engine is single-threaded by design: wrap each full dispatch call in
// external serialization (one mutex, one actor) when embedding in a
// concurrent host.
//
// Quick ASCII example:
//
//	    0───(2)───1
//	    │         │
//	   (5)       (2)
//	    │         │
//	    └─────────2───(1)───3
//
//	shortest route 0→3 follows 0→1→2→3 (cost 5), never 0→2→3 (cost 6).
//
// Dive into cmd/ridesim for an end-to-end simulation that generates a city,
// seeds drivers, and matches a burst of ride requests.
//
//	go get github.com/katalvlaran/ridegraph
package ridegraph
