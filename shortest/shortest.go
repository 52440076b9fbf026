// Package shortest implements the Dijkstra routing engine over the static
// city map.
package shortest

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/ridegraph/minheap"
	"github.com/katalvlaran/ridegraph/roadgraph"
)

// Engine computes shortest routes over a single road graph. It holds a
// non-owning, read-only reference to the graph: the caller owns the map
// and must not mutate it while routing runs.
//
// Engine is not safe for concurrent use; each public method runs to
// completion before returning and keeps the latest step log on the
// Engine for inspection.
type Engine struct {
	g    *roadgraph.Graph
	opts Options
	logs []string // step log of the most recent run
}

// New returns an Engine routing over g.
//
// Returns ErrNilGraph if g is nil.
func New(g *roadgraph.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Engine{g: g, opts: cfg}, nil
}

// Distances runs Dijkstra from source and returns the full distance and
// predecessor tables plus the ordered step log.
//
// Semantics:
//
//  1. dist[source]=0, every other vertex +Inf, every predecessor -1.
//  2. The source is pushed into a fresh indexed min-heap.
//  3. Loop: extract the minimum-distance vertex; a record whose distance
//     exceeds the currently recorded best for that vertex is stale and is
//     skipped; otherwise each outgoing road is relaxed — a strictly
//     smaller candidate updates distance and predecessor and decreases
//     the heap key (an absent vertex is inserted).
//  4. Terminates when the heap empties.
//
// Returns ErrInvalidSource if source has no registered location.
//
// Complexity: O((V + E) log V) time, O(V) space.
func (e *Engine) Distances(source int) (Result, error) {
	e.logs = nil

	// 1) Validate the source against registered locations, not just the
	//    index range: routing from an anonymous vertex is caller misuse.
	if !e.g.LocationExists(source) {
		return Result{}, fmt.Errorf("%w: vertex %d", ErrInvalidSource, source)
	}

	// 2) Initialize tables: +Inf everywhere, -1 predecessors, source at 0.
	n := e.g.NumVertices()
	dist := make([]float64, n)
	pred := make([]int, n)
	for i := 0; i < n; i++ {
		dist[i] = math.Inf(1)
		pred[i] = -1
	}
	dist[source] = 0

	// 3) Seed the priority queue with the source.
	pq := minheap.New()
	pq.Insert(source, 0)

	e.logf("Starting Dijkstra from node %d", source)

	// 4) Relaxation loop.
	var u, v, processed int
	var d, candidate float64
	var roads []roadgraph.Road
	var road roadgraph.Road
	var err error
	for !pq.IsEmpty() {
		entry := pq.ExtractMin()
		u, d = entry.Vertex, entry.Distance

		// Guard against stale records: with indexed decrease-key each
		// vertex holds at most one entry, but the recorded best may still
		// improve between push and pop. Skipping keeps extraction
		// monotone.
		if d > dist[u] {
			continue
		}

		processed++
		e.logf("Processing node %d with distance %.2f", u, d)

		if roads, err = e.g.Neighbors(u); err != nil {
			// Unreachable for a well-formed graph: u came off the heap and
			// is therefore a valid index.
			return Result{}, fmt.Errorf("shortest: neighbors of %d: %w", u, err)
		}

		for _, road = range roads {
			v = road.Destination
			candidate = dist[u] + road.Weight

			// Strict improvement only; equal candidates keep the earlier
			// predecessor, which keeps results reproducible.
			if candidate < dist[v] {
				e.logf("  Relaxing edge %d -> %d: distance updated from %.2f to %.2f",
					u, v, dist[v], candidate)
				dist[v] = candidate
				pred[v] = u
				pq.DecreaseKey(v, candidate)
			}
		}
	}

	e.logf("Dijkstra completed. Processed %d nodes.", processed)

	// 5) Assemble the result: step log first, then the heap's own lines.
	heapLogs := pq.Logs()
	logs := make([]string, 0, len(e.logs)+len(heapLogs))
	logs = append(logs, e.logs...)
	logs = append(logs, heapLogs...)

	return Result{Distances: dist, Predecessors: pred, Logs: logs}, nil
}

// Path finds the shortest route from source to destination.
//
// Unknown endpoints and unreachable destinations are expected runtime
// outcomes, reported as Found=false, never as errors. Reachability is
// decided by exact +Inf comparison on the computed distance.
func (e *Engine) Path(source, destination int) PathResult {
	// Endpoint validation: both must be registered locations.
	if !e.g.LocationExists(source) || !e.g.LocationExists(destination) {
		return PathResult{}
	}

	res, err := e.Distances(source)
	if err != nil {
		return PathResult{}
	}

	// Unreached destination: the distance stayed at exact +Inf.
	if math.IsInf(res.Distances[destination], 1) {
		e.logf("No path found from %d to %d", source, destination)
		return PathResult{}
	}

	out := PathResult{
		Path:          ReconstructPath(source, destination, res.Predecessors),
		TotalDistance: res.Distances[destination],
		Found:         true,
	}
	out.ETA = ETA(out.TotalDistance, e.opts.AvgSpeed)

	// Resolve the display name of each consecutive hop: the first
	// outgoing road from the earlier node to the later one wins.
	out.RoadNames = make([]string, 0, len(out.Path)-1)
	for i := 0; i+1 < len(out.Path); i++ {
		out.RoadNames = append(out.RoadNames, e.roadNameBetween(out.Path[i], out.Path[i+1]))
	}

	e.logf("Path found: %s (Distance: %.2f km, ETA: %.1f min)",
		renderPath(out.Path), out.TotalDistance, out.ETA)

	return out
}

// AvgSpeed reports the configured average speed in distance-units/hour.
func (e *Engine) AvgSpeed() float64 { return e.opts.AvgSpeed }

// Logs returns a copy of the step log of the most recent run.
func (e *Engine) Logs() []string {
	out := make([]string, len(e.logs))
	copy(out, e.logs)

	return out
}

// ClearLogs discards the retained step log.
func (e *Engine) ClearLogs() { e.logs = nil }

// ReconstructPath walks predecessors backward from destination until it
// reaches source (or a vertex without a predecessor) and reverses the
// sequence into source→destination order.
//
// Complexity: O(len(path)).
func ReconstructPath(source, destination int, predecessors []int) []int {
	path := make([]int, 0, 8)
	for current := destination; current != -1; current = predecessors[current] {
		path = append(path, current)
		if current == source {
			break
		}
	}

	// Reverse in place: the walk produced destination→source.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// ETA converts a distance into estimated minutes at the given average
// speed (distance-units per hour).
func ETA(distance, avgSpeed float64) float64 {
	return (distance / avgSpeed) * 60.0
}

// roadNameBetween returns the name of the first road from→to, or "" when
// no such road exists (possible only on a corrupted predecessor chain).
func (e *Engine) roadNameBetween(from, to int) string {
	roads, err := e.g.Neighbors(from)
	if err != nil {
		return ""
	}
	for _, road := range roads {
		if road.Destination == to {
			return road.Name
		}
	}

	return ""
}

// renderPath renders a vertex sequence as "0 -> 1 -> 2".
func renderPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return strings.Join(parts, " -> ")
}

// logf records one step line, mirroring it to the sink when configured.
func (e *Engine) logf(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	e.logs = append(e.logs, line)
	if e.opts.LogSink != nil {
		e.opts.LogSink(line)
	}
}
