// Package dispatch implements the ride-matching orchestrator.
package dispatch

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ridegraph/drivers"
	"github.com/katalvlaran/ridegraph/roadgraph"
	"github.com/katalvlaran/ridegraph/shortest"
)

// Engine is the dispatch orchestrator. It holds a non-owning reference to
// a caller-owned road graph (read-only for the engine's whole lifetime),
// a driver registry, the request queue, and the demand window.
//
// All state mutation happens inside the request-processing path, one
// request at a time; see the package documentation for the concurrency
// contract.
type Engine struct {
	graph    *roadgraph.Graph
	registry *drivers.Registry
	route    *shortest.Engine
	opts     Options

	queue  []Request
	window *recentWindow

	matched int // lifetime successful matches
	failed  int // lifetime failed matches

	logs []string // system log of the most recent processing run
}

// New builds an Engine over g.
//
// Returns ErrNilGraph if g is nil. Any other construction problem is
// impossible by contract: option constructors validate their arguments.
func New(g *roadgraph.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.Registry == nil {
		cfg.Registry = drivers.New()
	}

	route, err := shortest.New(g, shortest.WithAvgSpeed(cfg.AvgSpeed))
	if err != nil {
		return nil, err
	}

	return &Engine{
		graph:    g,
		registry: cfg.Registry,
		route:    route,
		opts:     cfg,
		window:   newRecentWindow(WindowSize),
	}, nil
}

// Registry exposes the orchestrated driver registry, e.g. for seeding.
func (e *Engine) Registry() *drivers.Registry { return e.registry }

// Graph exposes the road graph the engine routes over.
func (e *Engine) Graph() *roadgraph.Graph { return e.graph }

// ------------------------------------------------------------------------
// Driver management passthrough (host-facing convenience surface).
// ------------------------------------------------------------------------

// AddDriver registers a driver; false on duplicate id.
func (e *Engine) AddDriver(d drivers.Driver) bool { return e.registry.Add(d) }

// RemoveDriver deletes a driver; false on unknown id.
func (e *Engine) RemoveDriver(id string) bool { return e.registry.Remove(id) }

// GetDriver returns a driver snapshot and whether it exists.
func (e *Engine) GetDriver(id string) (drivers.Driver, bool) { return e.registry.Get(id) }

// AllDrivers returns snapshots of every driver, sorted by id.
func (e *Engine) AllDrivers() []drivers.Driver { return e.registry.All() }

// UpdateDriverLocation moves a driver; false on unknown id.
func (e *Engine) UpdateDriverLocation(id string, location int) bool {
	return e.registry.UpdateLocation(id, location)
}

// SetDriverAvailability flips a driver's availability; false on unknown id.
func (e *Engine) SetDriverAvailability(id string, available bool) bool {
	return e.registry.UpdateAvailability(id, available)
}

// ------------------------------------------------------------------------
// Queue operations.
// ------------------------------------------------------------------------

// Enqueue accepts a request into the FIFO queue and the demand window.
// Acceptance is unconditional: validation happens at processing time, and
// the window tracks demand regardless of eventual match outcome.
func (e *Engine) Enqueue(req Request) {
	e.queue = append(e.queue, req)
	e.window.push(req)
	e.logf("Added ride request %s (pickup: %d, destination: %d)",
		req.RequestID, req.Pickup, req.Destination)
}

// QueueSize reports the number of pending requests.
func (e *Engine) QueueSize() int { return len(e.queue) }

// ProcessNext dequeues and processes the oldest pending request.
// An empty queue is an expected outcome, not an error.
func (e *Engine) ProcessNext() Result {
	if len(e.queue) == 0 {
		return Result{Success: false, ErrorMessage: "No pending ride requests"}
	}

	req := e.queue[0]
	e.queue = e.queue[1:]

	return e.ProcessRequest(req)
}

// ------------------------------------------------------------------------
// Core pipeline.
// ------------------------------------------------------------------------

// ProcessRequest runs the full matching pipeline for one request,
// bypassing the queue. The system log restarts per request so the
// returned MatchingLogs trace exactly this run.
//
// Pipeline: validate → find nearest driver → route pickup→destination →
// assemble result → mark driver busy. The driver is committed only after
// the entire match succeeds; every earlier failure leaves the registry
// untouched.
func (e *Engine) ProcessRequest(req Request) Result {
	e.logs = nil
	e.logf("Processing ride request %s", req.RequestID)

	// 1) Validation: both endpoints must be known, and distinct.
	if !e.graph.LocationExists(req.Pickup) {
		return e.fail("Invalid pickup location")
	}
	if !e.graph.LocationExists(req.Destination) {
		return e.fail("Invalid destination location")
	}
	if req.Pickup == req.Destination {
		return e.fail("Pickup and destination cannot be the same")
	}

	// 2) Greedy nearest-driver search across all available drivers.
	nearest, ok := e.findNearestDriver(req.Pickup)
	if !ok {
		return e.fail(nearest.message)
	}

	// 3) Route the ride itself. If the destination is unreachable the
	//    whole request fails and the found driver stays available.
	ride := e.route.Path(req.Pickup, req.Destination)
	if !ride.Found {
		return e.fail("No route found from pickup to destination")
	}

	// 4) Assemble the result.
	res := Result{
		Success:        true,
		AssignedDriver: nearest.driver,

		DriverToPickupDistance: nearest.distance,
		DriverToPickupPath:     nearest.path,
		DriverToPickupETA:      shortest.ETA(nearest.distance, e.opts.AvgSpeed),

		PickupToDestinationDistance: ride.TotalDistance,
		PickupToDestinationPath:     ride.Path,
		PickupToDestinationETA:      ride.ETA,
	}
	res.TotalDistance = res.DriverToPickupDistance + res.PickupToDestinationDistance
	res.TotalETA = res.DriverToPickupETA + res.PickupToDestinationETA

	// 5) Commit: the driver is now bound to this ride.
	e.registry.UpdateAvailability(res.AssignedDriver.ID, false)
	e.matched++
	e.logf("Ride matched successfully. Total distance: %.2f km, Total ETA: %.1f min",
		res.TotalDistance, res.TotalETA)

	res.MatchingLogs = e.Logs()
	res.DijkstraLogs = e.route.Logs()

	return res
}

// FindRide performs nearest-driver search plus pickup→destination routing
// as a single synchronous call, without touching the request queue or the
// demand window. The lifetime match/fail counters still advance. On
// success the selected driver is marked busy.
func (e *Engine) FindRide(req Request) Match {
	nearest, ok := e.findNearestDriver(req.Pickup)
	if !ok {
		e.failed++
		return Match{Success: false, Message: nearest.message}
	}

	toPickup := e.route.Path(nearest.driver.CurrentLocation, req.Pickup)
	toDestination := e.route.Path(req.Pickup, req.Destination)
	if !toPickup.Found || !toDestination.Found {
		e.failed++
		return Match{Success: false, Message: "No valid path found"}
	}

	total := toPickup.TotalDistance + toDestination.TotalDistance
	m := Match{
		Success:               true,
		Message:               "Ride matched successfully",
		Driver:                nearest.driver,
		DistanceToPickup:      toPickup.TotalDistance,
		DistanceToDestination: toDestination.TotalDistance,
		TotalDistance:         total,
		EstimatedTime:         int(shortest.ETA(total, e.opts.AvgSpeed)),
		PathToPickup:          toPickup.Path,
		PathToDestination:     toDestination.Path,
	}

	e.registry.UpdateAvailability(nearest.driver.ID, false)
	e.matched++

	return m
}

// nearestDriver is the internal outcome of the greedy search.
type nearestDriver struct {
	driver   drivers.Driver
	distance float64
	path     []int
	message  string // failure reason when not found
}

// findNearestDriver enumerates all currently available drivers (sorted by
// id) and runs one full shortest-path computation per candidate,
// tracking the global minimum among drivers whose path to pickup exists.
//
// Selection contract: the driver achieving the strictly smallest
// reachable distance wins; an equidistant later candidate never displaces
// an earlier one.
//
// Complexity: O(D · (V+E) log V) for D available drivers.
func (e *Engine) findNearestDriver(pickup int) (nearestDriver, bool) {
	available := e.registry.Available()
	if len(available) == 0 {
		e.logf("No available drivers found")
		return nearestDriver{message: "No available drivers found"}, false
	}

	e.logf("Searching for nearest driver among %d available drivers using Greedy approach",
		len(available))

	best := nearestDriver{distance: -1}
	found := false
	var cand drivers.Driver
	for _, cand = range available {
		path := e.route.Path(cand.CurrentLocation, pickup)
		if !path.Found {
			continue
		}
		if !found || path.TotalDistance < best.distance {
			found = true
			best.driver = cand
			best.distance = path.TotalDistance
			best.path = path.Path
			e.logf("  Driver %s at location %d has distance %.2f km to pickup",
				cand.ID, cand.CurrentLocation, best.distance)
		}
	}

	if !found {
		e.logf("Could not find reachable driver")
		return nearestDriver{message: "No reachable driver for pickup location"}, false
	}

	e.logf("Selected nearest driver: %s (distance: %.2f km)", best.driver.ID, best.distance)

	return best, true
}

// ------------------------------------------------------------------------
// Demand analytics.
// ------------------------------------------------------------------------

// AnalyzeDemand recomputes demand statistics from the sliding window:
// windowed request count, lifetime match/fail counters, mean request age
// in seconds, and up to MaxHotspots pickup locations ranked by frequency
// descending. Equal frequencies rank by ascending location id — the
// documented deterministic tie-break.
//
// Complexity: O(W log W) for W windowed requests.
func (e *Engine) AnalyzeDemand() DemandStats {
	stats := DemandStats{
		TotalRequests:     e.window.size(),
		SuccessfulMatches: e.matched,
		FailedMatches:     e.failed,
	}

	windowed := e.window.snapshot()
	if len(windowed) == 0 {
		return stats
	}

	// Average wait: mean age of windowed requests at analysis time.
	now := e.opts.Clock()
	var totalWait float64
	frequency := make(map[int]int, len(windowed))
	for _, req := range windowed {
		totalWait += now.Sub(req.CreatedAt).Seconds()
		frequency[req.Pickup]++
	}
	stats.AvgWaitTime = totalWait / float64(len(windowed))

	// Hotspots: frequency descending, then location id ascending.
	type hotspot struct{ location, count int }
	ranked := make([]hotspot, 0, len(frequency))
	for loc, n := range frequency {
		ranked = append(ranked, hotspot{location: loc, count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].location < ranked[j].location
	})

	limit := MaxHotspots
	if len(ranked) < limit {
		limit = len(ranked)
	}
	stats.Hotspots = make([]int, 0, limit)
	for i := 0; i < limit; i++ {
		stats.Hotspots = append(stats.Hotspots, ranked[i].location)
	}

	return stats
}

// ------------------------------------------------------------------------
// Diagnostics.
// ------------------------------------------------------------------------

// Logs returns a copy of the system log of the most recent processing run.
func (e *Engine) Logs() []string {
	out := make([]string, len(e.logs))
	copy(out, e.logs)

	return out
}

// ClearLogs discards the retained system log.
func (e *Engine) ClearLogs() { e.logs = nil }

// fail records the failure, bumps the lifetime counter, and shapes the
// structured result.
func (e *Engine) fail(message string) Result {
	e.failed++
	e.logf("Error: %s", message)

	return Result{
		Success:      false,
		ErrorMessage: message,
		MatchingLogs: e.Logs(),
	}
}

func (e *Engine) logf(format string, args ...interface{}) {
	e.logs = append(e.logs, fmt.Sprintf(format, args...))
}
