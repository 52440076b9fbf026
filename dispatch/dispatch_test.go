// Package dispatch_test validates the matching pipeline end to end:
// validation failures, global greedy selection, commit-only-on-success
// driver state, queue FIFO order, the bounded demand window, and hotspot
// ranking.
package dispatch_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ridegraph/dispatch"
	"github.com/katalvlaran/ridegraph/drivers"
	"github.com/katalvlaran/ridegraph/roadgraph"
)

// lineCity builds 0—1—2—…—(n-1) with unit weights, every vertex a
// registered location.
func lineCity(t *testing.T, n int) *roadgraph.Graph {
	t.Helper()
	g, err := roadgraph.NewGraph(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddLocation(i, fmt.Sprintf("Stop %d", i), 40.7, -74.0))
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddRoad(i, i+1, 1, fmt.Sprintf("Segment %d", i)))
	}

	return g
}

func newEngine(t *testing.T, g *roadgraph.Graph, opts ...dispatch.Option) *dispatch.Engine {
	t.Helper()
	e, err := dispatch.New(g, opts...)
	require.NoError(t, err)

	return e
}

func availableDriver(id string, location int) drivers.Driver {
	return drivers.Driver{ID: id, Name: "Driver " + id, CurrentLocation: location, IsAvailable: true, VehicleType: "Sedan", Rating: 4.7}
}

// ------------------------------------------------------------------------
// 1. Construction and validation failures.
// ------------------------------------------------------------------------

func TestNew_NilGraph(t *testing.T) {
	_, err := dispatch.New(nil)
	require.ErrorIs(t, err, dispatch.ErrNilGraph)
}

func TestProcessRequest_ValidationFailures(t *testing.T) {
	e := newEngine(t, lineCity(t, 5))
	require.True(t, e.AddDriver(availableDriver("D001", 0)))

	cases := []struct {
		name    string
		req     dispatch.Request
		message string
	}{
		{"unknown pickup", dispatch.NewRequest("R1", 99, 2, "P1"), "Invalid pickup location"},
		{"unknown destination", dispatch.NewRequest("R2", 2, -3, "P1"), "Invalid destination location"},
		{"same location", dispatch.NewRequest("R3", 2, 2, "P1"), "Pickup and destination cannot be the same"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := e.ProcessRequest(tc.req)
			assert.False(t, res.Success)
			assert.Equal(t, tc.message, res.ErrorMessage)

			// Validation failures never touch driver state.
			d, _ := e.GetDriver("D001")
			assert.True(t, d.IsAvailable)
		})
	}
}

func TestProcessRequest_NoAvailableDrivers(t *testing.T) {
	e := newEngine(t, lineCity(t, 4))
	require.True(t, e.AddDriver(availableDriver("D001", 0)))
	require.True(t, e.SetDriverAvailability("D001", false))

	res := e.ProcessRequest(dispatch.NewRequest("R1", 1, 3, "P1"))
	assert.False(t, res.Success)
	assert.Equal(t, "No available drivers found", res.ErrorMessage)

	// Registry unchanged: the busy driver stays busy, nothing else moved.
	d, _ := e.GetDriver("D001")
	assert.False(t, d.IsAvailable)
}

func TestProcessRequest_NoReachableDriver(t *testing.T) {
	// Two islands: 0—1 and 2—3; the only driver sits on the far island.
	g, err := roadgraph.NewGraph(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddLocation(i, "", 0, 0))
	}
	require.NoError(t, g.AddRoad(0, 1, 1, ""))
	require.NoError(t, g.AddRoad(2, 3, 1, ""))

	e := newEngine(t, g)
	require.True(t, e.AddDriver(availableDriver("D001", 2)))

	res := e.ProcessRequest(dispatch.NewRequest("R1", 0, 1, "P1"))
	assert.False(t, res.Success)
	assert.Equal(t, "No reachable driver for pickup location", res.ErrorMessage)
	d, _ := e.GetDriver("D001")
	assert.True(t, d.IsAvailable)
}

func TestProcessRequest_UnreachableDestinationKeepsDriverFree(t *testing.T) {
	// Driver can reach the pickup, but the destination is an island:
	// the whole request fails and the found driver is NOT marked busy.
	g, err := roadgraph.NewGraph(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddLocation(i, "", 0, 0))
	}
	require.NoError(t, g.AddRoad(0, 1, 2, ""))
	// Vertex 3 is disconnected.
	require.NoError(t, g.AddRoad(1, 2, 2, ""))

	e := newEngine(t, g)
	require.True(t, e.AddDriver(availableDriver("D001", 0)))

	res := e.ProcessRequest(dispatch.NewRequest("R1", 1, 3, "P1"))
	assert.False(t, res.Success)
	assert.Equal(t, "No route found from pickup to destination", res.ErrorMessage)

	d, _ := e.GetDriver("D001")
	assert.True(t, d.IsAvailable, "driver must stay free when routing fails after selection")
}

// ------------------------------------------------------------------------
// 2. Greedy selection: global minimum, not first found.
// ------------------------------------------------------------------------

func TestProcessRequest_SelectsGloballyNearestDriver(t *testing.T) {
	// Line 0—1—2—3—4, pickup at 3: driver at 1 has distance 2 (earlier
	// id), driver at 2 has distance 1 and must win despite later id.
	e := newEngine(t, lineCity(t, 5))
	require.True(t, e.AddDriver(availableDriver("D001", 1)))
	require.True(t, e.AddDriver(availableDriver("D002", 2)))

	res := e.ProcessRequest(dispatch.NewRequest("R1", 3, 4, "P1"))
	require.True(t, res.Success, "error: %s", res.ErrorMessage)
	assert.Equal(t, "D002", res.AssignedDriver.ID)
	assert.Equal(t, 1.0, res.DriverToPickupDistance)
	assert.Equal(t, []int{2, 3}, res.DriverToPickupPath)

	// The chosen driver is committed; the loser stays available.
	winner, _ := e.GetDriver("D002")
	loser, _ := e.GetDriver("D001")
	assert.False(t, winner.IsAvailable)
	assert.True(t, loser.IsAvailable)
}

func TestProcessRequest_FullResultShape(t *testing.T) {
	e := newEngine(t, lineCity(t, 5))
	require.True(t, e.AddDriver(availableDriver("D001", 0)))

	res := e.ProcessRequest(dispatch.NewRequest("R1", 2, 4, "P9"))
	require.True(t, res.Success)
	assert.Equal(t, 2.0, res.DriverToPickupDistance)
	assert.Equal(t, 2.0, res.PickupToDestinationDistance)
	assert.Equal(t, []int{2, 3, 4}, res.PickupToDestinationPath)
	assert.Equal(t, 4.0, res.TotalDistance)
	// Unit weights at 40 units/hour: 2/40*60 = 3 minutes per leg.
	assert.InDelta(t, 3.0, res.DriverToPickupETA, 1e-9)
	assert.InDelta(t, 6.0, res.TotalETA, 1e-9)
	assert.NotEmpty(t, res.MatchingLogs)
	assert.NotEmpty(t, res.DijkstraLogs)
	assert.Contains(t, res.MatchingLogs[0], "Processing ride request R1")
}

// ------------------------------------------------------------------------
// 3. Queue semantics.
// ------------------------------------------------------------------------

func TestProcessNext_FIFOAndEmptyQueue(t *testing.T) {
	e := newEngine(t, lineCity(t, 5))
	require.True(t, e.AddDriver(availableDriver("D001", 0)))
	require.True(t, e.AddDriver(availableDriver("D002", 0)))

	e.Enqueue(dispatch.NewRequest("R1", 1, 2, "P1"))
	e.Enqueue(dispatch.NewRequest("R2", 2, 3, "P2"))
	assert.Equal(t, 2, e.QueueSize())

	first := e.ProcessNext()
	require.True(t, first.Success)
	assert.Equal(t, 1, e.QueueSize())

	second := e.ProcessNext()
	require.True(t, second.Success)
	assert.Equal(t, 0, e.QueueSize())

	empty := e.ProcessNext()
	assert.False(t, empty.Success)
	assert.Equal(t, "No pending ride requests", empty.ErrorMessage)
}

// ------------------------------------------------------------------------
// 4. Sliding window and demand analytics.
// ------------------------------------------------------------------------

func TestAnalyzeDemand_WindowNeverExceedsBound(t *testing.T) {
	e := newEngine(t, lineCity(t, 30))

	// Enqueue 25 requests; the window keeps only the 20 most recent.
	for i := 0; i < 25; i++ {
		e.Enqueue(dispatch.NewRequest(fmt.Sprintf("R%02d", i), i%29, (i%29)+1, "P"))
	}

	stats := e.AnalyzeDemand()
	assert.Equal(t, dispatch.WindowSize, stats.TotalRequests)
	assert.Equal(t, 25, e.QueueSize(), "the queue itself is unbounded")
}

func TestAnalyzeDemand_EvictionIsStrictlyFIFO(t *testing.T) {
	e := newEngine(t, lineCity(t, 30))

	// 0..24 pickups; requests 0..4 must be evicted, so pickup 0..4 never
	// appear among hotspots even though each occurs once like the rest —
	// verify via the tie-break: lowest surviving pickup ids win.
	for i := 0; i < 25; i++ {
		e.Enqueue(dispatch.NewRequest(fmt.Sprintf("R%02d", i), i, i+1, "P"))
	}

	stats := e.AnalyzeDemand()
	// All windowed frequencies equal 1: tie-break ranks ascending id, and
	// the oldest five pickups (0..4) are already evicted.
	assert.Equal(t, []int{5, 6, 7}, stats.Hotspots)
}

func TestAnalyzeDemand_HotspotRanking(t *testing.T) {
	e := newEngine(t, lineCity(t, 10))

	// Pickup 7 ×3, pickup 2 ×2, pickups 4 and 5 ×1 each.
	for _, pickup := range []int{7, 2, 7, 4, 2, 7, 5} {
		e.Enqueue(dispatch.NewRequest("R", pickup, pickup+1, "P"))
	}

	stats := e.AnalyzeDemand()
	assert.Equal(t, 7, stats.TotalRequests)
	require.Len(t, stats.Hotspots, 3)
	assert.Equal(t, 7, stats.Hotspots[0])
	assert.Equal(t, 2, stats.Hotspots[1])
	assert.Equal(t, 4, stats.Hotspots[2], "frequency tie between 4 and 5 breaks by ascending id")
}

func TestAnalyzeDemand_CountersAndWait(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	e := newEngine(t, lineCity(t, 5), dispatch.WithClock(func() time.Time { return base.Add(30 * time.Second) }))
	require.True(t, e.AddDriver(availableDriver("D001", 0)))

	ok := dispatch.Request{RequestID: "R1", Pickup: 1, Destination: 3, PassengerID: "P", CreatedAt: base}
	bad := dispatch.Request{RequestID: "R2", Pickup: 2, Destination: 2, PassengerID: "P", CreatedAt: base.Add(10 * time.Second)}

	e.Enqueue(ok)
	e.Enqueue(bad)
	require.True(t, e.ProcessNext().Success)
	require.False(t, e.ProcessNext().Success)

	stats := e.AnalyzeDemand()
	assert.Equal(t, 2, stats.TotalRequests)
	assert.Equal(t, 1, stats.SuccessfulMatches)
	assert.Equal(t, 1, stats.FailedMatches)
	// Ages at analysis: 30s and 20s → mean 25s.
	assert.InDelta(t, 25.0, stats.AvgWaitTime, 1e-9)
}

func TestAnalyzeDemand_EmptyWindow(t *testing.T) {
	e := newEngine(t, lineCity(t, 3))
	stats := e.AnalyzeDemand()
	assert.Zero(t, stats.TotalRequests)
	assert.Zero(t, stats.AvgWaitTime)
	assert.Empty(t, stats.Hotspots)
}

// ------------------------------------------------------------------------
// 5. FindRide: the queue-free synchronous variant.
// ------------------------------------------------------------------------

func TestFindRide_MatchesWithoutQueueOrWindow(t *testing.T) {
	e := newEngine(t, lineCity(t, 6))
	require.True(t, e.AddDriver(availableDriver("D001", 0)))

	m := e.FindRide(dispatch.NewRequest("R1", 2, 5, "P1"))
	require.True(t, m.Success)
	assert.Equal(t, "D001", m.Driver.ID)
	assert.Equal(t, 2.0, m.DistanceToPickup)
	assert.Equal(t, 3.0, m.DistanceToDestination)
	assert.Equal(t, 5.0, m.TotalDistance)
	// 5 units at 40/h = 7.5 min, truncated to whole minutes.
	assert.Equal(t, 7, m.EstimatedTime)
	assert.Equal(t, []int{0, 1, 2}, m.PathToPickup)
	assert.Equal(t, []int{2, 3, 4, 5}, m.PathToDestination)

	// Queue and window untouched; driver committed.
	assert.Equal(t, 0, e.QueueSize())
	assert.Zero(t, e.AnalyzeDemand().TotalRequests)
	d, _ := e.GetDriver("D001")
	assert.False(t, d.IsAvailable)
}

func TestFindRide_NoDrivers(t *testing.T) {
	e := newEngine(t, lineCity(t, 3))
	m := e.FindRide(dispatch.NewRequest("R1", 0, 2, "P1"))
	assert.False(t, m.Success)
	assert.Equal(t, "No available drivers found", m.Message)
}

func TestFindRide_AdvancesLifetimeCounters(t *testing.T) {
	e := newEngine(t, lineCity(t, 4))
	require.True(t, e.AddDriver(availableDriver("D001", 0)))

	m := e.FindRide(dispatch.NewRequest("R1", 1, 3, "P1"))
	require.True(t, m.Success)

	// D001 is now busy, so the second call fails on availability.
	m = e.FindRide(dispatch.NewRequest("R2", 1, 3, "P2"))
	require.False(t, m.Success)

	stats := e.AnalyzeDemand()
	assert.Equal(t, 1, stats.SuccessfulMatches)
	assert.Equal(t, 1, stats.FailedMatches)
	// FindRide bypasses the demand window entirely.
	assert.Zero(t, stats.TotalRequests)
}

// ------------------------------------------------------------------------
// 6. Shared registry wiring.
// ------------------------------------------------------------------------

func TestWithRegistry_SharesState(t *testing.T) {
	reg := drivers.New()
	require.True(t, reg.Add(availableDriver("D001", 0)))

	e := newEngine(t, lineCity(t, 4), dispatch.WithRegistry(reg))
	res := e.ProcessRequest(dispatch.NewRequest("R1", 1, 3, "P1"))
	require.True(t, res.Success)

	// The outer registry observes the commit.
	d, ok := reg.Get("D001")
	require.True(t, ok)
	assert.False(t, d.IsAvailable)

	// Completing the ride through the shared registry frees the driver
	// for the engine again.
	require.True(t, reg.CompleteRide("D001"))
	res = e.ProcessRequest(dispatch.NewRequest("R2", 1, 3, "P2"))
	assert.True(t, res.Success)
}

// Option constructors reject nonsensical values immediately, before the
// option is ever applied.
func TestOptionConstructors_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { dispatch.WithRegistry(nil) })
	assert.Panics(t, func() { dispatch.WithAvgSpeed(0) })
	assert.Panics(t, func() { dispatch.WithAvgSpeed(-1) })
	assert.Panics(t, func() { dispatch.WithClock(nil) })
}
