// Package dispatch defines request/result shapes, sentinel errors, and
// configuration options for the matching engine.
package dispatch

import (
	"errors"
	"time"

	"github.com/katalvlaran/ridegraph/drivers"
	"github.com/katalvlaran/ridegraph/shortest"
)

// Sentinel errors for engine construction.
var (
	// ErrNilGraph indicates a nil *roadgraph.Graph was passed to New.
	ErrNilGraph = errors.New("dispatch: graph is nil")
)

const (
	// WindowSize bounds the sliding window of recent requests kept for
	// demand analytics; oldest entries are evicted strictly FIFO.
	WindowSize = 20
	// MaxHotspots caps how many hotspot locations AnalyzeDemand reports.
	MaxHotspots = 3
)

// Request is one transport request. It is created by the caller,
// optionally enqueued, consumed exactly once, then discarded.
type Request struct {
	RequestID   string    `json:"requestId"`
	Pickup      int       `json:"pickupLocation"`
	Destination int       `json:"destinationLocation"`
	PassengerID string    `json:"passengerId"`
	CreatedAt   time.Time `json:"timestamp"`
}

// NewRequest builds a Request stamped with the current time.
func NewRequest(requestID string, pickup, destination int, passengerID string) Request {
	return Request{
		RequestID:   requestID,
		Pickup:      pickup,
		Destination: destination,
		PassengerID: passengerID,
		CreatedAt:   time.Now(),
	}
}

// Result is the full outcome of processing one request. It is built
// fresh per request and never stored. On failure only Success and
// ErrorMessage are meaningful.
type Result struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage,omitempty"`

	AssignedDriver drivers.Driver `json:"assignedDriver"`

	DriverToPickupDistance float64 `json:"driverToPickupDistance"`
	DriverToPickupPath     []int   `json:"driverToPickupPath"`
	DriverToPickupETA      float64 `json:"driverToPickupETA"`

	PickupToDestinationDistance float64 `json:"pickupToDestinationDistance"`
	PickupToDestinationPath     []int   `json:"pickupToDestinationPath"`
	PickupToDestinationETA      float64 `json:"pickupToDestinationETA"`

	TotalDistance float64 `json:"totalDistance"`
	TotalETA      float64 `json:"totalETA"`

	// MatchingLogs traces the dispatch pipeline; DijkstraLogs traces the
	// final pickup→destination routing run. Diagnostic only.
	MatchingLogs []string `json:"matchingLogs"`
	DijkstraLogs []string `json:"dijkstraLogs"`
}

// Match is the simplified synchronous outcome of FindRide: the same
// matching semantics without touching the queue or the demand window.
type Match struct {
	Success               bool           `json:"success"`
	Message               string         `json:"message"`
	Driver                drivers.Driver `json:"driver"`
	DistanceToPickup      float64        `json:"distanceToPickup"`
	DistanceToDestination float64        `json:"distanceToDestination"`
	TotalDistance         float64        `json:"totalDistance"`
	EstimatedTime         int            `json:"estimatedTime"`
	PathToPickup          []int          `json:"pathToPickup"`
	PathToDestination     []int          `json:"pathToDestination"`
}

// DemandStats summarizes short-term demand, recomputed on demand from the
// sliding window and the engine's lifetime match counters.
type DemandStats struct {
	TotalRequests     int     `json:"totalRequests"`
	SuccessfulMatches int     `json:"successfulMatches"`
	FailedMatches     int     `json:"failedMatches"`
	AvgWaitTime       float64 `json:"avgWaitTime"`
	Hotspots          []int   `json:"hotspots"`
}

// Options configures an Engine.
//
// Registry – the driver registry to orchestrate (a fresh one by default).
// AvgSpeed – average travel speed forwarded to the routing engine.
// Clock    – time source for wait-time analytics; overridable in tests.
type Options struct {
	Registry *drivers.Registry
	AvgSpeed float64
	Clock    func() time.Time
}

// Option is a functional option for configuring an Engine.
type Option func(*Options)

// WithRegistry attaches an existing driver registry instead of a fresh
// one. Panics on nil: sharing "no registry" is a configuration bug.
func WithRegistry(r *drivers.Registry) Option {
	if r == nil {
		panic("dispatch: WithRegistry requires a non-nil registry")
	}
	return func(o *Options) {
		o.Registry = r
	}
}

// WithAvgSpeed overrides the average speed used for ETA computation.
// Must be positive.
func WithAvgSpeed(speed float64) Option {
	if speed <= 0 {
		panic("dispatch: WithAvgSpeed requires a positive speed")
	}
	return func(o *Options) {
		o.AvgSpeed = speed
	}
}

// WithClock substitutes the time source used for demand analytics.
func WithClock(clock func() time.Time) Option {
	if clock == nil {
		panic("dispatch: WithClock requires a non-nil clock")
	}
	return func(o *Options) {
		o.Clock = clock
	}
}

// DefaultOptions returns the standard configuration: fresh registry,
// shortest.DefaultAvgSpeed, wall-clock time.
func DefaultOptions() Options {
	return Options{
		AvgSpeed: shortest.DefaultAvgSpeed,
		Clock:    time.Now,
	}
}
