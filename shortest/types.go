// Package shortest defines result types, sentinel errors, and
// configuration options for the Dijkstra routing engine.
package shortest

import "errors"

// Sentinel errors for the routing engine.
var (
	// ErrNilGraph indicates a nil *roadgraph.Graph was passed to New.
	ErrNilGraph = errors.New("shortest: graph is nil")
	// ErrInvalidSource indicates the source vertex has no registered location.
	ErrInvalidSource = errors.New("shortest: source is not a registered location")
)

// DefaultAvgSpeed is the assumed average travel speed in distance-units
// per hour, used to convert distances into ETA minutes.
const DefaultAvgSpeed = 40.0

// Result carries the full single-source output of one Dijkstra run.
//
// Distances[v] is the shortest distance from the source to v, or +Inf if
// v was never reached. Predecessors[v] is the previous vertex on that
// shortest path, or -1 for the source and for unreached vertices.
// Logs is the ordered algorithm trace (processing and relaxation events,
// followed by the heap's own operation lines); diagnostic only.
type Result struct {
	Distances    []float64
	Predecessors []int
	Logs         []string
}

// PathResult describes one reconstructed route between two vertices.
// When Found is false the remaining fields are zero values.
type PathResult struct {
	// Path is the vertex sequence from source to destination inclusive.
	Path []int `json:"path"`
	// TotalDistance is the summed weight along Path.
	TotalDistance float64 `json:"totalDistance"`
	// ETA is the estimated travel time in minutes at the engine's speed.
	ETA float64 `json:"estimatedTime"`
	// RoadNames holds the display name of the road joining each
	// consecutive pair in Path (len(Path)-1 entries).
	RoadNames []string `json:"roadNames"`
	// Found reports whether a route exists.
	Found bool `json:"found"`
}

// Options configures an Engine.
//
// AvgSpeed – average travel speed (distance-units/hour) for ETA math.
// LogSink  – optional observer receiving each algorithm step line as it
// is produced; when nil, lines are returned inside Result.Logs and kept
// on the Engine until cleared.
type Options struct {
	AvgSpeed float64
	LogSink  func(string)
}

// Option is a functional option for configuring an Engine.
type Option func(*Options)

// WithAvgSpeed overrides the average speed used for ETA computation.
// Must be positive; option constructors panic on nonsensical values so
// misconfiguration surfaces immediately.
func WithAvgSpeed(speed float64) Option {
	if speed <= 0 {
		panic("shortest: WithAvgSpeed requires a positive speed")
	}
	return func(o *Options) {
		o.AvgSpeed = speed
	}
}

// WithLogSink routes algorithm step diagnostics to sink as they occur.
func WithLogSink(sink func(string)) Option {
	if sink == nil {
		panic("shortest: WithLogSink requires a non-nil sink")
	}
	return func(o *Options) {
		o.LogSink = sink
	}
}

// DefaultOptions returns the standard configuration:
// AvgSpeed=DefaultAvgSpeed, no external log sink.
func DefaultOptions() Options {
	return Options{AvgSpeed: DefaultAvgSpeed}
}
