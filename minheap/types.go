// Package minheap defines the heap entry type, option plumbing, and the
// empty-extract sentinel for the indexed priority queue.
package minheap

import "math"

// Entry is a single (vertex, tentative distance) pair held by the heap.
type Entry struct {
	// Vertex is the graph vertex index this entry tracks.
	Vertex int
	// Distance is the tentative distance used as the ordering key.
	Distance float64
}

// EmptyEntry is the sentinel returned by ExtractMin on an empty heap:
// no vertex (−1) at infinite distance.
func EmptyEntry() Entry {
	return Entry{Vertex: -1, Distance: math.Inf(1)}
}

// Options configures a Heap before first use.
//
// LogSink – optional observer receiving one human-readable line per heap
// mutation ("Insert: …", "ExtractMin: …"). When nil, lines accumulate in
// an internal buffer retrievable via Logs(). Diagnostics never participate
// in control flow.
type Options struct {
	LogSink func(string)
}

// Option is a functional option for configuring a Heap.
type Option func(*Options)

// WithLogSink routes operation diagnostics to sink instead of the internal
// buffer. Passing a nil sink panics: a caller asking for an observer and
// supplying none is a configuration bug worth failing fast on.
func WithLogSink(sink func(string)) Option {
	if sink == nil {
		panic("minheap: WithLogSink requires a non-nil sink")
	}
	return func(o *Options) {
		o.LogSink = sink
	}
}

// DefaultOptions returns the zero configuration: diagnostics buffered
// internally, no external observer.
func DefaultOptions() Options {
	return Options{}
}
