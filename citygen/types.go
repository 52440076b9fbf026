// Package citygen defines the generated-city container, sentinel errors,
// and RNG option plumbing for the procedural generator.
package citygen

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/ridegraph/drivers"
	"github.com/katalvlaran/ridegraph/roadgraph"
)

// Sentinel errors for generation.
var (
	// ErrTooFewNodes indicates Generate was asked for fewer than MinNodes locations.
	ErrTooFewNodes = errors.New("citygen: too few nodes for a city layout")
)

// MinNodes is the smallest city Generate will lay out; below this the
// highway and ring layers degenerate.
const MinNodes = 10

// DefaultSeed seeds the generator when neither WithSeed nor WithRand is
// given, so unconfigured runs are reproducible.
const DefaultSeed int64 = 1

// City bundles one generated map with its seed driver roster. The caller
// owns the graph; downstream engines hold non-owning references.
type City struct {
	Graph   *roadgraph.Graph
	Drivers []drivers.Driver
}

// Options configures generation. All randomness flows through Rand.
type Options struct {
	Rand *rand.Rand
}

// Option is a functional option for configuring Generate.
type Option func(*Options)

// WithSeed locks generation to a deterministic seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG, e.g. to share one source across
// generation and request synthesis. Panics on nil to surface the
// configuration bug early.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("citygen: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// DefaultOptions returns the reproducible default configuration.
func DefaultOptions() Options {
	return Options{Rand: rand.New(rand.NewSource(DefaultSeed))}
}
