package citygen

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/ridegraph/dispatch"
	"github.com/katalvlaran/ridegraph/roadgraph"
)

// RandomRequests draws count ride requests with distinct pickup and
// destination locations from the graph. Request ids are fresh UUIDs;
// location draws come from the supplied options (WithSeed / WithRand),
// so the itinerary is reproducible even though the ids are not.
//
// A graph with fewer than two vertices cannot host a distinct
// pickup/destination pair; the result is nil.
func RandomRequests(g *roadgraph.Graph, count int, opts ...Option) []dispatch.Request {
	n := g.NumVertices()
	if n < 2 {
		return nil
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	rng := cfg.Rand
	requests := make([]dispatch.Request, 0, count)
	for i := 0; i < count; i++ {
		pickup := rng.Intn(n)
		destination := pickupDistinct(rng, n, pickup)
		requests = append(requests, dispatch.NewRequest(
			uuid.NewString(),
			pickup,
			destination,
			fmt.Sprintf("passenger-%03d", i+1),
		))
	}

	return requests
}

// pickupDistinct redraws until the destination differs from pickup.
func pickupDistinct(rng *rand.Rand, n, pickup int) int {
	destination := rng.Intn(n)
	for destination == pickup {
		destination = rng.Intn(n)
	}
	return destination
}
