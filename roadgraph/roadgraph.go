// Package roadgraph implements the static weighted city map used by the
// shortest-path engine and the dispatch orchestrator.
package roadgraph

import (
	"fmt"
	"sort"
)

// NewGraph allocates a Graph with the given fixed vertex count.
// Valid vertex indices are [0, vertices); the count cannot change later.
//
// Returns ErrBadVertexCount if vertices ≤ 0.
//
// Complexity: O(V) for the adjacency skeleton.
func NewGraph(vertices int) (*Graph, error) {
	if vertices <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadVertexCount, vertices)
	}

	return &Graph{
		numVertices: vertices,
		adjacency:   make([][]Road, vertices),
		locations:   make(map[int]Location, vertices),
	}, nil
}

// NumVertices reports the fixed vertex count set at construction.
func (g *Graph) NumVertices() int { return g.numVertices }

// AddLocation registers display metadata (name, coordinates) for vertex id.
// Re-registering an id overwrites the previous metadata.
//
// Returns ErrVertexRange if id is outside [0, NumVertices).
func (g *Graph) AddLocation(id int, name string, lat, lon float64) error {
	if id < 0 || id >= g.numVertices {
		return fmt.Errorf("%w: location id %d (vertices: %d)", ErrVertexRange, id, g.numVertices)
	}
	g.locations[id] = Location{ID: id, Name: name, Latitude: lat, Longitude: lon}

	return nil
}

// AddRoad inserts a bidirectional road between src and dest: two directed
// adjacency entries sharing the same weight and name.
//
// Validation happens before any mutation, so a failed call leaves both
// adjacency lists untouched.
//
// Returns ErrVertexRange if either endpoint is invalid,
// ErrNegativeWeight if weight < 0.
func (g *Graph) AddRoad(src, dest int, weight float64, name string) error {
	if err := g.checkRoad(src, dest, weight); err != nil {
		return err
	}
	g.adjacency[src] = append(g.adjacency[src], Road{Destination: dest, Weight: weight, Name: name})
	g.adjacency[dest] = append(g.adjacency[dest], Road{Destination: src, Weight: weight, Name: name})

	return nil
}

// AddDirectedRoad inserts a one-way road src→dest with the same validation
// as AddRoad.
func (g *Graph) AddDirectedRoad(src, dest int, weight float64, name string) error {
	if err := g.checkRoad(src, dest, weight); err != nil {
		return err
	}
	g.adjacency[src] = append(g.adjacency[src], Road{Destination: dest, Weight: weight, Name: name})

	return nil
}

// checkRoad validates endpoints and weight for a prospective road.
func (g *Graph) checkRoad(src, dest int, weight float64) error {
	if src < 0 || src >= g.numVertices || dest < 0 || dest >= g.numVertices {
		return fmt.Errorf("%w: road %d→%d (vertices: %d)", ErrVertexRange, src, dest, g.numVertices)
	}
	if weight < 0 {
		return fmt.Errorf("%w: road %d→%d weight=%v", ErrNegativeWeight, src, dest, weight)
	}

	return nil
}

// Neighbors returns a copy of the outgoing roads of vertex. Mutating the
// returned slice never affects the graph.
//
// Returns ErrVertexRange for an invalid vertex index.
//
// Complexity: O(deg(vertex)).
func (g *Graph) Neighbors(vertex int) ([]Road, error) {
	if vertex < 0 || vertex >= g.numVertices {
		return nil, fmt.Errorf("%w: vertex %d (vertices: %d)", ErrVertexRange, vertex, g.numVertices)
	}
	out := make([]Road, len(g.adjacency[vertex]))
	copy(out, g.adjacency[vertex])

	return out, nil
}

// Location returns the metadata registered for id.
//
// Returns ErrLocationNotFound if AddLocation was never called for id.
func (g *Graph) Location(id int) (Location, error) {
	loc, ok := g.locations[id]
	if !ok {
		return Location{}, fmt.Errorf("%w: id %d", ErrLocationNotFound, id)
	}

	return loc, nil
}

// LocationExists reports whether metadata was registered for id.
// It never fails; an out-of-range id simply reports false.
func (g *Graph) LocationExists(id int) bool {
	_, ok := g.locations[id]

	return ok
}

// Locations returns all registered locations sorted by ascending id.
// Sorting makes iteration order explicit and reproducible; map order is
// never exposed.
//
// Complexity: O(V log V).
func (g *Graph) Locations() []Location {
	out := make([]Location, 0, len(g.locations))
	for _, loc := range g.locations {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Validate scans every adjacency entry, confirming each destination index
// is in range and each weight is non-negative. It is an integrity
// assertion for generated or hand-built maps, not part of request
// handling: AddRoad already rejects invalid input, so Validate only fails
// if memory was corrupted or the graph was built through unsafe means.
//
// Returns nil on success, or the first violation wrapped with its edge.
//
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	var src int
	var road Road
	for src = 0; src < g.numVertices; src++ {
		for _, road = range g.adjacency[src] {
			if road.Destination < 0 || road.Destination >= g.numVertices {
				return fmt.Errorf("%w: adjacency %d→%d", ErrVertexRange, src, road.Destination)
			}
			if road.Weight < 0 {
				return fmt.Errorf("%w: adjacency %d→%d weight=%v", ErrNegativeWeight, src, road.Destination, road.Weight)
			}
		}
	}

	return nil
}

// ExportGraph assembles the serialized form of the graph: registered
// locations sorted by id, and each undirected road listed exactly once
// with Source < Destination. Directed entries whose source exceeds their
// destination are intentionally folded into their mirror, matching the
// bidirectional storage convention of AddRoad.
//
// Complexity: O(V log V + E).
func (g *Graph) ExportGraph() Export {
	exp := Export{
		NumVertices: g.numVertices,
		Nodes:       g.Locations(),
		Edges:       make([]ExportEdge, 0),
	}

	var src int
	var road Road
	for src = 0; src < g.numVertices; src++ {
		for _, road = range g.adjacency[src] {
			// Emit each undirected pair once, from the smaller endpoint.
			if src < road.Destination {
				exp.Edges = append(exp.Edges, ExportEdge{
					Source:      src,
					Destination: road.Destination,
					Weight:      road.Weight,
					RoadName:    road.Name,
				})
			}
		}
	}

	return exp
}
