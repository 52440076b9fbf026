// Package roadgraph defines the core map types and sentinel errors
// for the roadgraph subpackage of github.com/katalvlaran/ridegraph.
package roadgraph

import "errors"

// Sentinel errors for roadgraph operations.
var (
	// ErrBadVertexCount indicates NewGraph was given a non-positive vertex count.
	ErrBadVertexCount = errors.New("roadgraph: vertex count must be positive")
	// ErrVertexRange indicates a vertex index outside [0, NumVertices).
	ErrVertexRange = errors.New("roadgraph: vertex index out of range")
	// ErrNegativeWeight indicates a road weight below zero.
	ErrNegativeWeight = errors.New("roadgraph: road weight must be non-negative")
	// ErrLocationNotFound indicates no Location metadata was registered for an id.
	ErrLocationNotFound = errors.New("roadgraph: location not found")
)

// Location is a point in the city map with identity and coordinates.
// Locations are owned exclusively by the Graph and immutable once added.
type Location struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Road is a directed, weighted, optionally named connection to another
// location. A bidirectional road is stored as two Road entries with
// identical Weight and Name, one per direction.
type Road struct {
	// Destination is the target vertex index of this directed entry.
	Destination int `json:"destination"`
	// Weight is the traversal cost in distance units; always ≥ 0.
	Weight float64 `json:"weight"`
	// Name is an optional display name ("Main Street", "Interstate-95", …).
	Name string `json:"roadName"`
}

// Graph is a static weighted road network. The vertex count is fixed at
// construction; adjacency entries and location metadata are append-only.
//
// Graph is read-mostly: downstream components hold a non-owning reference
// and never mutate it during request processing, so no internal locking
// is required (see the package documentation of dispatch for the
// concurrency contract).
type Graph struct {
	numVertices int
	adjacency   [][]Road
	locations   map[int]Location
}

// Export is the serialized shape of a Graph: every registered location and
// each undirected road exactly once, with Source < Destination.
type Export struct {
	NumVertices int          `json:"numVertices"`
	Nodes       []Location   `json:"nodes"`
	Edges       []ExportEdge `json:"edges"`
}

// ExportEdge is a single undirected road in an Export.
type ExportEdge struct {
	Source      int     `json:"source"`
	Destination int     `json:"destination"`
	Weight      float64 `json:"weight"`
	RoadName    string  `json:"roadName"`
}
