// Package citygen implements the procedural road-network generator.
package citygen

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/ridegraph/roadgraph"
)

// node is the internal layout record for one generated location.
type node struct {
	id       int
	lat, lon float64
	sector   int
}

// roadSpec is one planned road before it is applied to the graph.
type roadSpec struct {
	src, dest int
	weight    float64
	name      string
}

// Per-layer weight multipliers: cost per km of haversine distance.
// Highways are the cheapest way to cover ground, local streets the
// dearest; rings and shortcuts sit in between.
const (
	highwayFactor  = 80.0
	arterialFactor = 100.0
	localFactor    = 120.0
	ringFactor     = 90.0
	shortcutFactor = 85.0
	maxShortcuts   = 10
)

// Generate synthesizes a connected city of numNodes locations.
//
// Layout: locations cluster three per sector on a √(n/3)-sided grid
// around the downtown anchor, with per-node jitter. Five road layers are
// planned over the layout and applied, then a union-find pass bridges
// any remaining components with connector highways.
//
// Returns ErrTooFewNodes if numNodes < MinNodes.
//
// Complexity: O(n²) dominated by the pairwise arterial/local scans.
func Generate(numNodes int, opts ...Option) (*City, error) {
	if numNodes < MinNodes {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewNodes, numNodes, MinNodes)
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	rng := cfg.Rand

	g, err := roadgraph.NewGraph(numNodes)
	if err != nil {
		return nil, err
	}

	// 1) Place locations and register their metadata.
	nodes, err := layoutNodes(g, numNodes, rng)
	if err != nil {
		return nil, err
	}

	// 2) Plan all five road layers over the layout.
	specs := make([]roadSpec, 0, numNodes*4)
	specs = append(specs, highways(nodes, rng)...)
	specs = append(specs, arterialRoads(nodes, rng)...)
	specs = append(specs, localStreets(nodes, rng)...)
	specs = append(specs, ringRoads(nodes)...)
	specs = append(specs, shortcuts(nodes, rng)...)

	// 3) Apply the plan. Every planned road is in range by construction, so a
	//    failure here is a generator bug and propagates as-is.
	var s roadSpec
	for _, s = range specs {
		if err = g.AddRoad(s.src, s.dest, s.weight, s.name); err != nil {
			return nil, err
		}
	}

	// 4) Bridge disconnected components so every pickup is reachable.
	if err = connectComponents(g, nodes); err != nil {
		return nil, err
	}

	return &City{Graph: g, Drivers: SeedDrivers(numNodes)}, nil
}

// layoutNodes places numNodes locations on the sector grid and registers
// them with the graph.
func layoutNodes(g *roadgraph.Graph, numNodes int, rng *rand.Rand) ([]node, error) {
	names := locationNames()
	sectorsPerSide := int(math.Ceil(math.Sqrt(float64(numNodes) / 3.0)))

	nodes := make([]node, 0, numNodes)
	for i := 0; i < numNodes; i++ {
		sector := i / 3
		sectorRow := sector / sectorsPerSide
		sectorCol := sector % sectorsPerSide
		subPosition := i % 3

		baseLat := 40.7128 + float64(sectorRow)*0.04
		baseLon := -74.0060 + float64(sectorCol)*0.04
		lat := baseLat + (rng.Float64()-0.5)*0.015 + float64(subPosition)*0.008
		lon := baseLon + (rng.Float64()-0.5)*0.015 + float64(subPosition)*0.008

		name := fmt.Sprintf("Location %d", i)
		if i < len(names) {
			name = names[i]
		}

		if err := g.AddLocation(i, name, lat, lon); err != nil {
			return nil, err
		}
		nodes = append(nodes, node{id: i, lat: lat, lon: lon, sector: sector})
	}

	return nodes, nil
}

// highways plans the two long-haul layers: a main strip every five nodes
// and a vertical strip every √n nodes.
func highways(nodes []node, rng *rand.Rand) []roadSpec {
	highwayNames := []string{"Interstate-95", "Highway-1", "Express Route", "Freeway", "Parkway"}
	n := len(nodes)

	specs := make([]roadSpec, 0, n/3)
	for i := 0; i+5 < n; i += 5 {
		specs = append(specs, roadSpec{
			src:    i,
			dest:   i + 5,
			weight: haversine(nodes[i].lat, nodes[i].lon, nodes[i+5].lat, nodes[i+5].lon) * highwayFactor,
			name:   highwayNames[rng.Intn(len(highwayNames))],
		})
	}

	step := int(math.Ceil(math.Sqrt(float64(n))))
	for i := 0; i+step < n; i += step {
		specs = append(specs, roadSpec{
			src:    i,
			dest:   i + step,
			weight: haversine(nodes[i].lat, nodes[i].lon, nodes[i+step].lat, nodes[i+step].lon) * highwayFactor,
			name:   "Highway North-South",
		})
	}

	return specs
}

// arterialRoads plans mid-range connections: pairs 1–4 km apart join
// with probability 0.3.
func arterialRoads(nodes []node, rng *rand.Rand) []roadSpec {
	arterialNames := []string{"Main Street", "Broadway", "Avenue", "Boulevard", "Road"}
	n := len(nodes)

	var specs []roadSpec
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := haversine(nodes[i].lat, nodes[i].lon, nodes[j].lat, nodes[j].lon)
			if dist > 1.0 && dist < 4.0 && rng.Float64() < 0.3 {
				specs = append(specs, roadSpec{
					src:    i,
					dest:   j,
					weight: dist * arterialFactor,
					name:   arterialNames[rng.Intn(len(arterialNames))],
				})
			}
		}
	}

	return specs
}

// localStreets plans dense short hops: pairs under 1.5 km join with
// probability 0.5, named like "42nd Street".
func localStreets(nodes []node, rng *rand.Rand) []roadSpec {
	streetNames := []string{"Street", "Lane", "Drive", "Court", "Way", "Place", "Circle"}
	n := len(nodes)

	var specs []roadSpec
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := haversine(nodes[i].lat, nodes[i].lon, nodes[j].lat, nodes[j].lon)
			if dist < 1.5 && rng.Float64() < 0.5 {
				number := 1 + rng.Intn(100)
				specs = append(specs, roadSpec{
					src:    i,
					dest:   j,
					weight: dist * localFactor,
					name:   fmt.Sprintf("%d%s %s", number, ordinal(number), streetNames[rng.Intn(len(streetNames))]),
				})
			}
		}
	}

	return specs
}

// ringRoads plans an inner and an outer ring: nodes sorted by distance
// from the city center, chained while consecutive hops stay short.
func ringRoads(nodes []node) []roadSpec {
	n := len(nodes)

	var centerLat, centerLon float64
	for _, nd := range nodes {
		centerLat += nd.lat
		centerLon += nd.lon
	}
	centerLat /= float64(n)
	centerLon /= float64(n)

	type ranked struct {
		dist float64
		id   int
	}
	byCenter := make([]ranked, n)
	for i, nd := range nodes {
		byCenter[i] = ranked{dist: haversine(nd.lat, nd.lon, centerLat, centerLon), id: nd.id}
	}
	// Ascending distance from center; equal distances order by id so the
	// ring layout is reproducible.
	sort.Slice(byCenter, func(i, j int) bool {
		if byCenter[i].dist != byCenter[j].dist {
			return byCenter[i].dist < byCenter[j].dist
		}
		return byCenter[i].id < byCenter[j].id
	})

	var specs []roadSpec
	chain := func(from, to int, maxHop float64, name string) {
		a, b := byCenter[from].id, byCenter[to].id
		dist := haversine(nodes[a].lat, nodes[a].lon, nodes[b].lat, nodes[b].lon)
		if dist < maxHop {
			specs = append(specs, roadSpec{src: a, dest: b, weight: dist * ringFactor, name: name})
		}
	}

	innerSize := n / 3
	for i := 0; i+1 < innerSize; i++ {
		chain(i, i+1, 3.0, "Inner Ring Road")
	}
	outerStart := (n * 2) / 3
	for i := outerStart; i+1 < n; i++ {
		chain(i, i+1, 4.0, "Outer Ring Road")
	}

	return specs
}

// shortcuts plans a handful of random long-ish connectors (bridges,
// tunnels) between 2 and 6 km apart.
func shortcuts(nodes []node, rng *rand.Rand) []roadSpec {
	shortcutNames := []string{"Bridge", "Tunnel", "Overpass", "Underpass", "Connector"}
	n := len(nodes)

	count := n / 5
	if count > maxShortcuts {
		count = maxShortcuts
	}

	var specs []roadSpec
	for i := 0; i < count; i++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		dist := haversine(nodes[a].lat, nodes[a].lon, nodes[b].lat, nodes[b].lon)
		if dist > 2.0 && dist < 6.0 {
			specs = append(specs, roadSpec{
				src:    a,
				dest:   b,
				weight: dist * shortcutFactor,
				name:   fmt.Sprintf("%s %d", shortcutNames[rng.Intn(len(shortcutNames))], i+1),
			})
		}
	}

	return specs
}

// connectComponents finds connected components via union-find and links
// each component to the next with a connector highway, guaranteeing one
// component overall. Components are ordered by their smallest member so
// the bridging is deterministic.
func connectComponents(g *roadgraph.Graph, nodes []node) error {
	n := g.NumVertices()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(x, y int) {
		px, py := find(x), find(y)
		if px != py {
			parent[px] = py
		}
	}

	var i int
	var roads []roadgraph.Road
	var err error
	for i = 0; i < n; i++ {
		if roads, err = g.Neighbors(i); err != nil {
			return err
		}
		for _, r := range roads {
			union(i, r.Destination)
		}
	}

	// Group members per root; iterating ids ascending keeps each member
	// list sorted, and sorting the roots keeps the component order fixed.
	members := make(map[int][]int, 4)
	for i = 0; i < n; i++ {
		root := find(i)
		members[root] = append(members[root], i)
	}
	roots := make([]int, 0, len(members))
	for root := range members {
		roots = append(roots, root)
	}
	sort.Ints(roots)

	for i = 0; i+1 < len(roots); i++ {
		a := members[roots[i]][0]
		b := members[roots[i+1]][0]
		dist := haversine(nodes[a].lat, nodes[a].lon, nodes[b].lat, nodes[b].lon)
		if err = g.AddRoad(a, b, dist*arterialFactor, fmt.Sprintf("Connector Highway %d", i+1)); err != nil {
			return err
		}
	}

	return nil
}

// haversine returns the great-circle distance in km between two
// coordinate pairs.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(degrees float64) float64 { return degrees * (math.Pi / 180.0) }

// ordinal returns the English ordinal suffix for n ("st", "nd", "rd", "th").
func ordinal(n int) string {
	if v := n % 100; v >= 11 && v <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
