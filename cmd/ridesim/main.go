// Command ridesim generates a synthetic city, seeds the demo driver
// roster and runs a batch of random ride requests through the dispatch
// engine, printing each match and the demand snapshot at the end.
//
// Usage:
//
//	ridesim -nodes 50 -requests 15 -seed 42 -speed 40 [-export]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/ridegraph/citygen"
	"github.com/katalvlaran/ridegraph/dispatch"
)

func main() {
	var (
		numNodes    = flag.Int("nodes", 50, "number of locations to generate")
		numRequests = flag.Int("requests", 15, "number of random ride requests")
		seed        = flag.Int64("seed", 42, "generator seed")
		avgSpeed    = flag.Float64("speed", 40.0, "average driving speed in km/h")
		export      = flag.Bool("export", false, "dump the generated graph as JSON and exit")
		verbose     = flag.Bool("v", false, "print dispatch and routing logs per request")
	)
	flag.Parse()

	city, err := citygen.Generate(*numNodes, citygen.WithSeed(*seed))
	if err != nil {
		fatal(err)
	}

	if *export {
		blob, err := json.MarshalIndent(city.Graph.ExportGraph(), "", "  ")
		if err != nil {
			fatal(err)
		}
		fmt.Println(string(blob))
		return
	}

	engine, err := dispatch.New(city.Graph, dispatch.WithAvgSpeed(*avgSpeed))
	if err != nil {
		fatal(err)
	}
	for _, d := range city.Drivers {
		engine.AddDriver(d)
	}

	summary := engine.Registry().Summarize()
	fmt.Printf("Generated city: %d locations, %d roads\n",
		*numNodes, len(city.Graph.ExportGraph().Edges))
	fmt.Printf("Drivers on shift: %d total, %d available\n\n",
		summary.TotalDrivers, summary.AvailableDrivers)

	for _, req := range citygen.RandomRequests(city.Graph, *numRequests, citygen.WithSeed(*seed)) {
		engine.Enqueue(req)
	}

	matched := 0
	for engine.QueueSize() > 0 {
		result := engine.ProcessNext()
		printResult(result, *verbose)
		if result.Success {
			matched++
		}
	}

	stats := engine.AnalyzeDemand()
	fmt.Printf("\n=== Demand snapshot ===\n")
	fmt.Printf("Requests in window: %d\n", stats.TotalRequests)
	fmt.Printf("Matched: %d, Failed: %d\n", stats.SuccessfulMatches, stats.FailedMatches)
	fmt.Printf("Average wait: %.1fs\n", stats.AvgWaitTime)
	fmt.Printf("Hotspots: %v\n", stats.Hotspots)

	if matched == 0 {
		os.Exit(1)
	}
}

func printResult(r dispatch.Result, verbose bool) {
	if !r.Success {
		fmt.Printf("FAILED: %s\n", r.ErrorMessage)
		return
	}

	fmt.Printf("%s (%s) | pickup leg %.1f, trip %.1f, total %.1f | ETA %.1f min\n",
		r.AssignedDriver.Name, r.AssignedDriver.ID,
		r.DriverToPickupDistance, r.PickupToDestinationDistance,
		r.TotalDistance, r.TotalETA)
	if len(r.PickupToDestinationPath) > 0 {
		fmt.Printf("    route: %s\n", joinInts(r.PickupToDestinationPath))
	}
	if verbose {
		for _, line := range r.MatchingLogs {
			fmt.Printf("    match | %s\n", line)
		}
		for _, line := range r.DijkstraLogs {
			fmt.Printf("    route | %s\n", line)
		}
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " -> ")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "ridesim:", err)
	os.Exit(1)
}
