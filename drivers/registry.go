// Package drivers implements the fail-soft driver registry.
package drivers

import (
	"fmt"
	"sort"
)

// Registry is a keyed store of Driver records. The zero value is not
// usable; construct with New.
//
// Registry is mutated exclusively by the dispatch request-processing
// path, one request at a time; it carries no internal locking by design.
type Registry struct {
	drivers map[string]Driver
	logs    []string
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{drivers: make(map[string]Driver)}
}

// Add registers a new driver. A duplicate id is rejected fail-soft:
// the call logs the refusal and reports false, leaving the existing
// record untouched.
func (r *Registry) Add(d Driver) bool {
	if _, exists := r.drivers[d.ID]; exists {
		r.logf("Failed to add driver %s: already exists", d.ID)
		return false
	}
	r.drivers[d.ID] = d
	r.logf("Added driver %s (%s) at location %d", d.ID, d.Name, d.CurrentLocation)

	return true
}

// Remove deletes the driver with the given id, reporting false for an
// unknown id.
func (r *Registry) Remove(id string) bool {
	if _, exists := r.drivers[id]; !exists {
		r.logf("Failed to remove driver %s: not found", id)
		return false
	}
	delete(r.drivers, id)
	r.logf("Removed driver %s", id)

	return true
}

// Get returns a copy of the driver record and whether it exists.
// Mutating the returned value never affects registry state.
func (r *Registry) Get(id string) (Driver, bool) {
	d, ok := r.drivers[id]

	return d, ok
}

// UpdateLocation moves a driver to a new map location, reporting false
// for an unknown id.
func (r *Registry) UpdateLocation(id string, newLocation int) bool {
	d, ok := r.drivers[id]
	if !ok {
		r.logf("Failed to update location for driver %s: not found", id)
		return false
	}
	old := d.CurrentLocation
	d.CurrentLocation = newLocation
	r.drivers[id] = d
	r.logf("Updated driver %s location from %d to %d", id, old, newLocation)

	return true
}

// UpdateAvailability flips a driver's availability flag, reporting false
// for an unknown id.
func (r *Registry) UpdateAvailability(id string, available bool) bool {
	d, ok := r.drivers[id]
	if !ok {
		r.logf("Failed to update availability for driver %s: not found", id)
		return false
	}
	d.IsAvailable = available
	r.drivers[id] = d
	state := "busy"
	if available {
		state = "available"
	}
	r.logf("Updated driver %s availability to %s", id, state)

	return true
}

// CompleteRide marks a committed ride as finished: the driver's completed
// counter increments and the driver becomes available again. Reports
// false for an unknown id.
func (r *Registry) CompleteRide(id string) bool {
	d, ok := r.drivers[id]
	if !ok {
		r.logf("Failed to complete ride for driver %s: not found", id)
		return false
	}
	d.CompletedRides++
	d.IsAvailable = true
	r.drivers[id] = d
	r.logf("Driver %s completed ride #%d and is available again", id, d.CompletedRides)

	return true
}

// Available returns copies of all currently available drivers, sorted by
// ascending id for reproducible greedy enumeration.
func (r *Registry) Available() []Driver {
	out := make([]Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		if d.IsAvailable {
			out = append(out, d)
		}
	}
	sortByID(out)

	return out
}

// All returns copies of every driver, sorted by ascending id.
func (r *Registry) All() []Driver {
	out := make([]Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		out = append(out, d)
	}
	sortByID(out)

	return out
}

// Count reports the total number of registered drivers.
func (r *Registry) Count() int { return len(r.drivers) }

// AvailableCount reports how many drivers are currently available.
func (r *Registry) AvailableCount() int {
	n := 0
	for _, d := range r.drivers {
		if d.IsAvailable {
			n++
		}
	}

	return n
}

// Summarize assembles the serialized registry overview.
func (r *Registry) Summarize() Summary {
	return Summary{
		TotalDrivers:     r.Count(),
		AvailableDrivers: r.AvailableCount(),
		Drivers:          r.All(),
	}
}

// Logs returns a copy of the retained operation log.
func (r *Registry) Logs() []string {
	out := make([]string, len(r.logs))
	copy(out, r.logs)

	return out
}

// ClearLogs discards all retained operation log entries.
func (r *Registry) ClearLogs() { r.logs = nil }

func (r *Registry) logf(format string, args ...interface{}) {
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

func sortByID(ds []Driver) {
	sort.Slice(ds, func(i, j int) bool { return ds[i].ID < ds[j].ID })
}
