// Package drivers defines the Driver record and registry summary shapes.
package drivers

// Driver is one mobile agent: identity, display name, current map
// location, availability, and ride statistics. Records are mutated in
// place by the Registry on location/availability updates and never
// deleted except by explicit removal.
type Driver struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CurrentLocation int     `json:"currentLocation"`
	IsAvailable     bool    `json:"isAvailable"`
	VehicleType     string  `json:"vehicleType"`
	Rating          float64 `json:"rating"`
	CompletedRides  int     `json:"completedRides"`
}

// Summary is the serialized overview of a Registry: counts plus every
// driver sorted by id.
type Summary struct {
	TotalDrivers     int      `json:"totalDrivers"`
	AvailableDrivers int      `json:"availableDrivers"`
	Drivers          []Driver `json:"drivers"`
}
