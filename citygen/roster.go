package citygen

import "github.com/katalvlaran/ridegraph/drivers"

// locationNames returns the curated city landmark names, assigned to
// node ids in order; ids past the list fall back to "Location N".
func locationNames() []string {
	return []string{
		// Downtown
		"City Hall", "Financial District", "Business Center", "Central Station", "City Square",
		// Residential
		"Maple Grove", "Oak Hills", "Pine Valley", "Riverside", "Sunset Heights", "Harbor View",
		// Commercial
		"Shopping Mall", "Market Place", "Plaza", "Trade Center", "Outlet Mall",
		// Education
		"University", "College", "High School", "Elementary School", "Library",
		// Healthcare
		"General Hospital", "Medical Center", "Clinic", "Emergency Care",
		// Transport
		"Airport", "Train Station", "Bus Terminal", "Metro Hub", "Ferry Terminal",
		// Recreation
		"Central Park", "Sports Stadium", "Theater", "Museum", "Convention Center", "Zoo",
		// Industrial
		"Industrial Park", "Warehouse District", "Factory Zone", "Tech Park",
		// Misc
		"Hotel District", "Restaurant Row", "Gym", "Police Station", "Fire Station", "Post Office",
	}
}

// SeedDrivers returns the demo roster of twelve drivers. Home locations
// beyond the generated map fold back in with modulo so the roster works
// for any city size.
func SeedDrivers(numNodes int) []drivers.Driver {
	roster := []drivers.Driver{
		{ID: "D001", Name: "Rajesh Kumar", CurrentLocation: 0, IsAvailable: true, VehicleType: "Sedan", Rating: 4.8, CompletedRides: 234},
		{ID: "D002", Name: "Priya Sharma", CurrentLocation: 8, IsAvailable: true, VehicleType: "SUV", Rating: 4.9, CompletedRides: 412},
		{ID: "D003", Name: "Amit Patel", CurrentLocation: 15, IsAvailable: true, VehicleType: "Sedan", Rating: 4.7, CompletedRides: 189},
		{ID: "D004", Name: "Sneha Reddy", CurrentLocation: 22, IsAvailable: true, VehicleType: "Compact", Rating: 4.6, CompletedRides: 156},
		{ID: "D005", Name: "Vikram Singh", CurrentLocation: 30, IsAvailable: true, VehicleType: "SUV", Rating: 4.9, CompletedRides: 567},
		{ID: "D006", Name: "Anjali Verma", CurrentLocation: 35, IsAvailable: false, VehicleType: "Sedan", Rating: 4.8, CompletedRides: 301},
		{ID: "D007", Name: "Arjun Mehta", CurrentLocation: 42, IsAvailable: true, VehicleType: "Luxury", Rating: 5.0, CompletedRides: 89},
		{ID: "D008", Name: "Kavya Iyer", CurrentLocation: 48, IsAvailable: true, VehicleType: "Sedan", Rating: 4.7, CompletedRides: 267},
		{ID: "D009", Name: "Rahul Gupta", CurrentLocation: 12, IsAvailable: true, VehicleType: "SUV", Rating: 4.9, CompletedRides: 345},
		{ID: "D010", Name: "Deepika Nair", CurrentLocation: 25, IsAvailable: true, VehicleType: "Compact", Rating: 4.8, CompletedRides: 278},
		{ID: "D011", Name: "Sanjay Desai", CurrentLocation: 38, IsAvailable: true, VehicleType: "Sedan", Rating: 4.6, CompletedRides: 198},
		{ID: "D012", Name: "Neha Kapoor", CurrentLocation: 45, IsAvailable: false, VehicleType: "Luxury", Rating: 4.9, CompletedRides: 156},
	}

	for i := range roster {
		roster[i].CurrentLocation %= numNodes
	}

	return roster
}
