package types

// Coordinate is a point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is a named point of interest returned by the places provider.
type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// DistanceKm is only set when the place was ranked by proximity to the hotel.
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

func (p Place) Coordinate() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

// Route is a walking polyline through the itinerary waypoints.
type Route struct {
	Coordinates [][2]float64 `json:"coordinates"` // [lat, lon] pairs
	DistanceM   float64      `json:"distance_m"`
	DurationS   float64      `json:"duration_s"`
}
