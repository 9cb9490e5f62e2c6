package types

import (
	"time"

	"github.com/google/uuid"
)

// Itinerary is the assembled output of one generation pass. It is replaced
// wholesale on every pass.
type Itinerary struct {
	ID          uuid.UUID `json:"id"`
	City        string    `json:"city"`
	Places      []Place   `json:"places"`
	Hotel       string    `json:"hotel"`
	Vibe        Vibe      `json:"vibe"`
	Intensity   Intensity `json:"intensity"`
	Duration    int       `json:"duration"`
	Budget      Budget    `json:"budget"`
	GeneratedAt time.Time `json:"generated_at"`
}

type AdapterState string

const (
	AdapterOK      AdapterState = "ok"
	AdapterSkipped AdapterState = "skipped"
	AdapterFailed  AdapterState = "failed"
	AdapterStale   AdapterState = "stale"
)

// AdapterStatus reports how one upstream call of a pass ended.
type AdapterStatus struct {
	State AdapterState `json:"state"`
	Error string       `json:"error,omitempty"`
}

// Adapter names used as keys of ItineraryResponse.Status.
const (
	AdapterGeocode = "geocode"
	AdapterWeather = "weather"
	AdapterPlaces  = "places"
	AdapterRouting = "routing"
	AdapterTips    = "tips"
)

type ItineraryResponse struct {
	Itinerary     Itinerary                `json:"itinerary"`
	HotelLocation *Coordinate              `json:"hotel_location"`
	Weather       *WeatherSnapshot         `json:"weather"`
	WeatherStale  bool                     `json:"weather_stale"`
	Route         *Route                   `json:"route,omitempty"`
	Tips          []string                 `json:"tips,omitempty"`
	Status        map[string]AdapterStatus `json:"status"`
}

// WeatherResponse is returned by the standalone weather endpoint.
type WeatherResponse struct {
	City    string           `json:"city"`
	Weather *WeatherSnapshot `json:"weather"`
	Stale   bool             `json:"stale"`
}

// PlacesResponse is returned by the standalone places endpoint.
type PlacesResponse struct {
	City      string    `json:"city"`
	Category  string    `json:"category"`
	Intensity Intensity `json:"intensity"`
	Places    []Place   `json:"places"`
}

// Response represents a generic API response for success or error messages.
type Response struct {
	Success   bool   `json:"success" example:"false"`
	Error     string `json:"error,omitempty" example:"Please enter a destination."`
	RequestID string `json:"request_id,omitempty"`
}
