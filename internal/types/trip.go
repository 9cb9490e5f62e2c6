package types

import (
	"fmt"
	"strconv"
	"strings"
)

type Vibe string

const (
	VibeSightseeing Vibe = "Sightseeing"
	VibeFoodie      Vibe = "Foodie"
	VibeParty       Vibe = "Party"
	VibeWellness    Vibe = "Wellness"
)

type Intensity string

const (
	IntensityChill        Intensity = "Chill"
	IntensityHalfAndHalf  Intensity = "Half and Half"
	IntensityActionPacked Intensity = "Action Packed"
)

// Budget is collected from the planner form but does not affect place selection.
type Budget string

const DefaultBudget Budget = "Mid-range"

const (
	MinDuration = 1
	MaxDuration = 4
)

// TripDuration is the trip length in days. It decodes from a JSON number or
// from a numeric string, as planner forms post the selected option as text.
type TripDuration int

func (d *TripDuration) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*d = 0
			return nil
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("duration must be a whole number of days, got %s", b)
	}
	*d = TripDuration(n)
	return nil
}

// TripRequest is the input of a single itinerary generation pass.
type TripRequest struct {
	Destination string       `json:"destination" example:"Rome"`
	Hotel       string       `json:"hotel,omitempty" example:"Hotel Artemide"`
	Duration    TripDuration `json:"duration,omitempty" swaggertype:"integer" example:"2"`
	Vibe        Vibe         `json:"vibe,omitempty" example:"Sightseeing"`
	Budget      Budget       `json:"budget,omitempty" example:"Mid-range"`
	Intensity   Intensity    `json:"intensity,omitempty" example:"Chill"`
}

// WithDefaults trims the free-text fields and fills unset fields with the
// planner form defaults.
func (r TripRequest) WithDefaults() TripRequest {
	r.Destination = strings.TrimSpace(r.Destination)
	r.Hotel = strings.TrimSpace(r.Hotel)
	if r.Duration == 0 {
		r.Duration = MinDuration
	}
	if r.Vibe == "" {
		r.Vibe = VibeSightseeing
	}
	if r.Budget == "" {
		r.Budget = DefaultBudget
	}
	if r.Intensity == "" {
		r.Intensity = IntensityChill
	}
	return r
}
