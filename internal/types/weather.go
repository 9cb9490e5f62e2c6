package types

import "time"

type WeatherSnapshot struct {
	Temperature float64   `json:"temperature"` // °C
	Condition   string    `json:"condition"`
	IconURL     string    `json:"icon_url"`
	FetchedAt   time.Time `json:"fetched_at"`
}
