package places

import (
	"math"
	"slices"

	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

const earthRadiusKm = 6371.0

const (
	CategoryRestaurants        = "restaurants"
	CategoryTouristAttractions = "tourist_attractions"
)

// Per-intensity caps on the number of selected places.
const (
	ChillLimit        = 3
	HalfAndHalfLimit  = 6
	ActionPackedLimit = 10
)

// CategoryForVibe maps Foodie to restaurants and every other vibe to general
// tourist attractions. Budget and duration never influence the query.
func CategoryForVibe(vibe types.Vibe) string {
	if vibe == types.VibeFoodie {
		return CategoryRestaurants
	}
	return CategoryTouristAttractions
}

// LimitFor returns the selection cap for an intensity; unknown values get the
// Action Packed cap.
func LimitFor(intensity types.Intensity) int {
	switch intensity {
	case types.IntensityChill:
		return ChillLimit
	case types.IntensityHalfAndHalf:
		return HalfAndHalfLimit
	default:
		return ActionPackedLimit
	}
}

// HaversineKm returns the great-circle distance between a and b in kilometres.
func HaversineKm(a, b types.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// Rounding can push h just outside [0, 1] for antipodal points.
	h = math.Min(1, math.Max(0, h))
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Select applies the intensity policy to places and returns a new slice.
// Chill with a hotel coordinate sorts by ascending distance from the hotel
// (stable, so ties keep service order) before taking the first three; every
// other case keeps service order.
func Select(all []types.Place, intensity types.Intensity, hotel *types.Coordinate) []types.Place {
	limit := LimitFor(intensity)

	selected := slices.Clone(all)
	if intensity == types.IntensityChill && hotel != nil {
		for i := range selected {
			d := HaversineKm(*hotel, selected[i].Coordinate())
			selected[i].DistanceKm = &d
		}
		slices.SortStableFunc(selected, func(a, b types.Place) int {
			switch {
			case *a.DistanceKm < *b.DistanceKm:
				return -1
			case *a.DistanceKm > *b.DistanceKm:
				return 1
			default:
				return 0
			}
		})
	}

	if len(selected) > limit {
		selected = selected[:limit]
	}
	if selected == nil {
		selected = []types.Place{}
	}
	return selected
}
