package places

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-travel-itinerary/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api"
	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

// ErrPlacesFailed covers transport errors, non-2xx answers and malformed payloads.
var ErrPlacesFailed = errors.New("places: external call failed")

// Client queries the OpenTripMap city places endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *cache.Cache
	logger     *slog.Logger
}

func NewClient(baseURL, apiKey string, httpClient *http.Client, c *cache.Cache, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		cache:      c,
		logger:     logger,
	}
}

type featureCollection struct {
	Features []struct {
		Properties struct {
			Name string `json:"name"`
		} `json:"properties"`
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
	} `json:"features"`
}

// Fetch returns the places of city in the given category, in service order.
func (c *Client) Fetch(ctx context.Context, city, category string) ([]types.Place, error) {
	ctx, span := otel.Tracer("PlacesClient").Start(ctx, "Fetch", trace.WithAttributes(
		attribute.String("city.name", city),
		attribute.String("places.category", category),
	))
	defer span.End()

	cacheKey := strings.ToLower(strings.TrimSpace(city)) + "|" + category
	if cached, found := c.cache.Get(cacheKey); found {
		if places, ok := cached.([]types.Place); ok {
			span.AddEvent("Cache hit")
			metrics.CacheHit(ctx, types.AdapterPlaces)
			return places, nil
		}
	}

	params := url.Values{}
	params.Set("name", city)
	params.Set("kinds", category)
	params.Set("apikey", c.apiKey)

	var fc featureCollection
	if err := api.GetJSON(ctx, c.httpClient, c.baseURL+"/0.1/en/places/city?"+params.Encode(), nil, &fc); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "places request failed")
		return nil, fmt.Errorf("%w: %w", ErrPlacesFailed, err)
	}

	places := make([]types.Place, 0, len(fc.Features))
	for _, f := range fc.Features {
		if len(f.Geometry.Coordinates) < 2 {
			c.logger.DebugContext(ctx, "Skipping place without coordinates", slog.String("name", f.Properties.Name))
			continue
		}
		places = append(places, types.Place{
			Name:      f.Properties.Name,
			Latitude:  f.Geometry.Coordinates[1],
			Longitude: f.Geometry.Coordinates[0],
		})
	}

	c.cache.Set(cacheKey, places, cache.DefaultExpiration)
	span.SetAttributes(attribute.Int("places.count", len(places)))
	span.SetStatus(codes.Ok, "places fetched")
	return places, nil
}
