package geocode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
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

// ErrGeocodeFailed covers transport errors, non-2xx answers and malformed payloads.
var ErrGeocodeFailed = errors.New("geocode: external call failed")

// Client resolves free-text hotel queries through a Nominatim search endpoint.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	cache      *cache.Cache
	logger     *slog.Logger
}

func NewClient(baseURL, userAgent string, httpClient *http.Client, c *cache.Cache, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: httpClient,
		cache:      c,
		logger:     logger,
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode looks up "<hotel> <destination>" and returns the first candidate.
// A nil coordinate with a nil error means the search had no result.
func (c *Client) Geocode(ctx context.Context, hotel, destination string) (*types.Coordinate, error) {
	query := hotel + " " + destination
	ctx, span := otel.Tracer("GeocodeClient").Start(ctx, "Geocode", trace.WithAttributes(
		attribute.String("geocode.query", query),
	))
	defer span.End()

	cacheKey := strings.ToLower(query)
	if cached, found := c.cache.Get(cacheKey); found {
		if coord, ok := cached.(types.Coordinate); ok {
			span.AddEvent("Cache hit")
			metrics.CacheHit(ctx, types.AdapterGeocode)
			return &coord, nil
		}
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	// Nominatim rejects requests without an identifying User-Agent.
	header := http.Header{}
	header.Set("User-Agent", c.userAgent)

	var results []searchResult
	if err := api.GetJSON(ctx, c.httpClient, c.baseURL+"/search?"+params.Encode(), header, &results); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "geocode request failed")
		return nil, fmt.Errorf("%w: %w", ErrGeocodeFailed, err)
	}

	if len(results) == 0 {
		c.logger.DebugContext(ctx, "No geocoding result", slog.String("query", query))
		span.SetStatus(codes.Ok, "no result")
		return nil, nil
	}

	coord, err := parseCoordinate(results[0])
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed coordinate")
		return nil, fmt.Errorf("%w: %w", ErrGeocodeFailed, err)
	}

	c.cache.Set(cacheKey, coord, cache.DefaultExpiration)
	span.SetStatus(codes.Ok, "geocoded")
	return &coord, nil
}

func parseCoordinate(r searchResult) (types.Coordinate, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return types.Coordinate{}, fmt.Errorf("parse lat %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return types.Coordinate{}, fmt.Errorf("parse lon %q: %w", r.Lon, err)
	}
	return types.Coordinate{Latitude: lat, Longitude: lon}, nil
}
