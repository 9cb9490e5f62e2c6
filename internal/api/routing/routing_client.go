package routing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-travel-itinerary/internal/api"
	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

var (
	ErrRouteFailed     = errors.New("routing: external call failed")
	ErrTooFewWaypoints = errors.New("routing: at least two waypoints are required")
)

const (
	profileFootWalking   = "foot-walking"
	directionsPathFormat = "/v2/directions/%s/geojson"
)

// Client plans walking routes through OpenRouteService.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL, apiKey string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

type directionsRequest struct {
	Coordinates [][2]float64 `json:"coordinates"` // [lon, lat]
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// Walk returns a walking route visiting waypoints in order.
func (c *Client) Walk(ctx context.Context, waypoints []types.Coordinate) (*types.Route, error) {
	ctx, span := otel.Tracer("RoutingClient").Start(ctx, "Walk", trace.WithAttributes(
		attribute.Int("routing.waypoints", len(waypoints)),
	))
	defer span.End()

	if len(waypoints) < 2 {
		return nil, ErrTooFewWaypoints
	}

	body := directionsRequest{Coordinates: make([][2]float64, len(waypoints))}
	for i, w := range waypoints {
		body.Coordinates[i] = [2]float64{w.Longitude, w.Latitude}
	}

	header := http.Header{}
	header.Set("Authorization", c.apiKey)

	var resp directionsResponse
	endpoint := c.baseURL + fmt.Sprintf(directionsPathFormat, profileFootWalking)
	if err := api.PostJSON(ctx, c.httpClient, endpoint, header, body, &resp); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "directions request failed")
		return nil, fmt.Errorf("%w: %w", ErrRouteFailed, err)
	}
	if len(resp.Features) == 0 {
		err := errors.New("directions response has no features")
		c.logger.DebugContext(ctx, "Empty directions response", slog.Int("waypoints", len(waypoints)))
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed payload")
		return nil, fmt.Errorf("%w: %w", ErrRouteFailed, err)
	}

	f := resp.Features[0]
	route := &types.Route{
		Coordinates: make([][2]float64, 0, len(f.Geometry.Coordinates)),
		DistanceM:   f.Properties.Summary.Distance,
		DurationS:   f.Properties.Summary.Duration,
	}
	for _, p := range f.Geometry.Coordinates {
		if len(p) < 2 {
			continue
		}
		route.Coordinates = append(route.Coordinates, [2]float64{p[1], p[0]})
	}

	c.logger.DebugContext(ctx, "Walking route planned",
		slog.Int("waypoints", len(waypoints)),
		slog.Float64("distance_m", route.DistanceM),
		slog.Float64("duration_s", route.DurationS))
	span.SetAttributes(attribute.Float64("routing.distance_m", route.DistanceM))
	span.SetStatus(codes.Ok, "route planned")
	return route, nil
}
