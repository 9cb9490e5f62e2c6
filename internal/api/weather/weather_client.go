package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-travel-itinerary/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api"
	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

// ErrWeatherFailed covers transport errors, non-2xx answers and malformed payloads.
var ErrWeatherFailed = errors.New("weather: external call failed")

// Client fetches current conditions from the OpenWeatherMap weather endpoint.
type Client struct {
	baseURL     string
	apiKey      string
	iconBaseURL string
	httpClient  *http.Client
	cache       *cache.Cache
	// lastKnown never expires; it holds the latest good snapshot per city.
	lastKnown *cache.Cache
	logger    *slog.Logger
	now       func() time.Time
}

func NewClient(baseURL, apiKey, iconBaseURL string, httpClient *http.Client, c *cache.Cache, logger *slog.Logger) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		iconBaseURL: strings.TrimRight(iconBaseURL, "/"),
		httpClient:  httpClient,
		cache:       c,
		lastKnown:   cache.New(cache.NoExpiration, 0),
		logger:      logger,
		now:         time.Now,
	}
}

type currentResponse struct {
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
}

// Current returns the current weather for city in metric units.
func (c *Client) Current(ctx context.Context, city string) (*types.WeatherSnapshot, error) {
	ctx, span := otel.Tracer("WeatherClient").Start(ctx, "Current", trace.WithAttributes(
		attribute.String("city.name", city),
	))
	defer span.End()

	key := cityKey(city)
	if cached, found := c.cache.Get(key); found {
		if snap, ok := cached.(types.WeatherSnapshot); ok {
			span.AddEvent("Cache hit")
			metrics.CacheHit(ctx, types.AdapterWeather)
			return &snap, nil
		}
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	var body currentResponse
	if err := api.GetJSON(ctx, c.httpClient, c.baseURL+"/data/2.5/weather?"+params.Encode(), nil, &body); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "weather request failed")
		return nil, fmt.Errorf("%w: %w", ErrWeatherFailed, err)
	}

	if body.Main.Temp == nil || len(body.Weather) == 0 {
		err := errors.New("payload is missing main.temp or weather[0]")
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed payload")
		return nil, fmt.Errorf("%w: %w", ErrWeatherFailed, err)
	}

	snap := types.WeatherSnapshot{
		Temperature: *body.Main.Temp,
		Condition:   body.Weather[0].Main,
		IconURL:     c.IconURL(body.Weather[0].Icon),
		FetchedAt:   c.now().UTC(),
	}
	c.cache.Set(key, snap, cache.DefaultExpiration)
	c.lastKnown.Set(key, snap, cache.NoExpiration)

	span.SetAttributes(attribute.Float64("weather.temperature", snap.Temperature))
	span.SetStatus(codes.Ok, "weather fetched")
	return &snap, nil
}

// LastKnown returns the most recent successful snapshot for city, however old.
func (c *Client) LastKnown(city string) (*types.WeatherSnapshot, bool) {
	cached, found := c.lastKnown.Get(cityKey(city))
	if !found {
		return nil, false
	}
	snap, ok := cached.(types.WeatherSnapshot)
	if !ok {
		return nil, false
	}
	return &snap, true
}

// IconURL builds the display icon URL for an OpenWeatherMap icon code.
func (c *Client) IconURL(code string) string {
	return fmt.Sprintf("%s/%s@2x.png", c.iconBaseURL, code)
}

func cityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
