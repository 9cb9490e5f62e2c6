package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-travel-itinerary/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api/places"
	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

var (
	ErrDestinationRequired = errors.New("destination is required")
	ErrInvalidDuration     = fmt.Errorf("duration must be between %d and %d days", types.MinDuration, types.MaxDuration)
	ErrCityRequired        = errors.New("city is required")
	ErrWeatherUnavailable  = errors.New("weather is unavailable and no earlier reading exists")
	ErrPlacesUnavailable   = errors.New("places are unavailable")
)

type Geocoder interface {
	Geocode(ctx context.Context, hotel, destination string) (*types.Coordinate, error)
}

type WeatherProvider interface {
	Current(ctx context.Context, city string) (*types.WeatherSnapshot, error)
	LastKnown(city string) (*types.WeatherSnapshot, bool)
}

type PlacesProvider interface {
	Fetch(ctx context.Context, city, category string) ([]types.Place, error)
}

// RoutePlanner and TipsGenerator are optional. A nil one is reported as skipped.
type RoutePlanner interface {
	Walk(ctx context.Context, waypoints []types.Coordinate) (*types.Route, error)
}

type TipsGenerator interface {
	Tips(ctx context.Context, req types.TripRequest, itinerary *types.Itinerary) ([]string, error)
}

var _ Service = (*ServiceImpl)(nil)

// Service defines the itinerary planning operations.
type Service interface {
	GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.ItineraryResponse, error)
	SearchPlaces(ctx context.Context, city string, vibe types.Vibe, intensity types.Intensity, hotel *types.Coordinate) (*types.PlacesResponse, error)
	CurrentWeather(ctx context.Context, city string) (*types.WeatherResponse, error)
}

type ServiceImpl struct {
	logger   *slog.Logger
	geocoder Geocoder
	weather  WeatherProvider
	places   PlacesProvider
	routing  RoutePlanner
	tips     TipsGenerator
	now      func() time.Time
}

func NewServiceImpl(geocoder Geocoder, weather WeatherProvider, placesProvider PlacesProvider,
	routing RoutePlanner, tips TipsGenerator, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		geocoder: geocoder,
		weather:  weather,
		places:   placesProvider,
		routing:  routing,
		tips:     tips,
		now:      time.Now,
	}
}

// GenerateItinerary runs one planning pass. Geocoding, weather and the places
// fetch run concurrently; ranking waits for the hotel coordinate. Upstream
// failures are reported in the response status and never fail the pass.
func (s *ServiceImpl) GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.ItineraryResponse, error) {
	req = req.WithDefaults()

	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary", trace.WithAttributes(
		attribute.String("trip.destination", req.Destination),
		attribute.String("trip.vibe", string(req.Vibe)),
		attribute.String("trip.intensity", string(req.Intensity)),
		attribute.Int("trip.duration", int(req.Duration)),
		attribute.Bool("trip.has_hotel", req.Hotel != ""),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "GenerateItinerary"), slog.String("destination", req.Destination))

	if req.Destination == "" {
		span.SetStatus(codes.Error, "destination required")
		return nil, ErrDestinationRequired
	}
	if req.Duration < types.MinDuration || req.Duration > types.MaxDuration {
		span.SetStatus(codes.Error, "invalid duration")
		return nil, ErrInvalidDuration
	}

	start := time.Now()
	m := metrics.Get()
	category := places.CategoryForVibe(req.Vibe)

	var (
		hotel       *types.Coordinate
		snapshot    *types.WeatherSnapshot
		stale       bool
		fetched     []types.Place
		geoStatus   types.AdapterStatus
		wxStatus    types.AdapterStatus
		placeStatus types.AdapterStatus
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if req.Hotel == "" {
			geoStatus = types.AdapterStatus{State: types.AdapterSkipped}
			return nil
		}
		t := time.Now()
		coord, err := s.geocoder.Geocode(gctx, req.Hotel, req.Destination)
		s.observe(gctx, types.AdapterGeocode, t, err)
		if err != nil {
			l.WarnContext(gctx, "Hotel geocoding failed", slog.String("hotel", req.Hotel), slog.Any("error", err))
			span.RecordError(err)
			geoStatus = failed(err)
			return nil
		}
		if coord == nil {
			l.InfoContext(gctx, "Hotel not found", slog.String("hotel", req.Hotel))
		}
		hotel = coord
		geoStatus = types.AdapterStatus{State: types.AdapterOK}
		return nil
	})
	g.Go(func() error {
		t := time.Now()
		current, err := s.weather.Current(gctx, req.Destination)
		s.observe(gctx, types.AdapterWeather, t, err)
		if err != nil {
			span.RecordError(err)
			if last, ok := s.weather.LastKnown(req.Destination); ok {
				l.WarnContext(gctx, "Weather fetch failed, keeping last known reading", slog.Any("error", err))
				snapshot, stale = last, true
				wxStatus = types.AdapterStatus{State: types.AdapterStale, Error: err.Error()}
				return nil
			}
			l.WarnContext(gctx, "Weather fetch failed", slog.Any("error", err))
			wxStatus = failed(err)
			return nil
		}
		snapshot = current
		wxStatus = types.AdapterStatus{State: types.AdapterOK}
		return nil
	})
	g.Go(func() error {
		t := time.Now()
		list, err := s.places.Fetch(gctx, req.Destination, category)
		s.observe(gctx, types.AdapterPlaces, t, err)
		if err != nil {
			l.ErrorContext(gctx, "Places fetch failed", slog.String("category", category), slog.Any("error", err))
			span.RecordError(err)
			placeStatus = failed(err)
			return nil
		}
		fetched = list
		placeStatus = types.AdapterStatus{State: types.AdapterOK}
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "pass cancelled")
		m.ItineraryRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "cancelled")))
		return nil, err
	}

	selected := places.Select(fetched, req.Intensity, hotel)

	resp := &types.ItineraryResponse{
		Itinerary: types.Itinerary{
			ID:          uuid.New(),
			City:        req.Destination,
			Places:      selected,
			Hotel:       req.Hotel,
			Vibe:        req.Vibe,
			Intensity:   req.Intensity,
			Duration:    int(req.Duration),
			Budget:      req.Budget,
			GeneratedAt: s.now().UTC(),
		},
		HotelLocation: hotel,
		Weather:       snapshot,
		WeatherStale:  stale,
		Status: map[string]types.AdapterStatus{
			types.AdapterGeocode: geoStatus,
			types.AdapterWeather: wxStatus,
			types.AdapterPlaces:  placeStatus,
		},
	}

	s.enrich(ctx, l, req, resp)

	m.ItineraryRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "ok")))
	m.ItineraryDurationSeconds.Record(ctx, time.Since(start).Seconds())

	span.SetAttributes(attribute.Int("itinerary.places", len(selected)))
	span.SetStatus(codes.Ok, "itinerary generated")
	l.InfoContext(ctx, "Itinerary generated",
		slog.String("itinerary_id", resp.Itinerary.ID.String()),
		slog.Int("places", len(selected)),
		slog.Duration("elapsed", time.Since(start)))
	return resp, nil
}

// enrich adds the walking route and the tips. Both only read the assembled
// itinerary, so they run side by side.
func (s *ServiceImpl) enrich(ctx context.Context, l *slog.Logger, req types.TripRequest, resp *types.ItineraryResponse) {
	waypoints := make([]types.Coordinate, 0, len(resp.Itinerary.Places)+1)
	if resp.HotelLocation != nil {
		waypoints = append(waypoints, *resp.HotelLocation)
	}
	for _, p := range resp.Itinerary.Places {
		waypoints = append(waypoints, p.Coordinate())
	}

	var (
		routeStatus = types.AdapterStatus{State: types.AdapterSkipped}
		tipsStatus  = types.AdapterStatus{State: types.AdapterSkipped}
		route       *types.Route
		tips        []string
	)

	var g errgroup.Group
	if s.routing != nil && len(waypoints) >= 2 {
		g.Go(func() error {
			t := time.Now()
			r, err := s.routing.Walk(ctx, waypoints)
			s.observe(ctx, types.AdapterRouting, t, err)
			if err != nil {
				l.WarnContext(ctx, "Walking route failed", slog.Int("waypoints", len(waypoints)), slog.Any("error", err))
				routeStatus = failed(err)
				return nil
			}
			route = r
			routeStatus = types.AdapterStatus{State: types.AdapterOK}
			return nil
		})
	}
	if s.tips != nil {
		g.Go(func() error {
			t := time.Now()
			out, err := s.tips.Tips(ctx, req, &resp.Itinerary)
			s.observe(ctx, types.AdapterTips, t, err)
			if err != nil {
				l.WarnContext(ctx, "Trip tips failed", slog.Any("error", err))
				tipsStatus = failed(err)
				return nil
			}
			tips = out
			tipsStatus = types.AdapterStatus{State: types.AdapterOK}
			return nil
		})
	}
	_ = g.Wait()

	resp.Route = route
	resp.Tips = tips
	resp.Status[types.AdapterRouting] = routeStatus
	resp.Status[types.AdapterTips] = tipsStatus
}

// SearchPlaces fetches and ranks places for a city without geocoding or weather.
func (s *ServiceImpl) SearchPlaces(ctx context.Context, city string, vibe types.Vibe, intensity types.Intensity, hotel *types.Coordinate) (*types.PlacesResponse, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "SearchPlaces", trace.WithAttributes(
		attribute.String("places.city", city),
		attribute.String("places.intensity", string(intensity)),
	))
	defer span.End()

	if city == "" {
		return nil, ErrCityRequired
	}
	if intensity == "" {
		intensity = types.IntensityChill
	}
	category := places.CategoryForVibe(vibe)

	t := time.Now()
	list, err := s.places.Fetch(ctx, city, category)
	s.observe(ctx, types.AdapterPlaces, t, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "Places fetch failed", slog.String("city", city), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "places fetch failed")
		return nil, fmt.Errorf("%w: %w", ErrPlacesUnavailable, err)
	}

	span.SetStatus(codes.Ok, "places ranked")
	return &types.PlacesResponse{
		City:      city,
		Category:  category,
		Intensity: intensity,
		Places:    places.Select(list, intensity, hotel),
	}, nil
}

// CurrentWeather returns the current reading for city, falling back to the
// last known one when the provider fails.
func (s *ServiceImpl) CurrentWeather(ctx context.Context, city string) (*types.WeatherResponse, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "CurrentWeather", trace.WithAttributes(
		attribute.String("weather.city", city),
	))
	defer span.End()

	if city == "" {
		return nil, ErrCityRequired
	}

	t := time.Now()
	snapshot, err := s.weather.Current(ctx, city)
	s.observe(ctx, types.AdapterWeather, t, err)
	if err == nil {
		span.SetStatus(codes.Ok, "weather fetched")
		return &types.WeatherResponse{City: city, Weather: snapshot}, nil
	}

	span.RecordError(err)
	if last, ok := s.weather.LastKnown(city); ok {
		s.logger.WarnContext(ctx, "Weather fetch failed, serving last known reading", slog.String("city", city), slog.Any("error", err))
		return &types.WeatherResponse{City: city, Weather: last, Stale: true}, nil
	}
	s.logger.ErrorContext(ctx, "Weather fetch failed", slog.String("city", city), slog.Any("error", err))
	span.SetStatus(codes.Error, "weather unavailable")
	return nil, fmt.Errorf("%w: %w", ErrWeatherUnavailable, err)
}

func (s *ServiceImpl) observe(ctx context.Context, adapter string, start time.Time, err error) {
	m := metrics.Get()
	attrs := metric.WithAttributes(attribute.String("adapter", adapter))
	m.AdapterCallDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil {
		m.AdapterErrorsTotal.Add(ctx, 1, attrs)
	}
}

func failed(err error) types.AdapterStatus {
	return types.AdapterStatus{State: types.AdapterFailed, Error: err.Error()}
}
