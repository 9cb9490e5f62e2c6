package itinerary

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-travel-itinerary/internal/api"
	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

// destinationRequiredMessage is the alert shown when the planner form is
// submitted without a destination.
const destinationRequiredMessage = "Please enter a destination."

type HandlerImpl struct {
	service Service
	logger  *slog.Logger
}

func NewHandlerImpl(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		service: service,
		logger:  logger,
	}
}

// GenerateItinerary godoc
// @Summary      Generate Itinerary
// @Description  Geocodes the hotel, fetches the current weather and ranks places for the destination. duration accepts a number or a numeric string (1 to 4).
// @Tags         Itinerary
// @Accept       json
// @Produce      json
// @Param        trip body types.TripRequest true "Trip parameters"
// @Success      200 {object} types.ItineraryResponse "Generated itinerary"
// @Failure      400 {object} types.Response "Invalid Input"
// @Failure      500 {object} types.Response "Internal Server Error"
// @Router       /itineraries [post]
func (h *HandlerImpl) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GenerateItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/itineraries"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateItinerary"))
	l.DebugContext(ctx, "Generate itinerary handler invoked")

	var req types.TripRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.GenerateItinerary(ctx, req)
	if err != nil {
		h.writeServiceError(ctx, w, r, l, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// SearchPlaces godoc
// @Summary      Search Places
// @Description  Fetches places for a city and ranks them by intensity. lat and lon, when both given, are the hotel location used by Chill.
// @Tags         Itinerary
// @Produce      json
// @Param        city      query string true  "City name"
// @Param        vibe      query string false "Sightseeing, Foodie, Party or Wellness"
// @Param        intensity query string false "Chill, Half and Half or Action Packed"
// @Param        lat       query number false "Hotel latitude"
// @Param        lon       query number false "Hotel longitude"
// @Success      200 {object} types.PlacesResponse "Ranked places"
// @Failure      400 {object} types.Response "Invalid Input"
// @Failure      502 {object} types.Response "Places provider failed"
// @Router       /places [get]
func (h *HandlerImpl) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "SearchPlaces", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/places"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SearchPlaces"))
	q := r.URL.Query()

	hotel, err := parseHotel(q.Get("lat"), q.Get("lon"))
	if err != nil {
		l.WarnContext(ctx, "Invalid hotel coordinate", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.SearchPlaces(ctx, q.Get("city"), types.Vibe(q.Get("vibe")), types.Intensity(q.Get("intensity")), hotel)
	if err != nil {
		h.writeServiceError(ctx, w, r, l, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// CurrentWeather godoc
// @Summary      Current Weather
// @Description  Returns the current weather for a city, or the last known reading flagged stale when the provider fails.
// @Tags         Itinerary
// @Produce      json
// @Param        city path string true "City name"
// @Success      200 {object} types.WeatherResponse "Weather snapshot"
// @Failure      502 {object} types.Response "Weather provider failed"
// @Router       /weather/{city} [get]
func (h *HandlerImpl) CurrentWeather(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "CurrentWeather", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/weather/{city}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "CurrentWeather"))

	resp, err := h.service.CurrentWeather(ctx, chi.URLParam(r, "city"))
	if err != nil {
		h.writeServiceError(ctx, w, r, l, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

func (h *HandlerImpl) writeServiceError(ctx context.Context, w http.ResponseWriter, r *http.Request, l *slog.Logger, err error) {
	switch {
	case errors.Is(err, ErrDestinationRequired):
		l.InfoContext(ctx, "Rejected request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, destinationRequiredMessage)
	case errors.Is(err, ErrInvalidDuration), errors.Is(err, ErrCityRequired):
		l.InfoContext(ctx, "Rejected request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrWeatherUnavailable), errors.Is(err, ErrPlacesUnavailable):
		l.ErrorContext(ctx, "Upstream provider failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadGateway, "Upstream provider failed")
	case errors.Is(err, context.DeadlineExceeded):
		l.ErrorContext(ctx, "Request timed out", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusGatewayTimeout, "Request timed out")
	case errors.Is(err, context.Canceled):
		l.InfoContext(ctx, "Request cancelled by client")
	default:
		l.ErrorContext(ctx, "Unexpected service error", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal server error")
	}
}

// parseHotel reads an optional lat/lon pair. Both or neither must be given.
func parseHotel(lat, lon string) (*types.Coordinate, error) {
	if lat == "" && lon == "" {
		return nil, nil
	}
	if lat == "" || lon == "" {
		return nil, errors.New("lat and lon must be given together")
	}
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil || la < -90 || la > 90 {
		return nil, errors.New("lat must be a number between -90 and 90")
	}
	lo, err := strconv.ParseFloat(lon, 64)
	if err != nil || lo < -180 || lo > 180 {
		return nil, errors.New("lon must be a number between -180 and 180")
	}
	return &types.Coordinate{Latitude: la, Longitude: lo}, nil
}
