package container

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/patrickmn/go-cache"

	"github.com/FACorreiaa/go-travel-itinerary/config"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api/geocode"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api/itinerary"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api/places"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api/routing"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api/tips"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api/weather"
	"github.com/FACorreiaa/go-travel-itinerary/internal/router"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *slog.Logger
	ItineraryService *itinerary.ServiceImpl
	ItineraryHandler *itinerary.HandlerImpl
}

// NewContainer builds the upstream adapters and the itinerary service.
// Routing and tips are only enabled when their API keys are configured.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	httpClient := api.NewHTTPClient(cfg.Client.Timeout)

	newCache := func() *cache.Cache { return cache.New(cfg.Cache.TTL, cfg.Cache.Cleanup) }

	geocoder := geocode.NewClient(cfg.Providers.Geocode.BaseURL, cfg.Client.UserAgent, httpClient, newCache(), logger)
	weatherClient := weather.NewClient(cfg.Providers.Weather.BaseURL, cfg.Providers.Weather.APIKey,
		cfg.Providers.Weather.IconBaseURL, httpClient, newCache(), logger)
	placesClient := places.NewClient(cfg.Providers.Places.BaseURL, cfg.Providers.Places.APIKey, httpClient, newCache(), logger)

	if cfg.Providers.Weather.APIKey == "" {
		logger.Warn("No OpenWeatherMap API key configured, weather calls will fail")
	}
	if cfg.Providers.Places.APIKey == "" {
		logger.Warn("No OpenTripMap API key configured, places calls will fail")
	}

	// Interfaces stay nil when disabled; a typed nil pointer would not compare equal to nil.
	var planner itinerary.RoutePlanner
	if key := cfg.Providers.Routing.APIKey; key != "" {
		planner = routing.NewClient(cfg.Providers.Routing.BaseURL, key, httpClient, logger)
	} else {
		logger.Info("Walking routes disabled, no OpenRouteService API key")
	}

	var tipsGen itinerary.TipsGenerator
	if key := cfg.Providers.Tips.APIKey; key != "" {
		g, err := tips.NewGenerator(ctx, key, cfg.Providers.Tips.Model, logger)
		if err != nil {
			logger.Error("Failed to initialize tips generator", slog.Any("error", err))
			return nil, err
		}
		tipsGen = g
	} else {
		logger.Info("Trip tips disabled, no Gemini API key")
	}

	service := itinerary.NewServiceImpl(geocoder, weatherClient, placesClient, planner, tipsGen, logger)
	handler := itinerary.NewHandlerImpl(service, logger)

	return &Container{
		Config:           cfg,
		Logger:           logger,
		ItineraryService: service,
		ItineraryHandler: handler,
	}, nil
}

// Router returns the API router for the container's handlers.
func (c *Container) Router() http.Handler {
	return router.SetupRouter(&router.Config{
		ItineraryHandler: c.ItineraryHandler,
		AllowedOrigins:   c.Config.Server.AllowedOrigins,
	})
}
