package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/FACorreiaa/go-travel-itinerary/docs"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api/itinerary"
)

// Config contains the handlers mounted by SetupRouter.
type Config struct {
	ItineraryHandler *itinerary.HandlerImpl
	AllowedOrigins   []string
}

// SetupRouter builds the API router. Server-wide middleware (request ID,
// logging, recoverer) is applied in main before this router is mounted.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/itineraries", cfg.ItineraryHandler.GenerateItinerary)
		r.Get("/places", cfg.ItineraryHandler.SearchPlaces)
		r.Get("/weather/{city}", cfg.ItineraryHandler.CurrentWeather)
	})

	return r
}
