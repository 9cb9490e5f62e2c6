package metrics

import (
	"context"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	ItineraryRequestsTotal     metric.Int64Counter
	ItineraryDurationSeconds   metric.Float64Histogram
	AdapterCallDurationSeconds metric.Float64Histogram
	AdapterErrorsTotal         metric.Int64Counter
	CacheHitsTotal             metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments once, from the global MeterProvider.
// The global provider delegates, so instruments created before the Prometheus
// provider is installed still report through it.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("go-travel-itinerary")
		var err error
		m := &AppMetrics{}

		m.ItineraryRequestsTotal, err = meter.Int64Counter(
			"itinerary_requests_total",
			metric.WithDescription("Total number of itinerary generation passes"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_requests_total: %v", err)
		}

		m.ItineraryDurationSeconds, err = meter.Float64Histogram(
			"itinerary_duration_seconds",
			metric.WithDescription("Duration of itinerary generation passes in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_duration_seconds: %v", err)
		}

		m.AdapterCallDurationSeconds, err = meter.Float64Histogram(
			"adapter_call_duration_seconds",
			metric.WithDescription("Duration of upstream adapter calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create adapter_call_duration_seconds: %v", err)
		}

		m.AdapterErrorsTotal, err = meter.Int64Counter(
			"adapter_errors_total",
			metric.WithDescription("Total number of failed upstream adapter calls"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create adapter_errors_total: %v", err)
		}

		m.CacheHitsTotal, err = meter.Int64Counter(
			"adapter_cache_hits_total",
			metric.WithDescription("Upstream lookups served from the in-process cache"),
			metric.WithUnit("{hit}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create adapter_cache_hits_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the instruments, initialising them on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}

// CacheHit records a cache hit for the named adapter.
func CacheHit(ctx context.Context, adapter string) {
	Get().CacheHitsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("adapter", adapter)))
}
