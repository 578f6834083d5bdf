package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the engine's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	PlansGeneratedTotal metric.Int64Counter
	PlanDurationSeconds metric.Float64Histogram
	CacheHitsTotal      metric.Int64Counter
	SourceCallsTotal    metric.Int64Counter
	SourceFailuresTotal metric.Int64Counter
	FallbackServesTotal metric.Int64Counter
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("TravelIntelligence")
		var err error
		m := &AppMetrics{}

		m.PlansGeneratedTotal, err = meter.Int64Counter(
			"plans_generated_total",
			metric.WithDescription("Total number of travel plans generated"),
			metric.WithUnit("{plan}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create plans_generated_total: %v", err)
		}

		m.PlanDurationSeconds, err = meter.Float64Histogram(
			"plan_duration_seconds",
			metric.WithDescription("Duration of plan generation in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create plan_duration_seconds: %v", err)
		}

		m.CacheHitsTotal, err = meter.Int64Counter(
			"cache_hits_total",
			metric.WithDescription("Total number of result cache hits"),
			metric.WithUnit("{hit}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create cache_hits_total: %v", err)
		}

		m.SourceCallsTotal, err = meter.Int64Counter(
			"source_calls_total",
			metric.WithDescription("Total number of outbound source calls attempted"),
			metric.WithUnit("{call}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create source_calls_total: %v", err)
		}

		m.SourceFailuresTotal, err = meter.Int64Counter(
			"source_failures_total",
			metric.WithDescription("Total number of source calls that failed or were rate limited"),
			metric.WithUnit("{failure}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create source_failures_total: %v", err)
		}

		m.FallbackServesTotal, err = meter.Int64Counter(
			"fallback_serves_total",
			metric.WithDescription("Total number of requests served from static fallback data"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create fallback_serves_total: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		// This indicates a programming error - InitAppMetrics must be called at startup.
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
