package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	ToolInvocationsTotal     metric.Int64Counter
	ToolFallbacksTotal       metric.Int64Counter
	ItineraryRequestsTotal   metric.Int64Counter
	LLMStreamDurationSeconds metric.Float64Histogram
	UpstreamRequestsTotal    metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments only once, using
// the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("wanderplan")
		var err error
		m := &AppMetrics{}

		m.ToolInvocationsTotal, err = meter.Int64Counter(
			"tool_invocations_total",
			metric.WithDescription("Total number of research tool invocations"),
			metric.WithUnit("{invocation}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create tool_invocations_total: %v", err)
		}

		m.ToolFallbacksTotal, err = meter.Int64Counter(
			"tool_fallbacks_total",
			metric.WithDescription("Total number of tool invocations degraded to fallback data"),
			metric.WithUnit("{invocation}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create tool_fallbacks_total: %v", err)
		}

		m.ItineraryRequestsTotal, err = meter.Int64Counter(
			"itinerary_requests_total",
			metric.WithDescription("Total number of itinerary workflow requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_requests_total: %v", err)
		}

		m.LLMStreamDurationSeconds, err = meter.Float64Histogram(
			"llm_stream_duration_seconds",
			metric.WithDescription("Duration of itinerary generation streams in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create llm_stream_duration_seconds: %v", err)
		}

		m.UpstreamRequestsTotal, err = meter.Int64Counter(
			"upstream_requests_total",
			metric.WithDescription("Total number of geocoding and forecast upstream requests"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create upstream_requests_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the initialized metrics instance, or nil if InitAppMetrics has
// not run.
func Get() *AppMetrics {
	return appMetrics
}
