package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/wanderplan/wanderplan/app/observability/metrics"
	"github.com/wanderplan/wanderplan/internal/types"
)

func recordUpstreamRequest(ctx context.Context, outcome string) {
	if m := metrics.Get(); m != nil {
		m.UpstreamRequestsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("upstream", "geocoding"),
			attribute.String("outcome", outcome),
		))
	}
}

// ErrNotFound signals that the place name could not be resolved. Callers
// must treat this as non-fatal and fall back to degraded behavior.
var ErrNotFound = errors.New("geo: place not found")

var _ Client = (*OpenMeteoClient)(nil)

// Client resolves a free-text place name to coordinates and a canonical
// name/country.
type Client interface {
	Search(ctx context.Context, name string) (*types.GeoLocation, error)
}

type searchResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
	} `json:"results"`
}

// OpenMeteoClient queries the Open-Meteo geocoding search endpoint.
type OpenMeteoClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewOpenMeteoClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *OpenMeteoClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OpenMeteoClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Search requests exactly one best match and returns it, or ErrNotFound when
// the result set is empty or the call fails in any way.
func (c *OpenMeteoClient) Search(ctx context.Context, name string) (*types.GeoLocation, error) {
	ctx, span := otel.Tracer("GeoClient").Start(ctx, "Search", trace.WithAttributes(
		attribute.String("geo.query", name),
	))
	defer span.End()

	endpoint := fmt.Sprintf("%s/v1/search?name=%s&count=1&language=en&format=json",
		c.baseURL, url.QueryEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("geo: building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "Geocoding request failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Geocoding request failed")
		recordUpstreamRequest(ctx, "network_error")
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer resp.Body.Close()
	recordUpstreamRequest(ctx, "completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "Geocoding returned non-2xx status", slog.Int("status", resp.StatusCode))
		span.SetStatus(codes.Error, "Geocoding returned non-2xx status")
		return nil, fmt.Errorf("%w: status %d", ErrNotFound, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.WarnContext(ctx, "Geocoding response malformed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Geocoding response malformed")
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	if len(body.Results) == 0 {
		span.SetStatus(codes.Error, "No geocoding results")
		return nil, ErrNotFound
	}

	first := body.Results[0]
	span.SetAttributes(
		attribute.String("geo.name", first.Name),
		attribute.String("geo.country", first.Country),
	)
	span.SetStatus(codes.Ok, "Place resolved")
	return &types.GeoLocation{
		Latitude:  first.Latitude,
		Longitude: first.Longitude,
		Name:      first.Name,
		Country:   first.Country,
	}, nil
}
