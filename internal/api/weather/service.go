package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/wanderplan/wanderplan/app/observability/metrics"
	"github.com/wanderplan/wanderplan/internal/api/geo"
	"github.com/wanderplan/wanderplan/internal/types"
)

func recordFallback(ctx context.Context, reason string) {
	if m := metrics.Get(); m != nil {
		m.ToolFallbacksTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("tool", "weather_forecast"),
			attribute.String("reason", reason),
		))
	}
}

var _ Service = (*ServiceImpl)(nil)

// Service defines the weather forecast tool contract. GetForecast never
// returns an error: any upstream failure degrades to a synthetic forecast.
type Service interface {
	GetForecast(ctx context.Context, destination string, start, end time.Time) *types.WeatherForecastResult
}

// forecastResponse mirrors the Open-Meteo forecast payload. The daily block
// is a set of parallel arrays keyed by date.
type forecastResponse struct {
	Daily *struct {
		Time            []string  `json:"time"`
		WeatherCode     []int     `json:"weathercode"`
		TemperatureMax  []float64 `json:"temperature_2m_max"`
		TemperatureMin  []float64 `json:"temperature_2m_min"`
		PrecipProbabMax []float64 `json:"precipitation_probability_max"`
	} `json:"daily"`
	Current *struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

type ServiceImpl struct {
	geoClient  geo.Client
	baseURL    string
	httpClient *http.Client
	rng        *rand.Rand
	logger     *slog.Logger
}

// NewServiceImpl wires the weather tool. rng feeds the fallback generator;
// pass a seeded source in tests for reproducible synthetic forecasts.
func NewServiceImpl(geoClient geo.Client, baseURL string, httpClient *http.Client, rng *rand.Rand, logger *slog.Logger) *ServiceImpl {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ServiceImpl{
		geoClient:  geoClient,
		baseURL:    baseURL,
		httpClient: httpClient,
		rng:        rng,
		logger:     logger,
	}
}

// GetForecast resolves the destination and walks a fixed priority order of
// forecast queries, falling back to synthetic data when nothing usable comes
// back.
func (s *ServiceImpl) GetForecast(ctx context.Context, destination string, start, end time.Time) *types.WeatherForecastResult {
	ctx, span := otel.Tracer("WeatherService").Start(ctx, "GetForecast", trace.WithAttributes(
		attribute.String("weather.destination", destination),
	))
	defer span.End()

	l := s.logger.With(slog.String("tool", "weather_forecast"), slog.String("destination", destination))

	location, err := s.geoClient.Search(ctx, destination)
	if err != nil {
		l.WarnContext(ctx, "Geocoding unavailable, using synthetic forecast", slog.Any("error", err))
		span.AddEvent("geocoding failed")
		span.SetStatus(codes.Ok, "Synthetic forecast returned")
		recordFallback(ctx, "geocoding_failed")
		return FallbackForecast(destination, start, end, s.rng)
	}
	span.SetAttributes(attribute.String("weather.resolved_name", location.Name))

	body := s.fetchForecast(ctx, l, location, start, end)
	if body == nil || body.Daily == nil || len(body.Daily.Time) == 0 {
		l.WarnContext(ctx, "No usable daily forecast data, using synthetic forecast")
		span.AddEvent("no usable daily data")
		span.SetStatus(codes.Ok, "Synthetic forecast returned")
		recordFallback(ctx, "no_daily_data")
		result := FallbackForecast(location.Name, start, end, s.rng)
		result.Country = location.Country
		return result
	}

	result := s.mapDaily(location, body)
	span.SetAttributes(attribute.Int("weather.days", len(result.Forecast)))
	span.SetStatus(codes.Ok, "Forecast retrieved")
	return result
}

// fetchForecast tries each query variant in priority order and stops at the
// first response carrying a daily or current block. Failed attempts are
// logged and skipped.
func (s *ServiceImpl) fetchForecast(ctx context.Context, l *slog.Logger, loc *types.GeoLocation, start, end time.Time) *forecastResponse {
	coords := fmt.Sprintf("latitude=%.4f&longitude=%.4f", loc.Latitude, loc.Longitude)
	attempts := []string{
		// Full daily forecast for the exact requested range.
		fmt.Sprintf("%s/v1/forecast?%s&daily=weathercode,temperature_2m_max,temperature_2m_min,precipitation_probability_max&start_date=%s&end_date=%s&timezone=auto",
			s.baseURL, coords, start.Format("2006-01-02"), end.Format("2006-01-02")),
		// Reduced daily fields over a default 7-day window.
		fmt.Sprintf("%s/v1/forecast?%s&daily=temperature_2m_max,temperature_2m_min&forecast_days=7&timezone=auto",
			s.baseURL, coords),
		// Current conditions only.
		fmt.Sprintf("%s/v1/forecast?%s&current_weather=true", s.baseURL, coords),
	}

	for i, endpoint := range attempts {
		body, err := s.tryForecast(ctx, endpoint)
		if err != nil {
			l.WarnContext(ctx, "Forecast attempt failed", slog.Int("attempt", i+1), slog.Any("error", err))
			continue
		}
		if body.Daily != nil || body.Current != nil {
			return body
		}
		l.WarnContext(ctx, "Forecast attempt returned no daily or current block", slog.Int("attempt", i+1))
	}
	return nil
}

func (s *ServiceImpl) tryForecast(ctx context.Context, endpoint string) (*forecastResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &body, nil
}

// mapDaily turns the parallel daily arrays into DailyForecast entries.
// Missing fields fall back to mild defaults rather than dropping the day.
func (s *ServiceImpl) mapDaily(loc *types.GeoLocation, body *forecastResponse) *types.WeatherForecastResult {
	daily := body.Daily
	forecast := make([]types.DailyForecast, 0, len(daily.Time))

	for i, day := range daily.Time {
		code := 1
		if i < len(daily.WeatherCode) {
			code = daily.WeatherCode[i]
		}
		maxTemp := 25
		if i < len(daily.TemperatureMax) {
			maxTemp = int(math.Round(daily.TemperatureMax[i]))
		}
		minTemp := 18
		if i < len(daily.TemperatureMin) {
			minTemp = int(math.Round(daily.TemperatureMin[i]))
		}
		precip := 20
		if i < len(daily.PrecipProbabMax) {
			precip = int(math.Round(daily.PrecipProbabMax[i]))
		}

		date, err := types.ParseDate(day)
		if err != nil {
			continue
		}
		forecast = append(forecast, types.DailyForecast{
			Date:                date,
			Condition:           ConditionFromCode(code),
			MaxTemp:             maxTemp,
			MinTemp:             minTemp,
			PrecipitationChance: precip,
			WeatherCode:         code,
		})
	}

	return &types.WeatherForecastResult{
		Destination: loc.Name,
		Country:     loc.Country,
		Forecast:    forecast,
		Summary:     summarize(loc.Name, forecast),
	}
}

func summarize(name string, forecast []types.DailyForecast) string {
	if len(forecast) == 0 {
		return fmt.Sprintf("0 day forecast for %s", name)
	}
	var tempSum float64
	rainyDays := 0
	for _, day := range forecast {
		tempSum += float64(day.MaxTemp+day.MinTemp) / 2
		if day.PrecipitationChance > 50 {
			rainyDays++
		}
	}
	avg := int(math.Round(tempSum / float64(len(forecast))))
	return fmt.Sprintf("%d day forecast for %s: Average temperature %d°C, %d potentially rainy days.",
		len(forecast), name, avg, rainyDays)
}
