package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/genai"

	"github.com/wanderplan/wanderplan/internal/api/attractions"
	"github.com/wanderplan/wanderplan/internal/api/budget"
	"github.com/wanderplan/wanderplan/internal/api/destination"
	"github.com/wanderplan/wanderplan/internal/api/geo"
	"github.com/wanderplan/wanderplan/internal/api/itinerary"
	"github.com/wanderplan/wanderplan/internal/api/research"
	"github.com/wanderplan/wanderplan/internal/api/weather"
	api "github.com/wanderplan/wanderplan/internal/router"
	"github.com/wanderplan/wanderplan/internal/types"
)

// stubGenerator replaces the Gemini client so end-to-end runs need no API key.
type stubGenerator struct {
	chunks []string
}

func (g *stubGenerator) GenerateContentStream(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (iter.Seq2[*genai.GenerateContentResponse, error], error) {
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for _, chunk := range g.chunks {
			resp := &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []*genai.Part{{Text: chunk}}}},
				},
			}
			if !yield(resp, nil) {
				return
			}
		}
	}, nil
}

// E2ETestSuite exercises the complete planning workflow over HTTP with mocked
// upstreams.
type E2ETestSuite struct {
	suite.Suite
	server         *httptest.Server
	geoServer      *httptest.Server
	forecastServer *httptest.Server
	client         *http.Client
	baseURL        string
	logger         *slog.Logger
}

func (s *E2ETestSuite) SetupSuite() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.geoServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"results": [{"latitude": 35.6895, "longitude": 139.6917, "name": "Tokyo", "country": "Japan"}]}`)
	}))

	s.forecastServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"daily": {
				"time": ["2025-08-15", "2025-08-16", "2025-08-17"],
				"weathercode": [0, 2, 61],
				"temperature_2m_max": [31, 30, 27],
				"temperature_2m_min": [24, 23, 22],
				"precipitation_probability_max": [10, 25, 70]
			}
		}`)
	}))

	httpClient := &http.Client{Timeout: 10 * time.Second}
	geoClient := geo.NewOpenMeteoClient(s.geoServer.URL, httpClient, s.logger)
	rng := rand.New(rand.NewSource(42))

	weatherService := weather.NewServiceImpl(geoClient, s.forecastServer.URL, httpClient, rng, s.logger)
	destinationService := destination.NewServiceImpl(geoClient, s.logger)
	attractionsService := attractions.NewServiceImpl(s.logger)
	researchService := research.NewServiceImpl(weatherService, destinationService, attractionsService, s.logger)
	generator := &stubGenerator{chunks: []string{"Day 1: temples and ", "the food market."}}
	itineraryService := itinerary.NewServiceImpl(researchService, generator, 0.7, s.logger)

	router := api.SetupRouter(&api.Config{
		WeatherHandler:     weather.NewHandlerImpl(weatherService, s.logger),
		DestinationHandler: destination.NewHandlerImpl(destinationService, s.logger),
		BudgetHandler:      budget.NewHandlerImpl(s.logger),
		AttractionsHandler: attractions.NewHandlerImpl(attractionsService, s.logger),
		ItineraryHandler:   itinerary.NewHandlerImpl(itineraryService, researchService, s.logger),
	})

	s.server = httptest.NewServer(router)
	s.baseURL = s.server.URL
	s.client = httpClient
}

func (s *E2ETestSuite) TearDownSuite() {
	s.server.Close()
	s.geoServer.Close()
	s.forecastServer.Close()
}

func (s *E2ETestSuite) postJSON(path string, payload interface{}) *http.Response {
	body, err := json.Marshal(payload)
	require.NoError(s.T(), err)

	resp, err := s.client.Post(s.baseURL+path, "application/json", bytes.NewReader(body))
	require.NoError(s.T(), err)
	return resp
}

func (s *E2ETestSuite) tripRequest() map[string]interface{} {
	return map[string]interface{}{
		"destination": "Tokyo, Japan",
		"startDate":   "2025-08-15",
		"endDate":     "2025-08-17",
		"budget":      2100,
		"travelers":   2,
		"interests":   []string{"culture", "food"},
		"travelStyle": "mid-range",
	}
}

func (s *E2ETestSuite) TestPing() {
	resp, err := s.client.Get(s.baseURL + "/ping")
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode)
}

func (s *E2ETestSuite) TestWeatherForecastTool() {
	resp := s.postJSON("/api/v1/tools/weather-forecast", map[string]interface{}{
		"destination": "Tokyo, Japan",
		"startDate":   "2025-08-15",
		"endDate":     "2025-08-17",
	})
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var result types.WeatherForecastResult
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(s.T(), "Tokyo", result.Destination)
	assert.Equal(s.T(), "Japan", result.Country)
	assert.Len(s.T(), result.Forecast, 3)
	assert.Equal(s.T(), "Clear sky", result.Forecast[0].Condition)
}

func (s *E2ETestSuite) TestBudgetPlanTool() {
	resp := s.postJSON("/api/v1/tools/budget-plan", map[string]interface{}{
		"totalBudget": 2100,
		"duration":    3,
		"travelers":   2,
		"travelStyle": "mid-range",
	})
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var plan types.BudgetPlan
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&plan))
	assert.Equal(s.T(), float64(700), plan.DailyBudget)
	assert.Equal(s.T(), 840, plan.Breakdown.Accommodation.Total)
}

func (s *E2ETestSuite) TestAttractionsTool() {
	resp := s.postJSON("/api/v1/tools/attractions", map[string]interface{}{
		"destination": "Tokyo, Japan",
		"interests":   []string{"food"},
		"duration":    3,
		"budget":      140,
	})
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var result types.AttractionsResult
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(s.T(), "Tokyo", result.Destination)
	assert.GreaterOrEqual(s.T(), result.Total, 6)
}

func (s *E2ETestSuite) TestDestinationResearchTool() {
	resp := s.postJSON("/api/v1/tools/destination-research", map[string]interface{}{
		"destination": "Tokyo, Japan",
		"travelStyle": "luxury",
		"travelers":   2,
	})
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var profile types.DestinationProfile
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&profile))
	assert.Equal(s.T(), "Japan", profile.Country)
	assert.Equal(s.T(), 420, profile.DailyCosts.Total)
}

func (s *E2ETestSuite) TestPlanItineraryWorkflow() {
	resp := s.postJSON("/api/v1/itineraries", s.tripRequest())
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var result types.ItineraryResult
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(s.T(), "Day 1: temples and the food market.", result.Itinerary)
	assert.Equal(s.T(), 2, result.Summary.Duration)
	assert.NotEmpty(s.T(), result.Summary.Highlights)
}

func (s *E2ETestSuite) TestPlanItineraryRejectsInvalidRequest() {
	req := s.tripRequest()
	req["travelers"] = 0

	resp := s.postJSON("/api/v1/itineraries", req)
	defer resp.Body.Close()
	assert.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)
}

func TestE2ETestSuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}
