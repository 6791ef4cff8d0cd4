package container

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/wanderplan/wanderplan/config"
	"github.com/wanderplan/wanderplan/internal/api/attractions"
	"github.com/wanderplan/wanderplan/internal/api/budget"
	"github.com/wanderplan/wanderplan/internal/api/destination"
	generativeAI "github.com/wanderplan/wanderplan/internal/api/generative_ai"
	"github.com/wanderplan/wanderplan/internal/api/geo"
	"github.com/wanderplan/wanderplan/internal/api/itinerary"
	"github.com/wanderplan/wanderplan/internal/api/research"
	"github.com/wanderplan/wanderplan/internal/api/weather"
)

// Container holds all application dependencies
type Container struct {
	Config             *config.Config
	Logger             *slog.Logger
	WeatherHandler     *weather.HandlerImpl
	DestinationHandler *destination.HandlerImpl
	BudgetHandler      *budget.HandlerImpl
	AttractionsHandler *attractions.HandlerImpl
	ItineraryHandler   *itinerary.HandlerImpl
}

// NewContainer initializes and returns a new dependency container
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	httpClient := &http.Client{Timeout: cfg.Upstreams.Timeout}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Upstream clients
	geoClient := geo.NewOpenMeteoClient(cfg.Upstreams.GeocodingURL, httpClient, logger)
	aiClient, err := generativeAI.NewAIClient(ctx, cfg.LLM.Model)
	if err != nil {
		logger.Error("Failed to initialize AI client", slog.Any("error", err))
		return nil, err
	}

	// Services
	weatherService := weather.NewServiceImpl(geoClient, cfg.Upstreams.ForecastURL, httpClient, rng, logger)
	destinationService := destination.NewServiceImpl(geoClient, logger)
	attractionsService := attractions.NewServiceImpl(logger)
	researchService := research.NewServiceImpl(weatherService, destinationService, attractionsService, logger)
	itineraryService := itinerary.NewServiceImpl(researchService, aiClient, cfg.LLM.Temperature, logger)

	// Handlers
	return &Container{
		Config:             cfg,
		Logger:             logger,
		WeatherHandler:     weather.NewHandlerImpl(weatherService, logger),
		DestinationHandler: destination.NewHandlerImpl(destinationService, logger),
		BudgetHandler:      budget.NewHandlerImpl(logger),
		AttractionsHandler: attractions.NewHandlerImpl(attractionsService, logger),
		ItineraryHandler:   itinerary.NewHandlerImpl(itineraryService, researchService, logger),
	}, nil
}
