package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/wanderplan/wanderplan/internal/api/attractions"
	"github.com/wanderplan/wanderplan/internal/api/budget"
	"github.com/wanderplan/wanderplan/internal/api/destination"
	"github.com/wanderplan/wanderplan/internal/api/itinerary"
	"github.com/wanderplan/wanderplan/internal/api/weather"
)

// Config contains dependencies needed for the router setup
type Config struct {
	WeatherHandler     *weather.HandlerImpl
	DestinationHandler *destination.HandlerImpl
	BudgetHandler      *budget.HandlerImpl
	AttractionsHandler *attractions.HandlerImpl
	ItineraryHandler   *itinerary.HandlerImpl
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Research tool endpoints: each takes a schema-validated input
		// record and returns the tool's output record.
		r.Route("/tools", func(r chi.Router) {
			r.Post("/weather-forecast", cfg.WeatherHandler.GetForecast)
			r.Post("/destination-research", cfg.DestinationHandler.Research)
			r.Post("/budget-plan", cfg.BudgetHandler.Calculate)
			r.Post("/attractions", cfg.AttractionsHandler.Find)
		})

		// Workflow entry points.
		r.Post("/itineraries", cfg.ItineraryHandler.PlanTrip)
		r.Post("/itineraries/stream", cfg.ItineraryHandler.PlanTripStream)
	})

	return r
}
