package research

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/wanderplan/wanderplan/app/observability/metrics"
	"github.com/wanderplan/wanderplan/internal/api/attractions"
	"github.com/wanderplan/wanderplan/internal/api/budget"
	"github.com/wanderplan/wanderplan/internal/api/destination"
	"github.com/wanderplan/wanderplan/internal/api/weather"
	"github.com/wanderplan/wanderplan/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service gathers the four research tool outputs for one trip request.
type Service interface {
	Gather(ctx context.Context, req types.TripRequest) (*types.ResearchBundle, error)
}

type ServiceImpl struct {
	weatherService     weather.Service
	destinationService destination.Service
	attractionsService attractions.Service
	logger             *slog.Logger
}

func NewServiceImpl(
	weatherService weather.Service,
	destinationService destination.Service,
	attractionsService attractions.Service,
	logger *slog.Logger,
) *ServiceImpl {
	return &ServiceImpl{
		weatherService:     weatherService,
		destinationService: destinationService,
		attractionsService: attractionsService,
		logger:             logger,
	}
}

// Gather fans the four research tools out concurrently and joins at a single
// barrier. The tools carry their own fallback contracts, so an error here
// means one of them escaped its fallback and the request must fail.
func (s *ServiceImpl) Gather(ctx context.Context, req types.TripRequest) (*types.ResearchBundle, error) {
	ctx, span := otel.Tracer("ResearchService").Start(ctx, "Gather", trace.WithAttributes(
		attribute.String("trip.destination", req.Destination),
		attribute.String("trip.style", req.TravelStyle),
	))
	defer span.End()

	duration := req.Duration()
	// Rough per-day activities allowance for the attraction filter. This is
	// 20% of the daily budget, independent of the budget plan's own
	// activities allocation.
	activitiesBudget := math.Round(req.Budget / float64(duration) * 0.2)

	bundle := &types.ResearchBundle{Duration: duration}

	if m := metrics.Get(); m != nil {
		for _, tool := range []string{"weather_forecast", "destination_research", "budget_calculator", "attractions_finder"} {
			m.ToolInvocationsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("tool", tool)))
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bundle.Weather = s.weatherService.GetForecast(gctx, req.Destination, req.StartDate.Time, req.EndDate.Time)
		return nil
	})
	g.Go(func() error {
		bundle.Destination = s.destinationService.Research(gctx, req.Destination, req.TravelStyle, req.Travelers)
		return nil
	})
	g.Go(func() error {
		plan, err := budget.Calculate(types.BudgetPlanInput{
			TotalBudget: req.Budget,
			Duration:    duration,
			Travelers:   req.Travelers,
			TravelStyle: req.TravelStyle,
			Destination: req.Destination,
		})
		if err != nil {
			return fmt.Errorf("budget calculation: %w", err)
		}
		bundle.Budget = plan
		return nil
	})
	g.Go(func() error {
		bundle.Attractions = s.attractionsService.Find(gctx, types.AttractionsInput{
			Destination: req.Destination,
			Interests:   req.Interests,
			Duration:    duration,
			Budget:      activitiesBudget,
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "Research failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Research failed")
		return nil, err
	}

	s.logger.InfoContext(ctx, "Research bundle assembled",
		slog.String("destination", req.Destination),
		slog.Int("duration", duration),
		slog.Int("forecast_days", len(bundle.Weather.Forecast)),
		slog.Int("attractions", bundle.Attractions.Total))
	span.SetAttributes(attribute.Int("trip.duration", duration))
	span.SetStatus(codes.Ok, "Research bundle assembled")
	return bundle, nil
}
