package destination

import (
	"context"
	"log/slog"
	"math"

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
			attribute.String("tool", "destination_research"),
			attribute.String("reason", reason),
		))
	}
}

var _ Service = (*ServiceImpl)(nil)

// Service defines the destination research tool contract. Research never
// returns an error: failures degrade to a reduced static profile.
type Service interface {
	Research(ctx context.Context, destination, travelStyle string, travelers int) *types.DestinationProfile
}

// Base daily cost figures in USD before the style multiplier is applied.
const (
	baseAccommodation = 50
	baseFood          = 30
	baseTransport     = 15
	baseActivities    = 25
)

var culturalTips = []string{
	"Learn basic greetings in the local language",
	"Respect local customs and dress codes at religious sites",
	"Carry small denominations of cash for markets and tips",
	"Research tipping etiquette before you arrive",
	"Try to eat where the locals eat",
}

var keyAttractions = []string{
	"Historic city center",
	"Main cathedral or temple",
	"Central market",
	"City museum",
	"Panoramic viewpoint",
}

var localCuisine = []string{
	"Traditional breakfast dishes at local cafes",
	"Street food from the central market",
	"Regional specialty of the day at family-run restaurants",
}

type ServiceImpl struct {
	geoClient geo.Client
	logger    *slog.Logger
}

func NewServiceImpl(geoClient geo.Client, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		geoClient: geoClient,
		logger:    logger,
	}
}

// StyleMultiplier scales base daily costs by travel style. Unrecognized
// styles get the mid-range multiplier.
func StyleMultiplier(travelStyle string) float64 {
	switch travelStyle {
	case types.StyleBudget:
		return 1
	case types.StyleLuxury:
		return 3.5
	default:
		return 1.8
	}
}

// Research builds a destination profile. Geocoding is best-effort: on a miss
// the raw destination text is kept and the country reported as Unknown. The
// tool never fails: an unexpected panic degrades to the reduced profile.
func (s *ServiceImpl) Research(ctx context.Context, destination, travelStyle string, travelers int) (profile *types.DestinationProfile) {
	ctx, span := otel.Tracer("DestinationService").Start(ctx, "Research", trace.WithAttributes(
		attribute.String("destination.query", destination),
		attribute.String("destination.style", travelStyle),
	))
	defer span.End()
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "Destination research panicked, returning reduced profile", slog.Any("panic", r))
			span.SetStatus(codes.Error, "Research panicked")
			recordFallback(ctx, "research_panicked")
			profile = FallbackProfile(destination)
		}
	}()

	l := s.logger.With(slog.String("tool", "destination_research"), slog.String("destination", destination))

	name := destination
	country := "Unknown"
	location, err := s.geoClient.Search(ctx, destination)
	if err != nil {
		l.WarnContext(ctx, "Geocoding unavailable, keeping raw destination", slog.Any("error", err))
		span.AddEvent("geocoding failed")
	} else {
		name = location.Name
		country = location.Country
	}

	multiplier := StyleMultiplier(travelStyle)
	profile = &types.DestinationProfile{
		Destination:  name,
		Country:      country,
		Currency:     "USD",
		CulturalTips: culturalTips,
		SafetyLevel:  "medium",
		DailyCosts: types.DailyCosts{
			Accommodation: int(math.Round(baseAccommodation * multiplier)),
			Food:          int(math.Round(baseFood * multiplier)),
			Transport:     int(math.Round(baseTransport * multiplier)),
			Activities:    int(math.Round(baseActivities * multiplier)),
			Total:         int(math.Round((baseAccommodation + baseFood + baseTransport + baseActivities) * multiplier)),
		},
		KeyAttractions: keyAttractions,
		LocalCuisine:   localCuisine,
	}

	span.SetAttributes(attribute.String("destination.country", country))
	span.SetStatus(codes.Ok, "Destination profile built")
	return profile
}

// FallbackProfile is the reduced profile returned when research fails
// internally. It never fails.
func FallbackProfile(destination string) *types.DestinationProfile {
	name := types.NormalizeDestination(destination)
	return &types.DestinationProfile{
		Destination:  name,
		Country:      "Unknown",
		Currency:     "USD",
		CulturalTips: []string{"Research local customs before you travel"},
		SafetyLevel:  "medium",
		DailyCosts: types.DailyCosts{
			Accommodation: baseAccommodation,
			Food:          baseFood,
			Transport:     baseTransport,
			Activities:    baseActivities,
			Total:         baseAccommodation + baseFood + baseTransport + baseActivities,
		},
		KeyAttractions: []string{"City center"},
		LocalCuisine:   []string{"Local restaurants"},
	}
}
