package attractions

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/wanderplan/wanderplan/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the attractions finder tool contract.
type Service interface {
	Find(ctx context.Context, in types.AttractionsInput) *types.AttractionsResult
}

type ServiceImpl struct {
	logger *slog.Logger
}

func NewServiceImpl(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

// Find filters the catalog by interest or budget match and pads the result
// with remaining entries, in catalog order, up to min(2*duration, catalog
// size).
func (s *ServiceImpl) Find(ctx context.Context, in types.AttractionsInput) *types.AttractionsResult {
	ctx, span := otel.Tracer("AttractionsService").Start(ctx, "Find")
	defer span.End()

	matched := make([]types.Attraction, 0, len(catalog))
	rest := make([]types.Attraction, 0, len(catalog))
	for _, entry := range catalog {
		if matches(entry, in.Interests, in.Budget) {
			matched = append(matched, entry)
		} else {
			rest = append(rest, entry)
		}
	}

	minCount := 2 * in.Duration
	if minCount > len(catalog) {
		minCount = len(catalog)
	}
	for _, entry := range rest {
		if len(matched) >= minCount {
			break
		}
		matched = append(matched, entry)
	}

	s.logger.DebugContext(ctx, "Attractions filtered",
		slog.Int("matched", len(matched)),
		slog.Any("interests", in.Interests))
	span.SetAttributes(attribute.Int("attractions.count", len(matched)))
	span.SetStatus(codes.Ok, "Attractions found")

	return &types.AttractionsResult{
		Destination: types.NormalizeDestination(in.Destination),
		Attractions: matched,
		Total:       len(matched),
		Categories:  distinctCategories(matched),
	}
}

// matches keeps an entry when any interest tag appears in its category, type
// or name, or when its cost is within twice the daily activities allowance.
// Affordable entries pass even with no interest overlap.
func matches(entry types.Attraction, interests []string, budget float64) bool {
	for _, interest := range interests {
		tag := strings.ToLower(strings.TrimSpace(interest))
		if tag == "" {
			continue
		}
		if strings.Contains(strings.ToLower(entry.Category), tag) ||
			strings.Contains(strings.ToLower(entry.Type), tag) ||
			strings.Contains(strings.ToLower(entry.Name), tag) {
			return true
		}
	}
	return float64(entry.EstimatedCost) <= 2*budget
}

func distinctCategories(entries []types.Attraction) []string {
	seen := make(map[string]bool, len(entries))
	categories := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			categories = append(categories, entry.Category)
		}
	}
	return categories
}
