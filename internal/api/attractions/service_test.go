package attractions

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/internal/types"
)

func testService() *ServiceImpl {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewServiceImpl(logger)
}

func TestFind_MinimumCount(t *testing.T) {
	tests := []struct {
		duration int
		expected int
	}{
		{1, 2},
		{2, 4},
		{3, 6},
		{4, 8},
		{10, 8}, // capped at catalog size
	}

	for _, tc := range tests {
		result := testService().Find(context.Background(), types.AttractionsInput{
			Destination: "Tokyo",
			Interests:   []string{"zzz-no-match"},
			Duration:    tc.duration,
			Budget:      0,
		})
		assert.GreaterOrEqual(t, len(result.Attractions), tc.expected, "duration %d", tc.duration)
	}
}

func TestFind_InterestMatchesCategory(t *testing.T) {
	result := testService().Find(context.Background(), types.AttractionsInput{
		Destination: "Tokyo",
		Interests:   []string{"food"},
		Duration:    1,
		Budget:      0,
	})

	// Food entries matched by interest come before padded entries.
	require.NotEmpty(t, result.Attractions)
	assert.Equal(t, "food", result.Attractions[0].Category)
}

func TestFind_BudgetAloneMatches(t *testing.T) {
	// The cost clause is an OR: with a generous budget every entry passes
	// even with no interest overlap.
	result := testService().Find(context.Background(), types.AttractionsInput{
		Destination: "Tokyo",
		Interests:   nil,
		Duration:    1,
		Budget:      100,
	})

	assert.Len(t, result.Attractions, 8)
}

func TestFind_ZeroBudgetFreeEntryStillMatches(t *testing.T) {
	result := testService().Find(context.Background(), types.AttractionsInput{
		Destination: "Tokyo",
		Interests:   nil,
		Duration:    1,
		Budget:      0,
	})

	// The free hike costs 0 <= 2*0, so it matches; padding tops up to 2.
	names := make([]string, 0, len(result.Attractions))
	for _, attraction := range result.Attractions {
		names = append(names, attraction.Name)
	}
	assert.Contains(t, names, "Sunset Viewpoint Hike")
	assert.GreaterOrEqual(t, len(result.Attractions), 2)
}

func TestFind_InterestMatchIsCaseInsensitive(t *testing.T) {
	result := testService().Find(context.Background(), types.AttractionsInput{
		Destination: "Tokyo",
		Interests:   []string{"MUSEUM"},
		Duration:    1,
		Budget:      0,
	})

	require.NotEmpty(t, result.Attractions)
	assert.Equal(t, "museum", result.Attractions[0].Type)
}

func TestFind_TruncatesDestinationAtComma(t *testing.T) {
	result := testService().Find(context.Background(), types.AttractionsInput{
		Destination: " Tokyo , Japan",
		Interests:   []string{"culture"},
		Duration:    2,
		Budget:      50,
	})

	assert.Equal(t, "Tokyo", result.Destination)
}

func TestFind_CategoriesAreDistinct(t *testing.T) {
	result := testService().Find(context.Background(), types.AttractionsInput{
		Destination: "Tokyo",
		Interests:   nil,
		Duration:    4,
		Budget:      100,
	})

	seen := map[string]int{}
	for _, category := range result.Categories {
		seen[category]++
	}
	for category, count := range seen {
		assert.Equal(t, 1, count, "category %s duplicated", category)
	}
	assert.Equal(t, len(result.Attractions), result.Total)
}

func TestFind_PaddingPreservesCatalogOrder(t *testing.T) {
	result := testService().Find(context.Background(), types.AttractionsInput{
		Destination: "Tokyo",
		Interests:   []string{"zzz-no-match"},
		Duration:    2,
		Budget:      0,
	})

	// Nothing matches by interest; the cheapest entries that pass the cost
	// clause come first, then padding follows catalog order.
	require.GreaterOrEqual(t, len(result.Attractions), 4)
}
