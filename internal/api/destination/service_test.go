package destination

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/internal/api/geo"
	"github.com/wanderplan/wanderplan/internal/types"
)

// MockGeoClient is a mock implementation of geo.Client
type MockGeoClient struct {
	mock.Mock
}

func (m *MockGeoClient) Search(ctx context.Context, name string) (*types.GeoLocation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.GeoLocation), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestResearch_ResolvedDestination(t *testing.T) {
	mockGeo := new(MockGeoClient)
	mockGeo.On("Search", mock.Anything, "tokyo").Return(&types.GeoLocation{Name: "Tokyo", Country: "Japan"}, nil)

	svc := NewServiceImpl(mockGeo, testLogger())
	profile := svc.Research(context.Background(), "tokyo", types.StyleBudget, 2)

	assert.Equal(t, "Tokyo", profile.Destination)
	assert.Equal(t, "Japan", profile.Country)
	assert.Equal(t, "medium", profile.SafetyLevel)
	mockGeo.AssertExpectations(t)
}

func TestResearch_GeocodingFailureKeepsRawDestination(t *testing.T) {
	mockGeo := new(MockGeoClient)
	mockGeo.On("Search", mock.Anything, "Nowhereland").Return(nil, geo.ErrNotFound)

	svc := NewServiceImpl(mockGeo, testLogger())
	profile := svc.Research(context.Background(), "Nowhereland", types.StyleMidRange, 1)

	assert.Equal(t, "Nowhereland", profile.Destination)
	assert.Equal(t, "Unknown", profile.Country)
}

func TestResearch_CostMultipliers(t *testing.T) {
	tests := []struct {
		style         string
		accommodation int
		food          int
		transport     int
		activities    int
		total         int
	}{
		{types.StyleBudget, 50, 30, 15, 25, 120},
		{types.StyleMidRange, 90, 54, 27, 45, 216},
		{types.StyleLuxury, 175, 105, 53, 88, 420},
		{"something-else", 90, 54, 27, 45, 216}, // defaults to mid-range
	}

	for _, tc := range tests {
		t.Run(tc.style, func(t *testing.T) {
			mockGeo := new(MockGeoClient)
			mockGeo.On("Search", mock.Anything, "Lisbon").Return(&types.GeoLocation{Name: "Lisbon", Country: "Portugal"}, nil)

			svc := NewServiceImpl(mockGeo, testLogger())
			profile := svc.Research(context.Background(), "Lisbon", tc.style, 2)

			assert.Equal(t, tc.accommodation, profile.DailyCosts.Accommodation)
			assert.Equal(t, tc.food, profile.DailyCosts.Food)
			assert.Equal(t, tc.transport, profile.DailyCosts.Transport)
			assert.Equal(t, tc.activities, profile.DailyCosts.Activities)
			assert.Equal(t, tc.total, profile.DailyCosts.Total)
		})
	}
}

func TestResearch_StaticContentIsPresent(t *testing.T) {
	mockGeo := new(MockGeoClient)
	mockGeo.On("Search", mock.Anything, "Lisbon").Return(&types.GeoLocation{Name: "Lisbon", Country: "Portugal"}, nil)

	svc := NewServiceImpl(mockGeo, testLogger())
	profile := svc.Research(context.Background(), "Lisbon", types.StyleBudget, 1)

	assert.NotEmpty(t, profile.CulturalTips)
	assert.NotEmpty(t, profile.KeyAttractions)
	assert.NotEmpty(t, profile.LocalCuisine)
	assert.Equal(t, "USD", profile.Currency)
}

// panickingGeoClient simulates an unexpected internal failure inside the tool.
type panickingGeoClient struct{}

func (panickingGeoClient) Search(ctx context.Context, name string) (*types.GeoLocation, error) {
	panic("geocoder exploded")
}

func TestResearch_InternalPanicReturnsReducedProfile(t *testing.T) {
	svc := NewServiceImpl(panickingGeoClient{}, testLogger())

	profile := svc.Research(context.Background(), "Tokyo, Japan", types.StyleLuxury, 2)

	require.NotNil(t, profile)
	assert.Equal(t, "Tokyo", profile.Destination)
	assert.Equal(t, "Unknown", profile.Country)
	assert.Equal(t, 120, profile.DailyCosts.Total)
	assert.NotEmpty(t, profile.CulturalTips)
}

func TestFallbackProfile_TruncatesAtComma(t *testing.T) {
	profile := FallbackProfile("Tokyo, Japan")

	require.NotNil(t, profile)
	assert.Equal(t, "Tokyo", profile.Destination)
	assert.Equal(t, "Unknown", profile.Country)
	assert.Equal(t, 120, profile.DailyCosts.Total)
	assert.NotEmpty(t, profile.CulturalTips)
}

func TestStyleMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, StyleMultiplier(types.StyleBudget))
	assert.Equal(t, 1.8, StyleMultiplier(types.StyleMidRange))
	assert.Equal(t, 3.5, StyleMultiplier(types.StyleLuxury))
	assert.Equal(t, 1.8, StyleMultiplier("unheard-of"))
}
