package weather

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/wanderplan/wanderplan/internal/types"
)

// Synthetic forecasts cycle through mild conditions; codes are index-aligned
// with the condition names.
var (
	fallbackConditions = []string{"Partly cloudy", "Mainly clear", "Clear sky"}
	fallbackCodes      = []int{2, 1, 0}
)

// FallbackForecast synthesizes a forecast covering the requested date span.
// The span is the absolute day difference, so reversed dates still yield a
// full forecast. This function never fails.
func FallbackForecast(destination string, start, end time.Time, rng *rand.Rand) *types.WeatherForecastResult {
	days := types.DaySpan(start, end)
	name := types.NormalizeDestination(destination)

	forecast := make([]types.DailyForecast, 0, days)
	for i := 0; i < days; i++ {
		forecast = append(forecast, types.DailyForecast{
			Date:                types.NewDate(start.AddDate(0, 0, i)),
			Condition:           fallbackConditions[i%3],
			MaxTemp:             25 + rng.Intn(11), // 25-35
			MinTemp:             18 + rng.Intn(8),  // 18-25
			PrecipitationChance: rng.Intn(41),      // 0-40
			WeatherCode:         fallbackCodes[i%3],
		})
	}

	return &types.WeatherForecastResult{
		Destination: name,
		Country:     "Unknown",
		Forecast:    forecast,
		Summary:     fmt.Sprintf("%d day forecast for %s (estimated data)", days, name),
	}
}
