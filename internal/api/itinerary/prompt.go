package itinerary

import (
	"fmt"
	"strings"

	"github.com/wanderplan/wanderplan/internal/types"
)

// buildItineraryPrompt serializes the trip request and research bundle into
// the structured prompt handed to the language model.
func buildItineraryPrompt(req types.TripRequest, bundle *types.ResearchBundle) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(`You are an expert travel planner. Create a detailed day-by-day itinerary.

TRIP DETAILS:
    - Destination: %s
    - Dates: %s to %s (%d days)
    - Travelers: %d
    - Total Budget: $%.2f USD
    - Travel Style: %s
    - Interests: [%s]`,
		req.Destination, req.StartDate, req.EndDate, bundle.Duration,
		req.Travelers, req.Budget, req.TravelStyle, strings.Join(req.Interests, ", ")))

	weather := bundle.Weather
	b.WriteString(fmt.Sprintf(`

WEATHER FORECAST (%s, %s):
    %s`, weather.Destination, weather.Country, weather.Summary))
	for _, day := range weather.Forecast {
		b.WriteString(fmt.Sprintf(`
    - %s: %s, %d°C/%d°C, %d%% chance of precipitation`,
			day.Date, day.Condition, day.MaxTemp, day.MinTemp, day.PrecipitationChance))
	}

	profile := bundle.Destination
	b.WriteString(fmt.Sprintf(`

DESTINATION INFO:
    - Country: %s
    - Currency: %s
    - Safety Level: %s
    - Estimated Daily Costs: accommodation $%d, food $%d, transport $%d, activities $%d (total $%d)
    - Cultural Tips: %s
    - Local Cuisine: %s`,
		profile.Country, profile.Currency, profile.SafetyLevel,
		profile.DailyCosts.Accommodation, profile.DailyCosts.Food, profile.DailyCosts.Transport,
		profile.DailyCosts.Activities, profile.DailyCosts.Total,
		strings.Join(profile.CulturalTips, "; "),
		strings.Join(profile.LocalCuisine, "; ")))

	plan := bundle.Budget
	b.WriteString(fmt.Sprintf(`

BUDGET PLAN (daily budget $%.2f):
    - Accommodation: $%d total / $%d per day (%d%%)
    - Food: $%d total / $%d per day (%d%%)
    - Transport: $%d total / $%d per day (%d%%)
    - Activities: $%d total / $%d per day (%d%%)
    - Miscellaneous: $%d total / $%d per day (%d%%)
    - Tips: %s`,
		plan.DailyBudget,
		plan.Breakdown.Accommodation.Total, plan.Breakdown.Accommodation.Daily, plan.Breakdown.Accommodation.Percentage,
		plan.Breakdown.Food.Total, plan.Breakdown.Food.Daily, plan.Breakdown.Food.Percentage,
		plan.Breakdown.Transport.Total, plan.Breakdown.Transport.Daily, plan.Breakdown.Transport.Percentage,
		plan.Breakdown.Activities.Total, plan.Breakdown.Activities.Daily, plan.Breakdown.Activities.Percentage,
		plan.Breakdown.Miscellaneous.Total, plan.Breakdown.Miscellaneous.Daily, plan.Breakdown.Miscellaneous.Percentage,
		strings.Join(plan.Tips, "; ")))

	b.WriteString(`

RECOMMENDED ATTRACTIONS:`)
	for _, attraction := range bundle.Attractions.Attractions {
		b.WriteString(fmt.Sprintf(`
    - %s (%s, %s): %s. $%d, %s, best visited in the %s, rated %.1f`,
			attraction.Name, attraction.Type, attraction.Category, attraction.Description,
			attraction.EstimatedCost, attraction.TimeNeeded, attraction.BestTimeToVisit, attraction.Rating))
	}

	b.WriteString(`

FORMATTING INSTRUCTIONS:
    - Produce one section per day titled "Day N: <date>".
    - Schedule outdoor activities on days with low precipitation chance.
    - Reference the budget plan when suggesting paid activities and meals.
    - Include one local dish suggestion per day.
    - End with a short packing list based on the forecast.`)

	return b.String()
}
