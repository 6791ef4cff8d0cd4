package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildItineraryPrompt_ContainsAllSections(t *testing.T) {
	prompt := buildItineraryPrompt(testRequest(), testBundle())

	assert.Contains(t, prompt, "TRIP DETAILS:")
	assert.Contains(t, prompt, "WEATHER FORECAST (Tokyo, Japan):")
	assert.Contains(t, prompt, "DESTINATION INFO:")
	assert.Contains(t, prompt, "BUDGET PLAN (daily budget $500.00):")
	assert.Contains(t, prompt, "RECOMMENDED ATTRACTIONS:")
	assert.Contains(t, prompt, "FORMATTING INSTRUCTIONS:")
}

func TestBuildItineraryPrompt_IncludesTripFacts(t *testing.T) {
	prompt := buildItineraryPrompt(testRequest(), testBundle())

	assert.Contains(t, prompt, "Destination: Tokyo, Japan")
	assert.Contains(t, prompt, "2025-08-15 to 2025-08-22 (7 days)")
	assert.Contains(t, prompt, "Travelers: 2")
	assert.Contains(t, prompt, "Total Budget: $3500.00 USD")
	assert.Contains(t, prompt, "Interests: [culture, food]")
}

func TestBuildItineraryPrompt_IncludesResearchData(t *testing.T) {
	prompt := buildItineraryPrompt(testRequest(), testBundle())

	assert.Contains(t, prompt, "Average temperature 28°C")
	assert.Contains(t, prompt, "Safety Level: medium")
	assert.Contains(t, prompt, "Accommodation: $1400 total / $200 per day (40%)")
	assert.Contains(t, prompt, "Old Town Tour")
	assert.Contains(t, prompt, "Food Market")
}
