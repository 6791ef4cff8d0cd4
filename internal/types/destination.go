package types

import "fmt"

func errRequired(field string) error {
	return fmt.Errorf("%s is required", field)
}

// DailyCosts is the per-day cost estimate for a destination, scaled by the
// travel-style multiplier.
type DailyCosts struct {
	Accommodation int `json:"accommodation"`
	Food          int `json:"food"`
	Transport     int `json:"transport"`
	Activities    int `json:"activities"`
	Total         int `json:"total"`
}

// DestinationProfile is the destination research tool output.
type DestinationProfile struct {
	Destination    string     `json:"destination"`
	Country        string     `json:"country"`
	Currency       string     `json:"currency"`
	CulturalTips   []string   `json:"culturalTips"`
	SafetyLevel    string     `json:"safetyLevel"`
	DailyCosts     DailyCosts `json:"estimatedDailyCosts"`
	KeyAttractions []string   `json:"keyAttractions"`
	LocalCuisine   []string   `json:"localCuisine"`
}

// DestinationResearchInput is the schema-validated input record for the
// destination research tool endpoint.
type DestinationResearchInput struct {
	Destination string `json:"destination"`
	TravelStyle string `json:"travelStyle"`
	Travelers   int    `json:"travelers"`
}

func (in DestinationResearchInput) Validate() error {
	if in.Destination == "" {
		return errRequired("destination")
	}
	if in.Travelers <= 0 {
		return fmt.Errorf("travelers must be a positive integer")
	}
	return nil
}
