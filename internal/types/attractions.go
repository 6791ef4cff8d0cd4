package types

import "fmt"

// Attraction is one entry of the static catalog.
type Attraction struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Description     string  `json:"description"`
	EstimatedCost   int     `json:"estimatedCost"`
	TimeNeeded      string  `json:"timeNeeded"`
	BestTimeToVisit string  `json:"bestTimeToVisit"`
	Rating          float64 `json:"rating"`
	Category        string  `json:"category"`
}

// AttractionsResult is the attractions finder tool output.
type AttractionsResult struct {
	Destination string       `json:"destination"`
	Attractions []Attraction `json:"attractions"`
	Total       int          `json:"totalFound"`
	Categories  []string     `json:"categories"`
}

// AttractionsInput is the schema-validated input record for the attractions
// finder tool endpoint. Budget is the per-day activities allowance.
type AttractionsInput struct {
	Destination string   `json:"destination"`
	Interests   []string `json:"interests"`
	Duration    int      `json:"duration"`
	Budget      float64  `json:"budget"`
}

func (in AttractionsInput) Validate() error {
	if in.Destination == "" {
		return errRequired("destination")
	}
	if in.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if in.Budget < 0 {
		return fmt.Errorf("budget must not be negative")
	}
	return nil
}
