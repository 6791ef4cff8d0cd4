package types

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Travel styles drive the cost multiplier and budget percentage allocations.
const (
	StyleBudget   = "budget"
	StyleMidRange = "mid-range"
	StyleLuxury   = "luxury"
)

const dateLayout = "2006-01-02"

// Date is a calendar date marshaled as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TripRequest is the workflow input record. One is created per request and
// discarded once the itinerary is returned.
type TripRequest struct {
	Destination string   `json:"destination"`
	StartDate   Date     `json:"startDate"`
	EndDate     Date     `json:"endDate"`
	Budget      float64  `json:"budget"`
	Travelers   int      `json:"travelers"`
	Interests   []string `json:"interests"`
	TravelStyle string   `json:"travelStyle"`
}

// Duration returns the trip length in days, ceil of the date difference.
func (r TripRequest) Duration() int {
	return DaySpan(r.StartDate.Time, r.EndDate.Time)
}

// Validate enforces the input schema before any tool runs.
func (r TripRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("destination is required")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return fmt.Errorf("startDate and endDate are required")
	}
	if r.EndDate.Before(r.StartDate.Time) {
		return fmt.Errorf("endDate must not be before startDate")
	}
	if r.Budget <= 0 {
		return fmt.Errorf("budget must be positive")
	}
	if r.Travelers <= 0 {
		return fmt.Errorf("travelers must be a positive integer")
	}
	switch r.TravelStyle {
	case StyleBudget, StyleMidRange, StyleLuxury, "":
	default:
		return fmt.Errorf("travelStyle must be one of budget, mid-range, luxury")
	}
	return nil
}

// DaySpan is the absolute day count between two dates, rounded up, with a
// floor of one day.
func DaySpan(start, end time.Time) int {
	days := int(math.Ceil(math.Abs(end.Sub(start).Hours()) / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// NormalizeDestination trims a free-text destination down to the part before
// the first comma ("Tokyo, Japan" -> "Tokyo").
func NormalizeDestination(destination string) string {
	name, _, _ := strings.Cut(destination, ",")
	return strings.TrimSpace(name)
}

// GeoLocation is a resolved place. Absence triggers fallback paths in the
// tools that depend on it.
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
}

// ResearchBundle aggregates the four research tool outputs for one trip
// request. Built once, consumed once by itinerary synthesis.
type ResearchBundle struct {
	Weather     *WeatherForecastResult `json:"weather"`
	Destination *DestinationProfile    `json:"destination"`
	Budget      *BudgetPlan            `json:"budget"`
	Attractions *AttractionsResult     `json:"attractions"`
	Duration    int                    `json:"duration"`
}

// ItinerarySummary captures the headline numbers alongside the generated text.
type ItinerarySummary struct {
	Destination string   `json:"destination"`
	Duration    int      `json:"duration"`
	TotalBudget float64  `json:"totalBudget"`
	Travelers   int      `json:"travelers"`
	Highlights  []string `json:"highlights"`
}

// ItineraryResult is the workflow output record.
type ItineraryResult struct {
	Itinerary string           `json:"itinerary"`
	Summary   ItinerarySummary `json:"summary"`
}
