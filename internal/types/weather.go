package types

// DailyForecast is one day of weather, index-aligned with the trip's date
// range.
type DailyForecast struct {
	Date                Date   `json:"date"`
	Condition           string `json:"condition"`
	MaxTemp             int    `json:"maxTemp"`
	MinTemp             int    `json:"minTemp"`
	PrecipitationChance int    `json:"precipitationChance"`
	WeatherCode         int    `json:"weatherCode"`
}

// WeatherForecastResult is the weather tool output. It may be sourced from
// the live API or synthesized; the shape is identical either way.
type WeatherForecastResult struct {
	Destination string          `json:"destination"`
	Country     string          `json:"country"`
	Forecast    []DailyForecast `json:"forecast"`
	Summary     string          `json:"summary"`
}

// WeatherForecastInput is the schema-validated input record for the weather
// forecast tool endpoint.
type WeatherForecastInput struct {
	Destination string `json:"destination"`
	StartDate   Date   `json:"startDate"`
	EndDate     Date   `json:"endDate"`
}

func (in WeatherForecastInput) Validate() error {
	if in.Destination == "" {
		return errRequired("destination")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return errRequired("startDate and endDate")
	}
	return nil
}
