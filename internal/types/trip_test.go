package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestDaySpan(t *testing.T) {
	tests := []struct {
		start    string
		end      string
		expected int
	}{
		{"2025-08-15", "2025-08-22", 7},
		{"2025-08-15", "2025-08-16", 1},
		{"2025-08-15", "2025-08-15", 1}, // same day floors to one
		{"2025-08-22", "2025-08-15", 7}, // reversed dates use the absolute span
	}

	for _, tc := range tests {
		start := mustDate(t, tc.start)
		end := mustDate(t, tc.end)
		assert.Equal(t, tc.expected, DaySpan(start.Time, end.Time), "%s..%s", tc.start, tc.end)
	}
}

func TestTripRequestDuration(t *testing.T) {
	req := TripRequest{
		StartDate: mustDate(t, "2025-08-15"),
		EndDate:   mustDate(t, "2025-08-22"),
	}
	assert.Equal(t, 7, req.Duration())
}

func TestNormalizeDestination(t *testing.T) {
	assert.Equal(t, "Tokyo", NormalizeDestination("Tokyo, Japan"))
	assert.Equal(t, "Tokyo", NormalizeDestination("  Tokyo , Japan, Asia"))
	assert.Equal(t, "Tokyo", NormalizeDestination("Tokyo"))
	assert.Equal(t, "", NormalizeDestination(","))
}

func TestTripRequestValidate(t *testing.T) {
	valid := TripRequest{
		Destination: "Tokyo, Japan",
		StartDate:   mustDate(t, "2025-08-15"),
		EndDate:     mustDate(t, "2025-08-22"),
		Budget:      3500,
		Travelers:   2,
		Interests:   []string{"culture"},
		TravelStyle: StyleMidRange,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*TripRequest)
	}{
		{"empty destination", func(r *TripRequest) { r.Destination = "  " }},
		{"missing dates", func(r *TripRequest) { r.StartDate = Date{} }},
		{"end before start", func(r *TripRequest) { r.StartDate, r.EndDate = r.EndDate, r.StartDate }},
		{"zero budget", func(r *TripRequest) { r.Budget = 0 }},
		{"negative budget", func(r *TripRequest) { r.Budget = -10 }},
		{"zero travelers", func(r *TripRequest) { r.Travelers = 0 }},
		{"bad style", func(r *TripRequest) { r.TravelStyle = "first-class" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestTripRequestValidate_EmptyStyleAllowed(t *testing.T) {
	req := TripRequest{
		Destination: "Tokyo",
		StartDate:   mustDate(t, "2025-08-15"),
		EndDate:     mustDate(t, "2025-08-16"),
		Budget:      100,
		Travelers:   1,
	}
	assert.NoError(t, req.Validate())
}

func TestDateJSONRoundTrip(t *testing.T) {
	req := TripRequest{
		Destination: "Tokyo",
		StartDate:   mustDate(t, "2025-08-15"),
		EndDate:     mustDate(t, "2025-08-22"),
		Budget:      100,
		Travelers:   1,
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"startDate":"2025-08-15"`)

	var decoded TripRequest
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, req.StartDate, decoded.StartDate)
	assert.Equal(t, req.EndDate, decoded.EndDate)
}

func TestParseDateRejectsBadInput(t *testing.T) {
	_, err := ParseDate("15/08/2025")
	assert.Error(t, err)
	_, err = ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestNewDateDropsTimeOfDay(t *testing.T) {
	d := NewDate(time.Date(2025, 8, 15, 17, 42, 3, 0, time.UTC))
	assert.Equal(t, "2025-08-15", d.String())
}
