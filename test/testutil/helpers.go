// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/skyfare/flight-offer-search/internal/domain"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64.
// Convenience function for filter state tests.
func FloatPtr(f float64) *float64 {
	return &f
}

// IntPtr returns a pointer to an int.
// Convenience function for filter state tests.
func IntPtr(i int) *int {
	return &i
}

// StringSlice returns a slice of strings.
// Convenience function for airline filter tests.
func StringSlice(s ...string) []string {
	return s
}

// Flight builds a direct one-way flight with the given id, price, and
// validating airlines. Duration defaults to 8h30m departing at a fixed time.
func Flight(id string, price float64, airlines ...string) domain.Flight {
	if len(airlines) == 0 {
		airlines = []string{"IB"}
	}
	departure := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

	return domain.Flight{
		ID:    id,
		Price: domain.Price{Total: price, Currency: "EUR"},
		Itineraries: []domain.Itinerary{
			Itinerary(510, 1, departure),
		},
		Stops:                  0,
		ValidatingAirlineCodes: airlines,
	}
}

// FlightWithStops builds a one-way flight with the given number of stops.
func FlightWithStops(id string, price float64, stops int) domain.Flight {
	departure := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

	return domain.Flight{
		ID:    id,
		Price: domain.Price{Total: price, Currency: "EUR"},
		Itineraries: []domain.Itinerary{
			Itinerary(510, stops+1, departure),
		},
		Stops:                  stops,
		ValidatingAirlineCodes: []string{"IB"},
	}
}

// FlightWithDuration builds a direct flight with an explicit outbound
// duration in minutes and departure time.
func FlightWithDuration(id string, price float64, minutes int, departure time.Time) domain.Flight {
	return domain.Flight{
		ID:    id,
		Price: domain.Price{Total: price, Currency: "EUR"},
		Itineraries: []domain.Itinerary{
			Itinerary(minutes, 1, departure),
		},
		Stops:                  0,
		ValidatingAirlineCodes: []string{"IB"},
	}
}

// Itinerary builds an itinerary with the given total minutes split evenly
// across the given number of segments.
func Itinerary(minutes, segments int, departure time.Time) domain.Itinerary {
	if segments < 1 {
		segments = 1
	}

	segs := make([]domain.Segment, segments)
	perSegment := time.Duration(minutes/segments) * time.Minute
	at := departure

	for i := 0; i < segments; i++ {
		segs[i] = domain.Segment{
			Departure:   domain.SegmentPoint{IataCode: "MAD", At: at},
			Arrival:     domain.SegmentPoint{IataCode: "JFK", At: at.Add(perSegment)},
			CarrierCode: "IB",
			Number:      fmt.Sprintf("%d", 6250+i),
			Duration:    domain.FormatDurationMinutes(int(perSegment.Minutes())),
		}
		at = at.Add(perSegment)
	}

	return domain.Itinerary{
		Duration:        fmt.Sprintf("PT%dH%dM", minutes/60, minutes%60),
		DurationMinutes: minutes,
		Segments:        segs,
	}
}
