package domain

import (
	"fmt"
	"regexp"
	"time"
)

// SearchCriteria defines the parameters for a flight offer search.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "MAD")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "JFK")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date in YYYY-MM-DD format.
	// Empty means a one-way search.
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (default: 1)
	Adults int `json:"adults"`

	// TravelClass is the cabin class (default: ECONOMY)
	TravelClass string `json:"travelClass,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validTravelClasses defines the cabin classes the provider accepts.
var validTravelClasses = map[string]bool{
	"ECONOMY":         true,
	"PREMIUM_ECONOMY": true,
	"BUSINESS":        true,
	"FIRST":           true,
}

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.Origin == "" {
		return WrapInvalidRequest("origin is required")
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return WrapInvalidRequest("origin must be a valid 3-letter IATA code, got %q", s.Origin)
	}

	if s.Destination == "" {
		return WrapInvalidRequest("destination is required")
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return WrapInvalidRequest("destination must be a valid 3-letter IATA code, got %q", s.Destination)
	}

	if s.Origin == s.Destination {
		return WrapInvalidRequest("origin and destination must be different")
	}

	if s.DepartureDate == "" {
		return WrapInvalidRequest("departureDate is required")
	}
	departure, err := parseSearchDate(s.DepartureDate)
	if err != nil {
		return WrapInvalidRequest("departureDate: %v", err)
	}

	if s.ReturnDate != "" {
		ret, err := parseSearchDate(s.ReturnDate)
		if err != nil {
			return WrapInvalidRequest("returnDate: %v", err)
		}
		if ret.Before(departure) {
			return WrapInvalidRequest("returnDate must not be before departureDate")
		}
	}

	if s.Adults < 1 {
		return WrapInvalidRequest("adults must be at least 1")
	}
	if s.Adults > 9 {
		return WrapInvalidRequest("adults cannot exceed 9")
	}

	if s.TravelClass != "" && !validTravelClasses[s.TravelClass] {
		return WrapInvalidRequest(
			"travelClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST; got %q", s.TravelClass)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	if s.Adults == 0 {
		s.Adults = 1
	}
	if s.TravelClass == "" {
		s.TravelClass = "ECONOMY"
	}
}

// IsRoundTrip reports whether the criteria includes a return date.
func (s *SearchCriteria) IsRoundTrip() bool {
	return s.ReturnDate != ""
}

// parseSearchDate validates a YYYY-MM-DD date string.
func parseSearchDate(value string) (time.Time, error) {
	if !dateRegex.MatchString(value) {
		return time.Time{}, fmt.Errorf("must be in YYYY-MM-DD format, got %q", value)
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("not a valid date: %s", value)
	}
	return t, nil
}
