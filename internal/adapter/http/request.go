// Package http provides the HTTP handler layer for the flight offer search
// API. It handles request parsing, validation, response formatting, and
// error mapping.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// SearchOffersRequest represents the request body for offer search.
type SearchOffersRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "MAD")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "JFK")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date for round trips (YYYY-MM-DD)
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (1-9, defaults to 1)
	Adults int `json:"adults"`

	// TravelClass is the cabin class (optional, defaults to ECONOMY)
	TravelClass string `json:"travelClass,omitempty"`

	// Filters contains the optional filter selection
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy specifies how to sort results: price, duration, stops, departure
	SortBy string `json:"sortBy,omitempty"`
}

// FilterDTO represents the filter selection for an offer search.
// Example: {"priceRange": {"min": 100, "max": 800}, "stops": [0, 1], "airlines": ["IB", "UX"]}
type FilterDTO struct {
	// PriceRange restricts results to an inclusive price interval.
	// Omitted means the full derived price range.
	PriceRange *PriceRangeDTO `json:"priceRange,omitempty"`

	// Stops is the set of accepted stop counts: 0, 1, or 2 (2 or more)
	Stops []int `json:"stops,omitempty" example:"0,1"`

	// Airlines restricts results to these validating airline codes
	Airlines []string `json:"airlines,omitempty" example:"IB,UX"`
}

// PriceRangeDTO represents an inclusive price interval.
type PriceRangeDTO struct {
	// Min is the lower bound (inclusive)
	Min float64 `json:"min" example:"100"`

	// Max is the upper bound (inclusive)
	Max float64 `json:"max" example:"800"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	airlineCodePattern = regexp.MustCompile(`^[A-Z0-9]{2,3}$`)
)

// Valid travel classes.
var validClasses = map[string]bool{
	"ECONOMY":         true,
	"PREMIUM_ECONOMY": true,
	"BUSINESS":        true,
	"FIRST":           true,
	"":                true, // Empty is valid (defaults to ECONOMY)
}

// Valid sort options.
var validSortOptions = map[string]bool{
	"price":     true,
	"duration":  true,
	"stops":     true,
	"departure": true,
	"":          true, // Empty is valid (defaults to price)
}

// Valid stops filter values.
var validStopsValues = map[int]bool{
	0: true,
	1: true,
	2: true, // 2 means "2 or more"
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
func (r *SearchOffersRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateOrigin(errs)
	r.validateDestination(errs)
	r.validateOriginDestinationDifferent(errs)
	r.validateDepartureDate(errs)
	r.validateReturnDate(errs)
	r.validateAdults(errs)
	r.validateTravelClass(errs)
	r.validateSortBy(errs)
	r.validateFilters(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchOffersRequest) validateOrigin(errs *ValidationErrors) {
	if r.Origin == "" {
		errs.Add("origin", "origin is required")
		return
	}

	origin := strings.ToUpper(r.Origin)
	if !airportCodePattern.MatchString(origin) {
		errs.Add("origin", "origin must be a valid 3-letter IATA airport code")
		return
	}
	r.Origin = origin // Normalize to uppercase
}

func (r *SearchOffersRequest) validateDestination(errs *ValidationErrors) {
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
		return
	}

	dest := strings.ToUpper(r.Destination)
	if !airportCodePattern.MatchString(dest) {
		errs.Add("destination", "destination must be a valid 3-letter IATA airport code")
		return
	}
	r.Destination = dest // Normalize to uppercase
}

func (r *SearchOffersRequest) validateOriginDestinationDifferent(errs *ValidationErrors) {
	if r.Origin != "" && r.Destination != "" &&
		strings.EqualFold(r.Origin, r.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}
}

func (r *SearchOffersRequest) validateDepartureDate(errs *ValidationErrors) {
	if r.DepartureDate == "" {
		errs.Add("departureDate", "departureDate is required")
		return
	}

	if !datePattern.MatchString(r.DepartureDate) {
		errs.Add("departureDate", "departureDate must be in YYYY-MM-DD format")
		return
	}

	if _, err := time.Parse("2006-01-02", r.DepartureDate); err != nil {
		errs.Add("departureDate", "departureDate is not a valid date")
	}
}

func (r *SearchOffersRequest) validateReturnDate(errs *ValidationErrors) {
	if r.ReturnDate == "" {
		return
	}

	if !datePattern.MatchString(r.ReturnDate) {
		errs.Add("returnDate", "returnDate must be in YYYY-MM-DD format")
		return
	}

	ret, err := time.Parse("2006-01-02", r.ReturnDate)
	if err != nil {
		errs.Add("returnDate", "returnDate is not a valid date")
		return
	}

	if dep, err := time.Parse("2006-01-02", r.DepartureDate); err == nil {
		if ret.Before(dep) {
			errs.Add("returnDate", "returnDate must not be before departureDate")
		}
	}
}

func (r *SearchOffersRequest) validateAdults(errs *ValidationErrors) {
	// Zero means "not provided" and defaults to 1 during conversion
	if r.Adults < 0 {
		errs.Add("adults", "adults must be at least 1")
		return
	}
	if r.Adults > 9 {
		errs.Add("adults", "adults cannot exceed 9")
	}
}

func (r *SearchOffersRequest) validateTravelClass(errs *ValidationErrors) {
	if !validClasses[strings.ToUpper(r.TravelClass)] {
		errs.Add("travelClass", "travelClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST")
	}
}

func (r *SearchOffersRequest) validateSortBy(errs *ValidationErrors) {
	if !validSortOptions[strings.ToLower(r.SortBy)] {
		errs.Add("sortBy", "sortBy must be one of: price, duration, stops, departure")
	}
}

func (r *SearchOffersRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	if pr := r.Filters.PriceRange; pr != nil {
		if pr.Min < 0 {
			errs.Add("filters.priceRange.min", "min must be a non-negative number")
		}
		if pr.Max < pr.Min {
			errs.Add("filters.priceRange", "max must be greater than or equal to min")
		}
	}

	for i, stops := range r.Filters.Stops {
		if !validStopsValues[stops] {
			errs.Add(fmt.Sprintf("filters.stops[%d]", i),
				"stops value must be 0, 1, or 2")
		}
	}

	for i, airline := range r.Filters.Airlines {
		normalized := strings.ToUpper(airline)
		if !airlineCodePattern.MatchString(normalized) {
			errs.Add(fmt.Sprintf("filters.airlines[%d]", i),
				"airline code must be 2 or 3 characters")
			continue
		}
		r.Filters.Airlines[i] = normalized
	}
}

// LocationsQuery represents the query parameters for location autocomplete.
type LocationsQuery struct {
	// Keyword is the airport or city name prefix (at least 2 characters)
	Keyword string `query:"keyword"`
}
