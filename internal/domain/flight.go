// Package domain contains the core business entities and rules for the flight offer
// search pipeline. These entities are provider-agnostic: the rest of the system
// (facets, filtering, sorting, price analytics, value ranking) is built on them.
package domain

import "time"

// Flight is the normalized form of one priced offer returned by the search
// provider. The collection produced for a search response is treated as
// immutable: every downstream derivation returns a new slice or view and
// never mutates the source.
type Flight struct {
	// ID is the offer identifier, unique and stable within one search response
	ID string `json:"id"`

	// Price is the total price of the offer
	Price Price `json:"price"`

	// Itineraries holds one entry for a one-way offer or two for a round trip.
	// The first itinerary is always the outbound leg.
	Itineraries []Itinerary `json:"itineraries"`

	// Stops is the number of stops of the first itinerary
	// (segment count minus one, never negative)
	Stops int `json:"numberOfStops"`

	// ValidatingAirlineCodes is the set of carrier codes whose conditions
	// govern the ticket. Non-empty in well-formed input.
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
}

// Price contains pricing information for an offer.
type Price struct {
	// Total is the numeric price value
	Total float64 `json:"total"`

	// Currency is the ISO 4217 currency code (e.g., "EUR", "USD")
	Currency string `json:"currency"`
}

// Itinerary is one direction of travel (outbound or return), composed of one
// or more segments in travel order.
type Itinerary struct {
	// Duration is the provider's ISO 8601 duration string (e.g., "PT5H30M")
	Duration string `json:"duration"`

	// DurationMinutes is the parsed total duration. It is computed once
	// during normalization so downstream consumers never re-parse.
	DurationMinutes int `json:"durationMinutes"`

	// Segments is the ordered, non-empty list of flight legs
	Segments []Segment `json:"segments"`
}

// Segment is one non-stop leg between two airports operated by one carrier.
type Segment struct {
	// Departure is the origin point of the leg
	Departure SegmentPoint `json:"departure"`

	// Arrival is the destination point of the leg
	Arrival SegmentPoint `json:"arrival"`

	// CarrierCode is the IATA code of the operating carrier
	CarrierCode string `json:"carrierCode"`

	// Number is the flight number string (e.g., "431")
	Number string `json:"number"`

	// Duration is the ISO 8601 duration of this leg
	Duration string `json:"duration"`
}

// SegmentPoint is one end of a segment: an airport and a scheduled time.
type SegmentPoint struct {
	// IataCode is the 3-letter IATA airport code
	IataCode string `json:"iataCode"`

	// At is the scheduled local time at the airport
	At time.Time `json:"at"`
}

// Outbound returns the first itinerary of the flight.
// Malformed input is rejected during normalization, so the zero-value
// fallback only guards zero-value flights constructed in tests.
func (f *Flight) Outbound() Itinerary {
	if len(f.Itineraries) == 0 {
		return Itinerary{}
	}
	return f.Itineraries[0]
}

// DepartureTime returns the scheduled departure of the first segment of the
// first itinerary, which is the time used for chronological sorting.
func (f *Flight) DepartureTime() time.Time {
	out := f.Outbound()
	if len(out.Segments) == 0 {
		return time.Time{}
	}
	return out.Segments[0].Departure.At
}

// OutboundMinutes returns the parsed duration of the first itinerary.
func (f *Flight) OutboundMinutes() int {
	return f.Outbound().DurationMinutes
}

// IsRoundTrip reports whether the offer covers a return leg.
func (f *Flight) IsRoundTrip() bool {
	return len(f.Itineraries) == 2
}
