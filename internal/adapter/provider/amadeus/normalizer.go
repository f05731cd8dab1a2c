package amadeus

import (
	"fmt"
	"strconv"
	"time"

	"github.com/skyfare/flight-offer-search/internal/domain"
)

// Normalize converts raw provider offers into the canonical Flight records
// used by the transformation pipeline. The mapping is 1:1 and no offer is
// silently dropped. If any offer fails required-field validation, the call
// fails with a MalformedOfferError naming the offending ids, because
// partial results could silently hide provider errors from the user.
//
// Durations are parsed here, once: itineraries carry the parsed minutes so
// downstream sorting never re-parses and never has to handle a malformed
// duration.
func Normalize(offers []Offer) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0, len(offers))

	var badIDs []string
	var firstReason string

	for _, offer := range offers {
		flight, err := normalizeOffer(offer)
		if err != nil {
			badIDs = append(badIDs, offer.ID)
			if firstReason == "" {
				firstReason = err.Error()
			}
			continue
		}
		flights = append(flights, flight)
	}

	if len(badIDs) > 0 {
		return nil, domain.NewMalformedOfferError(firstReason, badIDs...)
	}

	return flights, nil
}

// normalizeOffer converts a single raw offer into a domain Flight.
func normalizeOffer(offer Offer) (domain.Flight, error) {
	if offer.ID == "" {
		return domain.Flight{}, fmt.Errorf("missing offer id")
	}

	total, err := strconv.ParseFloat(offer.Price.Total, 64)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("price total %q is not a decimal number", offer.Price.Total)
	}
	if offer.Price.Currency == "" {
		return domain.Flight{}, fmt.Errorf("missing price currency")
	}

	if len(offer.Itineraries) < 1 || len(offer.Itineraries) > 2 {
		return domain.Flight{}, fmt.Errorf("offer must have 1 or 2 itineraries, got %d", len(offer.Itineraries))
	}
	if len(offer.ValidatingAirlineCodes) == 0 {
		return domain.Flight{}, fmt.Errorf("missing validating airline codes")
	}

	itineraries := make([]domain.Itinerary, len(offer.Itineraries))
	for i, raw := range offer.Itineraries {
		itinerary, err := normalizeItinerary(raw)
		if err != nil {
			return domain.Flight{}, fmt.Errorf("itinerary %d: %w", i, err)
		}
		itineraries[i] = itinerary
	}

	codes := make([]string, len(offer.ValidatingAirlineCodes))
	copy(codes, offer.ValidatingAirlineCodes)

	return domain.Flight{
		ID:                     offer.ID,
		Price:                  domain.Price{Total: total, Currency: offer.Price.Currency},
		Itineraries:            itineraries,
		Stops:                  len(itineraries[0].Segments) - 1,
		ValidatingAirlineCodes: codes,
	}, nil
}

// normalizeItinerary converts one wire itinerary, preserving segment order.
func normalizeItinerary(raw OfferItinerary) (domain.Itinerary, error) {
	if len(raw.Segments) == 0 {
		return domain.Itinerary{}, fmt.Errorf("itinerary has no segments")
	}

	minutes, err := domain.ParseDurationMinutes(raw.Duration)
	if err != nil {
		return domain.Itinerary{}, err
	}

	segments := make([]domain.Segment, len(raw.Segments))
	var prevArrival time.Time

	for i, rawSeg := range raw.Segments {
		segment, err := normalizeSegment(rawSeg)
		if err != nil {
			return domain.Itinerary{}, fmt.Errorf("segment %d: %w", i, err)
		}

		// Consecutive segments must chain forward in time.
		if i > 0 && segment.Departure.At.Before(prevArrival) {
			return domain.Itinerary{}, fmt.Errorf("segment %d departs before previous segment arrives", i)
		}
		prevArrival = segment.Arrival.At
		segments[i] = segment
	}

	return domain.Itinerary{
		Duration:        raw.Duration,
		DurationMinutes: minutes,
		Segments:        segments,
	}, nil
}

// normalizeSegment converts one wire segment and validates its time order.
func normalizeSegment(raw OfferSegment) (domain.Segment, error) {
	departure, err := normalizeEndpoint(raw.Departure)
	if err != nil {
		return domain.Segment{}, fmt.Errorf("departure: %w", err)
	}
	arrival, err := normalizeEndpoint(raw.Arrival)
	if err != nil {
		return domain.Segment{}, fmt.Errorf("arrival: %w", err)
	}

	if !departure.At.Before(arrival.At) {
		return domain.Segment{}, fmt.Errorf("departure %s is not before arrival %s",
			departure.At.Format(time.RFC3339), arrival.At.Format(time.RFC3339))
	}

	if raw.CarrierCode == "" {
		return domain.Segment{}, fmt.Errorf("missing carrier code")
	}

	return domain.Segment{
		Departure:   departure,
		Arrival:     arrival,
		CarrierCode: raw.CarrierCode,
		Number:      raw.Number,
		Duration:    raw.Duration,
	}, nil
}

// normalizeEndpoint converts one wire endpoint.
func normalizeEndpoint(raw OfferEndpoint) (domain.SegmentPoint, error) {
	if raw.IataCode == "" {
		return domain.SegmentPoint{}, fmt.Errorf("missing iata code")
	}

	at, err := parseSegmentTime(raw.At)
	if err != nil {
		return domain.SegmentPoint{}, err
	}

	return domain.SegmentPoint{IataCode: raw.IataCode, At: at}, nil
}

// parseSegmentTime parses the provider's segment timestamps.
// Supports RFC 3339 and the offset-less local form the provider emits.
func parseSegmentTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse("2006-01-02T15:04:05", value)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse timestamp %q", value)
}
