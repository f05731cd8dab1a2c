package usecase

import (
	"sort"

	"github.com/skyfare/flight-offer-search/internal/domain"
)

// SortFlights returns a new slice ordered by the given key, ascending.
// Sorting is stable: flights with equal keys keep their relative input
// order. Users compare consecutive equally-priced flights positionally,
// so stability is part of the contract.
//
// Sort keys:
//   - SortByPrice: by total price
//   - SortByDuration: by parsed minutes of the first itinerary
//   - SortByStops: by number of stops
//   - SortByDeparture: by the first segment's departure time, chronological
//
// An unsupported key returns a copy of the input unchanged (documented
// passthrough, not an error); callers constrain the key upstream.
// Does NOT mutate the input slice.
func SortFlights(flights []domain.Flight, key domain.SortKey) []domain.Flight {
	result := make([]domain.Flight, len(flights))
	copy(result, flights)

	if len(result) <= 1 {
		return result
	}

	switch key {
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Total < result[j].Price.Total
		})
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].OutboundMinutes() < result[j].OutboundMinutes()
		})
	case domain.SortByStops:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Stops < result[j].Stops
		})
	case domain.SortByDeparture:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DepartureTime().Before(result[j].DepartureTime())
		})
	}

	return result
}
