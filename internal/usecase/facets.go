// Package usecase provides the flight-offer transformation pipeline: facet
// derivation, filtering, sorting, price distribution analysis, and value
// ranking. Every function is pure: explicit inputs, new outputs, no mutation
// of the source collection.
package usecase

import (
	"math"
	"sort"

	"github.com/skyfare/flight-offer-search/internal/domain"
)

// Default price bounds used for an empty collection. These are documented
// defaults, not derived values.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 1000
)

// BuildFacets derives the filterable facets from a normalized flight
// collection.
//
// Behavior:
//   - Empty input returns the fixed default price range [0, 1000] and no
//     airline entries
//   - PriceRange is [floor(min price), ceil(max price)] over all flights
//   - Airlines counts every validating carrier code of every flight (a
//     flight with multiple validating carriers contributes to each), sorted
//     by descending count with ties kept in first-encountered order
//   - Does NOT mutate the input; recomputed fresh on every call
func BuildFacets(flights []domain.Flight) domain.FacetOptions {
	if len(flights) == 0 {
		return domain.FacetOptions{
			PriceRange: domain.PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice},
			Airlines:   []domain.AirlineCount{},
		}
	}

	minPrice := flights[0].Price.Total
	maxPrice := flights[0].Price.Total
	for _, f := range flights[1:] {
		if f.Price.Total < minPrice {
			minPrice = f.Price.Total
		}
		if f.Price.Total > maxPrice {
			maxPrice = f.Price.Total
		}
	}

	return domain.FacetOptions{
		PriceRange: domain.PriceRange{
			Min: math.Floor(minPrice),
			Max: math.Ceil(maxPrice),
		},
		Airlines: countAirlines(flights),
	}
}

// countAirlines tallies validating airline codes across the collection and
// orders them by descending count. Insertion order breaks ties so the
// result is deterministic for a given input order.
func countAirlines(flights []domain.Flight) []domain.AirlineCount {
	counts := make(map[string]int)
	var order []string

	for _, f := range flights {
		for _, code := range f.ValidatingAirlineCodes {
			if _, seen := counts[code]; !seen {
				order = append(order, code)
			}
			counts[code]++
		}
	}

	airlines := make([]domain.AirlineCount, 0, len(order))
	for _, code := range order {
		airlines = append(airlines, domain.AirlineCount{Code: code, Count: counts[code]})
	}

	// Stable sort keeps equal counts in first-encountered order.
	sort.SliceStable(airlines, func(i, j int) bool {
		return airlines[i].Count > airlines[j].Count
	})

	return airlines
}
