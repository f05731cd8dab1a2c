package usecase

import (
	"github.com/skyfare/flight-offer-search/internal/domain"
)

// ApplyFilters applies the active filter selection to a flight collection.
// A flight passes only if it satisfies every facet: price, stops, airlines.
//
// Behavior:
//   - Price: total must fall within filters.PriceRange, or within
//     facets.PriceRange when the selection is nil, inclusive on both ends
//   - Stops: with a non-empty selection, at least one requested value must
//     match; 0 and 1 match exactly, StopsTwoPlus matches 2 or more
//   - Airlines: with a non-empty selection, at least one validating carrier
//     code of the flight must be in the requested set
//   - Empty stops/airlines selections impose no constraint (not "match
//     nothing")
//   - The result preserves input order (stable filter, not a re-sort)
//   - Does NOT mutate the input slice
func ApplyFilters(flights []domain.Flight, filters domain.FilterState, facets domain.FacetOptions) []domain.Flight {
	priceRange := facets.PriceRange
	if filters.PriceRange != nil {
		priceRange = *filters.PriceRange
	}

	// Pre-build airline set for O(1) lookup if the airlines facet is active
	var airlineSet map[string]struct{}
	if len(filters.Airlines) > 0 {
		airlineSet = make(map[string]struct{}, len(filters.Airlines))
		for _, code := range filters.Airlines {
			airlineSet[code] = struct{}{}
		}
	}

	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if !priceRange.Contains(f.Price.Total) {
			continue
		}
		if len(filters.Stops) > 0 && !matchesStops(f.Stops, filters.Stops) {
			continue
		}
		if airlineSet != nil && !hasValidatingAirline(f, airlineSet) {
			continue
		}
		result = append(result, f)
	}

	return result
}

// matchesStops checks if a stop count satisfies any of the requested values.
// StopsTwoPlus has an open upper bound ("2 or more").
func matchesStops(stops int, requested []int) bool {
	for _, want := range requested {
		if want == domain.StopsTwoPlus {
			if stops >= domain.StopsTwoPlus {
				return true
			}
			continue
		}
		if stops == want {
			return true
		}
	}
	return false
}

// hasValidatingAirline checks if any validating carrier code of the flight
// is in the requested set.
func hasValidatingAirline(f domain.Flight, set map[string]struct{}) bool {
	for _, code := range f.ValidatingAirlineCodes {
		if _, ok := set[code]; ok {
			return true
		}
	}
	return false
}

// CountActiveFilters counts the filter facets that deviate from their
// neutral state: the price range only when it differs from the derived
// facet bounds in either end, plus one each for non-empty stops and
// airlines selections. The maximum is 3.
func CountActiveFilters(filters domain.FilterState, facets domain.FacetOptions) int {
	count := 0

	if filters.PriceRange != nil &&
		(filters.PriceRange.Min != facets.PriceRange.Min ||
			filters.PriceRange.Max != facets.PriceRange.Max) {
		count++
	}
	if len(filters.Stops) > 0 {
		count++
	}
	if len(filters.Airlines) > 0 {
		count++
	}

	return count
}

// ResetFilters returns the neutral filter state: no price selection and
// empty stops/airlines sets. Applying it is a no-op filter.
func ResetFilters() domain.FilterState {
	return domain.FilterState{
		PriceRange: nil,
		Stops:      []int{},
		Airlines:   []string{},
	}
}
