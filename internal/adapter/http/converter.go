// Package http provides the HTTP handler layer for the flight offer search API.
package http

import (
	"strings"

	"github.com/skyfare/flight-offer-search/internal/domain"
	"github.com/skyfare/flight-offer-search/internal/usecase"
)

// ToDomainCriteria converts a SearchOffersRequest to domain.SearchCriteria.
func ToDomainCriteria(req *SearchOffersRequest) domain.SearchCriteria {
	adults := req.Adults
	if adults < 1 {
		adults = 1
	}

	class := strings.ToUpper(req.TravelClass)
	if class == "" {
		class = "ECONOMY"
	}

	return domain.SearchCriteria{
		Origin:        strings.ToUpper(req.Origin),
		Destination:   strings.ToUpper(req.Destination),
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Adults:        adults,
		TravelClass:   class,
	}
}

// ToFilterState converts a FilterDTO to domain.FilterState.
// A nil DTO yields the neutral filter state.
func ToFilterState(dto *FilterDTO) domain.FilterState {
	if dto == nil {
		return usecase.ResetFilters()
	}

	state := domain.FilterState{
		Stops:    []int{},
		Airlines: []string{},
	}

	if dto.PriceRange != nil {
		state.PriceRange = &domain.PriceRange{
			Min: dto.PriceRange.Min,
			Max: dto.PriceRange.Max,
		}
	}
	if len(dto.Stops) > 0 {
		state.Stops = append(state.Stops, dto.Stops...)
	}
	if len(dto.Airlines) > 0 {
		state.Airlines = append(state.Airlines, dto.Airlines...)
	}

	return state
}

// ToSearchOptions converts request fields to usecase.SearchOptions.
func ToSearchOptions(req *SearchOffersRequest) usecase.SearchOptions {
	return usecase.SearchOptions{
		Filters: ToFilterState(req.Filters),
		SortBy:  domain.ParseSortKey(strings.ToLower(req.SortBy)),
	}
}
