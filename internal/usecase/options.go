package usecase

import "github.com/skyfare/flight-offer-search/internal/domain"

// SearchOptions contains the optional transformation parameters for an
// offer search: the active filter selection and the sort order.
type SearchOptions struct {
	// Filters is the active filter selection applied to the results
	Filters domain.FilterState

	// SortBy specifies how to order the filtered results (default: price)
	SortBy domain.SortKey
}

// DefaultSearchOptions returns SearchOptions with the neutral filter state
// and the default sort order.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters: ResetFilters(),
		SortBy:  domain.SortByPrice,
	}
}
