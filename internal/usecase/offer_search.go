package usecase

import (
	"context"
	"time"

	"github.com/skyfare/flight-offer-search/internal/domain"
)

// DefaultSearchTimeout bounds a single provider search.
const DefaultSearchTimeout = 10 * time.Second

// OfferSearchUseCase defines the interface for flight offer searches.
type OfferSearchUseCase interface {
	// Search fetches offers for the criteria and runs the full
	// transformation pipeline over them: facets, filters, sort, price
	// distribution, and value ranking.
	Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*SearchResult, error)
}

// SearchResult is the full pipeline output for one search.
type SearchResult struct {
	// Criteria echoes the search parameters
	Criteria domain.SearchCriteria

	// Flights is the filtered, sorted collection
	Flights []domain.Flight

	// Facets are derived from the FULL normalized collection, not the
	// filtered subset, so widening a filter never loses options
	Facets domain.FacetOptions

	// ActiveFilters is the number of filter facets deviating from neutral
	ActiveFilters int

	// Buckets is the price distribution of the filtered subset
	Buckets []domain.PriceBucket

	// Stats are aggregate price statistics of the filtered subset,
	// nil when the subset is empty
	Stats *domain.PriceStats

	// Ranking identifies the cheapest and best-value offers within the
	// filtered subset
	Ranking domain.ValueRanking

	// Carriers maps carrier codes to display names
	Carriers map[string]string

	// TotalResults is the size of the full normalized collection before
	// filtering
	TotalResults int

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64
}

// offerSearchUseCase implements OfferSearchUseCase over a single provider.
type offerSearchUseCase struct {
	provider domain.FlightProvider
	session  *SearchSession
	timeout  time.Duration
}

// Config contains configuration options for the use case.
type Config struct {
	// SearchTimeout bounds the provider call. Zero means the default.
	SearchTimeout time.Duration
}

// NewOfferSearchUseCase creates an OfferSearchUseCase with the given
// provider and configuration. If config is nil, defaults are used.
func NewOfferSearchUseCase(provider domain.FlightProvider, config *Config) OfferSearchUseCase {
	timeout := DefaultSearchTimeout
	if config != nil && config.SearchTimeout > 0 {
		timeout = config.SearchTimeout
	}

	return &offerSearchUseCase{
		provider: provider,
		session:  NewSearchSession(),
		timeout:  timeout,
	}
}

// Search implements OfferSearchUseCase.Search.
//
// Each call takes the next search generation. If a newer search starts
// while the provider call is in flight, the result is discarded with
// ErrStaleSearch instead of overwriting the newer search's outcome.
func (uc *offerSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*SearchResult, error) {
	startTime := time.Now()

	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	gen := uc.session.Begin()

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	batch, err := uc.provider.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	if !uc.session.IsCurrent(gen) {
		return nil, domain.ErrStaleSearch
	}

	return buildSearchResult(criteria, batch, opts, time.Since(startTime)), nil
}

// buildSearchResult runs the pure pipeline over a normalized batch.
// Facets come from the full collection; every other derivation consumes
// the filtered subset.
func buildSearchResult(criteria domain.SearchCriteria, batch *domain.OfferBatch, opts SearchOptions, elapsed time.Duration) *SearchResult {
	facets := BuildFacets(batch.Flights)
	filtered := ApplyFilters(batch.Flights, opts.Filters, facets)
	sorted := SortFlights(filtered, opts.SortBy)

	return &SearchResult{
		Criteria:      criteria,
		Flights:       sorted,
		Facets:        facets,
		ActiveFilters: CountActiveFilters(opts.Filters, facets),
		Buckets:       BuildPriceBuckets(sorted),
		Stats:         ComputePriceStats(sorted),
		Ranking:       RankValue(sorted),
		Carriers:      batch.Carriers,
		TotalResults:  len(batch.Flights),
		SearchTimeMs:  elapsed.Milliseconds(),
	}
}

// Ensure offerSearchUseCase implements OfferSearchUseCase at compile time.
var _ OfferSearchUseCase = (*offerSearchUseCase)(nil)
