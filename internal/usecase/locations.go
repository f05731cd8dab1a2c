package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/skyfare/flight-offer-search/internal/domain"
	"github.com/skyfare/flight-offer-search/internal/infrastructure/debounce"
)

// MinKeywordLength is the shortest keyword worth sending to the provider.
// Shorter prefixes produce noise and waste provider quota.
const MinKeywordLength = 2

// LocationSearchUseCase serves location-autocomplete lookups.
type LocationSearchUseCase interface {
	// Lookup returns location suggestions for a keyword prefix.
	// Keywords shorter than MinKeywordLength return an empty result
	// without calling the provider.
	Lookup(ctx context.Context, keyword string) ([]domain.Location, error)

	// LookupDebounced schedules a lookup after the debounce interval and
	// delivers the result to apply. Rapid successive calls supersede each
	// other: only the latest keyword's result is delivered.
	LookupDebounced(ctx context.Context, keyword string, apply func([]domain.Location, error))
}

// locationSearchUseCase implements LocationSearchUseCase.
type locationSearchUseCase struct {
	provider  domain.LocationProvider
	debouncer *debounce.Debouncer
}

// NewLocationSearchUseCase creates a LocationSearchUseCase with the given
// provider and debounce interval. A non-positive interval uses the
// debounce package default (400ms).
func NewLocationSearchUseCase(provider domain.LocationProvider, interval time.Duration) LocationSearchUseCase {
	return &locationSearchUseCase{
		provider:  provider,
		debouncer: debounce.New(interval),
	}
}

// Lookup implements LocationSearchUseCase.Lookup.
func (uc *locationSearchUseCase) Lookup(ctx context.Context, keyword string) ([]domain.Location, error) {
	keyword = strings.TrimSpace(keyword)
	if len(keyword) < MinKeywordLength {
		return []domain.Location{}, nil
	}
	return uc.provider.SearchLocations(ctx, keyword)
}

// LookupDebounced implements LocationSearchUseCase.LookupDebounced.
func (uc *locationSearchUseCase) LookupDebounced(ctx context.Context, keyword string, apply func([]domain.Location, error)) {
	uc.debouncer.Trigger(ctx, func(ctx context.Context) {
		apply(uc.Lookup(ctx, keyword))
	})
}

// Ensure locationSearchUseCase implements the interface at compile time.
var _ LocationSearchUseCase = (*locationSearchUseCase)(nil)
