// Package mock provides test doubles for the flight offer search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skyfare/flight-offer-search/internal/domain"
)

// Provider is a configurable mock implementation of domain.FlightProvider
// and domain.LocationProvider. It supports configurable delays, errors, and
// responses for testing various scenarios including timeouts and stale
// searches.
type Provider struct {
	name      string
	batch     *domain.OfferBatch
	locations []domain.Location
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{
		name: name,
	}
}

// WithFlights configures the provider to return the given flights with an
// empty carrier dictionary.
func (p *Provider) WithFlights(flights []domain.Flight) *Provider {
	p.batch = &domain.OfferBatch{
		Flights:  flights,
		Carriers: map[string]string{},
	}
	return p
}

// WithBatch configures the provider to return the given batch.
func (p *Provider) WithBatch(batch *domain.OfferBatch) *Provider {
	p.batch = batch
	return p
}

// WithLocations configures the provider to return the given locations.
func (p *Provider) WithLocations(locations []domain.Location) *Provider {
	p.locations = locations
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Search implements domain.FlightProvider.Search.
// It respects context cancellation, applies configured delay,
// and returns the configured batch or error.
func (p *Provider) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.OfferBatch, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}

	if p.batch == nil {
		return &domain.OfferBatch{Flights: []domain.Flight{}, Carriers: map[string]string{}}, nil
	}
	return p.batch, nil
}

// SearchLocations implements domain.LocationProvider.SearchLocations.
func (p *Provider) SearchLocations(ctx context.Context, keyword string) ([]domain.Location, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if p.err != nil {
		return nil, p.err
	}
	return p.locations, nil
}

// CallCount returns the number of times a search method was called.
// This is useful for verifying provider interactions.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Provider implements the domain interfaces at compile time.
var (
	_ domain.FlightProvider   = (*Provider)(nil)
	_ domain.LocationProvider = (*Provider)(nil)
)

// SampleFlights returns a slice of sample one-way flights for testing.
// Prices rise by 50 per flight starting at 250; every flight is direct and
// validated by "IB".
func SampleFlights(count int) []domain.Flight {
	flights := make([]domain.Flight, count)

	baseTime := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		departureTime := baseTime.Add(time.Duration(i*2) * time.Hour)
		arrivalTime := departureTime.Add(8*time.Hour + 30*time.Minute)

		flights[i] = domain.Flight{
			ID: fmt.Sprintf("%d", i+1),
			Price: domain.Price{
				Total:    250 + float64(i*50),
				Currency: "EUR",
			},
			Itineraries: []domain.Itinerary{
				{
					Duration:        "PT8H30M",
					DurationMinutes: 510,
					Segments: []domain.Segment{
						{
							Departure:   domain.SegmentPoint{IataCode: "MAD", At: departureTime},
							Arrival:     domain.SegmentPoint{IataCode: "JFK", At: arrivalTime},
							CarrierCode: "IB",
							Number:      fmt.Sprintf("%d", 6250+i),
							Duration:    "PT8H30M",
						},
					},
				},
			},
			Stops:                  0,
			ValidatingAirlineCodes: []string{"IB"},
		}
	}

	return flights
}

// SampleCarriers returns a carrier dictionary covering SampleFlights.
func SampleCarriers() map[string]string {
	return map[string]string{
		"IB": "IBERIA",
		"UX": "AIR EUROPA",
		"AA": "AMERICAN AIRLINES",
	}
}
