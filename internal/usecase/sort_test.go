package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/skyfare/flight-offer-search/internal/domain"
)

func TestSortFlights(t *testing.T) {
	base := time.Date(2026, 10, 15, 6, 0, 0, 0, time.UTC)

	flights := []domain.Flight{
		createTestFlight("expensive-short", 900, 400, 1),
		createTestFlight("cheap-long", 200, 700, 0),
		createTestFlight("mid-direct", 500, 510, 0),
		createTestFlight("mid-threestop", 500, 650, 3),
	}
	flights[0].Itineraries[0].Segments[0].Departure.At = base.Add(9 * time.Hour)
	flights[1].Itineraries[0].Segments[0].Departure.At = base
	flights[2].Itineraries[0].Segments[0].Departure.At = base.Add(4 * time.Hour)
	flights[3].Itineraries[0].Segments[0].Departure.At = base.Add(2 * time.Hour)

	tests := []struct {
		name    string
		key     domain.SortKey
		wantIDs []string
	}{
		{
			name:    "by price ascending",
			key:     domain.SortByPrice,
			wantIDs: []string{"cheap-long", "mid-direct", "mid-threestop", "expensive-short"},
		},
		{
			name:    "by duration ascending",
			key:     domain.SortByDuration,
			wantIDs: []string{"expensive-short", "mid-direct", "mid-threestop", "cheap-long"},
		},
		{
			name:    "by stops ascending",
			key:     domain.SortByStops,
			wantIDs: []string{"cheap-long", "mid-direct", "expensive-short", "mid-threestop"},
		},
		{
			name:    "by departure chronological",
			key:     domain.SortByDeparture,
			wantIDs: []string{"cheap-long", "mid-threestop", "mid-direct", "expensive-short"},
		},
		{
			name:    "unknown key returns input order",
			key:     domain.SortKey("charm"),
			wantIDs: []string{"expensive-short", "cheap-long", "mid-direct", "mid-threestop"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortFlights(flights, tt.key)
			assert.Equal(t, tt.wantIDs, flightIDs(got))
		})
	}
}

func TestSortFlights_StableOnEqualKeys(t *testing.T) {
	flights := []domain.Flight{
		createTestFlight("first", 500, 510, 0),
		createTestFlight("second", 500, 510, 1),
		createTestFlight("third", 500, 510, 2),
	}

	got := SortFlights(flights, domain.SortByPrice)

	// Equal prices keep their relative input order.
	assert.Equal(t, []string{"first", "second", "third"}, flightIDs(got))
}

func TestSortFlights_DoesNotMutateInput(t *testing.T) {
	flights := []domain.Flight{
		createTestFlight("b", 900, 510, 0),
		createTestFlight("a", 100, 510, 0),
	}

	got := SortFlights(flights, domain.SortByPrice)

	assert.Equal(t, []string{"b", "a"}, flightIDs(flights))
	assert.Equal(t, []string{"a", "b"}, flightIDs(got))
}

func TestSortFlights_EmptyAndSingle(t *testing.T) {
	assert.Empty(t, SortFlights(nil, domain.SortByPrice))

	single := []domain.Flight{createTestFlight("only", 100, 510, 0)}
	got := SortFlights(single, domain.SortByDuration)
	assert.Equal(t, []string{"only"}, flightIDs(got))
}
