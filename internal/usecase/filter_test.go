package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfare/flight-offer-search/internal/domain"
)

func flightIDs(flights []domain.Flight) []string {
	ids := make([]string, len(flights))
	for i, f := range flights {
		ids[i] = f.ID
	}
	return ids
}

func TestApplyFilters(t *testing.T) {
	flights := []domain.Flight{
		createTestFlight("1", 150, 510, 0, "IB"),
		createTestFlight("2", 350, 540, 1, "UX"),
		createTestFlight("3", 550, 600, 2, "IB"),
		createTestFlight("4", 950, 720, 3, "AA"),
	}
	facets := BuildFacets(flights)

	tests := []struct {
		name    string
		filters domain.FilterState
		wantIDs []string
	}{
		{
			name:    "neutral filter keeps everything",
			filters: ResetFilters(),
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name: "price range inclusive on both ends",
			filters: domain.FilterState{
				PriceRange: &domain.PriceRange{Min: 150, Max: 550},
			},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name: "nil price range falls back to facet bounds",
			filters: domain.FilterState{
				PriceRange: nil,
				Stops:      []int{},
				Airlines:   []string{},
			},
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "direct only",
			filters: domain.FilterState{Stops: []int{0}},
			wantIDs: []string{"1"},
		},
		{
			name:    "two plus matches two and three stops",
			filters: domain.FilterState{Stops: []int{domain.StopsTwoPlus}},
			wantIDs: []string{"3", "4"},
		},
		{
			name:    "multiple stops values are a union",
			filters: domain.FilterState{Stops: []int{0, 1}},
			wantIDs: []string{"1", "2"},
		},
		{
			name:    "airline selection",
			filters: domain.FilterState{Airlines: []string{"IB"}},
			wantIDs: []string{"1", "3"},
		},
		{
			name:    "airline selection with several codes",
			filters: domain.FilterState{Airlines: []string{"UX", "AA"}},
			wantIDs: []string{"2", "4"},
		},
		{
			name: "facets combine with AND",
			filters: domain.FilterState{
				PriceRange: &domain.PriceRange{Min: 0, Max: 600},
				Stops:      []int{domain.StopsTwoPlus},
				Airlines:   []string{"IB"},
			},
			wantIDs: []string{"3"},
		},
		{
			name: "no match yields empty non-nil slice",
			filters: domain.FilterState{
				PriceRange: &domain.PriceRange{Min: 2000, Max: 3000},
			},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(flights, tt.filters, facets)

			require.NotNil(t, got)
			assert.Equal(t, tt.wantIDs, flightIDs(got))
		})
	}
}

func TestApplyFilters_MultiCarrierFlightMatchesAnyCode(t *testing.T) {
	flights := []domain.Flight{
		createTestFlight("1", 300, 510, 0, "IB", "AA"),
		createTestFlight("2", 310, 510, 0, "UX"),
	}
	facets := BuildFacets(flights)

	got := ApplyFilters(flights, domain.FilterState{Airlines: []string{"AA"}}, facets)

	assert.Equal(t, []string{"1"}, flightIDs(got))
}

func TestApplyFilters_PreservesInputOrder(t *testing.T) {
	flights := []domain.Flight{
		createTestFlight("9", 900, 510, 0),
		createTestFlight("1", 100, 510, 0),
		createTestFlight("5", 500, 510, 0),
	}
	facets := BuildFacets(flights)

	got := ApplyFilters(flights, ResetFilters(), facets)

	assert.Equal(t, []string{"9", "1", "5"}, flightIDs(got))
}

func TestApplyFilters_DoesNotMutateInput(t *testing.T) {
	flights := []domain.Flight{
		createTestFlight("1", 150, 510, 0),
		createTestFlight("2", 850, 510, 0),
	}
	facets := BuildFacets(flights)

	ApplyFilters(flights, domain.FilterState{
		PriceRange: &domain.PriceRange{Min: 0, Max: 200},
	}, facets)

	assert.Len(t, flights, 2)
	assert.Equal(t, "2", flights[1].ID)
}

func TestCountActiveFilters(t *testing.T) {
	facets := domain.FacetOptions{
		PriceRange: domain.PriceRange{Min: 100, Max: 900},
	}

	tests := []struct {
		name    string
		filters domain.FilterState
		want    int
	}{
		{
			name:    "neutral state counts zero",
			filters: ResetFilters(),
			want:    0,
		},
		{
			name: "price equal to facet bounds is not active",
			filters: domain.FilterState{
				PriceRange: &domain.PriceRange{Min: 100, Max: 900},
			},
			want: 0,
		},
		{
			name: "narrowed price counts one",
			filters: domain.FilterState{
				PriceRange: &domain.PriceRange{Min: 200, Max: 900},
			},
			want: 1,
		},
		{
			name:    "stops selection counts one",
			filters: domain.FilterState{Stops: []int{0}},
			want:    1,
		},
		{
			name:    "airlines selection counts one",
			filters: domain.FilterState{Airlines: []string{"IB"}},
			want:    1,
		},
		{
			name: "all three active",
			filters: domain.FilterState{
				PriceRange: &domain.PriceRange{Min: 150, Max: 800},
				Stops:      []int{0, 1},
				Airlines:   []string{"IB", "UX"},
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountActiveFilters(tt.filters, facets))
		})
	}
}

func TestResetFilters(t *testing.T) {
	state := ResetFilters()

	assert.Nil(t, state.PriceRange)
	assert.NotNil(t, state.Stops)
	assert.Empty(t, state.Stops)
	assert.NotNil(t, state.Airlines)
	assert.Empty(t, state.Airlines)
}
