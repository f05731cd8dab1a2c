package amadeus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfare/flight-offer-search/internal/domain"
	"github.com/skyfare/flight-offer-search/internal/infrastructure/logger"
)

func TestAdapter_Name(t *testing.T) {
	adapter := NewAdapter(nil, nil)
	assert.Equal(t, "amadeus", adapter.Name())
}

func TestAdapter_Search(t *testing.T) {
	ts := newTestServer(t)
	ts.searchBody = `{
		"data": [{
			"id": "1",
			"price": {"total": "320.00", "currency": "EUR"},
			"itineraries": [{"duration": "PT2H15M", "segments": [{
				"departure": {"iataCode": "MAD", "at": "2026-10-15T10:00:00"},
				"arrival": {"iataCode": "LHR", "at": "2026-10-15T12:15:00"},
				"carrierCode": "IB", "number": "3166", "duration": "PT2H15M"
			}]}],
			"validatingAirlineCodes": ["IB"]
		}],
		"dictionaries": {"carriers": {"IB": "IBERIA"}}
	}`

	adapter := NewAdapter(newTestClient(ts), logger.Nop())

	criteria := domain.SearchCriteria{
		Origin: "MAD", Destination: "LHR", DepartureDate: "2026-10-15", Adults: 1,
	}

	batch, err := adapter.Search(context.Background(), criteria)

	require.NoError(t, err)
	require.NotNil(t, batch)
	require.Len(t, batch.Flights, 1)
	assert.Equal(t, "1", batch.Flights[0].ID)
	assert.Equal(t, 320.0, batch.Flights[0].Price.Total)
	assert.Equal(t, 135, batch.Flights[0].Itineraries[0].DurationMinutes)
	assert.Equal(t, map[string]string{"IB": "IBERIA"}, batch.Carriers)
}

func TestAdapter_Search_MalformedOffer(t *testing.T) {
	ts := newTestServer(t)
	ts.searchBody = `{
		"data": [{
			"id": "bad",
			"price": {"total": "not-a-price", "currency": "EUR"},
			"itineraries": [{"duration": "PT2H", "segments": [{
				"departure": {"iataCode": "MAD", "at": "2026-10-15T10:00:00"},
				"arrival": {"iataCode": "LHR", "at": "2026-10-15T12:00:00"},
				"carrierCode": "IB", "number": "3166", "duration": "PT2H"
			}]}],
			"validatingAirlineCodes": ["IB"]
		}]
	}`

	adapter := NewAdapter(newTestClient(ts), logger.Nop())

	criteria := domain.SearchCriteria{
		Origin: "MAD", Destination: "LHR", DepartureDate: "2026-10-15", Adults: 1,
	}

	batch, err := adapter.Search(context.Background(), criteria)

	assert.Nil(t, batch)
	require.Error(t, err)
	assert.True(t, domain.IsMalformedOffer(err))

	var malformed *domain.MalformedOfferError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, []string{"bad"}, malformed.OfferIDs)
}

func TestAdapter_SearchLocations(t *testing.T) {
	ts := newTestServer(t)
	adapter := NewAdapter(newTestClient(ts), logger.Nop())

	locations, err := adapter.SearchLocations(context.Background(), "man")

	require.NoError(t, err)
	assert.Len(t, locations, 2)
}
