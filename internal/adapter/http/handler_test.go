package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfare/flight-offer-search/internal/adapter/http/response"
	"github.com/skyfare/flight-offer-search/internal/domain"
	"github.com/skyfare/flight-offer-search/internal/usecase"
)

// stubOffers is a canned OfferSearchUseCase for handler tests.
type stubOffers struct {
	result      *usecase.SearchResult
	err         error
	gotCriteria domain.SearchCriteria
	gotOpts     usecase.SearchOptions
	calls       int
}

func (s *stubOffers) Search(ctx context.Context, criteria domain.SearchCriteria, opts usecase.SearchOptions) (*usecase.SearchResult, error) {
	s.calls++
	s.gotCriteria = criteria
	s.gotOpts = opts
	return s.result, s.err
}

// stubLocations is a canned LocationSearchUseCase for handler tests.
type stubLocations struct {
	locations  []domain.Location
	err        error
	gotKeyword string
}

func (s *stubLocations) Lookup(ctx context.Context, keyword string) ([]domain.Location, error) {
	s.gotKeyword = keyword
	return s.locations, s.err
}

func (s *stubLocations) LookupDebounced(ctx context.Context, keyword string, apply func([]domain.Location, error)) {
	apply(s.Lookup(ctx, keyword))
}

var (
	_ usecase.OfferSearchUseCase    = (*stubOffers)(nil)
	_ usecase.LocationSearchUseCase = (*stubLocations)(nil)
)

func sampleResult() *usecase.SearchResult {
	departure := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	return &usecase.SearchResult{
		Criteria: domain.SearchCriteria{
			Origin:        "MAD",
			Destination:   "JFK",
			DepartureDate: "2026-10-15",
			Adults:        1,
			TravelClass:   "ECONOMY",
		},
		Flights: []domain.Flight{
			{
				ID:    "1",
				Price: domain.Price{Total: 450.50, Currency: "EUR"},
				Itineraries: []domain.Itinerary{{
					Duration:        "PT8H30M",
					DurationMinutes: 510,
					Segments: []domain.Segment{{
						Departure:   domain.SegmentPoint{IataCode: "MAD", At: departure},
						Arrival:     domain.SegmentPoint{IataCode: "JFK", At: departure.Add(510 * time.Minute)},
						CarrierCode: "IB",
						Number:      "6251",
						Duration:    "PT8H30M",
					}},
				}},
				Stops:                  0,
				ValidatingAirlineCodes: []string{"IB"},
			},
		},
		Facets: domain.FacetOptions{
			PriceRange: domain.PriceRange{Min: 450, Max: 451},
			Airlines:   []domain.AirlineCount{{Code: "IB", Count: 1}},
		},
		Buckets:      []domain.PriceBucket{{Range: "$400-600", Count: 1, AvgPrice: 451, MinPrice: 451, MaxPrice: 451}},
		Stats:        &domain.PriceStats{Average: 451, Lowest: 451, Highest: 451},
		Ranking:      domain.ValueRanking{CheapestID: "1", BestValueIDs: []string{"1"}},
		Carriers:     map[string]string{"IB": "IBERIA"},
		TotalResults: 1,
		SearchTimeMs: 12,
	}
}

func performSearch(t *testing.T, offers usecase.OfferSearchUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offers/search", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewOfferHandler(offers, &stubLocations{})
	require.NoError(t, handler.SearchOffers(c))
	return rec
}

func TestOfferHandler_SearchOffers_Success(t *testing.T) {
	offers := &stubOffers{result: sampleResult()}

	rec := performSearch(t, offers, `{
		"origin": "mad",
		"destination": "jfk",
		"departureDate": "2026-10-15",
		"adults": 1,
		"sortBy": "duration"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var dto SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))

	assert.Equal(t, "MAD", dto.Criteria.Origin)
	assert.Equal(t, 1, dto.Metadata.TotalResults)
	assert.Equal(t, 1, dto.Metadata.FilteredResults)
	require.Len(t, dto.Flights, 1)
	assert.Equal(t, "1", dto.Flights[0].ID)
	assert.True(t, dto.Flights[0].Cheapest)
	// Cheapest takes precedence over the best-value badge.
	assert.False(t, dto.Flights[0].BestValue)
	assert.Equal(t, "8h 30m", dto.Flights[0].Itineraries[0].Formatted)
	assert.Equal(t, map[string]string{"IB": "IBERIA"}, dto.Carriers)

	// Codes are normalized and the sort option passed through.
	assert.Equal(t, "MAD", offers.gotCriteria.Origin)
	assert.Equal(t, "JFK", offers.gotCriteria.Destination)
	assert.Equal(t, domain.SortByDuration, offers.gotOpts.SortBy)
}

func TestOfferHandler_SearchOffers_FiltersConverted(t *testing.T) {
	offers := &stubOffers{result: sampleResult()}

	performSearch(t, offers, `{
		"origin": "MAD",
		"destination": "JFK",
		"departureDate": "2026-10-15",
		"filters": {
			"priceRange": {"min": 100, "max": 800},
			"stops": [0, 1],
			"airlines": ["ib"]
		}
	}`)

	filters := offers.gotOpts.Filters
	require.NotNil(t, filters.PriceRange)
	assert.Equal(t, 100.0, filters.PriceRange.Min)
	assert.Equal(t, 800.0, filters.PriceRange.Max)
	assert.Equal(t, []int{0, 1}, filters.Stops)
	assert.Equal(t, []string{"IB"}, filters.Airlines)
}

func TestOfferHandler_SearchOffers_MalformedBody(t *testing.T) {
	offers := &stubOffers{}

	rec := performSearch(t, offers, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, offers.calls)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeInvalidRequest, detail.Code)
}

func TestOfferHandler_SearchOffers_ValidationFailure(t *testing.T) {
	offers := &stubOffers{}

	rec := performSearch(t, offers, `{"origin": "MAD"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, offers.calls)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeValidationError, detail.Code)
	assert.Contains(t, detail.Details, "destination")
	assert.Contains(t, detail.Details, "departureDate")
}

func TestOfferHandler_SearchOffers_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid request from domain validation",
			err:        domain.WrapInvalidRequest("origin is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   response.CodeValidationError,
		},
		{
			name:       "provider rejected parameters",
			err:        domain.ErrInvalidParameters,
			wantStatus: http.StatusBadRequest,
			wantCode:   response.CodeInvalidRequest,
		},
		{
			name:       "no results",
			err:        domain.ErrNoResults,
			wantStatus: http.StatusNotFound,
			wantCode:   response.CodeNoResults,
		},
		{
			name:       "stale search",
			err:        domain.ErrStaleSearch,
			wantStatus: http.StatusConflict,
			wantCode:   response.CodeStaleSearch,
		},
		{
			name:       "provider auth failure",
			err:        domain.ErrProviderAuth,
			wantStatus: http.StatusBadGateway,
			wantCode:   response.CodeProviderAuth,
		},
		{
			name:       "malformed offers",
			err:        domain.NewMalformedOfferError("missing price", "7"),
			wantStatus: http.StatusBadGateway,
			wantCode:   response.CodeMalformedOffers,
		},
		{
			name:       "provider unavailable",
			err:        domain.ErrProviderUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   response.CodeServiceUnavailable,
		},
		{
			name:       "timeout",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "cancelled",
			err:        context.Canceled,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   response.CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offers := &stubOffers{err: tt.err}

			rec := performSearch(t, offers, `{
				"origin": "MAD",
				"destination": "JFK",
				"departureDate": "2026-10-15"
			}`)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var detail response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
			assert.Equal(t, tt.wantCode, detail.Code)
			assert.NotEmpty(t, detail.Message)
		})
	}
}

func TestOfferHandler_Locations(t *testing.T) {
	locations := &stubLocations{
		locations: []domain.Location{
			{IataCode: "MAD", Name: "ADOLFO SUAREZ BARAJAS", CityName: "MADRID", CountryName: "SPAIN"},
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations?keyword=mad", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewOfferHandler(&stubOffers{}, locations)
	require.NoError(t, handler.Locations(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "mad", locations.gotKeyword)

	var dtos []LocationDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dtos))
	require.Len(t, dtos, 1)
	assert.Equal(t, "MAD", dtos[0].IataCode)
	assert.Equal(t, "MADRID", dtos[0].CityName)
}

func TestOfferHandler_Locations_ProviderError(t *testing.T) {
	locations := &stubLocations{err: domain.ErrProviderUnavailable}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations?keyword=mad", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewOfferHandler(&stubOffers{}, locations)
	require.NoError(t, handler.Locations(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestOfferHandler_Health(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewOfferHandler(&stubOffers{}, &stubLocations{})
	require.NoError(t, handler.Health(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
