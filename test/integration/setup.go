// Package integration provides helpers and integration tests for the flight
// offer search system. Integration tests verify that components work together
// correctly, including HTTP handlers, use cases, and mock providers.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/skyfare/flight-offer-search/internal/adapter/http"
	"github.com/skyfare/flight-offer-search/internal/domain"
	"github.com/skyfare/flight-offer-search/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.OfferHandler
}

// NewTestServer creates a new test server with the given use cases.
func NewTestServer(offers usecase.OfferSearchUseCase, locations usecase.LocationSearchUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewOfferHandler(offers, locations)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts the given body to the offer search endpoint.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/offers/search",
		Body:   body,
	})
}

// LocationsRequest queries the location autocomplete endpoint.
func (ts *TestServer) LocationsRequest(keyword string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/locations?keyword=" + keyword,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a SearchResponseDTO.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin        string                 `json:"origin"`
	Destination   string                 `json:"destination"`
	DepartureDate string                 `json:"departureDate"`
	ReturnDate    string                 `json:"returnDate,omitempty"`
	Adults        int                    `json:"adults"`
	TravelClass   string                 `json:"travelClass,omitempty"`
	Filters       map[string]interface{} `json:"filters,omitempty"`
	SortBy        string                 `json:"sortBy,omitempty"`
}

// DefaultSearchRequest returns a valid search request body for testing.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:        "MAD",
		Destination:   "JFK",
		DepartureDate: FutureDate(),
		Adults:        1,
	}
}

// CreateOfferUseCase creates an offer search use case over the given provider
// with default configuration.
func CreateOfferUseCase(provider domain.FlightProvider) usecase.OfferSearchUseCase {
	return usecase.NewOfferSearchUseCase(provider, nil)
}

// CreateOfferUseCaseWithConfig creates an offer search use case with custom
// configuration.
func CreateOfferUseCaseWithConfig(provider domain.FlightProvider, config *usecase.Config) usecase.OfferSearchUseCase {
	return usecase.NewOfferSearchUseCase(provider, config)
}

// CreateLocationUseCase creates a location search use case with a short
// debounce interval suitable for tests.
func CreateLocationUseCase(provider domain.LocationProvider) usecase.LocationSearchUseCase {
	return usecase.NewLocationSearchUseCase(provider, 10*time.Millisecond)
}

// FutureDate returns a date string 30 days in the future in YYYY-MM-DD format.
func FutureDate() string {
	return time.Now().AddDate(0, 0, 30).Format("2006-01-02")
}

// DefaultSearchCriteria returns a valid search criteria for testing the use
// case directly.
func DefaultSearchCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "MAD",
		Destination:   "JFK",
		DepartureDate: FutureDate(),
		Adults:        1,
	}
}
