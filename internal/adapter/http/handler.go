// Package http provides the HTTP handler layer for the flight offer search
// API. It handles request parsing, validation, response formatting, and
// error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/skyfare/flight-offer-search/internal/adapter/http/response"
	"github.com/skyfare/flight-offer-search/internal/domain"
	"github.com/skyfare/flight-offer-search/internal/usecase"
)

// OfferHandler handles HTTP requests for offer-search endpoints.
type OfferHandler struct {
	offers    usecase.OfferSearchUseCase
	locations usecase.LocationSearchUseCase
}

// NewOfferHandler creates a new OfferHandler with the given use cases.
func NewOfferHandler(offers usecase.OfferSearchUseCase, locations usecase.LocationSearchUseCase) *OfferHandler {
	return &OfferHandler{
		offers:    offers,
		locations: locations,
	}
}

// SearchOffers handles POST /api/v1/offers/search
//
// @Summary Search for flight offers
// @Description Search flight offers and return the filtered, sorted results with facets, price distribution, and value ranking
// @Tags offers
// @Accept json
// @Produce json
// @Param request body SearchOffersRequest true "Search criteria and options"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No results"
// @Failure 409 {object} response.ErrorDetail "Search superseded"
// @Failure 502 {object} response.ErrorDetail "Provider error"
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/offers/search [post]
func (h *OfferHandler) SearchOffers(c echo.Context) error {
	var req SearchOffersRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req)
	opts := ToSearchOptions(&req)

	result, err := h.offers.Search(c.Request().Context(), criteria, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// Locations handles GET /api/v1/locations
//
// @Summary Autocomplete airports and cities
// @Description Return airport and city suggestions for a keyword prefix. Keywords shorter than 2 characters yield an empty list.
// @Tags locations
// @Produce json
// @Param keyword query string true "Name prefix, at least 2 characters"
// @Success 200 {array} LocationDTO
// @Failure 502 {object} response.ErrorDetail "Provider error"
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Router /api/v1/locations [get]
func (h *OfferHandler) Locations(c echo.Context) error {
	var query LocationsQuery
	if err := c.Bind(&query); err != nil {
		return response.InvalidRequestBody(c)
	}

	locations, err := h.locations.Lookup(c.Request().Context(), query.Keyword)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToLocationDTOs(locations))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *OfferHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses. The message
// sent to the client is the single human-readable string from UserMessage.
func (h *OfferHandler) handleError(c echo.Context, err error) error {
	msg := domain.UserMessage(err)

	switch {
	case domain.IsInvalidRequest(err):
		return response.ValidationErrorWithMessage(c, err.Error())

	case errors.Is(err, domain.ErrInvalidParameters):
		return response.BadRequest(c, msg)

	case errors.Is(err, domain.ErrNoResults):
		return response.NotFound(c, response.CodeNoResults, msg)

	case domain.IsStaleSearch(err):
		return response.Conflict(c, response.CodeStaleSearch,
			"Search superseded by a newer request")

	case domain.IsProviderAuth(err):
		return response.BadGateway(c, response.CodeProviderAuth, msg)

	case domain.IsMalformedOffer(err):
		return response.BadGateway(c, response.CodeMalformedOffers, msg)

	case errors.Is(err, domain.ErrProviderUnavailable):
		return response.ServiceUnavailable(c, msg)

	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)

	default:
		return response.InternalServerError(c)
	}
}

// Health handles GET /health
// Simple health check endpoint.
func (h *OfferHandler) Health(c echo.Context) error {
	return response.Health(c)
}
