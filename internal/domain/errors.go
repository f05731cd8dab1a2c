package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the offer pipeline and the provider boundary.
var (
	// ErrInvalidDuration indicates a malformed ISO 8601 duration string.
	ErrInvalidDuration = errors.New("invalid duration format")

	// ErrMalformedOffer indicates that one or more raw offers failed
	// required-field validation during normalization.
	ErrMalformedOffer = errors.New("malformed offer data")

	// ErrInvalidRequest indicates invalid search criteria from the caller.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderAuth indicates the search provider rejected our credentials.
	ErrProviderAuth = errors.New("provider authentication failed")

	// ErrProviderUnavailable indicates the provider could not be reached.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrInvalidParameters indicates the provider rejected the search
	// parameters as malformed.
	ErrInvalidParameters = errors.New("invalid search parameters")

	// ErrNoResults indicates the provider found nothing for the query.
	ErrNoResults = errors.New("no results")

	// ErrStaleSearch indicates a search result arrived after a newer search
	// superseded it and must be discarded.
	ErrStaleSearch = errors.New("stale search result")
)

// MalformedOfferError reports which offers failed validation. The whole
// normalization call fails rather than dropping offers, since partial
// results could silently hide provider errors from the user.
type MalformedOfferError struct {
	// OfferIDs are the ids of the offending offers, in input order.
	OfferIDs []string

	// Reason describes the first validation failure encountered.
	Reason string
}

// NewMalformedOfferError creates a MalformedOfferError for the given offers.
func NewMalformedOfferError(reason string, offerIDs ...string) *MalformedOfferError {
	return &MalformedOfferError{
		OfferIDs: offerIDs,
		Reason:   reason,
	}
}

// Error implements the error interface.
func (e *MalformedOfferError) Error() string {
	if len(e.OfferIDs) == 0 {
		return fmt.Sprintf("malformed offer data: %s", e.Reason)
	}
	return fmt.Sprintf("malformed offer data (offers %s): %s",
		strings.Join(e.OfferIDs, ", "), e.Reason)
}

// Unwrap allows errors.Is(err, ErrMalformedOffer) to succeed.
func (e *MalformedOfferError) Unwrap() error {
	return ErrMalformedOffer
}

// WrapInvalidRequest wraps a formatted message with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks if the error is an invalid request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsMalformedOffer checks if the error is a malformed offer error.
func IsMalformedOffer(err error) bool {
	return errors.Is(err, ErrMalformedOffer)
}

// IsProviderAuth checks if the error is a provider authentication error.
func IsProviderAuth(err error) bool {
	return errors.Is(err, ErrProviderAuth)
}

// IsStaleSearch checks if the error marks a superseded search.
func IsStaleSearch(err error) bool {
	return errors.Is(err, ErrStaleSearch)
}

// UserMessage maps an error from the provider boundary or the pipeline to a
// single human-readable string. The presentation layer passes the message
// through unchanged.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrProviderAuth):
		return "Failed to authenticate with the flight search provider."
	case errors.Is(err, ErrNoResults):
		return "No flights found. Try adjusting your search criteria."
	case errors.Is(err, ErrInvalidParameters):
		return "Failed to search flights. Please check your search criteria."
	case errors.Is(err, ErrProviderUnavailable):
		return "No response from flight search API. Please try again."
	case errors.Is(err, ErrMalformedOffer):
		return "Flight search failed. Please try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}
