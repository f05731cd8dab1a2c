package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// OfferBatch is one search provider response: the normalized flight
// collection plus the carrier-code to display-name dictionary that
// accompanies it.
type OfferBatch struct {
	// Flights is the normalized offer collection, in provider order
	Flights []Flight

	// Carriers maps carrier codes to display names (e.g., "IB" -> "Iberia")
	Carriers map[string]string
}

// FlightProvider is the boundary to the external flight-offer search
// service. Implementations fetch raw offers for the criteria, normalize
// them, and map provider-level failures (auth, network, no-results,
// malformed parameters) to the domain sentinel errors.
type FlightProvider interface {
	// Name returns the provider's unique identifier.
	Name() string

	// Search fetches and normalizes offers for the given criteria.
	// It must respect context cancellation and deadlines.
	Search(ctx context.Context, criteria SearchCriteria) (*OfferBatch, error)
}

// Location is one airport or city suggestion from the autocomplete lookup.
type Location struct {
	// IataCode is the 3-letter IATA code
	IataCode string `json:"iataCode"`

	// Name is the location's display name
	Name string `json:"name"`

	// CityName is the city the location belongs to
	CityName string `json:"cityName,omitempty"`

	// CountryName is the country the location belongs to
	CountryName string `json:"countryName,omitempty"`
}

// LocationProvider is the boundary to the location-autocomplete service.
type LocationProvider interface {
	// SearchLocations returns location suggestions for a keyword prefix.
	SearchLocations(ctx context.Context, keyword string) ([]Location, error)
}
