package amadeus

import (
	"context"

	"github.com/skyfare/flight-offer-search/internal/domain"
	"github.com/skyfare/flight-offer-search/internal/infrastructure/logger"
)

// Adapter exposes the Amadeus client as the domain provider interfaces.
type Adapter struct {
	client *Client
	log    *logger.Logger
}

// NewAdapter creates an Adapter backed by the given client.
func NewAdapter(client *Client, log *logger.Logger) *Adapter {
	if log == nil {
		log = logger.Nop()
	}
	return &Adapter{client: client, log: log}
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return "amadeus"
}

// Search fetches offers for the criteria and normalizes them into domain
// flights plus the carrier name dictionary.
func (a *Adapter) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.OfferBatch, error) {
	log := a.log.WithSearch(criteria.Origin, criteria.Destination)

	offers, carriers, err := a.client.SearchOffers(ctx, criteria)
	if err != nil {
		log.Error().Err(err).Msg("Provider search failed")
		return nil, err
	}

	flights, err := Normalize(offers)
	if err != nil {
		log.Error().Err(err).Int("offers", len(offers)).Msg("Offer normalization failed")
		return nil, err
	}

	log.Debug().Int("flights", len(flights)).Msg("Provider search completed")

	return &domain.OfferBatch{
		Flights:  flights,
		Carriers: carriers,
	}, nil
}

// SearchLocations returns airport and city suggestions for a keyword.
func (a *Adapter) SearchLocations(ctx context.Context, keyword string) ([]domain.Location, error) {
	return a.client.SearchLocations(ctx, keyword)
}

// Ensure interfaces are implemented.
var (
	_ domain.FlightProvider   = (*Adapter)(nil)
	_ domain.LocationProvider = (*Adapter)(nil)
)
