package http

import (
	"time"

	"github.com/skyfare/flight-offer-search/internal/domain"
	"github.com/skyfare/flight-offer-search/internal/usecase"
)

// SearchResponseDTO is the data transfer object for search responses.
// Field naming follows the domain types' camelCase JSON convention.
type SearchResponseDTO struct {
	Criteria SearchCriteriaDTO   `json:"criteria"`
	Metadata MetadataDTO         `json:"metadata"`
	Flights  []FlightDTO         `json:"flights"`
	Facets   domain.FacetOptions `json:"facets"`
	Buckets  []domain.PriceBucket `json:"priceBuckets"`
	Stats    *domain.PriceStats  `json:"priceStats,omitempty"`
	Ranking  domain.ValueRanking `json:"ranking"`
	Carriers map[string]string   `json:"carriers"`
}

// SearchCriteriaDTO echoes the search criteria in the response.
type SearchCriteriaDTO struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Adults        int    `json:"adults"`
	TravelClass   string `json:"travelClass"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	// TotalResults is the full collection size before filtering
	TotalResults int `json:"totalResults"`

	// FilteredResults is the size of the returned subset
	FilteredResults int `json:"filteredResults"`

	// ActiveFilters is how many filter facets deviate from neutral
	ActiveFilters int `json:"activeFilters"`

	SearchTimeMs int64 `json:"searchTimeMs"`
}

// FlightDTO is the data transfer object for one flight offer.
type FlightDTO struct {
	ID                     string         `json:"id"`
	Price                  PriceDTO       `json:"price"`
	Itineraries            []ItineraryDTO `json:"itineraries"`
	Stops                  int            `json:"numberOfStops"`
	ValidatingAirlineCodes []string       `json:"validatingAirlineCodes"`

	// Cheapest marks the lowest-priced offer of the returned subset
	Cheapest bool `json:"cheapest,omitempty"`

	// BestValue marks the top offers by the price/stops heuristic.
	// The cheapest badge takes precedence: a flight is never both.
	BestValue bool `json:"bestValue,omitempty"`
}

// PriceDTO represents price information.
type PriceDTO struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// ItineraryDTO represents one direction of travel.
type ItineraryDTO struct {
	Duration        string       `json:"duration"`
	DurationMinutes int          `json:"durationMinutes"`
	Formatted       string       `json:"formattedDuration"`
	Segments        []SegmentDTO `json:"segments"`
}

// SegmentDTO represents one flight leg.
type SegmentDTO struct {
	Departure   SegmentPointDTO `json:"departure"`
	Arrival     SegmentPointDTO `json:"arrival"`
	CarrierCode string          `json:"carrierCode"`
	Number      string          `json:"number"`
	Duration    string          `json:"duration"`
}

// SegmentPointDTO represents one end of a segment.
type SegmentPointDTO struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

// LocationDTO is the data transfer object for a location suggestion.
type LocationDTO struct {
	IataCode    string `json:"iataCode"`
	Name        string `json:"name"`
	CityName    string `json:"cityName,omitempty"`
	CountryName string `json:"countryName,omitempty"`
}

// ToSearchResponseDTO converts a use case SearchResult to a SearchResponseDTO.
func ToSearchResponseDTO(result *usecase.SearchResult) *SearchResponseDTO {
	if result == nil {
		return nil
	}

	dto := &SearchResponseDTO{
		Criteria: SearchCriteriaDTO{
			Origin:        result.Criteria.Origin,
			Destination:   result.Criteria.Destination,
			DepartureDate: result.Criteria.DepartureDate,
			ReturnDate:    result.Criteria.ReturnDate,
			Adults:        result.Criteria.Adults,
			TravelClass:   result.Criteria.TravelClass,
		},
		Metadata: MetadataDTO{
			TotalResults:    result.TotalResults,
			FilteredResults: len(result.Flights),
			ActiveFilters:   result.ActiveFilters,
			SearchTimeMs:    result.SearchTimeMs,
		},
		Flights:  make([]FlightDTO, len(result.Flights)),
		Facets:   result.Facets,
		Buckets:  result.Buckets,
		Stats:    result.Stats,
		Ranking:  result.Ranking,
		Carriers: result.Carriers,
	}

	for i := range result.Flights {
		dto.Flights[i] = ToFlightDTO(&result.Flights[i], &result.Ranking)
	}

	return dto
}

// ToFlightDTO converts a domain Flight to a FlightDTO, marking it with the
// cheapest or best-value badge from the ranking.
func ToFlightDTO(flight *domain.Flight, ranking *domain.ValueRanking) FlightDTO {
	dto := FlightDTO{
		ID: flight.ID,
		Price: PriceDTO{
			Total:    flight.Price.Total,
			Currency: flight.Price.Currency,
		},
		Itineraries:            make([]ItineraryDTO, len(flight.Itineraries)),
		Stops:                  flight.Stops,
		ValidatingAirlineCodes: flight.ValidatingAirlineCodes,
	}

	for i, itin := range flight.Itineraries {
		dto.Itineraries[i] = toItineraryDTO(itin)
	}

	if ranking != nil {
		if flight.ID == ranking.CheapestID {
			dto.Cheapest = true
		} else if ranking.IsBestValue(flight.ID) {
			dto.BestValue = true
		}
	}

	return dto
}

// toItineraryDTO converts one domain itinerary.
func toItineraryDTO(itin domain.Itinerary) ItineraryDTO {
	dto := ItineraryDTO{
		Duration:        itin.Duration,
		DurationMinutes: itin.DurationMinutes,
		Formatted:       domain.FormatDurationMinutes(itin.DurationMinutes),
		Segments:        make([]SegmentDTO, len(itin.Segments)),
	}

	for i, seg := range itin.Segments {
		dto.Segments[i] = SegmentDTO{
			Departure:   toSegmentPointDTO(seg.Departure),
			Arrival:     toSegmentPointDTO(seg.Arrival),
			CarrierCode: seg.CarrierCode,
			Number:      seg.Number,
			Duration:    seg.Duration,
		}
	}

	return dto
}

// toSegmentPointDTO converts one segment endpoint.
func toSegmentPointDTO(p domain.SegmentPoint) SegmentPointDTO {
	return SegmentPointDTO{
		IataCode: p.IataCode,
		At:       p.At.Format(time.RFC3339),
	}
}

// ToLocationDTOs converts domain locations to DTOs.
func ToLocationDTOs(locations []domain.Location) []LocationDTO {
	dtos := make([]LocationDTO, len(locations))
	for i, loc := range locations {
		dtos[i] = LocationDTO{
			IataCode:    loc.IataCode,
			Name:        loc.Name,
			CityName:    loc.CityName,
			CountryName: loc.CountryName,
		}
	}
	return dtos
}
