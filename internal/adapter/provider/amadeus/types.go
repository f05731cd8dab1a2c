package amadeus

// Offer is one priced itinerary bundle in the provider's wire format.
type Offer struct {
	// ID is the offer identifier, stable within one search response
	ID string `json:"id"`

	// Price carries decimal amounts as strings on the wire
	Price OfferPrice `json:"price"`

	// Itineraries is one entry for a one-way offer, two for a round trip
	Itineraries []OfferItinerary `json:"itineraries"`

	// ValidatingAirlineCodes is the set of carriers governing the ticket
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
}

// OfferPrice is the wire form of an offer's price.
type OfferPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// OfferItinerary is one direction of travel on the wire.
type OfferItinerary struct {
	Duration string         `json:"duration"`
	Segments []OfferSegment `json:"segments"`
}

// OfferSegment is one flight leg on the wire.
type OfferSegment struct {
	Departure   OfferEndpoint `json:"departure"`
	Arrival     OfferEndpoint `json:"arrival"`
	CarrierCode string        `json:"carrierCode"`
	Number      string        `json:"number"`
	Duration    string        `json:"duration"`
}

// OfferEndpoint is one end of a segment on the wire.
type OfferEndpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

// searchResponse is the provider's flight-offers search envelope.
type searchResponse struct {
	Data         []Offer      `json:"data"`
	Dictionaries dictionaries `json:"dictionaries"`
}

// dictionaries carries the code-to-name lookup tables of a search response.
type dictionaries struct {
	Carriers map[string]string `json:"carriers"`
}

// tokenResponse is the OAuth2 client-credentials grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// locationsResponse is the reference-data locations envelope.
type locationsResponse struct {
	Data []locationData `json:"data"`
}

// locationData is one airport or city entry on the wire.
type locationData struct {
	IataCode string          `json:"iataCode"`
	Name     string          `json:"name"`
	Address  locationAddress `json:"address"`
}

// locationAddress holds the city and country of a location entry.
type locationAddress struct {
	CityName    string `json:"cityName"`
	CountryName string `json:"countryName"`
}

// apiErrorResponse is the provider's error envelope.
type apiErrorResponse struct {
	Errors []apiError `json:"errors"`
}

// apiError is one provider error entry.
type apiError struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
