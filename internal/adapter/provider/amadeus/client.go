// Package amadeus implements the flight-offer search provider boundary:
// an authenticated HTTP client for the Amadeus self-service API, the wire
// types it speaks, and the normalizer that converts raw offers into the
// canonical domain records.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/skyfare/flight-offer-search/internal/domain"
	"github.com/skyfare/flight-offer-search/internal/infrastructure/logger"
	"github.com/skyfare/flight-offer-search/internal/infrastructure/retry"
	"github.com/skyfare/flight-offer-search/internal/infrastructure/timeutil"
)

const (
	// tokenPath is the OAuth2 client-credentials endpoint.
	tokenPath = "/v1/security/oauth2/token"

	// offersPath is the flight-offers search endpoint.
	offersPath = "/v2/shopping/flight-offers"

	// locationsPath is the reference-data locations endpoint.
	locationsPath = "/v1/reference-data/locations"

	// tokenExpirySkew refreshes the token this long before it expires so
	// an in-flight request never races expiry.
	tokenExpirySkew = 5 * time.Minute

	// maxOffers caps the number of offers requested per search.
	maxOffers = 50
)

// ClientConfig holds the settings for the Amadeus API client.
type ClientConfig struct {
	// BaseURL is the API root (e.g., https://test.api.amadeus.com)
	BaseURL string

	// APIKey and APISecret are the OAuth2 client credentials
	APIKey    string
	APISecret string

	// Timeout bounds each HTTP request
	Timeout time.Duration

	// RateLimit is the sustained request rate per second; RateBurst the
	// burst capacity. Zero values disable client-side rate limiting.
	RateLimit float64
	RateBurst int
}

// Client is an explicit client object for the Amadeus API. It owns its
// token-cache state (no module-level singleton): constructed once at
// startup, token refreshed lazily on expiry, passed by handle to call
// sites.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	limiter    *rate.Limiter
	clock      timeutil.Clock
	log        *logger.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a Client from the given configuration.
func NewClient(cfg ClientConfig, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
		clock:      timeutil.NewRealClock(),
		log:        log,
	}
}

// WithClock replaces the client's clock. Intended for tests.
func (c *Client) WithClock(clock timeutil.Clock) *Client {
	c.clock = clock
	return c
}

// SearchOffers fetches raw offers and the carrier dictionary for the given
// criteria. Retryable failures (network errors, 5xx, 429) are retried with
// backoff; auth and parameter errors are permanent.
func (c *Client) SearchOffers(ctx context.Context, criteria domain.SearchCriteria) ([]Offer, map[string]string, error) {
	params := url.Values{}
	params.Set("originLocationCode", criteria.Origin)
	params.Set("destinationLocationCode", criteria.Destination)
	params.Set("departureDate", criteria.DepartureDate)
	params.Set("adults", strconv.Itoa(criteria.Adults))
	params.Set("max", strconv.Itoa(maxOffers))
	if criteria.ReturnDate != "" {
		params.Set("returnDate", criteria.ReturnDate)
	}
	if criteria.TravelClass != "" {
		params.Set("travelClass", criteria.TravelClass)
	}

	var envelope searchResponse
	if err := c.getJSON(ctx, offersPath, params, &envelope); err != nil {
		return nil, nil, err
	}

	carriers := envelope.Dictionaries.Carriers
	if carriers == nil {
		carriers = map[string]string{}
	}

	return envelope.Data, carriers, nil
}

// SearchLocations returns airport and city suggestions for a keyword.
func (c *Client) SearchLocations(ctx context.Context, keyword string) ([]domain.Location, error) {
	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("subType", "AIRPORT,CITY")

	var envelope locationsResponse
	if err := c.getJSON(ctx, locationsPath, params, &envelope); err != nil {
		return nil, err
	}

	locations := make([]domain.Location, 0, len(envelope.Data))
	for _, entry := range envelope.Data {
		locations = append(locations, domain.Location{
			IataCode:    entry.IataCode,
			Name:        entry.Name,
			CityName:    entry.Address.CityName,
			CountryName: entry.Address.CountryName,
		})
	}

	return locations, nil
}

// getJSON performs an authenticated GET with rate limiting and retries,
// decoding the response body into out.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	body, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		return c.doGet(ctx, path, params)
	}, retry.ProviderConfig)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// doGet performs a single authenticated GET request.
func (c *Client) doGet(ctx context.Context, path string, params url.Values) ([]byte, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, retry.NewPermanent(err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrProviderUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.mapAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// accessToken returns a valid bearer token, refreshing lazily when the
// cached one is missing or about to expire.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.clock.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiKey)
	form.Set("client_secret", c.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", retry.NewPermanent(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: token request: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("Token request rejected")
		return "", retry.NewPermanent(fmt.Errorf("%w: token endpoint returned %d",
			domain.ErrProviderAuth, resp.StatusCode))
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("%w: decode token response: %v", domain.ErrProviderAuth, err)
	}
	if tok.AccessToken == "" {
		return "", retry.NewPermanent(fmt.Errorf("%w: empty access token", domain.ErrProviderAuth))
	}

	c.token = tok.AccessToken
	c.tokenExpiry = c.clock.Now().
		Add(time.Duration(tok.ExpiresIn) * time.Second).
		Add(-tokenExpirySkew)

	c.log.Debug().Time("expiry", c.tokenExpiry).Msg("Provider token refreshed")
	return c.token, nil
}

// mapAPIError converts a non-200 provider response into a domain error.
// The provider's own error detail is preserved so the boundary can surface
// it unchanged to the user.
func (c *Client) mapAPIError(status int, body []byte) error {
	detail := ""
	var envelope apiErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		detail = envelope.Errors[0].Detail
		if detail == "" {
			detail = envelope.Errors[0].Title
		}
	}

	wrap := func(sentinel error) error {
		if detail == "" {
			return sentinel
		}
		return fmt.Errorf("%w: %s", sentinel, detail)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return retry.NewPermanent(wrap(domain.ErrProviderAuth))
	case status == http.StatusBadRequest:
		return retry.NewPermanent(wrap(domain.ErrInvalidParameters))
	case status == http.StatusNotFound:
		return retry.NewPermanent(wrap(domain.ErrNoResults))
	case status == http.StatusTooManyRequests:
		return wrap(domain.ErrProviderUnavailable) // retryable
	case status >= 500:
		return wrap(domain.ErrProviderUnavailable) // retryable
	default:
		return retry.NewPermanent(fmt.Errorf("%w: unexpected status %d",
			domain.ErrProviderUnavailable, status))
	}
}
