package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ahmetyanpar/orbitrates/service"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public endpoint of the pricing service.
	DefaultBaseURL = "https://api.coingecko.com/api/v3/"
)

type client struct {
	baseURL     *url.URL      // Base URL for API requests
	httpClient  *http.Client  // HTTP client used to communicate with the API.
	rateLimiter *rate.Limiter // Rate limiter for the upstream API
}

// Option adjusts the client during construction.
type Option func(*client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) { c.httpClient = hc }
}

// WithAPIKey injects the service's demo api key header on every
// request. The public endpoint works without one but throttles hard.
func WithAPIKey(apiKey string) Option {
	return func(c *client) {
		c.httpClient.Transport = roundTripperFn(
			func(req *http.Request) (*http.Response, error) {
				req.Header.Set("x-cg-demo-api-key", apiKey)
				return http.DefaultTransport.RoundTrip(req)
			},
		)
	}
}

// New builds a pricing client against the given base URL. An empty
// rawBaseURL selects the public endpoint.
func New(rawBaseURL string, opts ...Option) (service.CryptoPrices, error) {
	if rawBaseURL == "" {
		rawBaseURL = DefaultBaseURL
	}

	base, err := url.Parse(rawBaseURL)
	if err != nil {
		return nil, err
	}

	c := &client{
		// public plan allows ~30 calls/min
		rateLimiter: rate.NewLimiter(rate.Every(2*time.Second), 5),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     base,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (g *client) do(ctx context.Context, req *http.Request, v interface{}) error {
	err := g.rateLimiter.Wait(ctx)
	if err != nil {
		return err
	}

	log.Debug().Str("url", req.URL.String()).Msg("fetching information from API")

	resp, err := g.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unable to fetch price due to code: %d", resp.StatusCode)
	}

	decErr := json.NewDecoder(resp.Body).Decode(v)
	if decErr == io.EOF {
		decErr = nil // ignore EOF errors caused by empty response body
	}

	return decErr
}

// SimplePrice implements service.CryptoPrices.
// GET /simple/price?ids=bitcoin,ethereum&vs_currencies=usd
func (g *client) SimplePrice(ctx context.Context, ids, vsCurrencies []string) (service.PriceTable, error) {
	u, err := g.baseURL.Parse("simple/price")
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	query := req.URL.Query()
	query.Add("ids", strings.Join(ids, ","))
	query.Add("vs_currencies", strings.Join(vsCurrencies, ","))

	req.URL.RawQuery = query.Encode()

	prices := service.PriceTable{}

	if err := g.do(ctx, req, &prices); err != nil {
		return nil, err
	}

	return prices, nil
}

type roundTripperFn func(*http.Request) (*http.Response, error)

func (fn roundTripperFn) RoundTrip(r *http.Request) (*http.Response, error) {
	return fn(r)
}
