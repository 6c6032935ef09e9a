package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ahmetyanpar/orbitrates/service"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public endpoint of the fiat rate service.
	DefaultBaseURL = "https://api.frankfurter.app/"
)

// Response mirrors the service's /latest payload. Rates are already
// multiplied by the requested amount.
type Response struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Rates  map[string]float64 `json:"rates"`
	Date   string             `json:"date"`
}

type client struct {
	baseURL     *url.URL      // Base URL for API requests
	httpClient  *http.Client  // HTTP client used to communicate with the API.
	rateLimiter *rate.Limiter // Rate limiter for the upstream API
}

// Option adjusts the client during construction.
type Option func(*client)

// WithHTTPClient replaces the underlying HTTP client; tests use it to
// drop the default timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) { c.httpClient = hc }
}

// New builds a fiat-rate client against the given base URL. An empty
// rawBaseURL selects the public endpoint.
func New(rawBaseURL string, opts ...Option) (service.FiatRates, error) {
	if rawBaseURL == "" {
		rawBaseURL = DefaultBaseURL
	}

	base, err := url.Parse(rawBaseURL)
	if err != nil {
		return nil, err
	}

	c := &client{
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 10),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     base,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (f *client) do(ctx context.Context, req *http.Request, v interface{}) error {
	err := f.rateLimiter.Wait(ctx)
	if err != nil {
		return err
	}

	log.Debug().Str("url", req.URL.String()).Msg("fetching information from API")

	resp, err := f.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unable to fetch rate due to code: %d", resp.StatusCode)
	}

	decErr := json.NewDecoder(resp.Body).Decode(v)
	if decErr == io.EOF {
		decErr = nil // ignore EOF errors caused by empty response body
	}

	return decErr
}

// Latest implements service.FiatRates.
// GET /latest?amount=100&from=USD&to=EUR
func (f *client) Latest(ctx context.Context, amount, from, to string) (service.FiatQuote, error) {
	u, err := f.baseURL.Parse("latest")
	if err != nil {
		return service.FiatQuote{}, err
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return service.FiatQuote{}, err
	}

	query := req.URL.Query()
	query.Add("amount", amount)
	query.Add("from", from)
	query.Add("to", to)

	req.URL.RawQuery = query.Encode()

	r := &Response{}

	if err := f.do(ctx, req, r); err != nil {
		return service.FiatQuote{}, err
	}

	return service.FiatQuote{
		Rates: r.Rates,
		Date:  r.Date,
	}, nil
}
