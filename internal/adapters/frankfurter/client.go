// Package frankfurter fetches daily exchange rate time series from a
// Frankfurter-compatible HTTP API.
package frankfurter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/networth_backend/internal/core/ports/providers"
	"github.com/SscSPs/networth_backend/internal/platform/metrics"
	"golang.org/x/time/rate"
)

// DefaultURLTemplate takes start date, end date, base currency and comma separated
// symbols, in that order.
const DefaultURLTemplate = "https://api.frankfurter.app/{}..{}?from={}&to={}"

const dateLayout = "2006-01-02"

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 10 << 20

var (
	// ErrRequest means the request could not be sent or no response arrived.
	ErrRequest = errors.New("exchange rate provider request failed")
	// ErrStatus means the provider answered with a non-2xx status.
	ErrStatus = errors.New("exchange rate provider returned an error status")
	// ErrDecode means the response body was not the expected JSON.
	ErrDecode = errors.New("exchange rate provider response could not be decoded")
)

// timeSeriesResponse is the subset of the provider's time series payload we use.
type timeSeriesResponse struct {
	Base  string                        `json:"base"`
	Rates map[string]map[string]float64 `json:"rates"`
}

// Client implements providers.ExchangeRateProvider.
type Client struct {
	httpClient  *http.Client
	urlTemplate string
	limiter     *rate.Limiter
	metrics     *metrics.SyncMetrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its Timeout is kept as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit paces outgoing requests to rps per second. Zero or less disables pacing.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithMetrics records request latency by result.
func WithMetrics(m *metrics.SyncMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a client for urlTemplate. An empty template selects
// DefaultURLTemplate; timeout bounds every request.
func NewClient(urlTemplate string, timeout time.Duration, opts ...Option) *Client {
	if urlTemplate == "" {
		urlTemplate = DefaultURLTemplate
	}
	c := &Client{
		httpClient:  &http.Client{Timeout: timeout},
		urlTemplate: urlTemplate,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ensure Client implements the provider port
var _ providers.ExchangeRateProvider = (*Client)(nil)

// BuildURL fills the template placeholders from query.
func (c *Client) BuildURL(query providers.RateQuery) string {
	addr := c.urlTemplate
	for _, v := range []string{
		query.Start.Format(dateLayout),
		query.End.Format(dateLayout),
		query.Base,
		strings.Join(query.Symbols, ","),
	} {
		addr = strings.Replace(addr, "{}", v, 1)
	}
	return addr
}

// FetchDailyRates performs a single GET for query and returns the daily rates.
func (c *Client) FetchDailyRates(ctx context.Context, query providers.RateQuery) (providers.DailyRates, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRequest, err)
		}
	}

	start := time.Now()
	rates, result, err := c.get(ctx, c.BuildURL(query))
	c.metrics.ObserveProviderRequest(result, time.Since(start))
	return rates, err
}

func (c *Client) get(ctx context.Context, addr string) (providers.DailyRates, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, "request_error", fmt.Errorf("%w: %v", ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "request_error", fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, "status_error", fmt.Errorf("%w: GET %s/%s: %s", ErrStatus, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}

	var body timeSeriesResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, "decode_error", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if body.Rates == nil {
		return nil, "decode_error", fmt.Errorf("%w: missing rates object", ErrDecode)
	}
	for day, quotes := range body.Rates {
		if quotes == nil {
			return nil, "decode_error", fmt.Errorf("%w: rates for %s are null", ErrDecode, day)
		}
	}
	return providers.DailyRates(body.Rates), "ok", nil
}
