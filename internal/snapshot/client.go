package snapshot

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/smartparking/parkwatch/internal/logger"
)

const (
	// DefaultTimeout bounds a single fetch when no timeout is configured.
	DefaultTimeout = 5 * time.Second

	// MaxBodyBytes caps how much of a response body is read.
	MaxBodyBytes = 4 << 20

	defaultUserAgent = "parkwatch"
)

// Client fetches snapshots from the dashboard endpoint over HTTP.
type Client struct {
	endpoint  string
	http      *http.Client
	timeout   time.Duration
	userAgent string
	log       logger.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds each fetch. Zero keeps DefaultTimeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// WithClientLogger sets the logger used for per-request debug output.
func WithClientLogger(l logger.Logger) ClientOption {
	return func(c *Client) { c.log = l }
}

// NewClient creates a client for the given endpoint URL.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:  endpoint,
		http:      http.DefaultClient,
		timeout:   DefaultTimeout,
		userAgent: defaultUserAgent,
		log:       logger.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL this client polls.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch requests the current snapshot, bypassing any HTTP cache. Every failure
// is returned as an *errors.Error with code ErrNetwork, ErrHTTP or ErrDecode.
func (c *Client) Fetch(ctx context.Context) (*Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrNetwork,
			"Can't build a request for "+c.endpoint,
			"Check the endpoint URL in your config")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store, no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrNetwork,
			"Snapshot endpoint unreachable",
			"Make sure the parking backend is running at "+c.endpoint)
	}
	defer resp.Body.Close()

	c.log.Debug("GET %s -> %d in %s", c.endpoint, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused on the next cycle.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodyBytes))
		return nil, errors.NewHTTPStatus(resp.StatusCode, c.endpoint)
	}

	return Decode(io.LimitReader(resp.Body, MaxBodyBytes))
}
