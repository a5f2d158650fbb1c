// Package musicbrainz provides the recording lookup client.
//
// The service rate-limits unauthenticated clients to roughly one request per
// second, so the client serializes calls and enforces a fixed inter-call
// delay. All transport problems, including an error field embedded in the
// response body, surface as services.ErrTransport.
package musicbrainz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"tunecard/internal/services"
)

// Client provides access to the recording search API.
type Client struct {
	baseURL    string
	userAgent  string
	delay      time.Duration
	httpClient *http.Client

	mu          sync.Mutex
	lastRequest time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a recording lookup client. delay is the mandatory pause between
// consecutive requests.
func New(baseURL, userAgent string, delay time.Duration, timeout time.Duration, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("lookup base url required")
	}
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return nil, errors.New("lookup user agent required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		delay:      delay,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchRecordings issues one recording search combining artist and title as
// a conjunctive full-text filter. The request is issued at most once; retry
// is the caller's decision.
func (c *Client) SearchRecordings(ctx context.Context, artist, title string) ([]Recording, error) {
	endpoint, err := url.Parse(c.baseURL + "/recording")
	if err != nil {
		return nil, fmt.Errorf("parse lookup url: %w", err)
	}
	params := url.Values{}
	params.Set("query", fmt.Sprintf("recording:%q AND artist:%q", title, artist))
	params.Set("fmt", "json")
	params.Set("limit", "25")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.waitForRateLimit()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, "lookup", "search recordings", "execute request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, services.Wrap(services.ErrTransport, "lookup", "search recordings", fmt.Sprintf("status %d", resp.StatusCode), nil)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, services.Wrap(services.ErrTransport, "lookup", "search recordings", "decode response", err)
	}
	if strings.TrimSpace(payload.Error) != "" {
		return nil, services.Wrap(services.ErrTransport, "lookup", "search recordings", fmt.Sprintf("service error: %s", payload.Error), nil)
	}

	return payload.Recordings, nil
}

// waitForRateLimit blocks until the mandatory inter-call delay has passed
// since the previous request. Exactly one request is ever in flight.
func (c *Client) waitForRateLimit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	elapsed := time.Since(c.lastRequest)
	if elapsed < c.delay {
		time.Sleep(c.delay - elapsed)
	}
	c.lastRequest = time.Now()
}
