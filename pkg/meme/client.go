// Package meme queries the public meme API for candidate images and
// downloads the picked one.
package meme

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/memewall/memewall/config"
)

// DefaultBaseURL is the public meme API endpoint. A category is appended as
// an extra path segment.
const DefaultBaseURL = "https://meme-api.com/gimme"

// maxResponseBytes caps how much of an API response is read.
const maxResponseBytes = 1 << 20

// Network timeouts for the shared HTTP client. The dialer timeout matters
// most: it bounds how long a dead network can stall a fetch attempt.
const (
	httpRequestTimeout        = 60 * time.Second
	httpDialerTimeout         = 15 * time.Second
	httpKeepAlive             = 30 * time.Second
	httpTLSHandshakeTimeout   = 10 * time.Second
	httpResponseHeaderTimeout = 15 * time.Second
)

// UserAgentTransport wraps an http.RoundTripper and adds a User-Agent header.
type UserAgentTransport struct {
	http.RoundTripper
	UserAgent string
}

// RoundTrip executes a single HTTP transaction, adding the User-Agent header.
func (t *UserAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	clonedReq := req.Clone(req.Context())
	clonedReq.Header.Set("User-Agent", t.UserAgent)
	return t.RoundTripper.RoundTrip(clonedReq)
}

// NewHTTPClient returns the hardened HTTP client shared by API queries and
// image downloads.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: httpRequestTimeout,
		Transport: &UserAgentTransport{
			RoundTripper: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   httpDialerTimeout,
					KeepAlive: httpKeepAlive,
				}).DialContext,
				ResponseHeaderTimeout: httpResponseHeaderTimeout,
				TLSHandshakeTimeout:   httpTLSHandshakeTimeout,
			},
			UserAgent: config.AppName + "/" + config.AppVersion,
		},
	}
}

// Candidate is one meme offered by the API.
type Candidate struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Client talks to the meme API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the API at baseURL using the given HTTP
// client.
func NewClient(baseURL string, client *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// Fetch asks the API for one random meme. A named category narrows the
// query to that feed; the no-filter category queries the base endpoint.
func (c *Client) Fetch(ctx context.Context, category config.Category) (*Candidate, error) {
	endpoint := c.baseURL
	if !category.IsAny() {
		endpoint += "/" + url.PathEscape(category.Name)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from meme API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("meme API returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var cand Candidate
	if err := json.Unmarshal(body, &cand); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if cand.URL == "" {
		return nil, fmt.Errorf("meme API response has no image url")
	}
	return &cand, nil
}
