package gagstock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// StockFetcher fetches the current shop stock. *Client implements it; tests
// substitute scripted fakes.
type StockFetcher interface {
	FetchStock(ctx context.Context) (*StockResponse, error)
}

var _ StockFetcher = (*Client)(nil)

const (
	// DefaultEndpoint is the public Grow a Garden stock feed.
	DefaultEndpoint = "https://gagstock.gleeze.com/grow-a-garden"

	defaultUserAgent = "shopwatch/0.1"
	defaultTimeout   = 10 * time.Second
)

// FetchError reports a poll that produced no usable payload: a transport
// failure, a non-2xx status, or a body that is not the expected JSON envelope.
type FetchError struct {
	Endpoint   string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

var errBadStatus = errors.New("unexpected response status")

// Client talks to the stock HTTP endpoint.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for endpoint. A blank endpoint uses
// DefaultEndpoint; timeout <= 0 uses a 10s request timeout.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: u,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Endpoint returns the URL the client polls.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// FetchStock retrieves and decodes the stock payload. Every failure is a
// *FetchError.
func (c *Client) FetchStock(ctx context.Context) (*StockResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload StockResponse
	if err := c.get(ctx, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, dest any) error {
	endpoint := c.endpoint.String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &FetchError{Endpoint: endpoint, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Endpoint: endpoint, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: errBadStatus}
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return &FetchError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("endpoint %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
