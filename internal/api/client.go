package api

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultPageSize matches the page size the Koinly web app uses.
const DefaultPageSize = 25

// Client provides access to the Koinly REST API.
type Client struct {
	baseURL        string
	authToken      string
	portfolioToken string
	pageSize       int
	httpClient     *http.Client
	logger         *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client. The auth and portfolio tokens are
// opaque session credentials supplied by the caller; the client only attaches
// them as headers.
func NewClient(baseURL, authToken, portfolioToken string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:        baseURL,
		authToken:      authToken,
		portfolioToken: portfolioToken,
		pageSize:       DefaultPageSize,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithPageSize sets the per_page value sent on paginated requests.
func WithPageSize(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// PageSize returns the configured per_page value.
func (c *Client) PageSize() int {
	return c.pageSize
}
