package discogs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"udio-tagger/internal/shared"
)

// 1. Constants and types
const (
	defaultBaseURL      = "https://api.discogs.com/"
	defaultUserAgent    = "udio-tagger/1.0 +https://github.com/prathxm/udio-tagger"
	defaultTimeout      = 30 * time.Second
	defaultRateLimit    = time.Second // Discogs allows 60 authenticated requests per minute
	defaultBurstLimit   = 2
	defaultMaxRetries   = 3
	defaultInitialDelay = 2 * time.Second
	defaultMaxDelay     = 60 * time.Second

	searchPerPage = 5
)

// Config holds configuration for the Discogs API client
type Config struct {
	BaseURL      string        `json:"base_url"`
	UserAgent    string        `json:"user_agent"`
	Token        string        `json:"-"` // personal access token, never persisted
	Timeout      time.Duration `json:"timeout"`
	MaxRetries   int           `json:"max_retries"`
	InitialDelay time.Duration `json:"initial_delay"`
	MaxDelay     time.Duration `json:"max_delay"`
	RateLimit    time.Duration `json:"rate_limit"`
	BurstLimit   int           `json:"burst_limit"`
	Debug        bool          `json:"debug"`
}

// Client represents a Discogs API client
type Client struct {
	httpClient  *http.Client
	config      Config
	rateLimiter *rate.Limiter
}

// 2. Constructor and configuration

// DefaultConfig returns sensible defaults for the Discogs API client
func DefaultConfig() Config {
	return Config{
		BaseURL:      defaultBaseURL,
		UserAgent:    defaultUserAgent,
		Timeout:      defaultTimeout,
		MaxRetries:   defaultMaxRetries,
		InitialDelay: defaultInitialDelay,
		MaxDelay:     defaultMaxDelay,
		RateLimit:    defaultRateLimit,
		BurstLimit:   defaultBurstLimit,
		Debug:        false,
	}
}

// NewClient creates a new Discogs API client with default configuration
func NewClient(token string) *Client {
	config := DefaultConfig()
	config.Token = token
	return NewClientWithConfig(config)
}

// NewClientWithConfig creates a new Discogs API client with custom configuration
func NewClientWithConfig(config Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config:      config,
		rateLimiter: rate.NewLimiter(rate.Every(config.RateLimit), config.BurstLimit),
	}
}

// UpdateConfig updates the client configuration
func (c *Client) UpdateConfig(config Config) {
	c.config = config
	c.httpClient.Timeout = config.Timeout
	c.rateLimiter = rate.NewLimiter(rate.Every(config.RateLimit), config.BurstLimit)
}

// GetConfig returns the current client configuration
func (c *Client) GetConfig() Config {
	return c.config
}

// SetDebug enables or disables debug logging for the client
func (c *Client) SetDebug(debug bool) {
	c.config.Debug = debug
}

// 3. Core HTTP methods (private)

// makeRequest creates and executes a GET request with proper headers
func (c *Client) makeRequest(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	reqURL, err := url.Parse(c.config.BaseURL + strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if len(params) > 0 {
		reqURL.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Discogs token="+c.config.Token)
	}

	return c.httpClient.Do(req)
}

// get makes a single rate-limited GET request to the Discogs API
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.makeRequest(ctx, path, params)
	if err != nil {
		// Handle network timeouts
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return nil, &shared.HTTPError{
				StatusCode: http.StatusGatewayTimeout,
				Status:     "Gateway Timeout",
				Message:    err.Error(),
			}
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		message := string(body)
		if len(message) > 200 {
			message = message[:200] + "..."
		}
		return nil, &shared.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    message,
		}
	}

	return body, nil
}

// getWithRetry makes a GET request with retry logic
func (c *Client) getWithRetry(ctx context.Context, path string, params url.Values) ([]byte, error) {
	var result []byte
	var err error

	retryErr := shared.RetryWithBackoffForHTTPWithDebug(
		c.config.MaxRetries,
		c.config.InitialDelay,
		c.config.MaxDelay,
		func() error {
			result, err = c.get(ctx, path, params)
			return err
		},
		c.config.Debug,
	)

	if retryErr != nil {
		return nil, retryErr
	}
	return result, nil
}

// 4. Public API methods

// SearchReleases searches the Discogs database for releases matching a
// track. The year hint is only sent when it parses as a plain year;
// decade values like "1990s" lose their trailing "s" first.
func (c *Client) SearchReleases(ctx context.Context, title, artist, year string) ([]SearchResult, error) {
	query := strings.TrimSpace(title + " " + artist)
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	params := url.Values{}
	params.Set("type", "release")
	params.Set("per_page", strconv.Itoa(searchPerPage))
	params.Set("q", query)
	if y := strings.TrimSuffix(strings.TrimSpace(year), "s"); y != "" && isDigits(y) {
		params.Set("year", y)
	}

	body, err := c.getWithRetry(ctx, "database/search", params)
	if err != nil {
		return nil, fmt.Errorf("failed to search releases for %q: %w", query, err)
	}

	var searchResp SearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search response: %w", err)
	}

	return searchResp.Results, nil
}

// GetRelease fetches full release details by Discogs release ID
func (c *Client) GetRelease(ctx context.Context, id int) (*Release, error) {
	if id <= 0 {
		return nil, fmt.Errorf("release ID must be positive")
	}

	body, err := c.getWithRetry(ctx, fmt.Sprintf("releases/%d", id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch release %d: %w", id, err)
	}

	var release Release
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("failed to unmarshal release %d: %w", id, err)
	}
	return &release, nil
}

// 5. Helper/utility functions

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
