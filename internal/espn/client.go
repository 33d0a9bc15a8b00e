// Package espn fetches athletes and season statistics from the public ESPN APIs.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/huangsam/gridiron/internal/contract"
)

// userAgent identifies gridiron to the ESPN endpoints.
const userAgent = "Mozilla/5.0 (compatible; gridiron/1.0)"

// Client handles ESPN API requests. It implements contract.StatsProvider.
type Client struct {
	httpClient *http.Client
	coreURL    string
	siteURL    string
	cache      contract.CacheStore
	cacheTTL   time.Duration
}

var _ contract.StatsProvider = &Client{} // Compile-time check

// NewClient creates an ESPN client from the runtime config.
// A nil cache disables response caching.
func NewClient(cfg *contract.Config, cache contract.CacheStore) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = contract.DefaultHTTPTimeout
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = contract.DefaultCacheTTL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		coreURL:    strings.TrimRight(cmpOr(cfg.ESPNCoreURL, contract.DefaultESPNCoreURL), "/"),
		siteURL:    strings.TrimRight(cmpOr(cfg.ESPNSiteURL, contract.DefaultESPNSiteURL), "/"),
		cache:      cache,
		cacheTTL:   ttl,
	}
}

// getJSON fetches url, consulting the response cache first, and decodes into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	body, err := c.cachedFetch(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}

// fetch makes an HTTP GET request and returns the raw body.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// APIError is returned for non-200 responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ESPN API error: status=%d, body=%s", e.StatusCode, e.Body)
}

func cmpOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
