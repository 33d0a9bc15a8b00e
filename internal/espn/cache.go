package espn

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"
)

// currentCacheVersion defines the version of the cached response format
const currentCacheVersion = 1

// cachedFetch returns a fresh cached body for url, or fetches and stores it.
func (c *Client) cachedFetch(ctx context.Context, url string) ([]byte, error) {
	if c.cache == nil {
		return c.fetch(ctx, url)
	}

	key := cacheKey(url)
	if body := c.checkCacheHit(key); body != nil {
		return body, nil
	}
	return c.fetchAndStore(ctx, url, key)
}

// checkCacheHit attempts to retrieve and validate a cached body
func (c *Client) checkCacheHit(key string) []byte {
	data, version, ts, err := c.cache.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion && time.Since(time.Unix(ts, 0)) <= c.cacheTTL && len(data) > 0 {
		return data // Cache hit
	}

	return nil // Cache miss (stale or version mismatch)
}

// fetchAndStore fetches the body and stores it in cache
func (c *Client) fetchAndStore(ctx context.Context, url, key string) ([]byte, error) {
	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	_ = c.cache.Set(key, body, currentCacheVersion, time.Now().Unix())
	return body, nil
}

// cacheKey hashes a request url into a fixed-size key.
func cacheKey(url string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(url)))
}
