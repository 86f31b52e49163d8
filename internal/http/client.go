package http

import (
	"compress/gzip"
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
)

// ResponseCache stores raw response bodies keyed by an opaque string.
//
// The cache package provides a SQLite backed implementation.
type ResponseCache interface {
	Get(key string) ([]byte, bool)
	Put(key string, body []byte) error
}

// StatusError is returned when the server answers with anything but 200 OK.
type StatusError struct {
	Code   int
	Status string
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s (%s)", e.Code, e.Status, e.URL)
}

// Client wraps HTTP operations with collection API specific configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - Transparent brotli and gzip decoding
//   - Optional caching of JSON API responses
//
// Example usage:
//
//	client := NewClient("MetDownloader", 60*time.Second)
//
//	// Decode a JSON API response
//	var result searchResponse
//	err := client.GetJSON(ctx, "https://collectionapi.metmuseum.org/public/collection/v1/search?q=cat", &result)
//
//	// Download an image
//	data, err := client.DownloadBytes(ctx, imageURL)
type Client struct {
	httpClient *http.Client
	userAgent  string
	cache      ResponseCache
}

// NewClient creates a new HTTP client.
//
// A zero timeout means requests are only bounded by their context.
func NewClient(userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// WithCache makes GetJSON consult and fill the given cache.
func (c *Client) WithCache(cache ResponseCache) *Client {
	c.cache = cache
	return c
}

// Get performs a GET request and returns the decoded response body as bytes.
//
// The request includes the configured User-Agent header and advertises
// brotli and gzip support. Compressed bodies are decoded before returning.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK (as *StatusError)
//   - Reading or decoding the body fails
//
// Example:
//
//	data, err := client.Get(ctx, "https://example.com/image.jpg")
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Encoding", "br, gzip")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status, URL: url}
	}

	body, err := decodeBody(resp)
	if err != nil {
		return nil, fmt.Errorf("decoding %s body: %w", resp.Header.Get("Content-Encoding"), err)
	}

	return io.ReadAll(body)
}

// GetJSON performs a GET request and decodes the JSON response into v.
//
// When a cache is configured, a cached body is used instead of the network
// and fresh bodies are stored after they decode successfully. Failing to
// store a body is not an error.
//
// Example:
//
//	var object objectResponse
//	err := client.GetJSON(ctx, objectURL, &object)
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	key := cacheKey(url)

	if c.cache != nil {
		if body, ok := c.cache.Get(key); ok {
			if err := json.Unmarshal(body, v); err == nil {
				return nil
			}
		}
	}

	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}

	if c.cache != nil {
		_ = c.cache.Put(key, body)
	}

	return nil
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Downloads are never cached. Use this for images.
//
// Example:
//
//	imageData, err := client.DownloadBytes(ctx, artwork.PrimaryImage)
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}

func decodeBody(resp *http.Response) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "br":
		return brotli.NewReader(resp.Body), nil
	case "gzip":
		return gzip.NewReader(resp.Body)
	default:
		return resp.Body, nil
	}
}

func cacheKey(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:])
}
