// Package http provides an HTTP client configured for the museum collection API.
//
// The Client in this package handles:
//   - User-Agent headers
//   - brotli and gzip response decoding
//   - Caching of JSON API responses through a ResponseCache
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient("MetDownloader", time.Minute)
//
//	// Decode a JSON document
//	var search searchResponse
//	err := client.GetJSON(ctx, searchURL, &search)
//
//	// Download an image
//	data, err := client.DownloadBytes(ctx, imageURL)
//
// # Caching
//
// Any ResponseCache can be attached. Only GetJSON consults it:
//
//	store, _ := cache.Open("responses.db", 24*time.Hour)
//	client := http.NewClient("MetDownloader", time.Minute).WithCache(store)
//
// # Errors
//
// Non-200 responses are returned as *StatusError, so callers can react to
// specific codes:
//
//	var statusErr *http.StatusError
//	if errors.As(err, &statusErr) && statusErr.Code == 404 {
//	    // not found
//	}
package http
