package met

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/apibillme/cache"
	"github.com/handiism/met-downloader/internal/http"
	"github.com/handiism/met-downloader/internal/met/dto"
	"github.com/handiism/met-downloader/internal/model"
)

// ErrNotFound is returned by Fetch when the API has no object with the given ID.
var ErrNotFound = errors.New("object not found")

// Client talks to the Metropolitan Museum of Art collection API.
//
// Fetched records are memoized for the lifetime of the Client, so random
// selection picking the same object twice costs one request.
//
// Example usage:
//
//	client := met.NewClient(http.NewClient("MetDownloader", time.Minute), config.DefaultAPIBaseURL)
//
//	ids, err := client.Search(ctx, "sunflowers")
//	art, err := client.Fetch(ctx, ids[0])
//	data, err := client.Image(ctx, art.PrimaryImage)
type Client struct {
	http    *http.Client
	baseURL string
	records cache.Cache
}

// NewClient creates a Client for the API rooted at baseURL.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		records: cache.New(512, cache.WithTTL(time.Hour)),
	}
}

// Search returns the object identifiers matching query, in API order.
//
// An empty query lists every object in the collection. A search without
// matches returns an empty slice and no error.
func (c *Client) Search(ctx context.Context, query string) ([]int, error) {
	endpoint := c.baseURL + "/objects"
	if query != "" {
		params := url.Values{}
		params.Set("q", query)
		endpoint = c.baseURL + "/search?" + params.Encode()
	}

	var result dto.JSONSearch
	if err := c.http.GetJSON(ctx, endpoint, &result); err != nil {
		return nil, fmt.Errorf("searching for %q: %w", query, err)
	}

	return result.IDs(), nil
}

// Fetch returns the full record of the object with the given ID.
func (c *Client) Fetch(ctx context.Context, id int) (*model.Artwork, error) {
	key := strconv.Itoa(id)
	if cached, ok := c.records.Get(key); ok {
		if art, ok := cached.(*model.Artwork); ok {
			return art, nil
		}
	}

	var raw json.RawMessage
	if err := c.http.GetJSON(ctx, fmt.Sprintf("%s/objects/%d", c.baseURL, id), &raw); err != nil {
		var statusErr *http.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == 404 {
			return nil, fmt.Errorf("fetching object %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching object %d: %w", id, err)
	}

	var object dto.JSONObject
	if err := json.Unmarshal(raw, &object); err != nil {
		return nil, fmt.Errorf("decoding object %d: %w", id, err)
	}

	art := object.ToArtwork(id, raw)
	c.records.Set(key, art)

	return art, nil
}

// Image downloads the image at imageURL.
func (c *Client) Image(ctx context.Context, imageURL string) ([]byte, error) {
	data, err := c.http.DownloadBytes(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("downloading image %s: %w", imageURL, err)
	}
	return data, nil
}
