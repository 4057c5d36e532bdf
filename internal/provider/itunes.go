// Package provider implements the remote catalog client behind the
// search session.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"tunegrip/internal/domain"
)

// defaultBaseURL is the iTunes Search API endpoint
const defaultBaseURL = "https://itunes.apple.com/search"

// requestLimit caps how many records one query may return; the session
// truncates further for display
const requestLimit = 25

// Client queries the iTunes Search API for tracks.
type Client struct {
	baseURL string
	country string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a catalog client. country is the ISO country code
// for the store front ("us" when empty).
func NewClient(country string) *Client {
	if country == "" {
		country = "us"
	}
	return &Client{
		baseURL: defaultBaseURL,
		country: country,
		client:  &http.Client{Timeout: 15 * time.Second},
		// Politeness cap for the public API
		limiter: rate.NewLimiter(rate.Every(300*time.Millisecond), 1),
	}
}

// NewClientWithBaseURL creates a client against a custom endpoint (testing)
func NewClientWithBaseURL(baseURL, country string) *Client {
	c := NewClient(country)
	c.baseURL = baseURL
	return c
}

// searchResponse mirrors the iTunes Search API payload
type searchResponse struct {
	ResultCount int            `json:"resultCount"`
	Results     []searchRecord `json:"results"`
}

type searchRecord struct {
	ArtistName     string `json:"artistName"`
	TrackName      string `json:"trackName"`
	CollectionName string `json:"collectionName"`
	Kind           string `json:"kind"`
	PreviewURL     string `json:"previewUrl"`
}

// Search queries the catalog for term. Cancelling ctx aborts the
// in-flight HTTP request.
func (c *Client) Search(ctx context.Context, term string) ([]domain.Track, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("term", term)
	params.Set("country", c.country)
	params.Set("media", "music")
	params.Set("entity", "song")
	params.Set("limit", fmt.Sprintf("%d", requestLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("catalog returned %d: %s", resp.StatusCode, string(body))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	tracks := make([]domain.Track, 0, len(payload.Results))
	for _, r := range payload.Results {
		tracks = append(tracks, domain.Track{
			Artist:     r.ArtistName,
			Title:      r.TrackName,
			Album:      r.CollectionName,
			Kind:       r.Kind,
			PreviewURL: r.PreviewURL,
		})
	}
	return tracks, nil
}
