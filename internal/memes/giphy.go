// Package memes fetches GIF assets from Giphy for use as meme overlays.
// The editor treats results as opaque assets; only the URLs and reported
// dimensions matter downstream.
package memes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.giphy.com"
	defaultLimit   = 20
)

// Asset is one GIF usable as a meme overlay.
type Asset struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	PreviewURL string `json:"preview_url"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Title      string `json:"title"`
}

// Client talks to the Giphy API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Giphy client for the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Trending fetches the current trending GIFs, g-rated.
func (c *Client) Trending(ctx context.Context) ([]Asset, error) {
	return c.fetch(ctx, "/v1/gifs/trending", url.Values{})
}

// Search fetches GIFs matching a free-text query, g-rated.
func (c *Client) Search(ctx context.Context, query string) ([]Asset, error) {
	q := url.Values{}
	q.Set("q", query)
	return c.fetch(ctx, "/v1/gifs/search", q)
}

// giphy's wire format: dimensions come back as strings.
type gifListing struct {
	Data []struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Images struct {
			Original struct {
				URL    string `json:"url"`
				Width  string `json:"width"`
				Height string `json:"height"`
			} `json:"original"`
			FixedWidth struct {
				URL string `json:"url"`
			} `json:"fixed_width"`
		} `json:"images"`
	} `json:"data"`
}

func (c *Client) fetch(ctx context.Context, path string, q url.Values) ([]Asset, error) {
	q.Set("api_key", c.apiKey)
	q.Set("limit", strconv.Itoa(defaultLimit))
	q.Set("rating", "g")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch gifs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("giphy: HTTP %d: %s", resp.StatusCode, string(body))
	}

	var listing gifListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("parse gif listing: %w", err)
	}

	assets := make([]Asset, 0, len(listing.Data))
	for _, gif := range listing.Data {
		width, _ := strconv.Atoi(gif.Images.Original.Width)
		height, _ := strconv.Atoi(gif.Images.Original.Height)
		assets = append(assets, Asset{
			ID:         gif.ID,
			URL:        gif.Images.Original.URL,
			PreviewURL: gif.Images.FixedWidth.URL,
			Width:      width,
			Height:     height,
			Title:      gif.Title,
		})
	}
	return assets, nil
}
