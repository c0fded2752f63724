// Package clips is the HTTP client for the remote clip library the
// editor loads its source videos from.
package clips

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kartoza/kartoza-clip-studio/internal/models"
)

const maxErrorBody = 4096

// Client talks to the clip library API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a clip library client. The token is optional.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListOptions filter a clip listing.
type ListOptions struct {
	Channel string
	Status  string
	Limit   int // default 50
}

// List fetches clips matching the options.
func (c *Client) List(ctx context.Context, opts ListOptions) (*models.ClipsResponse, error) {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(opts.Limit))
	if opts.Channel != "" {
		q.Set("channel", opts.Channel)
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}

	var out models.ClipsResponse
	if err := c.get(ctx, "/api/clips/?"+q.Encode(), &out); err != nil {
		return nil, fmt.Errorf("fetch clips: %w", err)
	}
	return &out, nil
}

// Get fetches a single clip by id.
func (c *Client) Get(ctx context.Context, clipID string) (*models.Clip, error) {
	var out models.Clip
	if err := c.get(ctx, "/api/clips/"+clipID, &out); err != nil {
		return nil, fmt.Errorf("fetch clip %s: %w", clipID, err)
	}
	return &out, nil
}

// Delete removes a clip from the library.
func (c *Client) Delete(ctx context.Context, clipID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/clips/"+clipID, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete clip %s: %w", clipID, err)
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

// BulkDelete removes several clips at once.
func (c *Client) BulkDelete(ctx context.Context, clipIDs []string) error {
	body, err := json.Marshal(clipIDs)
	if err != nil {
		return fmt.Errorf("marshal clip ids: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/clips/bulk-delete", strings.NewReader(string(body)))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("bulk delete: %w", err)
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

// DownloadURL resolves a clip's downloadable location.
func (c *Client) DownloadURL(ctx context.Context, clipID string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.get(ctx, "/api/clips/"+clipID+"/download", &out); err != nil {
		return "", fmt.Errorf("fetch download url for %s: %w", clipID, err)
	}
	return out.URL, nil
}

// Thumbnails fetches evenly spaced timeline thumbnails for a clip. It is
// best-effort: any failure yields an empty list so the timeline can fall
// back to its plain filmstrip.
func (c *Client) Thumbnails(ctx context.Context, clipID string, count int) []string {
	if count <= 0 {
		count = 10
	}

	var out struct {
		Thumbnails []string `json:"thumbnails"`
	}
	path := fmt.Sprintf("/api/clips/%s/thumbnails?count=%d", clipID, count)
	if err := c.get(ctx, path, &out); err != nil {
		return nil
	}
	return out.Thumbnails
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// checkStatus turns a non-2xx response into an error, preferring the
// service's own message field when present.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return fmt.Errorf("clip library: %s", payload.Message)
	}
	return fmt.Errorf("clip library: HTTP %d", resp.StatusCode)
}
