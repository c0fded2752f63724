package memes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const giphyPayload = `{
	"data": [
		{
			"id": "abc123",
			"title": "Dancing Cat",
			"images": {
				"original": {"url": "https://media.giphy.com/abc123/giphy.gif", "width": "480", "height": "270"},
				"fixed_width": {"url": "https://media.giphy.com/abc123/200w.gif"}
			}
		},
		{
			"id": "def456",
			"title": "Thumbs Up",
			"images": {
				"original": {"url": "https://media.giphy.com/def456/giphy.gif", "width": "360", "height": "360"},
				"fixed_width": {"url": "https://media.giphy.com/def456/200w.gif"}
			}
		}
	]
}`

func TestTrending(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/gifs/trending" {
			t.Errorf("path = %q, want /v1/gifs/trending", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = map[string]string{
			"api_key": q.Get("api_key"),
			"limit":   q.Get("limit"),
			"rating":  q.Get("rating"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(giphyPayload))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.baseURL = server.URL

	assets, err := client.Trending(context.Background())
	if err != nil {
		t.Fatalf("Trending() error = %v", err)
	}

	if gotQuery["api_key"] != "test-key" {
		t.Errorf("api_key = %q, want test-key", gotQuery["api_key"])
	}
	if gotQuery["limit"] != "20" {
		t.Errorf("limit = %q, want 20", gotQuery["limit"])
	}
	if gotQuery["rating"] != "g" {
		t.Errorf("rating = %q, want g", gotQuery["rating"])
	}

	if len(assets) != 2 {
		t.Fatalf("len(assets) = %d, want 2", len(assets))
	}
	first := assets[0]
	if first.ID != "abc123" {
		t.Errorf("ID = %q, want abc123", first.ID)
	}
	if first.URL != "https://media.giphy.com/abc123/giphy.gif" {
		t.Errorf("URL = %q", first.URL)
	}
	if first.PreviewURL != "https://media.giphy.com/abc123/200w.gif" {
		t.Errorf("PreviewURL = %q", first.PreviewURL)
	}
	if first.Width != 480 || first.Height != 270 {
		t.Errorf("size = %dx%d, want 480x270", first.Width, first.Height)
	}
	if first.Title != "Dancing Cat" {
		t.Errorf("Title = %q, want Dancing Cat", first.Title)
	}
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/gifs/search" {
			t.Errorf("path = %q, want /v1/gifs/search", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "thumbs up" {
			t.Errorf("q = %q, want %q", got, "thumbs up")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(giphyPayload))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.baseURL = server.URL

	assets, err := client.Search(context.Background(), "thumbs up")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(assets) != 2 {
		t.Errorf("len(assets) = %d, want 2", len(assets))
	}
}

func TestFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "invalid api key"}`, http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient("bad-key")
	client.baseURL = server.URL

	_, err := client.Trending(context.Background())
	if err == nil {
		t.Fatal("expected error for HTTP 403, got nil")
	}
}
