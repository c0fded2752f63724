package clips

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kartoza/kartoza-clip-studio/internal/models"
)

func TestList_Filters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/clips/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("channel") != "speedruns" || q.Get("status") != "ready" || q.Get("limit") != "25" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(models.ClipsResponse{
			Clips: []models.Clip{{ClipID: "c1", Duration: 42.5}},
			Total: 1,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	resp, err := client.List(context.Background(), ListOptions{Channel: "speedruns", Status: "ready", Limit: 25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 1 || len(resp.Clips) != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}

	if resp.Clips[0].Duration != 42.5 {
		t.Errorf("duration = %f, want 42.5", resp.Clips[0].Duration)
	}
}

func TestGet_ErrorMessagePassedThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "clip expired"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Get(context.Background(), "gone")
	if err == nil {
		t.Fatal("expected error")
	}

	if got := err.Error(); got != "fetch clip gone: clip library: clip expired" {
		t.Errorf("unexpected error text: %q", got)
	}
}

func TestDownloadURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/clips/c1/download" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com/c1.mp4"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	url, err := client.DownloadURL(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if url != "https://cdn.example.com/c1.mp4" {
		t.Errorf("url = %q", url)
	}
}

func TestThumbnails_BestEffort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not implemented", http.StatusNotImplemented)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if got := client.Thumbnails(context.Background(), "c1", 10); got != nil {
		t.Errorf("expected nil thumbnails on failure, got %v", got)
	}
}
