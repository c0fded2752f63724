package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	dir := t.TempDir()

	token := &Token{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-def",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).Format(time.RFC3339),
	}

	if err := SaveStoredToken(dir, token); err != nil {
		t.Fatalf("SaveStoredToken() error = %v", err)
	}

	if !HasStoredToken(dir) {
		t.Error("HasStoredToken() = false after save")
	}

	loaded, err := LoadStoredToken(dir)
	if err != nil {
		t.Fatalf("LoadStoredToken() error = %v", err)
	}
	if loaded.AccessToken != token.AccessToken {
		t.Errorf("AccessToken = %q, want %q", loaded.AccessToken, token.AccessToken)
	}
	if loaded.RefreshToken != token.RefreshToken {
		t.Errorf("RefreshToken = %q, want %q", loaded.RefreshToken, token.RefreshToken)
	}

	info, err := os.Stat(filepath.Join(dir, "token.json"))
	if err != nil {
		t.Fatalf("stat token file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file permissions = %o, want 600", perm)
	}

	if err := DeleteStoredToken(dir); err != nil {
		t.Fatalf("DeleteStoredToken() error = %v", err)
	}
	if HasStoredToken(dir) {
		t.Error("HasStoredToken() = true after delete")
	}
}

func TestDeleteStoredTokenMissing(t *testing.T) {
	if err := DeleteStoredToken(t.TempDir()); err != nil {
		t.Errorf("DeleteStoredToken() on missing file error = %v, want nil", err)
	}
}

func TestLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/token" {
			t.Errorf("path = %q, want /api/auth/token", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.Form.Get("grant_type"); got != "password" {
			t.Errorf("grant_type = %q, want password", got)
		}
		if got := r.Form.Get("username"); got != "editor" {
			t.Errorf("username = %q, want editor", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "tok-123", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	defer server.Close()

	dir := t.TempDir()
	a := NewAuth(server.URL, dir)

	if err := a.Login(context.Background(), "editor", "hunter2"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if !a.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after login")
	}
	if !HasStoredToken(dir) {
		t.Error("token not persisted after login")
	}

	got, err := a.AccessToken(context.Background())
	if err != nil {
		t.Fatalf("AccessToken() error = %v", err)
	}
	if got != "tok-123" {
		t.Errorf("AccessToken() = %q, want tok-123", got)
	}
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	a := NewAuth("http://localhost:8000", t.TempDir())
	if err := a.Login(context.Background(), "", "secret"); err == nil {
		t.Error("expected error for empty username")
	}
	if err := a.Login(context.Background(), "editor", ""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestAccessTokenLoadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	stored := &Token{
		AccessToken: "persisted-tok",
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(time.Hour).Format(time.RFC3339),
	}
	if err := SaveStoredToken(dir, stored); err != nil {
		t.Fatalf("SaveStoredToken() error = %v", err)
	}

	a := NewAuth("http://localhost:8000", dir)
	got, err := a.AccessToken(context.Background())
	if err != nil {
		t.Fatalf("AccessToken() error = %v", err)
	}
	if got != "persisted-tok" {
		t.Errorf("AccessToken() = %q, want persisted-tok", got)
	}
}

func TestLogoutClearsToken(t *testing.T) {
	dir := t.TempDir()
	stored := &Token{
		AccessToken: "tok",
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(time.Hour).Format(time.RFC3339),
	}
	if err := SaveStoredToken(dir, stored); err != nil {
		t.Fatalf("SaveStoredToken() error = %v", err)
	}

	a := NewAuth("http://localhost:8000", dir)
	if !a.IsAuthenticated() {
		t.Fatal("IsAuthenticated() = false before logout")
	}

	if err := a.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if HasStoredToken(dir) {
		t.Error("token file still present after logout")
	}
	if a.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after logout")
	}
}
