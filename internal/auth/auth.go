// Package auth handles authentication against the clip service.
// Tokens are obtained with the OAuth2 password grant and persisted
// under the config directory so a login survives restarts.
package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
)

// Auth manages clip service credentials and token refresh
type Auth struct {
	config    *oauth2.Config
	configDir string
	token     *oauth2.Token
}

// NewAuth creates an authenticator for the clip service at baseURL
func NewAuth(baseURL, configDir string) *Auth {
	return &Auth{
		config: &oauth2.Config{
			Endpoint: oauth2.Endpoint{
				TokenURL:  baseURL + "/api/auth/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		configDir: configDir,
	}
}

// IsAuthenticated returns true if we have valid tokens
func (a *Auth) IsAuthenticated() bool {
	if a.token != nil && a.token.Valid() {
		return true
	}

	// Try to load token from disk
	token, err := a.loadToken()
	if err != nil {
		return false
	}

	a.token = token
	return token.Valid() || token.RefreshToken != ""
}

// Login exchanges a username and password for a token and stores it
func (a *Auth) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	token, err := a.config.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	a.token = token

	if err := a.saveToken(token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}

// AccessToken returns a valid access token, refreshing it if needed
func (a *Auth) AccessToken(ctx context.Context) (string, error) {
	if a.token == nil {
		token, err := a.loadToken()
		if err != nil {
			return "", fmt.Errorf("not authenticated: %w", err)
		}
		a.token = token
	}

	// Create token source that auto-refreshes
	tokenSource := a.config.TokenSource(ctx, a.token)

	newToken, err := tokenSource.Token()
	if err != nil {
		return "", fmt.Errorf("failed to get valid token: %w", err)
	}

	// Save if token was refreshed
	if newToken.AccessToken != a.token.AccessToken {
		a.token = newToken
		if err := a.saveToken(newToken); err != nil {
			fmt.Printf("Warning: failed to save refreshed token: %v\n", err)
		}
	}

	return newToken.AccessToken, nil
}

// Logout removes stored credentials
func (a *Auth) Logout() error {
	a.token = nil
	return DeleteStoredToken(a.configDir)
}

// loadToken loads the stored token from disk and converts to oauth2.Token
func (a *Auth) loadToken() (*oauth2.Token, error) {
	storedToken, err := LoadStoredToken(a.configDir)
	if err != nil {
		return nil, err
	}

	expiry, _ := time.Parse(time.RFC3339, storedToken.Expiry)

	return &oauth2.Token{
		AccessToken:  storedToken.AccessToken,
		RefreshToken: storedToken.RefreshToken,
		TokenType:    storedToken.TokenType,
		Expiry:       expiry,
	}, nil
}

// saveToken saves the token to disk
func (a *Auth) saveToken(token *oauth2.Token) error {
	storedToken := &Token{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry.Format(time.RFC3339),
	}
	return SaveStoredToken(a.configDir, storedToken)
}
