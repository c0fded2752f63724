package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Token represents stored OAuth2 tokens
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	Expiry       string `json:"expiry"` // RFC3339 format
}

// GetTokenPath returns the path to the token file
func GetTokenPath(configDir string) string {
	return filepath.Join(configDir, "token.json")
}

// LoadStoredToken loads the OAuth token from disk
func LoadStoredToken(configDir string) (*Token, error) {
	tokenPath := GetTokenPath(configDir)
	data, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, err
	}

	var token Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, err
	}

	return &token, nil
}

// SaveStoredToken saves the OAuth token to disk
func SaveStoredToken(configDir string, token *Token) error {
	tokenPath := GetTokenPath(configDir)

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}

	// Write with restricted permissions (owner only)
	return os.WriteFile(tokenPath, data, 0600)
}

// DeleteStoredToken removes the stored OAuth token
func DeleteStoredToken(configDir string) error {
	tokenPath := GetTokenPath(configDir)
	err := os.Remove(tokenPath)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// HasStoredToken returns true if a token file exists
func HasStoredToken(configDir string) bool {
	tokenPath := GetTokenPath(configDir)
	_, err := os.Stat(tokenPath)
	return err == nil
}
