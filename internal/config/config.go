package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kartoza/kartoza-clip-studio/internal/models"
)

const (
	// DefaultConfigDir is the default configuration directory
	DefaultConfigDir = ".config/kartoza-clip-studio"
	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.json"
	// DefaultAPIBaseURL is the default clip service endpoint
	DefaultAPIBaseURL = "http://localhost:8000"
)

// Config holds the application configuration
type Config struct {
	APIBaseURL        string                `json:"api_base_url"`
	GiphyAPIKey       string                `json:"giphy_api_key,omitempty"`
	DefaultChannel    string                `json:"default_channel,omitempty"`
	DefaultExport     models.ExportSettings `json:"default_export"`
	PollIntervalSecs  int                   `json:"poll_interval_secs,omitempty"`
	ExportTimeoutSecs int                   `json:"export_timeout_secs,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		APIBaseURL:    DefaultAPIBaseURL,
		DefaultExport: models.DefaultExportSettings(),
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigDir
	}
	return filepath.Join(home, DefaultConfigDir)
}

// EnsureDirectories creates the necessary directories
func EnsureDirectories() error {
	return os.MkdirAll(GetConfigDir(), 0755)
}

// Load loads the configuration from disk
func Load() (*Config, error) {
	configPath := filepath.Join(GetConfigDir(), ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}

	return &cfg, nil
}

// Save saves the configuration to disk
func Save(cfg *Config) error {
	if err := EnsureDirectories(); err != nil {
		return err
	}

	configPath := filepath.Join(GetConfigDir(), ConfigFileName)

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
