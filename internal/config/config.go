package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultMaxTags = 12
	DefaultWebPort = 6798
)

// Configuration structure
type Config struct {
	DiscogsToken        string `json:"DiscogsToken"`
	MaxTags             int    `json:"MaxTags"`
	OutputLocation      string `json:"OutputLocation"`
	SpotifyClientID     string `json:"SpotifyClientID"`
	SpotifyClientSecret string `json:"SpotifyClientSecret"`
	WebPort             int    `json:"WebPort"`
	WarningBehavior     string `json:"WarningBehavior"` // "summary" or "silent"
	Debug               bool   `json:"-"`               // Not saved to config.json
}

// ApplyDefaults fills unset fields with sensible defaults
func (cfg *Config) ApplyDefaults() {
	if cfg.MaxTags <= 0 {
		cfg.MaxTags = DefaultMaxTags
	}
	if cfg.OutputLocation == "" {
		cfg.OutputLocation = "prompts.csv"
	}
	if cfg.WebPort == 0 {
		cfg.WebPort = DefaultWebPort
	}
	if cfg.WarningBehavior == "" {
		cfg.WarningBehavior = "summary"
	}
}

// LoadEnv loads a local .env file (if present) and applies environment
// variable overrides. Environment values win over the config file so
// tokens never need to be written to disk.
func LoadEnv(cfg *Config) {
	_ = godotenv.Load() // missing .env is fine

	if v := os.Getenv("DISCOGS_TOKEN"); v != "" {
		cfg.DiscogsToken = v
	}
	if v := os.Getenv("SPOTIFY_CLIENT_ID"); v != "" {
		cfg.SpotifyClientID = v
	}
	if v := os.Getenv("SPOTIFY_CLIENT_SECRET"); v != "" {
		cfg.SpotifyClientSecret = v
	}
	if v := os.Getenv("UDIO_MAX_TAGS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTags = n
		}
	}
}

// CreateDirIfNotExists creates a directory if it does not exist
func CreateDirIfNotExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// SaveConfig saves configuration to a JSON file
func SaveConfig(filePath string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	dir := filepath.Dir(filePath)
	if err := CreateDirIfNotExists(dir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
