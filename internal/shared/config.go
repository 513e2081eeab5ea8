package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Search      SearchConfig      `toml:"search"`
	Downloader  DownloaderConfig  `toml:"downloader"`
	Pacing      PacingConfig      `toml:"pacing"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	Spotify SpotifyConfig `toml:"spotify"`
}

// SpotifyConfig contains Spotify API credentials for the client credentials grant.
type SpotifyConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

// SearchConfig contains settings for the YouTube Music search client.
type SearchConfig struct {
	BaseURL       string `toml:"base_url"`
	ClientName    string `toml:"client_name"`
	ClientVersion string `toml:"client_version"`
}

// DownloaderConfig contains yt-dlp dispatch settings.
type DownloaderConfig struct {
	OutputDir       string `toml:"output_dir"`
	Codec           string `toml:"codec"`
	Quality         string `toml:"quality"`
	FragmentRetries int    `toml:"fragment_retries"`
	Retries         int    `toml:"retries"`
}

// PacingConfig bounds the randomized delay between search requests, in seconds.
type PacingConfig struct {
	MinSeconds float64 `toml:"min_seconds"`
	MaxSeconds float64 `toml:"max_seconds"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Spotify credentials may be supplied or overridden through the environment
// (SPOTIFY_CLIENT_ID / SPOTIFY_CLIENT_SECRET), optionally via a .env file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	config.applyEnv()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.applyEnv()
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnv overlays secrets from the process environment (and .env, if present)
// so credentials can stay out of the config file.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if id := os.Getenv("SPOTIFY_CLIENT_ID"); id != "" {
		c.Credentials.Spotify.ClientID = id
	}
	if secret := os.Getenv("SPOTIFY_CLIENT_SECRET"); secret != "" {
		c.Credentials.Spotify.ClientSecret = secret
	}
}
