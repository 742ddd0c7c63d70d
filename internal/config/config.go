// Package config loads the process configuration from the environment.
//
// Configuration is read once at startup into an immutable Config that is
// passed to every component that needs it. Validation of required fields
// happens here, before anything else is constructed — a missing credential
// aborts the process instead of failing on the first tool call.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Defaults for optional settings. Base URL and credentials match a stock
// Unomi installation so a local setup works without any environment.
const (
	DefaultBaseURL  = "http://localhost:8181"
	DefaultUsername = "karaf"
	DefaultPassword = "karaf"
	DefaultSourceID = "claude-desktop"
)

// Config holds all process-wide settings for the Unomi MCP server.
type Config struct {
	// BaseURL is the root of the Unomi REST API, without trailing slash.
	BaseURL string

	// Username and Password are the basic-auth credentials for /cxs endpoints.
	Username string
	Password string

	// Key is the privileged third-party key sent as the X-Unomi-Peer header.
	Key string

	// ProfileID is the fallback profile to operate on when email lookup is
	// not configured or finds no match.
	ProfileID string

	// SourceID identifies this integration in event sources and context
	// requests.
	SourceID string

	// Email, when set, enables resolving the effective profile by exact
	// email match instead of using ProfileID directly.
	Email string
}

// Load reads configuration from the environment. A .env file in the current
// directory is loaded first if present (development convenience); real
// environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env from current directory")
	}

	cfg := &Config{
		BaseURL:   envOr("UNOMI_BASE_URL", DefaultBaseURL),
		Username:  envOr("UNOMI_USERNAME", DefaultUsername),
		Password:  envOr("UNOMI_PASSWORD", DefaultPassword),
		Key:       os.Getenv("UNOMI_KEY"),
		ProfileID: os.Getenv("UNOMI_PROFILE_ID"),
		SourceID:  envOr("UNOMI_SOURCE_ID", DefaultSourceID),
		Email:     os.Getenv("UNOMI_EMAIL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Key == "" {
		return fmt.Errorf("UNOMI_KEY environment variable is required")
	}
	if c.ProfileID == "" {
		return fmt.Errorf("UNOMI_PROFILE_ID environment variable is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
