// ABOUTME: Console configuration from YAML file and environment variables
// ABOUTME: XDG paths for config, with env overrides and a minted device ID
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"
)

// Config holds everything the console needs to reach the backend.
type Config struct {
	// APIBase is the REST API origin, e.g. https://api.studio.example/api.
	APIBase string `yaml:"api_base"`
	// LiveBase is the live-update channel origin; defaults to APIBase.
	LiveBase string `yaml:"live_base,omitempty"`
	// IdentityURL is the identity provider's token endpoint origin.
	IdentityURL string `yaml:"identity_url"`
	OrgID       string `yaml:"org_id"`
	// DefaultEvent preselects an event for postprod commands.
	DefaultEvent string `yaml:"default_event,omitempty"`
	DeviceID     string `yaml:"device_id,omitempty"`
}

// Dir returns the XDG-compliant configuration directory.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "studioctl")
}

// Path returns the configuration file location.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the config file if present and applies environment
// overrides:
//   - STUDIOCTL_API_BASE
//   - STUDIOCTL_LIVE_BASE
//   - STUDIOCTL_IDENTITY_URL
//   - STUDIOCTL_ORG
//   - STUDIOCTL_EVENT
//
// A missing file is not an error; env vars alone are a valid setup.
func Load() (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(Path())
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", Path(), err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if v := os.Getenv("STUDIOCTL_API_BASE"); v != "" {
		cfg.APIBase = v
	}
	if v := os.Getenv("STUDIOCTL_LIVE_BASE"); v != "" {
		cfg.LiveBase = v
	}
	if v := os.Getenv("STUDIOCTL_IDENTITY_URL"); v != "" {
		cfg.IdentityURL = v
	}
	if v := os.Getenv("STUDIOCTL_ORG"); v != "" {
		cfg.OrgID = v
	}
	if v := os.Getenv("STUDIOCTL_EVENT"); v != "" {
		cfg.DefaultEvent = v
	}

	if cfg.LiveBase == "" {
		cfg.LiveBase = cfg.APIBase
	}
	if cfg.DeviceID == "" {
		cfg.DeviceID = ulid.Make().String()
	}

	return cfg, nil
}

// Save writes the config file, creating the directory as needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(Dir(), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(Path(), data, 0600)
}

// Validate checks that the config is complete enough to reach the
// backend.
func (c *Config) Validate() error {
	if c.APIBase == "" {
		return fmt.Errorf("api_base is not configured (set STUDIOCTL_API_BASE or edit %s)", Path())
	}
	if c.OrgID == "" {
		return fmt.Errorf("org_id is not configured (set STUDIOCTL_ORG or edit %s)", Path())
	}
	return nil
}
