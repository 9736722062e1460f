// Package config provides configuration loading and validation for the
// style assistant server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultCatalogURL is the upstream catalog API used when none is
// configured.
const DefaultCatalogURL = "https://catalog.roblox.com"

// Config represents server configuration loadable from a JSON file.
// All fields are optional; missing values use defaults or come from
// CLI flags and environment variables.
type Config struct {
	Port       int    `json:"port,omitempty"`        // HTTP listen port
	CatalogURL string `json:"catalog_url,omitempty"` // Upstream catalog API base URL
	Seed       int64  `json:"seed,omitempty"`        // Fixed random seed (0 = entropy-seeded)
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Port:       8080,
		CatalogURL: DefaultCatalogURL,
	}
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays environment variables onto the configuration:
// STYLE_ASSISTANT_PORT and CATALOG_API_URL.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("STYLE_ASSISTANT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("CATALOG_API_URL"); v != "" {
		c.CatalogURL = v
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.CatalogURL == "" {
		return fmt.Errorf("config error: catalog_url must not be empty")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-value fields filled
// from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.CatalogURL == "" {
		result.CatalogURL = defaults.CatalogURL
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}

	return result
}
