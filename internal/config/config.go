// Package config loads and validates .blackstone.yml.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// keys lists every configurable path. Env names are matched against these
// with dots replaced by underscores, so keys that contain underscores
// themselves still resolve.
var keys = []string{
	"site_name",
	"base_url",
	"server.host",
	"server.port",
	"server.allow_all_origins",
	"data_dir",
	"contact.store_inquiries",
	"log.level",
	"log.format",
}

// envKey maps BLACKSTONE_SERVER_PORT to server.port. Unknown names map to
// the empty string and are ignored.
func envKey(name string) string {
	flat := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	for _, k := range keys {
		if strings.ReplaceAll(k, ".", "_") == flat {
			return k
		}
	}
	return ""
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (BLACKSTONE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SiteName) == "" {
		return fmt.Errorf("site_name is required")
	}

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid base_url %q: must be an absolute URL", c.BaseURL)
		}
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", c.Server.Port)
	}

	if c.Contact.StoreInquiries && c.DataDir == "" {
		return fmt.Errorf("data_dir is required when contact.store_inquiries is set")
	}

	if c.Log.Level != "" && !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}

	if c.Log.Format != "" && !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be json or console", c.Log.Format)
	}

	return nil
}

// DatabasePath returns the sqlite file that holds stored inquiries.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "blackstone.db")
}
