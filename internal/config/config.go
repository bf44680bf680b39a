// Package config handles docs-search configuration.
package config

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/krakend/docs-search/internal/indexing"
	"github.com/krakend/docs-search/internal/trigger"
)

// Config represents the docs-search configuration.
type Config struct {
	Index  IndexConfig  `toml:"index"`
	Search SearchConfig `toml:"search"`
	Server ServerConfig `toml:"server"`
}

// IndexConfig selects where the search index is loaded from.
// Precedence: BlevePath, Path, URL, SiteURL, then the embedded index.
type IndexConfig struct {
	// SiteURL is the documentation site root; the index is fetched from its /docs/search-index.json
	SiteURL string `toml:"site_url"`

	// URL is the full location of a JSON index.
	URL string `toml:"url"`

	// Path is a local JSON index file.
	Path string `toml:"path"`

	// BlevePath is an existing bleve index directory.
	BlevePath string `toml:"bleve_path"`

	TimeoutSeconds  int `toml:"timeout_seconds"`
	RefreshTTLHours int `toml:"refresh_ttl_hours"`
}

// SearchConfig tunes when queries are ranked.
type SearchConfig struct {
	MinQueryLength int `toml:"min_query_length"`
}

// ServerConfig configures the HTTP fragment endpoint.
type ServerConfig struct {
	Listen string `toml:"listen"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Index: IndexConfig{
			TimeoutSeconds:  int(indexing.DefaultFetchTimeout / time.Second),
			RefreshTTLHours: int(indexing.DefaultRefreshTTL / time.Hour),
		},
		Search: SearchConfig{
			MinQueryLength: trigger.DefaultMinQueryLength,
		},
		Server: ServerConfig{
			Listen: "127.0.0.1:8080",
		},
	}
}

// Load loads the configuration from the default location.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path. Keys missing from
// the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/docs-search/config.toml first (XDG style),
// then falls back to the OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "docs-search", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "docs-search", "config.toml")
	}

	// Last resort fallback
	return filepath.Join(".", "config.toml")
}

// Validate rejects values that cannot be used.
func (c *Config) Validate() error {
	if c.Index.TimeoutSeconds < 0 {
		return fmt.Errorf("index.timeout_seconds must not be negative")
	}
	if c.Index.RefreshTTLHours < 0 {
		return fmt.Errorf("index.refresh_ttl_hours must not be negative")
	}
	if c.Search.MinQueryLength < 0 {
		return fmt.Errorf("search.min_query_length must not be negative")
	}
	return nil
}

// FetchTimeout returns the HTTP timeout for index downloads.
func (c *Config) FetchTimeout() time.Duration {
	if c.Index.TimeoutSeconds == 0 {
		return indexing.DefaultFetchTimeout
	}
	return time.Duration(c.Index.TimeoutSeconds) * time.Second
}

// RefreshTTL returns how long a loaded index stays fresh.
func (c *Config) RefreshTTL() time.Duration {
	if c.Index.RefreshTTLHours == 0 {
		return indexing.DefaultRefreshTTL
	}
	return time.Duration(c.Index.RefreshTTLHours) * time.Hour
}

// Source builds the index source selected by the configuration. embedded is
// used when no other source is configured.
func (c *Config) Source(embedded indexing.FileReader) indexing.Source {
	switch {
	case c.Index.BlevePath != "":
		return &indexing.BleveSource{Path: c.Index.BlevePath}
	case c.Index.Path != "":
		return &indexing.FileSource{Path: c.Index.Path}
	case c.Index.URL != "":
		return &indexing.HTTPSource{URL: c.Index.URL, Client: &http.Client{Timeout: c.FetchTimeout()}}
	case c.Index.SiteURL != "":
		return &indexing.HTTPSource{URL: indexing.IndexURL(c.Index.SiteURL), Client: &http.Client{Timeout: c.FetchTimeout()}}
	default:
		return &indexing.EmbeddedSource{Files: embedded}
	}
}

// NewStore creates an index store for the configured source.
func (c *Config) NewStore(embedded indexing.FileReader) *indexing.Store {
	return indexing.NewStore(c.Source(embedded), indexing.WithRefreshTTL(c.RefreshTTL()))
}
