package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/krakend/docs-search/internal/indexing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
[index]
site_url = "https://docs.example.com"
timeout_seconds = 3

[search]
min_query_length = 3
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Index.SiteURL != "https://docs.example.com" {
		t.Errorf("SiteURL = %q", cfg.Index.SiteURL)
	}
	if cfg.FetchTimeout() != 3*time.Second {
		t.Errorf("FetchTimeout() = %v, want 3s", cfg.FetchTimeout())
	}
	if cfg.Search.MinQueryLength != 3 {
		t.Errorf("MinQueryLength = %d, want 3", cfg.Search.MinQueryLength)
	}
	// Keys not in the file keep their defaults
	if cfg.Server.Listen != "127.0.0.1:8080" {
		t.Errorf("Listen = %q, want default", cfg.Server.Listen)
	}
	if cfg.RefreshTTL() != indexing.DefaultRefreshTTL {
		t.Errorf("RefreshTTL() = %v, want default", cfg.RefreshTTL())
	}
}

func TestLoadFrom_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "invalid toml",
			content: "[index\nurl = 1",
			wantErr: "failed to parse config",
		},
		{
			name:    "negative timeout",
			content: "[index]\ntimeout_seconds = -1\n",
			wantErr: "timeout_seconds",
		},
		{
			name:    "negative min query length",
			content: "[search]\nmin_query_length = -2\n",
			wantErr: "min_query_length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSource_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		index    IndexConfig
		wantType string
		wantName string
	}{
		{
			name:     "embedded by default",
			index:    IndexConfig{},
			wantType: "*indexing.EmbeddedSource",
			wantName: "embedded:" + indexing.EmbeddedIndexFile,
		},
		{
			name:     "site url",
			index:    IndexConfig{SiteURL: "https://docs.example.com/"},
			wantType: "*indexing.HTTPSource",
			wantName: "https://docs.example.com/docs/search-index.json",
		},
		{
			name:     "url beats site url",
			index:    IndexConfig{SiteURL: "https://a", URL: "https://b/index.json"},
			wantType: "*indexing.HTTPSource",
			wantName: "https://b/index.json",
		},
		{
			name:     "file beats url",
			index:    IndexConfig{URL: "https://b/index.json", Path: "index.json"},
			wantType: "*indexing.FileSource",
			wantName: "index.json",
		},
		{
			name:     "bleve beats everything",
			index:    IndexConfig{URL: "https://b", Path: "index.json", BlevePath: "idx.bleve"},
			wantType: "*indexing.BleveSource",
			wantName: "bleve:idx.bleve",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Index = tt.index

			src := cfg.Source(nil)
			if got := typeName(src); got != tt.wantType {
				t.Errorf("Source() type = %s, want %s", got, tt.wantType)
			}
			if src.Name() != tt.wantName {
				t.Errorf("Source().Name() = %q, want %q", src.Name(), tt.wantName)
			}
		})
	}
}

func typeName(src indexing.Source) string {
	switch src.(type) {
	case *indexing.EmbeddedSource:
		return "*indexing.EmbeddedSource"
	case *indexing.HTTPSource:
		return "*indexing.HTTPSource"
	case *indexing.FileSource:
		return "*indexing.FileSource"
	case *indexing.BleveSource:
		return "*indexing.BleveSource"
	}
	return "unknown"
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	cfg.Index.TimeoutSeconds = 0
	cfg.Index.RefreshTTLHours = 0

	if cfg.FetchTimeout() != indexing.DefaultFetchTimeout {
		t.Errorf("FetchTimeout() = %v", cfg.FetchTimeout())
	}
	if cfg.RefreshTTL() != indexing.DefaultRefreshTTL {
		t.Errorf("RefreshTTL() = %v", cfg.RefreshTTL())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}
}
