package indexing_test

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/krakend/docs-search/internal/indexing"
)

const sampleIndex = `[
	{"title": "Getting Started", "content": "Install the tool and run setup.", "hierarchy": "Guide", "url": "/docs/start/"},
	{"title": "Rate Limiting", "content": "Limit requests per endpoint.", "url": "/docs/rate-limit/"}
]`

func TestIndexURL(t *testing.T) {
	tests := []struct {
		name     string
		site     string
		expected string
	}{
		{name: "no trailing slash", site: "https://example.com", expected: "https://example.com/docs/search-index.json"},
		{name: "trailing slash", site: "https://example.com/", expected: "https://example.com/docs/search-index.json"},
		{name: "empty root", site: "", expected: "/docs/search-index.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := indexing.IndexURL(tt.site); result != tt.expected {
				t.Errorf("indexing.IndexURL() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestHTTPSource_Load(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != indexing.DefaultIndexPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleIndex))
	}))
	defer server.Close()

	src := &indexing.HTTPSource{URL: indexing.IndexURL(server.URL), Client: server.Client()}
	records, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[1].Title != "Rate Limiting" {
		t.Errorf("Expected index order to be preserved, got %q second", records[1].Title)
	}
}

func TestHTTPSource_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	src := &indexing.HTTPSource{URL: server.URL, Client: server.Client()}
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("Expected error for HTTP 500, got nil")
	}
}

func TestHTTPSource_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleIndex))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &indexing.HTTPSource{URL: server.URL, Client: server.Client()}
	if _, err := src.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-index.json")
	if err := os.WriteFile(path, []byte(sampleIndex), 0644); err != nil {
		t.Fatalf("Failed to write index: %v", err)
	}

	records, err := (&indexing.FileSource{Path: path}).Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(records))
	}

	_, err = (&indexing.FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}).Load(context.Background())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

type mapFiles map[string][]byte

func (m mapFiles) ReadFile(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func TestEmbeddedSource_Load(t *testing.T) {
	src := &indexing.EmbeddedSource{Files: mapFiles{indexing.EmbeddedIndexFile: []byte(sampleIndex)}}

	records, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(records))
	}

	empty := &indexing.EmbeddedSource{Files: mapFiles{}}
	if _, err := empty.Load(context.Background()); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}
