package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/krakend/docs-search/internal/indexing"
)

const testIndex = `[
  {"title": "Rate Limiting", "hierarchy": "Guide > Traffic", "url": "/docs/rate-limit/", "content": "Configure rate limits per endpoint."},
  {"title": "Endpoints", "url": "/docs/endpoints/", "content": "Each endpoint can declare its own <b>rate</b> policy."}
]`

// writeIndex writes content to a temporary index file and returns its path
func writeIndex(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "search-index.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write index: %v", err)
	}
	return path
}

func newTestStore(t *testing.T, content string) *indexing.Store {
	t.Helper()
	return newFileStore(t, writeIndex(t, content))
}

func newFileStore(t *testing.T, path string) *indexing.Store {
	t.Helper()
	store := indexing.NewStore(&indexing.FileSource{Path: path})
	store.Init(context.Background())
	return store
}

// resetFlags clears the global flags between tests
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		configPath, indexURL, indexFile, bleveIndex = "", "", "", ""
		queryHTML, queryJSON = false, false
	})
	configPath, indexURL, indexFile, bleveIndex = "", "", "", ""
}
