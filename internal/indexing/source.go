package indexing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// maxIndexBytes caps how much of a remote index is read into memory (64 MiB)
const maxIndexBytes = 64 << 20

// Source loads the records of a search index
type Source interface {
	// Name identifies the source in logs and tool output
	Name() string
	// Load returns every record of the index in index order
	Load(ctx context.Context) ([]IndexRecord, error)
}

// FileReader reads named files, such as an embed.FS
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// IndexURL returns the search index location for a site root
// Example: "https://example.com/" -> "https://example.com/docs/search-index.json"
func IndexURL(siteURL string) string {
	return strings.TrimRight(siteURL, "/") + DefaultIndexPath
}

// HTTPSource fetches a JSON index over HTTP
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s *HTTPSource) Name() string {
	return s.URL
}

func (s *HTTPSource) Load(ctx context.Context) ([]IndexRecord, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("download failed with status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIndexBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return Decode(data)
}

// FileSource reads a JSON index from the local filesystem
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string {
	return s.Path
}

func (s *FileSource) Load(ctx context.Context) ([]IndexRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}
	return Decode(data)
}

// EmbeddedSource reads the index compiled into the binary
type EmbeddedSource struct {
	Files FileReader
}

func (s *EmbeddedSource) Name() string {
	return "embedded:" + EmbeddedIndexFile
}

func (s *EmbeddedSource) Load(ctx context.Context) ([]IndexRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.Files.ReadFile(EmbeddedIndexFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded index: %w", err)
	}
	return Decode(data)
}
