package tools

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/krakend/docs-search/internal/indexing"
	"github.com/krakend/docs-search/internal/ranking"
	"github.com/krakend/docs-search/internal/trigger"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DocResult is a ranked record with query matches wrapped in <mark>
type DocResult struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Hierarchy string `json:"hierarchy,omitempty"`
	Preview   string `json:"preview"`
	Relevance int    `json:"relevance"`
}

// SearchDocumentationInput defines input for search_documentation tool
type SearchDocumentationInput struct {
	Query      string `json:"query" jsonschema:"Search query for documentation"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum number of results (optional, defaults to 10, never more than 10)"`
}

// SearchDocumentationOutput defines output for search_documentation tool
type SearchDocumentationOutput struct {
	Results    []DocResult `json:"results"`
	Query      string      `json:"query"`
	RankedHits int         `json:"ranked_hits" jsonschema:"Number of ranked matches, at most 10, before max_results is applied"`
	Source     string      `json:"source"`
	Message    string      `json:"message,omitempty"`
}

// RefreshSearchIndexInput defines input for refresh_search_index tool
type RefreshSearchIndexInput struct {
	Force bool `json:"force,omitempty" jsonschema:"Reload even if the index is younger than the refresh TTL (optional, defaults to false)"`
}

// RefreshSearchIndexOutput defines output for refresh_search_index tool
type RefreshSearchIndexOutput struct {
	Updated    bool      `json:"updated"`
	LastUpdate time.Time `json:"last_update"`
	Records    int       `json:"records"`
	Source     string    `json:"source"`
	Message    string    `json:"message"`
}

// DocSearch serves the documentation search tools from an index store
type DocSearch struct {
	store          *indexing.Store
	minQueryLength int
}

// NewDocSearch creates the tool handlers. A minQueryLength below 1 uses
// trigger.DefaultMinQueryLength.
func NewDocSearch(store *indexing.Store, minQueryLength int) *DocSearch {
	if minQueryLength < 1 {
		minQueryLength = trigger.DefaultMinQueryLength
	}
	return &DocSearch{store: store, minQueryLength: minQueryLength}
}

// SearchDocumentation ranks the index records against the query
func (d *DocSearch) SearchDocumentation(ctx context.Context, req *mcp.CallToolRequest, input SearchDocumentationInput) (*mcp.CallToolResult, SearchDocumentationOutput, error) {
	query := strings.TrimSpace(input.Query)

	// Initialize as empty slice (not nil) so JSON marshals as []
	output := SearchDocumentationOutput{
		Results: []DocResult{},
		Query:   query,
	}

	if utf8.RuneCountInString(query) < d.minQueryLength {
		output.Message = fmt.Sprintf("Query must be at least %d characters", d.minQueryLength)
		return nil, output, nil
	}

	// Stale or never loaded: try to reload before searching, keep the old snapshot on failure
	if d.store.NeedsRefresh() {
		if _, err := d.store.Refresh(ctx, false); err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	snapshot := d.store.Current()
	output.Source = snapshot.Source

	maxResults := input.MaxResults
	if maxResults <= 0 || maxResults > ranking.MaxResults {
		maxResults = ranking.MaxResults
	}

	ranked := ranking.Rank(query, snapshot.Records)
	output.RankedHits = len(ranked)
	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}

	highlighter := ranking.NewHighlighter(query)
	for _, result := range ranked {
		output.Results = append(output.Results, DocResult{
			Title:     highlighter.Apply(result.Title),
			URL:       result.URL,
			Hierarchy: result.Hierarchy,
			Preview:   highlighter.Apply(result.Preview),
			Relevance: result.Relevance,
		})
	}

	if len(output.Results) == 0 {
		output.Message = "No results found"
	}

	return nil, output, nil
}

// RefreshSearchIndex reloads the search index from its source
func (d *DocSearch) RefreshSearchIndex(ctx context.Context, req *mcp.CallToolRequest, input RefreshSearchIndexInput) (*mcp.CallToolResult, RefreshSearchIndexOutput, error) {
	updated, err := d.store.Refresh(ctx, input.Force)
	if err != nil {
		return nil, RefreshSearchIndexOutput{}, fmt.Errorf("refresh failed: %w", err)
	}

	snapshot := d.store.Current()
	output := RefreshSearchIndexOutput{
		Updated:    updated,
		LastUpdate: snapshot.LoadedAt,
		Records:    snapshot.Len(),
		Source:     snapshot.Source,
	}

	if updated {
		output.Message = fmt.Sprintf("Search index refreshed successfully, %d records loaded", output.Records)
	} else {
		output.Message = fmt.Sprintf("Index is fresh (last updated: %s)", snapshot.LoadedAt.Format(time.RFC3339))
	}

	return nil, output, nil
}

// RegisterDocSearchTools registers documentation search tools
func RegisterDocSearchTools(server *mcp.Server, docs *DocSearch) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "search_documentation",
			Description: "Search the documentation index. Returns up to 10 pages ranked by title, breadcrumb and content matches, with matches wrapped in <mark>.",
		},
		docs.SearchDocumentation,
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "refresh_search_index",
			Description: "Reload the documentation search index from its source (auto-runs when the index is older than the refresh TTL)",
		},
		docs.RefreshSearchIndex,
	)
}
