package ranking

import (
	"slices"

	"github.com/krakend/docs-search/internal/indexing"
)

// Rank scores every record against the query and returns at most MaxResults
// matches ordered by relevance. Records with equal relevance keep their index
// order. An empty or blank query returns no results.
func Rank(query string, records []indexing.IndexRecord) []SearchResult {
	// Initialize as empty slice (not nil) so JSON marshals as [] instead of null
	results := []SearchResult{}

	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return results
	}

	for _, record := range records {
		folded := foldRecord(record)

		relevance := 0
		for _, token := range tokens {
			relevance += folded.score(token)
		}
		if relevance == 0 {
			continue
		}

		preview, ok := previewAround(record.Content, folded.content, tokens[0])
		if !ok {
			preview = truncateRunes(record.Content, DefaultPreviewChars)
		}

		results = append(results, SearchResult{
			Title:     record.Title,
			URL:       record.URL,
			Hierarchy: record.Hierarchy,
			Preview:   preview,
			Relevance: relevance,
		})
	}

	slices.SortStableFunc(results, func(a, b SearchResult) int {
		return b.Relevance - a.Relevance
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}
