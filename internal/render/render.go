// Package render turns ranked results into display output.
package render

import "github.com/krakend/docs-search/internal/ranking"

// NoResults is shown when a query matches nothing
const NoResults = "No results found"

// Renderer formats ranked results for one query
type Renderer interface {
	Render(results []ranking.SearchResult, query string) string
}
