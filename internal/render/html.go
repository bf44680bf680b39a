package render

import (
	"html"
	"net/url"
	"strings"

	"github.com/krakend/docs-search/internal/ranking"
)

// HTML renders the result list markup used by the site's search dropdown.
// Record text is escaped; only the <mark> wrappers are emitted as markup.
type HTML struct{}

func (HTML) Render(results []ranking.SearchResult, query string) string {
	if len(results) == 0 {
		return `<div class="no-results">` + NoResults + `</div>`
	}

	highlighter := ranking.NewHighlighter(query)
	highlight := func(text string) string {
		return highlighter.ApplyFunc(text, markEscaped, html.EscapeString)
	}

	var b strings.Builder
	for _, result := range results {
		b.WriteString(`<div class="search-result-item">`)
		b.WriteString(`<a href="` + html.EscapeString(safeHref(result.URL)) + `">`)
		b.WriteString(`<div class="search-result-title">` + highlight(result.Title) + `</div>`)
		if result.Hierarchy != "" {
			b.WriteString(`<span class="search-hierarchy">` + html.EscapeString(result.Hierarchy) + `</span>`)
		}
		b.WriteString(`<div class="search-result-preview">` + highlight(result.Preview) + `</div>`)
		b.WriteString(`</a></div>`)
	}
	return b.String()
}

func markEscaped(s string) string {
	return "<mark>" + html.EscapeString(s) + "</mark>"
}

// safeHref keeps relative links and http(s) URLs; anything else becomes "#"
func safeHref(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "#"
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https":
		return u.String()
	default:
		return "#"
	}
}
