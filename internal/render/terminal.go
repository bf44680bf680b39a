package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/krakend/docs-search/internal/ranking"
)

// Color palette
// - Accent (soft purple #A78BFA): titles, matches
// - Muted (gray): breadcrumbs, URLs, relevance
var (
	accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))
	muted  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	bold   = lipgloss.NewStyle().Bold(true)
	match  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")).Bold(true).Underline(true)
)

// Terminal renders results as numbered text blocks
type Terminal struct {
	styled bool
}

// NewTerminal returns a renderer that styles output with ANSI colors
func NewTerminal() *Terminal {
	return &Terminal{styled: true}
}

// NewPlain returns a renderer without any styling, for pipes and files
func NewPlain() *Terminal {
	return &Terminal{}
}

func (t *Terminal) style(s lipgloss.Style, text string) string {
	if !t.styled || text == "" {
		return text
	}
	return s.Render(text)
}

func (t *Terminal) Render(results []ranking.SearchResult, query string) string {
	if len(results) == 0 {
		return NoResults + "\n"
	}

	highlighter := ranking.NewHighlighter(query)

	var b strings.Builder
	for i, result := range results {
		title := highlighter.ApplyFunc(result.Title,
			func(s string) string { return t.style(match, s) },
			func(s string) string { return t.style(bold, s) },
		)
		preview := highlighter.ApplyFunc(strings.Join(strings.Fields(result.Preview), " "),
			func(s string) string { return t.style(match, s) },
			nil,
		)

		fmt.Fprintf(&b, "%2d. %s %s\n", i+1, title, t.style(muted, fmt.Sprintf("(%d)", result.Relevance)))
		if result.Hierarchy != "" {
			fmt.Fprintf(&b, "    %s\n", t.style(muted, result.Hierarchy))
		}
		if result.URL != "" {
			fmt.Fprintf(&b, "    %s\n", t.style(accent, result.URL))
		}
		fmt.Fprintf(&b, "    %s\n", preview)
	}
	return b.String()
}
