// Package trigger decides when a query is ranked and what the result panel shows.
package trigger

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/krakend/docs-search/internal/indexing"
	"github.com/krakend/docs-search/internal/ranking"
	"github.com/krakend/docs-search/internal/render"
)

// DefaultMinQueryLength is the shortest trimmed query that is ranked
const DefaultMinQueryLength = 2

// Records supplies the index searched by a Controller, such as an *indexing.Store
type Records interface {
	Records() []indexing.IndexRecord
}

// View is the state of the result panel after an event
type View struct {
	Query   string                 `json:"query"`
	Visible bool                   `json:"visible"`
	Results []ranking.SearchResult `json:"results"`
	Body    string                 `json:"body,omitempty"`
}

// Controller reacts to input, escape and dismiss events
type Controller struct {
	records        Records
	renderer       render.Renderer
	minQueryLength int

	mu   sync.Mutex
	view View
}

// New creates a controller. A minQueryLength below 1 uses DefaultMinQueryLength.
func New(records Records, renderer render.Renderer, minQueryLength int) *Controller {
	if minQueryLength < 1 {
		minQueryLength = DefaultMinQueryLength
	}
	return &Controller{
		records:        records,
		renderer:       renderer,
		minQueryLength: minQueryLength,
	}
}

// Search ranks and renders query without touching the controller state.
// Queries shorter than the minimum once trimmed produce a hidden view.
func (c *Controller) Search(query string) View {
	trimmed := strings.TrimSpace(query)
	hidden := View{Query: trimmed, Results: []ranking.SearchResult{}}

	// Missing collaborators make every event a no-op
	if c == nil || c.records == nil || c.renderer == nil {
		return hidden
	}
	if utf8.RuneCountInString(trimmed) < c.minQueryLength {
		return hidden
	}

	results := ranking.Rank(trimmed, c.records.Records())
	return View{
		Query:   trimmed,
		Visible: true,
		Results: results,
		Body:    c.renderer.Render(results, trimmed),
	}
}

// Input handles a change of the query text
func (c *Controller) Input(query string) View {
	view := c.Search(query)
	if c == nil {
		return view
	}
	c.mu.Lock()
	c.view = view
	c.mu.Unlock()
	return view
}

// Escape clears the query and hides the results
func (c *Controller) Escape() View {
	if c == nil {
		return View{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	// Initialize as empty slice (not nil) so JSON marshals as []
	c.view = View{Results: []ranking.SearchResult{}}
	return c.view
}

// Dismiss hides the results but keeps the query, as when focus moves elsewhere
func (c *Controller) Dismiss() View {
	if c == nil {
		return View{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Visible = false
	return c.view
}

// Current returns the last view produced by an event
func (c *Controller) Current() View {
	if c == nil {
		return View{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}
