package ranking

// Field weights added once per token that matches the field
const (
	TitleWeight     = 10
	HierarchyWeight = 5
	ContentWeight   = 1
)

// Result and preview limits
const (
	// MaxResults is the fixed top-N cutoff applied by Rank
	MaxResults = 10

	// DefaultPreviewChars is the length of the preview when no token matches the content
	DefaultPreviewChars = 150

	// previewLeadChars and previewTrailChars frame a preview around the first match
	previewLeadChars  = 30
	previewTrailChars = 120

	ellipsis = "..."
)

// SearchResult is a ranked match built fresh for every query
type SearchResult struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Hierarchy string `json:"hierarchy,omitempty"`
	Preview   string `json:"preview"`
	Relevance int    `json:"relevance"`
}
