package indexing

import "time"

// Index loading defaults
const (
	// DefaultIndexPath is where the site publishes its search index
	DefaultIndexPath = "/docs/search-index.json"

	// DefaultFetchTimeout bounds a single index download
	DefaultFetchTimeout = 10 * time.Second

	// DefaultRefreshTTL is how long a loaded snapshot counts as fresh (7 days)
	DefaultRefreshTTL = 7 * 24 * time.Hour

	// EmbeddedIndexFile is the index compiled into the binary
	EmbeddedIndexFile = "data/search-index.json"
)
