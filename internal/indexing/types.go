package indexing

import "time"

// IndexRecord represents one page or section entry in the search index
type IndexRecord struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Hierarchy string `json:"hierarchy,omitempty"` // Breadcrumb: "Guide > Install"
	URL       string `json:"url"`
}

// Snapshot is an immutable, fully loaded index
type Snapshot struct {
	Records  []IndexRecord
	Source   string
	LoadedAt time.Time
}

// Len returns the number of records in the snapshot
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}
