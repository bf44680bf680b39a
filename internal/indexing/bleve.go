package indexing

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
)

// Stored field names expected in a bleve search index
const (
	PositionField  = "position"
	TitleField     = "title"
	ContentField   = "content"
	HierarchyField = "hierarchy"
	URLField       = "url"
)

// BleveSource reads index records stored in a bleve index.
// Documents must store title, content, url and hierarchy fields plus a
// numeric position field holding the record's place in the index.
type BleveSource struct {
	// Path of an index directory opened read-only on every Load
	Path string
	// Index is used instead of Path when set; it is never closed by Load
	Index bleve.Index
}

func (s *BleveSource) Name() string {
	if s.Index != nil {
		return "bleve:" + s.Index.Name()
	}
	return "bleve:" + s.Path
}

func (s *BleveSource) Load(ctx context.Context) ([]IndexRecord, error) {
	index := s.Index
	if index == nil {
		opened, err := bleve.OpenUsing(s.Path, map[string]interface{}{"read_only": true})
		if err != nil {
			return nil, fmt.Errorf("failed to open bleve index: %w", err)
		}
		defer opened.Close()
		index = opened
	}

	count, err := index.DocCount()
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	search := bleve.NewSearchRequestOptions(bleve.NewMatchAllQuery(), int(count), 0, false)
	search.Fields = []string{TitleField, ContentField, HierarchyField, URLField}
	search.SortBy([]string{PositionField, "_id"})

	searchResults, err := index.SearchInContext(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	records := make([]IndexRecord, 0, len(searchResults.Hits))
	var violations []Violation
	for i, hit := range searchResults.Hits {
		var record IndexRecord
		var ok bool

		if record.Title, ok = hit.Fields[TitleField].(string); !ok {
			violations = append(violations, Violation{
				Path:    fmt.Sprintf("$[%d]", i),
				Message: fmt.Sprintf("document %s has no stored title", hit.ID),
			})
		}
		if record.Content, ok = hit.Fields[ContentField].(string); !ok {
			violations = append(violations, Violation{
				Path:    fmt.Sprintf("$[%d]", i),
				Message: fmt.Sprintf("document %s has no stored content", hit.ID),
			})
		}
		if hierarchy, ok := hit.Fields[HierarchyField].(string); ok {
			record.Hierarchy = hierarchy
		}
		if url, ok := hit.Fields[URLField].(string); ok {
			record.URL = url
		}

		records = append(records, record)
	}

	if len(violations) > 0 {
		return nil, &MalformedIndexError{Violations: violations}
	}
	return records, nil
}
