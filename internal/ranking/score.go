package ranking

import (
	"strings"

	"github.com/krakend/docs-search/internal/indexing"
)

// foldedRecord caches the lowercased fields of a record for one ranking pass
type foldedRecord struct {
	title     string
	hierarchy string
	content   string
}

func foldRecord(record indexing.IndexRecord) foldedRecord {
	return foldedRecord{
		title:     fold(record.Title),
		hierarchy: fold(record.Hierarchy),
		content:   fold(record.Content),
	}
}

// Score sums the field weights of every token found in the record.
// A token may score in several fields at once. Tokens are matched as
// case-insensitive substrings and the total is never normalized.
func Score(record indexing.IndexRecord, tokens []string) int {
	folded := foldRecord(record)
	score := 0
	for _, token := range tokens {
		score += folded.score(fold(token))
	}
	return score
}

func (r foldedRecord) score(token string) int {
	points := 0
	if strings.Contains(r.title, token) {
		points += TitleWeight
	}
	if strings.Contains(r.hierarchy, token) {
		points += HierarchyWeight
	}
	if strings.Contains(r.content, token) {
		points += ContentWeight
	}
	return points
}
