package ranking_test

import (
	"testing"

	"github.com/krakend/docs-search/internal/indexing"
	"github.com/krakend/docs-search/internal/ranking"
)

func TestScore(t *testing.T) {
	record := indexing.IndexRecord{
		Title:     "Rate Limiting",
		Hierarchy: "Traffic Management > Endpoint",
		Content:   "Configure the rate limit of every endpoint.",
		URL:       "/docs/rate-limit/",
	}

	tests := []struct {
		name     string
		tokens   []string
		expected int
	}{
		{name: "no tokens", tokens: nil, expected: 0},
		{name: "no match", tokens: []string{"jwt"}, expected: 0},
		{name: "content only", tokens: []string{"configure"}, expected: ranking.ContentWeight},
		{name: "title and content", tokens: []string{"rate"}, expected: ranking.TitleWeight + ranking.ContentWeight},
		{name: "hierarchy and content", tokens: []string{"endpoint"}, expected: ranking.HierarchyWeight + ranking.ContentWeight},
		{name: "hierarchy only", tokens: []string{"traffic"}, expected: ranking.HierarchyWeight},
		{name: "case insensitive token", tokens: []string{"LIMIT"}, expected: ranking.TitleWeight + ranking.ContentWeight},
		{name: "substring match", tokens: []string{"lim"}, expected: ranking.TitleWeight + ranking.ContentWeight},
		{name: "tokens add up", tokens: []string{"rate", "endpoint"}, expected: 11 + 6},
		{name: "repeated token counts twice", tokens: []string{"rate", "rate"}, expected: 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ranking.Score(record, tt.tokens)
			if result != tt.expected {
				t.Errorf("ranking.Score(%q) = %d, want %d", tt.tokens, result, tt.expected)
			}
		})
	}
}

func TestScore_MissingHierarchy(t *testing.T) {
	record := indexing.IndexRecord{Title: "Overview", Content: "Gateway overview"}

	if got := ranking.Score(record, []string{"gateway"}); got != ranking.ContentWeight {
		t.Errorf("Expected content-only score %d, got %d", ranking.ContentWeight, got)
	}
}

func TestScore_MonotonicInTokens(t *testing.T) {
	record := indexing.IndexRecord{
		Title:     "Getting Started",
		Hierarchy: "Guide",
		Content:   "Install the tool and run setup.",
	}

	tokens := []string{"setup", "guide", "getting", "unrelated", "install"}
	previous := 0
	for i := range tokens {
		score := ranking.Score(record, tokens[:i+1])
		if score < 0 {
			t.Fatalf("Score must never be negative, got %d", score)
		}
		if score < previous {
			t.Errorf("Score decreased from %d to %d after adding %q", previous, score, tokens[i])
		}
		previous = score
	}
}
