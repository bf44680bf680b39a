package ranking

import (
	"strings"
	"unicode/utf8"

	"github.com/krakend/docs-search/internal/indexing"
)

// ExtractPreview returns a bounded excerpt of the record content.
//
// When the first token occurs in the content the excerpt starts 30 characters
// before the match and ends 120 characters after it, clamped to the content
// and wrapped in "..." on both sides. Otherwise it is the first 150 characters
// of the content with no ellipsis. Only the first token is considered.
func ExtractPreview(record indexing.IndexRecord, tokens []string) string {
	if len(tokens) > 0 {
		if preview, ok := previewAround(record.Content, fold(record.Content), fold(tokens[0])); ok {
			return preview
		}
	}
	return truncateRunes(record.Content, DefaultPreviewChars)
}

// previewAround frames content around the first occurrence of token in folded
func previewAround(content, folded, token string) (string, bool) {
	at := runeIndex(folded, token)
	if at < 0 {
		return "", false
	}

	runes := []rune(content)
	start := max(0, at-previewLeadChars)
	end := min(len(runes), at+utf8.RuneCountInString(token)+previewTrailChars)

	return ellipsis + string(runes[start:end]) + ellipsis, true
}

// runeIndex is strings.Index measured in runes instead of bytes
func runeIndex(s, substr string) int {
	i := strings.Index(s, substr)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:i])
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
