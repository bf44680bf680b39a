package ranking

import (
	"strings"
	"unicode"
)

// Tokenize lowercases the query and splits it on runs of whitespace.
// Token order and duplicates are preserved; blank input yields no tokens.
func Tokenize(query string) []string {
	return strings.Fields(fold(query))
}

// fold lowercases rune by rune, so a folded string has exactly as many runes
// as its source and rune offsets found in one are valid in the other.
func fold(s string) string {
	return strings.Map(unicode.ToLower, s)
}
