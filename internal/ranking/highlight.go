package ranking

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// Highlighter marks case-insensitive occurrences of a whole query string.
// The query is matched literally: regexp metacharacters in it carry no meaning.
type Highlighter struct {
	pattern *regexp.Regexp
}

// NewHighlighter compiles a highlighter for query. An empty query matches nothing.
// Invalid UTF-8 in query is replaced with U+FFFD, as Tokenize does.
func NewHighlighter(query string) *Highlighter {
	if query == "" {
		return &Highlighter{}
	}
	pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(strings.ToValidUTF8(query, string(utf8.RuneError))))
	if err != nil {
		return &Highlighter{}
	}
	return &Highlighter{pattern: pattern}
}

// Apply wraps every non-overlapping match in <mark></mark>, keeping the
// original casing of the matched text.
func (h *Highlighter) Apply(text string) string {
	return h.ApplyFunc(text, mark, nil)
}

// ApplyFunc passes matched segments through match and the text between them
// through plain. A nil plain leaves unmatched text as is.
func (h *Highlighter) ApplyFunc(text string, match, plain func(string) string) string {
	if plain == nil {
		plain = func(s string) string { return s }
	}
	if h.pattern == nil {
		return plain(text)
	}

	var b strings.Builder
	last := 0
	for _, loc := range h.pattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			b.WriteString(plain(text[last:loc[0]]))
		}
		b.WriteString(match(text[loc[0]:loc[1]]))
		last = loc[1]
	}
	if last < len(text) {
		b.WriteString(plain(text[last:]))
	}
	return b.String()
}

// Highlight wraps every case-insensitive occurrence of query in text with <mark>.
func Highlight(text, query string) string {
	return NewHighlighter(query).Apply(text)
}

// HighlightFunc is Highlight with caller-supplied rendering of matched and
// unmatched segments.
func HighlightFunc(text, query string, match, plain func(string) string) string {
	return NewHighlighter(query).ApplyFunc(text, match, plain)
}

func mark(s string) string {
	return markOpen + s + markClose
}
