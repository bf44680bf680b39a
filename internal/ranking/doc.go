// Package ranking scores documentation records against a free-text query.
//
// The pipeline is deliberately simple:
//
//	tokens := ranking.Tokenize(query)      // lowercase, whitespace split
//	score  := ranking.Score(record, tokens) // title +10, hierarchy +5, content +1 per token
//	results := ranking.Rank(query, records) // score > 0, stable sort, top 10
//
// Each result carries a preview excerpt centered on the first query token.
// Highlighting is a separate render-time pass over the whole query string:
//
//	ranking.Highlight("Setup Guide", "setup") // "<mark>Setup</mark> Guide"
//
// Every function here is pure. The index is passed in explicitly and never
// retained, so calling Rank twice with the same inputs returns the same output.
package ranking
