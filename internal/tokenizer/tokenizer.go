// Package tokenizer splits text into terms. Splitting is naive whitespace
// splitting: no lowercasing, no punctuation stripping, no stemming. Two
// tokens are the same term only if they are byte-identical.
package tokenizer

import "strings"

// Tokenize splits text on runs of whitespace into tokens.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// UniqueTerms splits text on whitespace and deduplicates the tokens, so a
// word repeated in the text contributes a single term. Order of first
// occurrence is preserved.
func UniqueTerms(text string) []string {
	fields := strings.Fields(text)
	terms := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		terms = append(terms, field)
	}
	return terms
}
