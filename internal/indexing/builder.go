// Package indexing builds an inverted index from a loaded document set.
package indexing

import (
	"articleindex/index"
	"articleindex/internal/tokenizer"
	"articleindex/model"
)

// BuildIndex builds an InvertedIndex over docs. Each document contributes
// its distinct whitespace-separated words, so a word repeated within one
// document yields a single posting. The resulting term-to-IDs mapping is
// fully determined by docs.
func BuildIndex(docs model.DocumentSet) *index.InvertedIndex {
	idx := index.New()
	for id, content := range docs {
		for _, term := range tokenizer.UniqueTerms(content) {
			idx.Add(term, id)
		}
	}
	return idx
}
