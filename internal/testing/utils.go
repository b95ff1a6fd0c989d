// Package testing provides utilities and helpers for testing the index.
package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"articleindex/index"
	"articleindex/internal/corpus"
	"articleindex/internal/indexing"
	"articleindex/model"
)

// WriteCorpusFile writes the given records, one per line, to a corpus file
// in a fresh temp directory and returns its path.
func WriteCorpusFile(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "corpus.txt")
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "Failed to write corpus file")
	return path
}

// BuildIndexFromCorpus loads the corpus at path and builds an index over it,
// failing the test on any load error.
func BuildIndexFromCorpus(t *testing.T, path string) *index.InvertedIndex {
	t.Helper()

	docs, err := corpus.Load(path)
	require.NoError(t, err, "Failed to load corpus")
	return indexing.BuildIndex(docs)
}

// SampleDocuments returns the small document set used across tests: two
// animal articles sharing the word "the".
func SampleDocuments() model.DocumentSet {
	return model.DocumentSet{
		1: "Title A\tthe cat sat",
		2: "Title B\tthe dog ran",
	}
}
