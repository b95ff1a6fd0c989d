package corpus_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articleindex/internal/corpus"
	internalErrors "articleindex/internal/errors"
	testutil "articleindex/internal/testing"
	"articleindex/model"
)

func TestLoad_ValidCorpus(t *testing.T) {
	path := testutil.WriteCorpusFile(t,
		"1\tTitle A\tthe cat sat",
		"2\tTitle B\tthe dog ran",
	)

	docs, err := corpus.Load(path)
	require.NoError(t, err)

	want := model.DocumentSet{
		1: "Title A\tthe cat sat",
		2: "Title B\tthe dog ran",
	}
	assert.Equal(t, want, docs)
}

func TestLoad_SplitsOnFirstTabOnly(t *testing.T) {
	path := testutil.WriteCorpusFile(t, "7\ta\tb\tc")

	docs, err := corpus.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "a\tb\tc", docs[7])
}

func TestLoad_TrimsContentWhitespace(t *testing.T) {
	path := testutil.WriteCorpusFile(t, "3\t  spaced out content  ")

	docs, err := corpus.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "spaced out content", docs[3])
}

func TestLoad_AllowsWhitespaceAroundID(t *testing.T) {
	path := testutil.WriteCorpusFile(t, " 12 \tsome content")

	docs, err := corpus.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "some content", docs[12])
}

func TestLoad_DuplicateIDLastOccurrenceWins(t *testing.T) {
	path := testutil.WriteCorpusFile(t,
		"1\tfirst version",
		"1\tsecond version",
	)

	docs, err := corpus.Load(path)
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "second version", docs[1])
}

func TestLoad_MalformedRecords(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"non-integer id", "notanumber\tsome text"},
		{"missing tab", "1 some text without a tab"},
		{"blank line", ""},
		{"float id", "1.5\tsome text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteCorpusFile(t, "1\tgood line", tt.line)

			_, err := corpus.Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, internalErrors.ErrMalformedRecord))
			assert.Contains(t, err.Error(), "{article_id(int) <tab> article_name <spaces> article_content}")
			assert.Contains(t, err.Error(), ":2:")
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := corpus.Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open corpus")
}

func TestLoad_EmptyFile(t *testing.T) {
	path := testutil.WriteCorpusFile(t)

	docs, err := corpus.Load(path)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
