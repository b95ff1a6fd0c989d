package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	internalErrors "articleindex/internal/errors"
	"articleindex/internal/persistence"
	"articleindex/internal/tokenizer"
)

// InvertedIndex maps each term to the set of documents containing that term
// at least once. It is write-once: built from a corpus or loaded from disk,
// then only queried.
type InvertedIndex struct {
	terms map[string]PostingSet
}

// New returns an empty InvertedIndex.
func New() *InvertedIndex {
	return &InvertedIndex{terms: make(map[string]PostingSet)}
}

// Add records that the document with the given ID contains term. The
// posting set is created lazily on the term's first sight.
func (ii *InvertedIndex) Add(term string, docID int) {
	ps, ok := ii.terms[term]
	if !ok {
		ps = make(PostingSet)
		ii.terms[term] = ps
	}
	ps.Add(docID)
}

// Postings returns the posting set for term, or nil when the term is absent
// from the index. A nil PostingSet behaves as an empty set.
func (ii *InvertedIndex) Postings(term string) PostingSet {
	return ii.terms[term]
}

// Terms returns the number of distinct terms in the index.
func (ii *InvertedIndex) Terms() int {
	return len(ii.terms)
}

// Query returns the set of document IDs containing every distinct term of
// the whitespace-separated query line. An empty or whitespace-only line
// matches nothing, and a single term absent from the index empties the
// whole result: the intersection is strict, with no partial-match fallback.
func (ii *InvertedIndex) Query(line string) PostingSet {
	terms := tokenizer.UniqueTerms(line)
	if len(terms) == 0 {
		return make(PostingSet)
	}

	var result PostingSet
	for _, term := range terms {
		ps, ok := ii.terms[term]
		if !ok {
			return make(PostingSet)
		}
		if result == nil {
			result = ps.Clone()
			continue
		}
		result = result.Intersect(ps)
		if len(result) == 0 {
			return result
		}
	}
	return result
}

// jsonIndexData is the artifact shape: a single JSON object mapping each
// term to an array of document IDs.
type jsonIndexData map[string][]int

// MarshalJSON implements json.Marshaler. Posting arrays are written in
// ascending ID order, which together with encoding/json's sorted object
// keys makes the artifact deterministic and diff-friendly.
func (ii *InvertedIndex) MarshalJSON() ([]byte, error) {
	data := make(jsonIndexData, len(ii.terms))
	for term, ps := range ii.terms {
		data[term] = ps.SortedIDs()
	}
	return json.Marshal(data)
}

// UnmarshalJSON implements json.Unmarshaler, rebuilding posting sets from
// the on-disk arrays. Duplicate IDs within an array collapse to one
// membership; well-formed artifacts never contain them.
func (ii *InvertedIndex) UnmarshalJSON(data []byte) error {
	var decoded jsonIndexData
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	ii.terms = make(map[string]PostingSet, len(decoded))
	for term, ids := range decoded {
		ii.terms[term] = NewPostingSet(ids...)
	}
	return nil
}

// Dump serializes the index to path as a single JSON object mapping each
// term to its ascending array of document IDs.
func (ii *InvertedIndex) Dump(path string) error {
	if err := persistence.SaveJSON(path, ii); err != nil {
		return fmt.Errorf("failed to dump index to %s: %w", path, err)
	}
	return nil
}

// Load reads an index previously written by Dump. A missing file and a file
// that does not decode into a term-to-IDs object are distinct fatal errors.
func Load(path string) (*InvertedIndex, error) {
	idx := New()
	err := persistence.LoadJSON(path, idx)
	if err == nil {
		return idx, nil
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) {
		return nil, internalErrors.NewMalformedIndexError(path, err)
	}
	return nil, fmt.Errorf("failed to load index from %s: %w", path, err)
}
