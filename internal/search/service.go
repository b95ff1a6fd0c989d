// Package search evaluates files of conjunctive word queries against a
// loaded inverted index.
package search

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"articleindex/index"
)

// maxLineBytes bounds a single query line, matching the corpus loader's
// allowance.
const maxLineBytes = 16 << 20

// Service answers conjunctive word queries against a single loaded index.
// The index is read-only here, so queries from different goroutines need no
// locking.
type Service struct {
	invertedIndex *index.InvertedIndex
	workers       int
}

// NewService creates a new search Service over idx.
func NewService(idx *index.InvertedIndex) (*Service, error) {
	if idx == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	return &Service{
		invertedIndex: idx,
		workers:       runtime.GOMAXPROCS(0),
	}, nil
}

// Run reads one query per line from r and writes one result line per query
// to w: the ascending comma-separated IDs of the documents containing every
// word of the query, or an empty line when nothing matches. Queries are
// evaluated concurrently by a bounded worker pool; output lines keep the
// input order.
func (s *Service) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var queries []string
	for scanner.Scan() {
		queries = append(queries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read queries: %w", err)
	}

	results := make([]string, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, query := range queries {
		i, query := i, query
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = s.invertedIndex.Query(query).String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	writer := bufio.NewWriter(w)
	for _, line := range results {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return fmt.Errorf("failed to write query result: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush query results: %w", err)
	}
	return nil
}
