// Package corpus loads tab-separated article records from disk.
//
// Each line of a corpus file is one document: an integer article ID, a tab,
// and the article name followed by its content. Everything after the first
// tab is treated as one content string.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	internalErrors "articleindex/internal/errors"
	"articleindex/model"
)

// maxLineBytes bounds a single corpus line. Wikipedia-sized articles fit
// comfortably; the bufio default of 64K does not.
const maxLineBytes = 16 << 20

// Load reads one document per line from path. Any line that does not match
// the expected record shape (missing tab, non-integer ID) aborts the whole
// load. A duplicate ID overwrites the earlier document; last occurrence
// wins (see DESIGN.md, this mirrors the historical behavior and may not be
// intentional).
func Load(path string) (model.DocumentSet, error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from the command line by design
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", path, closeErr)
		}
	}()

	docs := make(model.DocumentSet)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		doc, err := parseRecord(scanner.Text())
		if err != nil {
			return nil, internalErrors.NewMalformedRecordError(path, lineNumber, err)
		}
		docs.Add(doc.ID, doc.Content)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus %s: %w", path, err)
	}
	return docs, nil
}

// parseRecord splits a corpus line on the first tab, parses the ID, and
// trims surrounding whitespace from the content.
func parseRecord(line string) (model.Document, error) {
	idPart, content, found := strings.Cut(line, "\t")
	if !found {
		return model.Document{}, fmt.Errorf("missing tab separator")
	}

	id, err := strconv.Atoi(strings.TrimSpace(idPart))
	if err != nil {
		return model.Document{}, fmt.Errorf("non-integer article id %q", idPart)
	}

	return model.Document{ID: id, Content: strings.TrimSpace(content)}, nil
}
