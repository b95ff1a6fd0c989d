package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrMalformedRecord is returned when a corpus line does not match the
	// expected record shape
	ErrMalformedRecord = errors.New("malformed corpus record")

	// ErrMalformedIndex is returned when a persisted index file cannot be
	// decoded
	ErrMalformedIndex = errors.New("malformed index file")
)

// recordFormat is the record shape named in corpus format errors.
const recordFormat = "{article_id(int) <tab> article_name <spaces> article_content}"

// MalformedRecordError represents a corpus line that failed to parse, with
// the file and line number it came from
type MalformedRecordError struct {
	Path       string
	LineNumber int
	Reason     error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s:%d: %v; check your input, the format of the record is as follows: %s",
		e.Path, e.LineNumber, e.Reason, recordFormat)
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Reason
}

// NewMalformedRecordError creates a new MalformedRecordError
func NewMalformedRecordError(path string, lineNumber int, reason error) *MalformedRecordError {
	return &MalformedRecordError{Path: path, LineNumber: lineNumber, Reason: reason}
}

// MalformedIndexError represents a persisted index file that could not be
// decoded back into an inverted index
type MalformedIndexError struct {
	Path   string
	Reason error
}

func (e *MalformedIndexError) Error() string {
	return fmt.Sprintf("index file '%s' is malformed: %v", e.Path, e.Reason)
}

func (e *MalformedIndexError) Is(target error) bool {
	return target == ErrMalformedIndex
}

func (e *MalformedIndexError) Unwrap() error {
	return e.Reason
}

// NewMalformedIndexError creates a new MalformedIndexError
func NewMalformedIndexError(path string, reason error) *MalformedIndexError {
	return &MalformedIndexError{Path: path, Reason: reason}
}
