package indexing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIndexLoad is returned when the index cannot be fetched, read or parsed
	ErrIndexLoad = errors.New("index load failed")

	// ErrMalformedIndex is returned when index records violate the index contract
	ErrMalformedIndex = errors.New("malformed search index")
)

// Violation describes a single record that breaks the index contract
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// MalformedIndexError lists every violation found while ingesting an index
type MalformedIndexError struct {
	Violations []Violation
}

func (e *MalformedIndexError) Error() string {
	if len(e.Violations) == 0 {
		return ErrMalformedIndex.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Path, v.Message))
	}
	return fmt.Sprintf("%s: %s", ErrMalformedIndex, strings.Join(parts, "; "))
}

func (e *MalformedIndexError) Unwrap() error {
	return ErrMalformedIndex
}
