// Package store defines how todo state is loaded and persisted.
//
// Load never fails hard: a missing, unreadable or malformed storage
// location yields an empty state together with a *ReadError or
// *ParseError the caller reports and then ignores. Save failures are
// reported as *WriteError and end the run.
package store

import (
	"fmt"

	"github.com/idilsaglam/todocli/internal/model"
)

// Store loads and saves the whole state at once.
type Store interface {
	Load() (*model.State, error)
	Save(*model.State) error
}

// ReadError means the storage location could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError means the stored content is not a valid state.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError means the state could not be serialized or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
