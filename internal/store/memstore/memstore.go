// Package memstore is an in-memory store.Store. It keeps the encoded
// bytes rather than the live state so callers never share maps with it.
package memstore

import (
	"errors"

	"github.com/idilsaglam/todocli/internal/model"
	"github.com/idilsaglam/todocli/internal/store"
)

const memPath = "memory"

var errMissing = errors.New("no data")

// Store holds serialized state in memory.
type Store struct {
	data    []byte
	present bool

	// SaveErr, when set, makes Save fail with a *store.WriteError.
	SaveErr error
	// Saves counts successful and failed Save calls.
	Saves int
}

var _ store.Store = (*Store)(nil)

// New returns an empty store; Load reports a ReadError until Save or Set.
func New() *Store { return &Store{} }

// Set replaces the raw content, as if a file had been written by hand.
func (m *Store) Set(b []byte) {
	m.data = append([]byte(nil), b...)
	m.present = true
}

// Bytes returns the last content written.
func (m *Store) Bytes() []byte { return append([]byte(nil), m.data...) }

func (m *Store) Load() (*model.State, error) {
	if !m.present {
		return model.NewState(), &store.ReadError{Path: memPath, Err: errMissing}
	}
	st, err := store.Decode(m.data)
	if err != nil {
		return model.NewState(), &store.ParseError{Path: memPath, Err: err}
	}
	return st, nil
}

func (m *Store) Save(st *model.State) error {
	m.Saves++
	if m.SaveErr != nil {
		return &store.WriteError{Path: memPath, Err: m.SaveErr}
	}
	b, err := store.Encode(st)
	if err != nil {
		return &store.WriteError{Path: memPath, Err: err}
	}
	m.Set(b)
	return nil
}
