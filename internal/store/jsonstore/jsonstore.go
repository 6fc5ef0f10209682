package jsonstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/todocli/internal/logging"
	"github.com/idilsaglam/todocli/internal/model"
	"github.com/idilsaglam/todocli/internal/store"
)

// JSON-backed storage. Single file, compact JSON.
// No locking; concurrent runs against one file race and the last writer wins.

// DefaultFileName is the storage location, relative to the working directory.
const DefaultFileName = ".todocli"

// Store persists state to a single file.
type Store struct {
	path string
}

var _ store.Store = (*Store)(nil)

// New returns a store for path. Relative paths resolve against the
// working directory at call time.
func New(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

func (s *Store) dataPath() (string, error) {
	if filepath.IsAbs(s.path) {
		return s.path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, s.path), nil
}

// Load reads the state file. The returned state is always usable; a
// non-nil error is a *store.ReadError or *store.ParseError.
func (s *Store) Load() (*model.State, error) {
	logger := logging.GetLogger("jsonstore")

	p, err := s.dataPath()
	if err != nil {
		return model.NewState(), &store.ReadError{Path: s.path, Err: err}
	}
	b, err := os.ReadFile(p)
	if err != nil {
		logger.Debug().Err(err).Str("path", p).Msg("State file unreadable")
		return model.NewState(), &store.ReadError{Path: p, Err: err}
	}
	st, err := store.Decode(b)
	if err != nil {
		logger.Debug().Err(err).Str("path", p).Msg("State file malformed")
		return model.NewState(), &store.ParseError{Path: p, Err: err}
	}
	logger.Debug().Str("path", p).Int("entries", len(st.Entries)).Msg("State loaded")
	return st, nil
}

// Save replaces the state file. Content goes to a sibling temp file
// first and is renamed over the target.
func (s *Store) Save(st *model.State) error {
	p, err := s.dataPath()
	if err != nil {
		return &store.WriteError{Path: s.path, Err: err}
	}
	b, err := store.Encode(st)
	if err != nil {
		return &store.WriteError{Path: p, Err: err}
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &store.WriteError{Path: p, Err: fmt.Errorf("write file: %w", err)}
	}
	if err := os.Rename(tmp, p); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			err = errors.Join(err, rmErr)
		}
		return &store.WriteError{Path: p, Err: fmt.Errorf("replace file: %w", err)}
	}
	logging.GetLogger("jsonstore").Debug().Str("path", p).Int("entries", len(st.Entries)).Msg("State saved")
	return nil
}
