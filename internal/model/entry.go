package model

import (
	"maps"
	"slices"
)

// Entry is one todo item. Its name is the key it is stored under.
type Entry struct {
	Checked bool `json:"checked"`
}

// State is the persisted root: every entry keyed by name.
type State struct {
	Entries map[string]Entry `json:"entries"`
}

// NewState returns an empty state ready for mutation.
func NewState() *State {
	return &State{Entries: map[string]Entry{}}
}

// Normalize replaces a nil entry map so the state is safe to mutate
// and serializes as {"entries":{}}.
func (s *State) Normalize() {
	if s.Entries == nil {
		s.Entries = map[string]Entry{}
	}
}

// Names returns entry names in lexical order.
func (s *State) Names() []string {
	return slices.Sorted(maps.Keys(s.Entries))
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := &State{Entries: make(map[string]Entry, len(s.Entries))}
	maps.Copy(c.Entries, s.Entries)
	return c
}

// Counts reports how many entries are checked and unchecked.
func (s *State) Counts() (checked, unchecked int) {
	for _, e := range s.Entries {
		if e.Checked {
			checked++
		} else {
			unchecked++
		}
	}
	return
}
