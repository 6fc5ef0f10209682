// Package todo applies one command to a loaded state.
package todo

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/todocli/internal/model"
)

// ErrNotFound marks a toggle or remove of a name that is not present.
var ErrNotFound = errors.New("no such entry")

// NotFoundError is a warning: the state is left unchanged.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s: %s", ErrNotFound, e.Name) }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Line is one entry as shown by List.
type Line struct {
	Name    string
	Checked bool
}

// List returns the visible entries sorted by name. An entry is shown
// unless its own state is hidden; with both flags set nothing is shown.
func List(s *model.State, hideChecked, hideUnchecked bool) []Line {
	var out []Line
	for _, name := range s.Names() {
		e := s.Entries[name]
		if (e.Checked && hideChecked) || (!e.Checked && hideUnchecked) {
			continue
		}
		out = append(out, Line{Name: name, Checked: e.Checked})
	}
	return out
}

// Add inserts name unchecked. An existing entry is reset to unchecked.
// Any name is accepted, the empty string included.
func Add(s *model.State, name string) {
	s.Normalize()
	s.Entries[name] = model.Entry{Checked: false}
}

// Toggle flips the checked flag of name.
func Toggle(s *model.State, name string) error {
	e, ok := s.Entries[name]
	if !ok {
		return &NotFoundError{Name: name}
	}
	e.Checked = !e.Checked
	s.Entries[name] = e
	return nil
}

// Remove deletes name.
func Remove(s *model.State, name string) error {
	if _, ok := s.Entries[name]; !ok {
		return &NotFoundError{Name: name}
	}
	delete(s.Entries, name)
	return nil
}
