package todo

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/todocli/internal/logging"
	"github.com/idilsaglam/todocli/internal/model"
	"github.com/idilsaglam/todocli/internal/store"
)

// Kind selects the operation a Command performs.
type Kind int

const (
	KindList Kind = iota
	KindAdd
	KindToggle
	KindRemove
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindAdd:
		return "add"
	case KindToggle:
		return "toggle"
	case KindRemove:
		return "remove"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is one parsed invocation.
type Command struct {
	Kind Kind
	Name string

	// list only
	HideChecked   bool
	HideUnchecked bool
}

// Result is what a run produced for display.
type Result struct {
	// Lines is set for list commands.
	Lines []Line
	// Warnings are non-fatal: *store.ReadError, *store.ParseError or
	// *NotFoundError, in the order they happened.
	Warnings []error
}

// Apply runs cmd against s. A *NotFoundError is a warning; s is untouched.
func Apply(s *model.State, cmd Command) ([]Line, error) {
	switch cmd.Kind {
	case KindList:
		return List(s, cmd.HideChecked, cmd.HideUnchecked), nil
	case KindAdd:
		Add(s, cmd.Name)
		return nil, nil
	case KindToggle:
		return nil, Toggle(s, cmd.Name)
	case KindRemove:
		return nil, Remove(s, cmd.Name)
	}
	return nil, fmt.Errorf("unknown command %s", cmd.Kind)
}

// Execute performs one full cycle: load, apply cmd, save. The state is
// saved for every valid command, list included. The returned error is
// either a *store.WriteError or an unknown command kind; everything else is
// reported through Result.Warnings.
func Execute(st store.Store, cmd Command) (Result, error) {
	logger := logging.GetLogger("todo")
	var res Result

	s, err := st.Load()
	if err != nil {
		logger.Debug().Err(err).Msg("Starting from an empty state")
		res.Warnings = append(res.Warnings, err)
	}

	lines, err := Apply(s, cmd)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return res, err
		}
		res.Warnings = append(res.Warnings, err)
	}
	res.Lines = lines
	logger.Debug().Stringer("command", cmd.Kind).Str("name", cmd.Name).Int("entries", len(s.Entries)).Msg("Command applied")

	if err := st.Save(s); err != nil {
		return res, err
	}
	return res, nil
}
