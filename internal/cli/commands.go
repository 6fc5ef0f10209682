package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todocli/internal/logging"
	"github.com/idilsaglam/todocli/internal/todo"
	"github.com/idilsaglam/todocli/internal/tui"
)

func (a *app) listCmd() *cobra.Command {
	var c todo.Command
	c.Kind = todo.KindList
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List entries",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.execute(c)
		},
	}
	cmd.Flags().BoolVarP(&c.HideChecked, "hide-checked", "c", false, "hide checked entries")
	cmd.Flags().BoolVarP(&c.HideUnchecked, "hide-unchecked", "u", false, "hide unchecked entries")
	return cmd
}

func (a *app) addCmd() *cobra.Command {
	return a.namedCmd(todo.KindAdd, "Add an entry, or reset an existing one to unchecked")
}

func (a *app) toggleCmd() *cobra.Command {
	return a.namedCmd(todo.KindToggle, "Flip the checked state of an entry")
}

func (a *app) removeCmd() *cobra.Command {
	cmd := a.namedCmd(todo.KindRemove, "Delete an entry")
	cmd.Aliases = []string{"rm"}
	return cmd
}

// namedCmd builds a subcommand that takes a single --name.
func (a *app) namedCmd(kind todo.Kind, short string) *cobra.Command {
	c := todo.Command{Kind: kind}
	cmd := &cobra.Command{
		Use:   kind.String() + " --name <name>",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.execute(c)
		},
	}
	cmd.Flags().StringVarP(&c.Name, "name", "n", "", "entry name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (a *app) browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Edit entries interactively",
		Long: `Open an interactive list. space toggles, d removes, a adds, / filters,
q quits. Changes are saved once on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(a.store, a.printer, a.opts.NoColor)
		},
	}
}

// execute runs one load/apply/save cycle and prints its outcome.
func (a *app) execute(c todo.Command) error {
	res, err := todo.Execute(a.store, c)
	for _, w := range res.Warnings {
		if errors.Is(w, todo.ErrNotFound) {
			// the diagnostic is a fixed line; the name only goes to the log
			logging.GetLogger("cli").Debug().Str("name", c.Name).Msg("Entry not found")
			a.printer.Fail(todo.ErrNotFound.Error())
			continue
		}
		a.printer.Warn(w.Error())
	}
	for _, l := range res.Lines {
		a.printer.Line(l.Name, l.Checked)
	}
	return err
}
