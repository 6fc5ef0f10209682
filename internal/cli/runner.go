// Package cli maps command-line arguments onto todo commands.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todocli/internal/logging"
	"github.com/idilsaglam/todocli/internal/store"
	"github.com/idilsaglam/todocli/internal/store/jsonstore"
	"github.com/idilsaglam/todocli/internal/ui"
)

// Options are the root flags shared by every subcommand.
type Options struct {
	File    string
	Verbose int
	NoColor bool
}

type app struct {
	opts    Options
	stdout  io.Writer
	stderr  io.Writer
	printer *ui.Printer
	store   store.Store
}

// Run executes one invocation and returns the process exit code:
// 0 on success, 1 when the command failed or the state could not be saved.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		p := a.printer
		if p == nil {
			p = ui.NewPrinter(stdout, stderr, a.opts.NoColor)
		}
		p.Fail(err.Error())
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "todocli",
		Short: "A tiny todo list kept in a local file",
		Long: `todocli keeps a list of named entries, each checked or unchecked,
in a JSON file in the current directory (.todocli by default).`,
		Example: `  todocli add --name "buy milk"
  todocli list
  todocli toggle --name "buy milk"
  todocli list --hide-checked
  todocli remove --name "buy milk"`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(a.stderr, a.opts.Verbose, !ui.ColorEnabled(a.stderr, a.opts.NoColor))
			a.printer = ui.NewPrinter(a.stdout, a.stderr, a.opts.NoColor)
			a.store = jsonstore.New(a.opts.File)
			logging.GetLogger("cli").Debug().Str("command", cmd.Name()).Str("file", a.opts.File).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.opts.File, "file", jsonstore.DefaultFileName, "state file, relative to the working directory")
	pf.CountVarP(&a.opts.Verbose, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.BoolVar(&a.opts.NoColor, "no-color", false, "disable colored output")

	root.AddCommand(
		a.listCmd(),
		a.addCmd(),
		a.toggleCmd(),
		a.removeCmd(),
		a.browseCmd(),
	)
	return root
}
