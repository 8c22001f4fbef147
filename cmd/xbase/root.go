package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"xbase/internal/version"
)

// errReported means diagnostics were already printed; cobra should only set the exit code.
var errReported = errors.New("failed")

// newRootCmd builds the command tree around app. The caller closes app after
// Execute so profiles and traces are flushed on failures too.
func newRootCmd(app *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "xbase [flags] [script.prg ...]",
		Short: "xBase script translator and runner",
		Long: `xbase translates dBase-style scripts into an executable program, caches the
result and runs it. Positional scripts are run like --exec.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		// позиционные аргументы: скрипты, а не имена подкоманд
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
		RunE: app.runRoot,
	}

	f := root.Flags()
	f.String("dbase", "", "translate a dBase script and print the listing")
	f.String("pascal", "", "tokenize a Pascal-style file")
	f.String("doxygen", "", "run the external help compiler on a file")
	f.String("exec", "", "translate (or reuse the cached artifact) and run a script")
	f.Bool("gui", false, "show a terminal progress view while running")
	root.MarkFlagsMutuallyExclusive("dbase", "pascal", "doxygen", "exec")

	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "text", "trace format (text|ndjson)")
	pf.String("trace", "", "trace output file (default stderr)")
	pf.String("cache-dir", "", "artifact cache directory")
	pf.String("config", "", "path to xbase.toml (default: search upwards)")
	pf.String("cpuprofile", "", "write CPU profile to file")
	pf.String("memprofile", "", "write heap profile to file on exit")
	pf.String("runtime-trace", "", "write Go runtime trace to file")

	root.AddCommand(
		app.tokenizeCmd(),
		app.translateCmd(),
		app.runCmd(),
		app.checkCmd(),
		app.cleanCmd(),
		app.versionCmd(),
	)
	return root
}

func (app *cli) runRoot(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	gui, _ := f.GetBool("gui")
	dbase, _ := f.GetString("dbase")
	pascal, _ := f.GetString("pascal")
	doxygen, _ := f.GetString("doxygen")
	execFile, _ := f.GetString("exec")
	for _, name := range []string{"dbase", "pascal", "doxygen", "exec"} {
		if v, _ := f.GetString(name); f.Changed(name) && v == "" {
			return fmt.Errorf("--%s needs a file", name)
		}
	}

	switch {
	case dbase != "":
		return app.translate(cmd, dbase, "")
	case pascal != "":
		return app.tokenize(cmd, pascal, "pascal", "pretty")
	case doxygen != "":
		return app.doxygen(cmd, doxygen)
	case execFile != "":
		return app.run(cmd, []string{execFile}, nil, gui)
	case len(args) > 0:
		return app.run(cmd, args, nil, gui)
	}
	if gui {
		return fmt.Errorf("--gui needs a script (--exec file or positional arguments)")
	}
	return cmd.Help()
}

func (app *cli) warnf(cmd *cobra.Command, format string, args ...any) {
	if app.quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}
