package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"xbase/internal/buildpipeline"
	"xbase/internal/cache"
	"xbase/internal/diag"
	"xbase/internal/driver"
	"xbase/internal/ui"
	"xbase/internal/vm"
)

func (app *cli) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] file.prg [-- args...]",
		Short: "Run a script, reusing its cached translation when the source is unchanged",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gui, _ := cmd.Flags().GetBool("gui")
			return app.run(cmd, args[:1], parseArgs(args[1:]), gui)
		},
	}
	cmd.Flags().Bool("gui", false, "show a terminal progress view while running")
	return cmd
}

// parseArgs maps command-line arguments to script values: numbers stay numeric,
// .T./.F. are logical, everything else is character.
func parseArgs(args []string) []vm.Value {
	out := make([]vm.Value, len(args))
	for i, a := range args {
		switch strings.ToUpper(a) {
		case ".T.", ".Y.":
			out[i] = vm.Bool(true)
			continue
		case ".F.", ".N.":
			out[i] = vm.Bool(false)
			continue
		}
		if n, err := strconv.ParseFloat(a, 64); err == nil {
			out[i] = vm.Num(n)
			continue
		}
		out[i] = vm.Str(a)
	}
	return out
}

func (app *cli) run(cmd *cobra.Command, scripts []string, args []vm.Value, gui bool) error {
	c, err := app.openCache()
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	stdout := cmd.OutOrStdout()

	if gui {
		return app.runWithUI(cmd, c, scripts, args)
	}

	p, err := buildpipeline.New(buildpipeline.Options{
		Cache:     c,
		Console:   vm.NewTerminal(stdout, app.useColor && isTerminal(stdout)),
		Translate: app.translateOptions(),
	})
	if err != nil {
		return err
	}
	for _, script := range scripts {
		res, err := p.Run(app.context(), script, args...)
		if ferr := app.finishRun(cmd, res, err); ferr != nil {
			return ferr
		}
	}
	return nil
}

func (app *cli) translateOptions() driver.TranslateOptions {
	return driver.TranslateOptions{MaxDiagnostics: app.cfg.Run.MaxDiagnostics, EnableTimings: app.timings}
}

// finishRun prints what the user needs to see about one run.
func (app *cli) finishRun(cmd *cobra.Command, res buildpipeline.RunResult, err error) error {
	if res.Translate != nil {
		app.report(cmd, res.Translate)
	}
	if app.timings {
		printStageTimings(cmd.ErrOrStderr(), res)
	}
	switch {
	case err == nil:
		return nil
	case errors.Is(err, diag.ErrExecution):
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Path, err)
		return errReported
	case res.Translate != nil:
		// диагностики уже напечатаны
		return errReported
	default:
		return err
	}
}

func printStageTimings(w io.Writer, res buildpipeline.RunResult) {
	source := "translated"
	if res.CacheHit {
		source = "cached"
	}
	fmt.Fprintf(w, "%s (%s):", res.Path, source)
	for _, st := range []buildpipeline.Stage{buildpipeline.StageTranslate, buildpipeline.StageCache, buildpipeline.StageExecute} {
		if res.Timings.Has(st) {
			fmt.Fprintf(w, " %s=%.2fms", st, float64(res.Timings.Duration(st).Microseconds())/1000)
		}
	}
	fmt.Fprintln(w)
}

type runOutcome struct {
	results []buildpipeline.RunResult
	err     error
}

// runWithUI runs the scripts behind the progress view; script output is
// recorded and printed after the view closes.
func (app *cli) runWithUI(cmd *cobra.Command, c *cache.Cache, scripts []string, args []vm.Value) error {
	rec := vm.NewRecorder()
	events := make(chan buildpipeline.Event, 256)
	p, err := buildpipeline.New(buildpipeline.Options{
		Cache:     c,
		Console:   rec,
		Sink:      buildpipeline.ChannelSink{Ch: events},
		Translate: app.translateOptions(),
	})
	if err != nil {
		return err
	}

	outcomeCh := make(chan runOutcome, 1)
	go func() {
		var out runOutcome
		for _, script := range scripts {
			res, err := p.Run(app.context(), script, args...)
			out.results = append(out.results, res)
			if err != nil {
				out.err = err
				break
			}
		}
		outcomeCh <- out
		close(events)
	}()

	uiErr := ui.Run("xbase run", scripts, events, cmd.ErrOrStderr())
	outcome := <-outcomeCh

	if screen := strings.TrimRight(strings.Join(rec.Screen(), "\n"), "\n"); screen != "" {
		fmt.Fprintln(cmd.OutOrStdout(), screen)
	}
	for i, res := range outcome.results {
		var err error
		if i == len(outcome.results)-1 {
			err = outcome.err
		}
		if ferr := app.finishRun(cmd, res, err); ferr != nil {
			return ferr
		}
	}
	return uiErr
}
