package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"xbase/internal/diagfmt"
	"xbase/internal/driver"
	"xbase/internal/observ"
)

func (app *cli) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] file.prg...",
		Short: "Translate several scripts in parallel and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")
			format, _ := cmd.Flags().GetString("format")
			return app.check(cmd, args, jobs, format)
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "parallel translations (0 = GOMAXPROCS)")
	cmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
	return cmd
}

func (app *cli) check(cmd *cobra.Command, paths []string, jobs int, format string) error {
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	results, err := driver.CheckFiles(app.context(), paths, jobs, app.translateOptions())
	if err != nil {
		return err
	}

	failed := 0
	var total observ.Report
	for _, r := range results {
		total.Merge(r.Path, r.Timing)
		if !r.OK() {
			failed++
		}
		if r.Result == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
			continue
		}
		if format == "json" {
			if err := diagfmt.JSON(cmd.OutOrStdout(), r.Result.Bag, r.Result.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				PathMode:         diagfmt.PathModeRelative,
			}); err != nil {
				return err
			}
			continue
		}
		app.report(cmd, r.Result)
	}
	if app.timings && len(total.Phases) > 0 {
		fmt.Fprint(cmd.ErrOrStderr(), total.String())
	}
	if format == "pretty" {
		app.warnf(cmd, "checked %d script(s), %d failed\n", len(results), failed)
	}
	if failed > 0 {
		return errReported
	}
	return nil
}
