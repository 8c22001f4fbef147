package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xbase/internal/diagfmt"
	"xbase/internal/dialect"
	"xbase/internal/driver"
)

func (app *cli) translateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [flags] file.prg",
		Short: "Translate a dBase script and print the generated listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("output")
			return app.translate(cmd, args[0], out)
		},
	}
	cmd.Flags().StringP("output", "o", "", "write the listing to a file instead of stdout")
	return cmd
}

func (app *cli) translate(cmd *cobra.Command, path, output string) error {
	res, err := driver.Translate(app.context(), path, dialect.Primary, driver.TranslateOptions{
		MaxDiagnostics: app.cfg.Run.MaxDiagnostics,
		EnableTimings:  app.timings,
	})
	if res == nil {
		return err
	}
	app.report(cmd, res)
	if err != nil {
		return errReported
	}

	listing := res.Program.Listing()
	if output != "" {
		if err := os.WriteFile(output, []byte(listing), 0o600); err != nil {
			return fmt.Errorf("failed to write listing: %w", err)
		}
		app.warnf(cmd, "wrote %s\n", output)
		return nil
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), listing)
	return err
}

// report prints diagnostics and, with --timings, the phase table.
func (app *cli) report(cmd *cobra.Command, res *driver.TranslateResult) {
	if res.Bag.Len() > 0 && (!app.quiet || res.Bag.HasErrors()) {
		diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:    app.useColor,
			PathMode: diagfmt.PathModeRelative,
			Context:  1,
		})
	}
	if app.timings && len(res.Timing.Phases) > 0 {
		fmt.Fprint(cmd.ErrOrStderr(), res.Timing.String())
	}
}
