package main

import (
	"time"

	"github.com/spf13/cobra"

	"xbase/internal/extool"
)

// doxygen runs the help compiler in a worker and waits for its report.
func (app *cli) doxygen(cmd *cobra.Command, file string) error {
	done := extool.Runner{}.Start(app.context(), file)
	res := <-done
	if !app.quiet && len(res.Output) > 0 {
		_, _ = cmd.ErrOrStderr().Write(res.Output)
	}
	if res.Err != nil {
		return res.Err
	}
	app.warnf(cmd, "%s finished in %s\n", res.Tool, res.Elapsed.Round(time.Millisecond))
	return nil
}
