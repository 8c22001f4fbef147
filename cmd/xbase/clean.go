package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (app *cli) cleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the artifact cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app.openCache()
			if err != nil {
				return err
			}
			if err := c.Clean(); err != nil {
				return fmt.Errorf("failed to remove %q: %w", c.Dir(), err)
			}
			if !app.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", c.Dir())
			}
			return nil
		},
	}
}
