package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"xbase/internal/diagfmt"
	"xbase/internal/dialect"
	"xbase/internal/driver"
)

func (app *cli) tokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file",
		Short: "Print the token stream of a script",
		Long:  `Tokenize scans a file in the chosen dialect and prints its tokens; comments never appear.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _ := cmd.Flags().GetString("dialect")
			format, _ := cmd.Flags().GetString("format")
			return app.tokenize(cmd, args[0], d, format)
		},
	}
	cmd.Flags().String("dialect", "dbase", "source dialect (dbase|pascal|lisp)")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func (app *cli) tokenize(cmd *cobra.Command, path, dialectName, format string) error {
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	d, err := dialect.Parse(dialectName)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(path, d)
	if result == nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if result.Bag.Len() > 0 {
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{Color: app.useColor, Context: 1})
	}
	// токены до ошибки всё равно выводим
	var outErr error
	switch format {
	case "json":
		outErr = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		outErr = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens)
	}
	if err != nil {
		return errReported
	}
	return outErr
}
