package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// main runs the root command; any returned error exits with status 1.
func main() {
	app := &cli{}
	err := newRootCmd(app).Execute()
	app.close()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли вывод терминалом
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
