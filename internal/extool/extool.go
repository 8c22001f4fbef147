// Package extool runs external helper programs such as the help-file compiler.
package extool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// DefaultHelpCompiler is looked up on PATH when Runner.Path is empty.
const DefaultHelpCompiler = "doxygen"

// ErrToolMissing is wrapped when the executable cannot be found.
var ErrToolMissing = errors.New("external tool not found")

// Result is what the worker reports back.
type Result struct {
	Tool    string
	Args    []string
	Output  []byte // stdout and stderr, interleaved
	Elapsed time.Duration
	Err     error
}

// Runner starts one external program per job.
type Runner struct {
	// Path of the executable; DefaultHelpCompiler when empty.
	Path string
	// Dir is the working directory of the child.
	Dir string
}

func (r Runner) tool() string {
	if r.Path == "" {
		return DefaultHelpCompiler
	}
	return r.Path
}

// Start runs the tool on file in a worker goroutine. The channel receives
// exactly one Result and is then closed.
func (r Runner) Start(ctx context.Context, file string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		out <- r.run(ctx, file)
	}()
	return out
}

// Run is Start followed by a receive.
func (r Runner) Run(ctx context.Context, file string) Result {
	return <-r.Start(ctx, file)
}

func (r Runner) run(ctx context.Context, file string) Result {
	res := Result{Tool: r.tool(), Args: []string{file}}
	if _, err := os.Stat(file); err != nil {
		res.Err = fmt.Errorf("input %s: %w", file, err)
		return res
	}
	bin, err := exec.LookPath(res.Tool)
	if err != nil {
		res.Err = fmt.Errorf("%w: %s: %w", ErrToolMissing, res.Tool, err)
		return res
	}

	var buf bytes.Buffer
	// #nosec G204 -- the tool and its single argument come from the command line
	cmd := exec.CommandContext(ctx, bin, res.Args...)
	cmd.Dir = r.Dir
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	start := time.Now()
	err = cmd.Run()
	res.Elapsed = time.Since(start)
	res.Output = buf.Bytes()
	if err != nil {
		res.Err = fmt.Errorf("%s %s: %w", res.Tool, file, err)
	}
	return res
}
