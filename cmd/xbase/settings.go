package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"xbase/internal/cache"
	"xbase/internal/config"
	"xbase/internal/prof"
	"xbase/internal/trace"
)

// cli holds what every command derives from config and flags.
type cli struct {
	cfg      config.Config
	useColor bool
	quiet    bool
	timings  bool
	ctx      context.Context
	tracer   trace.Tracer
	profile  *prof.Session
}

// setup merges xbase.toml with flags (flags win) and attaches the tracer.
func (app *cli) setup(cmd *cobra.Command) error {
	f := cmd.Flags()
	explicit, _ := f.GetString("config")
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	cfg, err := config.Discover(explicit, wd)
	if err != nil {
		return err
	}

	if f.Changed("color") {
		cfg.Run.Color, _ = f.GetString("color")
	}
	if f.Changed("max-diagnostics") {
		cfg.Run.MaxDiagnostics, _ = f.GetInt("max-diagnostics")
	}
	if f.Changed("trace-level") {
		cfg.Trace.Level, _ = f.GetString("trace-level")
	}
	if f.Changed("trace-format") {
		cfg.Trace.Format, _ = f.GetString("trace-format")
	}
	if f.Changed("cache-dir") {
		cfg.Cache.Dir, _ = f.GetString("cache-dir")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	app.cfg = cfg
	app.quiet, _ = f.GetBool("quiet")
	app.timings, _ = f.GetBool("timings")
	app.useColor = cfg.Run.Color == "on" || (cfg.Run.Color == "auto" && isTerminal(cmd.ErrOrStderr()))

	if err := app.setupProfiling(cmd); err != nil {
		return err
	}
	return app.setupTracing(cmd)
}

func (app *cli) setupProfiling(cmd *cobra.Command) error {
	f := cmd.Flags()
	var opts prof.Options
	opts.CPUPath, _ = f.GetString("cpuprofile")
	opts.MemPath, _ = f.GetString("memprofile")
	opts.TracePath, _ = f.GetString("runtime-trace")
	if !opts.Enabled() {
		return nil
	}
	s, err := prof.Start(opts)
	if err != nil {
		return err
	}
	app.profile = s
	return nil
}

// setupTracing creates the tracer from the merged settings and stores it in the command context.
func (app *cli) setupTracing(cmd *cobra.Command) error {
	level, err := trace.ParseLevel(app.cfg.Trace.Level)
	if err != nil {
		return err
	}
	format, err := trace.ParseFormat(app.cfg.Trace.Format)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("trace")

	tcfg := trace.Config{Level: level, Format: format, OutputPath: output}
	if output == "" {
		// stderr must survive tracer.Close
		tcfg.Output = writerOnly{cmd.ErrOrStderr()}
	}
	tracer, err := trace.New(tcfg)
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	app.tracer = tracer

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app.ctx = trace.WithTracer(ctx, tracer)
	return nil
}

type writerOnly struct{ io.Writer }

// close is safe to call more than once.
func (app *cli) close() {
	if app.profile != nil {
		if err := app.profile.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "profile: %v\n", err)
		}
		app.profile = nil
	}
	if app.tracer == nil {
		return
	}
	if err := app.tracer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: close error: %v\n", err)
	}
	app.tracer = nil
}

func (app *cli) context() context.Context {
	if app.ctx == nil {
		return context.Background()
	}
	return app.ctx
}

func (app *cli) openCache() (*cache.Cache, error) {
	return cache.Open(app.cfg.Cache.Dir, cache.Options{TrustName: app.cfg.Cache.TrustName})
}
