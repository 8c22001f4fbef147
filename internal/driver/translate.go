package driver

import (
	"context"
	"fmt"

	"xbase/internal/codegen"
	"xbase/internal/diag"
	"xbase/internal/dialect"
	"xbase/internal/lexer"
	"xbase/internal/observ"
	"xbase/internal/parser"
	"xbase/internal/source"
	"xbase/internal/trace"
)

// TranslateOptions tunes one translation.
type TranslateOptions struct {
	MaxDiagnostics int
	EnableTimings  bool
	// Name overrides the unit name, which defaults to the file's base name.
	Name string
}

type TranslateResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *codegen.Program
	Context *parser.Context
	Bag     *diag.Bag
	Timing  observ.Report
}

// Translate loads path and translates it with a fresh parser context.
// A load failure is returned alone; a translation failure is returned together
// with the result, whose Bag holds the error and all warnings seen before it.
func Translate(ctx context.Context, path string, d dialect.Kind, opts TranslateOptions) (*TranslateResult, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "translate", trace.CurrentSpan(ctx))
	defer span.End("")

	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}

	loadIdx := timer.Begin("load_file")
	loadSpan := trace.Begin(tracer, trace.ScopePass, "load", span.ID())
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	loadSpan.End(path)
	timer.End(loadIdx, "")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	res, err := translateFile(ctx, fs, fs.Get(fileID), d, opts, timer, span.ID())
	res.Timing = timer.Report()
	return res, err
}

// TranslateSource translates in-memory content under a virtual name.
func TranslateSource(ctx context.Context, name string, content []byte, d dialect.Kind, opts TranslateOptions) (*TranslateResult, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, content))
	return translateFile(ctx, fs, file, d, opts, nil, trace.CurrentSpan(ctx))
}

// TranslateFile translates a file the caller already loaded, e.g. to hash it first.
func TranslateFile(ctx context.Context, fs *source.FileSet, file *source.File, d dialect.Kind, opts TranslateOptions) (*TranslateResult, error) {
	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}
	res, err := translateFile(ctx, fs, file, d, opts, timer, trace.CurrentSpan(ctx))
	res.Timing = timer.Report()
	return res, err
}

func translateFile(ctx context.Context, fs *source.FileSet, file *source.File, d dialect.Kind, opts TranslateOptions, timer *observ.Timer, parent uint64) (*TranslateResult, error) {
	tracer := trace.FromContext(ctx)
	bag := diag.NewBag(opts.MaxDiagnostics)
	res := &TranslateResult{FileSet: fs, File: file, Bag: bag}

	lx, err := lexer.New(file, d)
	if err != nil {
		return res, err
	}

	parseIdx := timer.Begin("scan+parse")
	parseSpan := trace.Begin(tracer, trace.ScopePass, "scan+parse", parent)
	out, err := parser.Parse(lx, parser.Options{
		Name:     opts.Name,
		Reporter: diag.BagReporter{Bag: bag},
	})
	res.Context = out.Context
	if err != nil {
		addError(bag, err)
		parseSpan.End("failed")
		timer.End(parseIdx, "failed")
		trace.Point(tracer, trace.ScopeError, "translate-failed", err.Error())
		return res, err
	}
	res.Program = out.Program
	note := fmt.Sprintf("lines=%d", len(out.Program.Lines()))
	parseSpan.WithExtra("warnings", fmt.Sprint(bag.Len())).End(note)
	timer.End(parseIdx, note)
	bag.Sort()
	return res, nil
}
