// Package buildpipeline runs scripts end to end: cache lookup, translation on
// a miss, write-back and execution.
package buildpipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"xbase/internal/cache"
	"xbase/internal/dialect"
	"xbase/internal/driver"
	"xbase/internal/source"
	"xbase/internal/trace"
	"xbase/internal/vm"
)

// Options configure a Pipeline.
type Options struct {
	Cache   *cache.Cache
	Console vm.Console
	Sink    ProgressSink
	// Translate is passed to the driver on every cache miss.
	Translate driver.TranslateOptions
}

// Pipeline runs one script at a time; a concurrent Run blocks until the previous one returns.
type Pipeline struct {
	mu   sync.Mutex
	opts Options

	translations int
	hits         int
}

// RunResult describes one Run.
type RunResult struct {
	Path     string
	CacheHit bool
	Artifact *cache.Artifact
	// Translate is nil on a cache hit.
	Translate *driver.TranslateResult
	Timings   Timings
}

// New creates a pipeline. Cache and Console are required.
func New(opts Options) (*Pipeline, error) {
	if opts.Cache == nil {
		return nil, errors.New("buildpipeline: missing cache")
	}
	if opts.Console == nil {
		return nil, errors.New("buildpipeline: missing console")
	}
	return &Pipeline{opts: opts}, nil
}

// Stats returns how many scripts were translated and how many runs reused the cache.
func (p *Pipeline) Stats() (translations, hits int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.translations, p.hits
}

// Run executes the script at path with args bound to its parameters.
func (p *Pipeline) Run(ctx context.Context, path string, args ...vm.Value) (RunResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	res := RunResult{Path: path}
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "run", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, span)
	defer span.End(path)

	emit(p.opts.Sink, Event{File: path, Stage: StageTranslate, Status: StatusQueued})

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		err = fmt.Errorf("load %s: %w", path, err)
		emit(p.opts.Sink, Event{File: path, Stage: StageTranslate, Status: StatusError, Err: err})
		return res, err
	}
	file := fs.Get(fileID)

	start := time.Now()
	emit(p.opts.Sink, Event{File: path, Stage: StageCache, Status: StatusWorking})
	art, hit, err := p.opts.Cache.Lookup(path, file.Hash)
	if err != nil {
		// битый артефакт просто пересобираем
		trace.Point(tracer, trace.ScopeError, "cache-corrupt", err.Error())
		hit = false
	}
	res.Timings.Set(StageCache, time.Since(start))

	if hit {
		p.hits++
		res.CacheHit = true
		emit(p.opts.Sink, Event{File: path, Stage: StageCache, Status: StatusHit, Elapsed: time.Since(start)})
		emit(p.opts.Sink, Event{File: path, Stage: StageTranslate, Status: StatusHit})
	} else {
		art, err = p.translate(ctx, &res, fs, file)
		if err != nil {
			return res, err
		}
	}
	res.Artifact = art

	start = time.Now()
	emit(p.opts.Sink, Event{File: path, Stage: StageExecute, Status: StatusWorking})
	err = vm.Run(ctx, &art.Unit, p.opts.Console, args...)
	elapsed := time.Since(start)
	res.Timings.Set(StageExecute, elapsed)
	if err != nil {
		emit(p.opts.Sink, Event{File: path, Stage: StageExecute, Status: StatusError, Err: err, Elapsed: elapsed})
		return res, err
	}
	emit(p.opts.Sink, Event{File: path, Stage: StageExecute, Status: StatusDone, Elapsed: elapsed})
	return res, nil
}

func (p *Pipeline) translate(ctx context.Context, res *RunResult, fs *source.FileSet, file *source.File) (*cache.Artifact, error) {
	path := res.Path
	start := time.Now()
	emit(p.opts.Sink, Event{File: path, Stage: StageTranslate, Status: StatusWorking})
	tr, err := driver.TranslateFile(ctx, fs, file, dialect.Primary, p.opts.Translate)
	res.Translate = tr
	elapsed := time.Since(start)
	res.Timings.Set(StageTranslate, elapsed)
	if err != nil {
		emit(p.opts.Sink, Event{File: path, Stage: StageTranslate, Status: StatusError, Err: err, Elapsed: elapsed})
		return nil, err
	}
	p.translations++
	emit(p.opts.Sink, Event{File: path, Stage: StageTranslate, Status: StatusDone, Elapsed: elapsed})

	start = time.Now()
	art, err := p.opts.Cache.CompileAndCache(path, file.Hash, tr.Program)
	elapsed = time.Since(start)
	res.Timings.Set(StageCache, res.Timings.Duration(StageCache)+elapsed)
	if err != nil {
		err = fmt.Errorf("cache %s: %w", path, err)
		emit(p.opts.Sink, Event{File: path, Stage: StageCache, Status: StatusError, Err: err, Elapsed: elapsed})
		return nil, err
	}
	emit(p.opts.Sink, Event{File: path, Stage: StageCache, Status: StatusDone, Elapsed: elapsed})
	return art, nil
}
