package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"xbase/internal/dialect"
	"xbase/internal/observ"
)

// CheckResult is the outcome of translating one script in CheckFiles.
type CheckResult struct {
	Path   string
	Result *TranslateResult // nil when the file could not be loaded
	Err    error
	Timing observ.Report
}

// OK reports whether the script translated without errors.
func (r CheckResult) OK() bool { return r.Err == nil }

// CheckFiles translates primary-dialect scripts concurrently. Each goroutine
// builds its own parser context, so translations never share state.
// Results keep the order of paths. Only cancellation of ctx is returned as an error;
// per-file failures land in CheckResult.Err.
func CheckFiles(ctx context.Context, paths []string, jobs int, opts TranslateOptions) ([]CheckResult, error) {
	results := make([]CheckResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// индексы уникальны, мьютекс не нужен
			res, err := Translate(gctx, path, dialect.Primary, opts)
			results[i] = CheckResult{Path: path, Result: res, Err: err}
			if res != nil {
				results[i].Timing = res.Timing
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
