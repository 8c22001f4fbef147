// Package trace is the logging layer of xbase: spans and instant events
// emitted by the driver, the build pipeline and the VM.
//
// # Usage
//
//	xbase run --trace-level=phase --trace-format=ndjson script.prg
//
// Tracers travel through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "parse", 0)
//	defer span.End("")
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: failures only
//   - LevelPhase: driver and pass boundaries (load, parse, cache, execute)
//   - LevelDetail: per-unit events (cache hits, class registration)
//   - LevelDebug: everything, including every executed statement
package trace
