package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/statespace/core"
)

// runner holds the mutable bookkeeping shared by every algorithm for a
// single search call: the closed set, the predecessor mapping, progress
// reporting, limits, telemetry and the result under construction.
type runner[S comparable] struct {
	alg      Algorithm
	init     S
	goal     S
	opts     Options
	ctx      context.Context
	span     trace.Span
	started  time.Time
	progress core.ProgressDisplayer[S] // nil when the space has no hook
	closed   map[S]struct{}
	parents  map[S]S
	res      *Result[S]
}

// begin applies opts, validates them and opens telemetry for one call.
// space is inspected only for the optional ProgressDisplayer extension.
func begin[S comparable](alg Algorithm, space any, init, goal S, opts []Option) (*runner[S], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ctx, span := startSpan(o.Ctx, alg)
	r := &runner[S]{
		alg:     alg,
		init:    init,
		goal:    goal,
		opts:    o,
		ctx:     ctx,
		span:    span,
		started: time.Now(),
		closed:  make(map[S]struct{}),
		parents: make(map[S]S),
		res:     &Result[S]{Algorithm: alg},
	}
	if pd, ok := space.(core.ProgressDisplayer[S]); ok {
		r.progress = pd
	}

	o.Logger.DebugContext(ctx, "search: start",
		slog.String("algorithm", alg.String()),
		slog.Any("init", init),
		slog.Any("goal", goal),
	)

	return r, nil
}

// checkpoint runs once per loop iteration before a state is taken off the
// frontier: it tracks the frontier high-water mark and enforces cancellation
// and the expansion limit.
func (r *runner[S]) checkpoint(frontier int) error {
	if frontier > r.res.MaxFrontier {
		r.res.MaxFrontier = frontier
	}
	select {
	case <-r.ctx.Done():
		return r.ctx.Err()
	default:
	}
	if r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions {
		return fmt.Errorf("%w: %d states expanded", ErrExpansionLimit, r.res.Expanded)
	}

	return nil
}

// visit counts a state taken off the frontier.
func (r *runner[S]) visit() { r.res.Expanded++ }

func (r *runner[S]) isClosed(s S) bool {
	_, ok := r.closed[s]
	return ok
}

// close marks s expanded and fires the progress hooks. open is only
// materialised when a ProgressDisplayer is present.
func (r *runner[S]) close(s S, frontier int, open func() []S) {
	r.closed[s] = struct{}{}
	if r.progress != nil {
		r.progress.DisplayProgress(r.init, r.goal, open())
	}
	r.opts.OnExpand(r.res.Expanded, frontier)
}

// found reconstructs the path to terminal, prices it with costOf and
// completes the call.
func (r *runner[S]) found(terminal S, costOf func(path []S) float64) (*Result[S], error) {
	r.res.Path = core.ReconstructPath(r.parents, terminal)
	r.parents = nil
	r.res.Cost = costOf(r.res.Path)

	return r.finish(nil)
}

// fail completes the call without a path.
func (r *runner[S]) fail(err error) (*Result[S], error) {
	r.res.Path = nil
	r.parents = nil

	return r.finish(err)
}

// finish records logs, span attributes and metrics.
func (r *runner[S]) finish(err error) (*Result[S], error) {
	elapsed := time.Since(r.started)
	attrs := []any{
		slog.String("algorithm", r.alg.String()),
		slog.Int("expanded", r.res.Expanded),
		slog.Int("max_frontier", r.res.MaxFrontier),
		slog.Duration("elapsed", elapsed),
	}
	switch outcomeOf(err) {
	case outcomeFound:
		r.opts.Logger.DebugContext(r.ctx, "search: path found",
			append(attrs, slog.Int("path_len", len(r.res.Path)), slog.Float64("cost", r.res.Cost))...)
	case outcomeNoPath:
		r.opts.Logger.DebugContext(r.ctx, "search: no path", attrs...)
	default:
		r.opts.Logger.DebugContext(r.ctx, "search: aborted", append(attrs, slog.Any("error", err))...)
	}

	endSpan(r.span, r.res, err)
	recordSearchMetrics(r.ctx, r.alg, elapsed, r.res.Expanded, err)

	return r.res, err
}

// noPath wraps ErrNoPath with the endpoints of the search.
func (r *runner[S]) noPath() error {
	return fmt.Errorf("%w: %v → %v", ErrNoPath, r.init, r.goal)
}
