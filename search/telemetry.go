package search

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/katalvlaran/statespace/search"

// Package-level tracer and meter for search operations.
var (
	tracer = otel.Tracer(instrumentationName)
	meter  = otel.Meter(instrumentationName)
)

// Outcome labels recorded on the search_total counter.
const (
	outcomeFound  = "found"
	outcomeNoPath = "no_path"
	outcomeError  = "error"
)

var (
	searchTotal    metric.Int64Counter
	searchExpanded metric.Int64Histogram
	searchLatency  metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchTotal, err = meter.Int64Counter(
			"search_total",
			metric.WithDescription("Total number of search calls by algorithm and outcome"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchExpanded, err = meter.Int64Histogram(
			"search_expanded_states",
			metric.WithDescription("Number of states expanded per search call"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchLatency, err = meter.Float64Histogram(
			"search_duration_seconds",
			metric.WithDescription("Duration of search calls"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// startSpan opens the span covering one search call.
func startSpan(ctx context.Context, alg Algorithm) (context.Context, trace.Span) {
	return tracer.Start(ctx, "search."+alg.String(),
		trace.WithAttributes(attribute.String("search.algorithm", alg.String())),
	)
}

// outcomeOf classifies a terminal error.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeFound
	case errors.Is(err, ErrNoPath):
		return outcomeNoPath
	default:
		return outcomeError
	}
}

// endSpan annotates span with the result and closes it. ErrNoPath is a normal
// outcome and does not mark the span as failed.
func endSpan[S comparable](span trace.Span, res *Result[S], err error) {
	span.SetAttributes(
		attribute.Int("search.expanded", res.Expanded),
		attribute.Int("search.max_frontier", res.MaxFrontier),
		attribute.Int("search.path_len", len(res.Path)),
		attribute.Bool("search.found", res.Found()),
	)
	if res.Found() {
		span.SetAttributes(attribute.Float64("search.cost", res.Cost))
	}
	if outcomeOf(err) == outcomeError {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// recordSearchMetrics records metrics for one search call.
func recordSearchMetrics(ctx context.Context, alg Algorithm, duration time.Duration, expanded int, err error) {
	if initMetrics() != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("algorithm", alg.String()),
		attribute.String("outcome", outcomeOf(err)),
	)

	searchTotal.Add(ctx, 1, attrs)
	searchExpanded.Record(ctx, int64(expanded), attrs)
	searchLatency.Record(ctx, duration.Seconds(), attrs)
}
