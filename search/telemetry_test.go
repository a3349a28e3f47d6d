package search_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/statespace/search"
)

var (
	spanExporter = tracetest.NewInMemoryExporter()
	metricReader = sdkmetric.NewManualReader()
)

func TestMain(m *testing.M) {
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSyncer(spanExporter)))
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(metricReader)))
	os.Exit(m.Run())
}

func spanAttr(span tracetest.SpanStub, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTelemetry_SpanPerSearch(t *testing.T) {
	spanExporter.Reset()

	_, err := search.AStar[pt](openGrid(3, 3), pt{0, 0}, pt{2, 2})
	require.NoError(t, err)

	spans := spanExporter.GetSpans()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "search.astar", span.Name)

	v, ok := spanAttr(span, "search.found")
	require.True(t, ok)
	assert.True(t, v.AsBool())
	v, ok = spanAttr(span, "search.path_len")
	require.True(t, ok)
	assert.Equal(t, int64(5), v.AsInt64())
	v, ok = spanAttr(span, "search.cost")
	require.True(t, ok)
	assert.Equal(t, 4.0, v.AsFloat64())
	assert.Equal(t, codes.Unset, span.Status.Code)
}

func TestTelemetry_NoPathIsNotAnError(t *testing.T) {
	spanExporter.Reset()

	g := openGrid(3, 1)
	g.walls[pt{1, 0}] = true
	_, err := search.BreadthFirst[pt](g, pt{0, 0}, pt{2, 0})
	require.ErrorIs(t, err, search.ErrNoPath)

	spans := spanExporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "search.bfs", spans[0].Name)
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
	v, _ := spanAttr(spans[0], "search.found")
	assert.False(t, v.AsBool())
}

func TestTelemetry_LimitMarksSpanFailed(t *testing.T) {
	spanExporter.Reset()

	_, err := search.Dijkstra[pt](openGrid(5, 5), pt{0, 0}, pt{4, 4}, search.WithMaxExpansions(1))
	require.ErrorIs(t, err, search.ErrExpansionLimit)

	spans := spanExporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	require.NotEmpty(t, spans[0].Events, "error should be recorded as a span event")
}

func TestTelemetry_ParentSpanFromContext(t *testing.T) {
	spanExporter.Reset()

	ctx, parent := otel.Tracer("test").Start(context.Background(), "parent")
	_, err := search.Greedy[pt](openGrid(2, 2), pt{0, 0}, pt{1, 1}, search.WithContext(ctx))
	require.NoError(t, err)
	parent.End()

	spans := spanExporter.GetSpans()
	require.Len(t, spans, 2)
	child := spans[0]
	assert.Equal(t, "search.greedy", child.Name)
	assert.Equal(t, parent.SpanContext().SpanID(), child.Parent.SpanID())
}

func TestTelemetry_SearchTotalCounter(t *testing.T) {
	_, err := search.DepthFirst[pt](openGrid(3, 3), pt{0, 0}, pt{2, 2})
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, metricReader.Collect(context.Background(), &rm))

	var found int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "search_total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				alg, _ := dp.Attributes.Value("algorithm")
				outcome, _ := dp.Attributes.Value("outcome")
				if alg.AsString() == "dfs" && outcome.AsString() == "found" {
					found += dp.Value
				}
			}
		}
	}
	assert.GreaterOrEqual(t, found, int64(1))
}
