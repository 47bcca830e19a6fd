package otel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/emiliopalmerini/commitgate/internal/ports"
)

var _ ports.MetricsExporter = (*Exporter)(nil)
var _ ports.MetricsExporter = (*NoOpExporter)(nil)

func TestExporter_RecordDecision(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()

	exp, err := newExporter(ctx, reader)
	require.NoError(t, err)
	defer func() { _ = exp.Close(ctx) }()

	require.NoError(t, exp.RecordDecision(ctx, &ports.DecisionMetrics{
		Outcome:  "block",
		Reason:   "missing_context",
		ToolName: "Bash",
		Duration: 3 * time.Millisecond,
	}))
	require.NoError(t, exp.RecordDecision(ctx, &ports.DecisionMetrics{
		Outcome:  "block",
		Reason:   "missing_context",
		ToolName: "Bash",
		Duration: time.Millisecond,
	}))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	metrics := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		metrics[m.Name] = m
	}

	sum, ok := metrics["commitgate_decisions_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok, "decisions counter missing")
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)

	outcome, ok := sum.DataPoints[0].Attributes.Value(attribute.Key("outcome"))
	require.True(t, ok)
	assert.Equal(t, "block", outcome.AsString())

	hist, ok := metrics["commitgate_check_duration_seconds"].Data.(metricdata.Histogram[float64])
	require.True(t, ok, "duration histogram missing")
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)
}

func TestNewExporter_Disabled(t *testing.T) {
	_, err := NewExporter(context.Background(), Config{Enabled: false, Endpoint: "localhost:4317"})
	assert.Error(t, err)

	_, err = NewExporter(context.Background(), Config{Enabled: true})
	assert.Error(t, err)
}

func TestNoOpExporter(t *testing.T) {
	exp := NewNoOpExporter()
	assert.NoError(t, exp.RecordDecision(context.Background(), &ports.DecisionMetrics{}))
	assert.NoError(t, exp.Close(context.Background()))
}
