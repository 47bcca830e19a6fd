package ports

import (
	"context"
	"time"
)

// MetricsExporter exports gate decisions to an external observability system.
type MetricsExporter interface {
	// RecordDecision records the outcome of one hook invocation.
	RecordDecision(ctx context.Context, m *DecisionMetrics) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// DecisionMetrics describes a single gate decision.
type DecisionMetrics struct {
	Outcome  string
	Reason   string
	ToolName string
	Duration time.Duration
}
