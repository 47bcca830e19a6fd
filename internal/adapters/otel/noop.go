package otel

import (
	"context"

	"github.com/emiliopalmerini/commitgate/internal/ports"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

// RecordDecision discards the decision.
func (e *NoOpExporter) RecordDecision(ctx context.Context, m *ports.DecisionMetrics) error {
	return nil
}

// Close has nothing to flush.
func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
