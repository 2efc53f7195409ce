package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jswork/pkgclip/core"
)

// MetricsHandler translates copy events into OpenTelemetry metrics.
type MetricsHandler struct {
	copies   metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

// NewMetricsHandler creates the pkgclip instruments on meter.
func NewMetricsHandler(meter metric.Meter) (*MetricsHandler, error) {
	copies, err := meter.Int64Counter("pkgclip.copies",
		metric.WithDescription("Number of successful copies"),
	)
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter("pkgclip.failures",
		metric.WithDescription("Number of failed copies"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("pkgclip.copy.duration",
		metric.WithDescription("Duration of a copy in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &MetricsHandler{
		copies:   copies,
		failures: failures,
		duration: duration,
	}, nil
}

// Handle records metrics for finished and failed copies.
func (h *MetricsHandler) Handle(e core.Event) {
	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String("action", e.Action.String()))

	switch e.Kind {
	case core.EventCopyFinished:
		h.copies.Add(ctx, 1, attrs)
		h.duration.Record(ctx, e.Elapsed.Seconds(), attrs)
	case core.EventCopyFailed:
		h.failures.Add(ctx, 1, attrs)
	}
}
