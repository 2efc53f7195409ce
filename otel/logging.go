package otel

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// LogSpanProcessor writes every ended span to a slog logger at debug level.
type LogSpanProcessor struct {
	logger *slog.Logger
}

// NewLogSpanProcessor returns a span processor that logs to logger.
func NewLogSpanProcessor(logger *slog.Logger) *LogSpanProcessor {
	return &LogSpanProcessor{logger: logger}
}

func (p *LogSpanProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p *LogSpanProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	attrs := []any{
		slog.String("span", s.Name()),
		slog.String("trace_id", s.SpanContext().TraceID().String()),
		slog.Duration("elapsed", s.EndTime().Sub(s.StartTime())),
	}
	if status := s.Status(); status.Code == codes.Error {
		attrs = append(attrs, slog.String("error", status.Description))
	}
	p.logger.Debug("span ended", attrs...)
}

func (p *LogSpanProcessor) Shutdown(context.Context) error   { return nil }
func (p *LogSpanProcessor) ForceFlush(context.Context) error { return nil }

var _ sdktrace.SpanProcessor = (*LogSpanProcessor)(nil)

// LogMetrics collects reader and logs each counter data point at debug level.
func LogMetrics(ctx context.Context, reader *sdkmetric.ManualReader, logger *slog.Logger) error {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return err
	}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				action, _ := dp.Attributes.Value("action")
				logger.Debug("metric",
					slog.String("name", m.Name),
					slog.String("action", action.AsString()),
					slog.Int64("value", dp.Value),
				)
			}
		}
	}
	return nil
}
