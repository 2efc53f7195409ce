// Package otel provides OpenTelemetry integration for pkgclip copy events.
package otel

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jswork/pkgclip/core"
)

// TracingHandler translates copy events into OpenTelemetry spans.
// One span covers an invocation from copy.started to copy.finished or
// copy.failed.
type TracingHandler struct {
	tracer trace.Tracer

	mu    sync.RWMutex
	spans map[string]trace.Span // runID -> span
}

// NewTracingHandler creates a TracingHandler that starts spans on tracer.
func NewTracingHandler(tracer trace.Tracer) *TracingHandler {
	return &TracingHandler{
		tracer: tracer,
		spans:  make(map[string]trace.Span),
	}
}

// Handle processes an event and creates, annotates or ends the run span.
func (h *TracingHandler) Handle(e core.Event) {
	switch e.Kind {
	case core.EventCopyStarted:
		h.handleStarted(e)
	case core.EventManifestLoaded:
		h.handleManifestLoaded(e)
	case core.EventCopyFinished:
		h.handleFinished(e)
	case core.EventCopyFailed:
		h.handleFailed(e)
	}
}

func (h *TracingHandler) handleStarted(e core.Event) {
	_, span := h.tracer.Start(context.Background(), "copy:"+e.Action.String(),
		trace.WithAttributes(
			attribute.String("pkgclip.run_id", e.RunID),
			attribute.String("pkgclip.action", e.Action.String()),
		),
		trace.WithTimestamp(e.Time),
	)

	h.mu.Lock()
	h.spans[e.RunID] = span
	h.mu.Unlock()
}

// handleManifestLoaded records the manifest as a span event.
func (h *TracingHandler) handleManifestLoaded(e core.Event) {
	h.mu.RLock()
	span, ok := h.spans[e.RunID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	attrs := []attribute.KeyValue{}
	if name, ok := e.Payload["package"].(string); ok {
		attrs = append(attrs, attribute.String("pkgclip.package", name))
	}
	if path, ok := e.Payload["path"].(string); ok {
		attrs = append(attrs, attribute.String("pkgclip.manifest", path))
	}
	span.AddEvent(string(e.Kind), trace.WithTimestamp(e.Time), trace.WithAttributes(attrs...))
}

func (h *TracingHandler) handleFinished(e core.Event) {
	span, ok := h.take(e.RunID)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("pkgclip.duration", e.Elapsed.String()))
	if dest, ok := e.Payload["destination"].(string); ok {
		span.SetAttributes(attribute.String("pkgclip.destination", dest))
	}
	span.SetStatus(codes.Ok, "")
	span.End(trace.WithTimestamp(e.Time))
}

func (h *TracingHandler) handleFailed(e core.Event) {
	span, ok := h.take(e.RunID)
	if !ok {
		return
	}
	errMsg := "copy failed"
	if msg, ok := e.Payload["error"].(string); ok {
		errMsg = msg
	}
	span.SetStatus(codes.Error, errMsg)
	span.RecordError(spanError(errMsg), trace.WithTimestamp(e.Time))
	span.End(trace.WithTimestamp(e.Time))
}

// take removes and returns the span for runID.
func (h *TracingHandler) take(runID string) (trace.Span, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	span, ok := h.spans[runID]
	if ok {
		delete(h.spans, runID)
	}
	return span, ok
}

// ActiveSpanContext returns the SpanContext of the open span for runID.
// Returns an empty SpanContext if none is open.
func (h *TracingHandler) ActiveSpanContext(runID string) trace.SpanContext {
	h.mu.RLock()
	span, ok := h.spans[runID]
	h.mu.RUnlock()

	if !ok {
		return trace.SpanContext{}
	}
	return span.SpanContext()
}

// spanError is a simple error type for recording span errors.
type spanError string

func (e spanError) Error() string { return string(e) }
