package otel

import (
	"github.com/jswork/pkgclip/core"
)

// EnrichHandler wraps next so that events carry the trace and span IDs of
// the run span open in tracing. Events pass through unchanged when no span
// is active.
func EnrichHandler(next core.EventHandler, tracing *TracingHandler) core.EventHandler {
	return core.EventHandlerFunc(func(e core.Event) {
		if sc := tracing.ActiveSpanContext(e.RunID); sc.IsValid() {
			e = e.WithPayload("trace_id", sc.TraceID().String())
			e = e.WithPayload("span_id", sc.SpanID().String())
		}
		next.Handle(e)
	})
}
