package otel_test

import (
	"testing"
	"time"

	"github.com/jswork/pkgclip/core"
	clipotel "github.com/jswork/pkgclip/otel"
)

func TestEnrichHandler_AddsTraceIDs(t *testing.T) {
	_, tp := newTestTracer()
	tracing := clipotel.NewTracingHandler(tp.Tracer("test"))

	var got []core.Event
	enriched := clipotel.EnrichHandler(core.EventHandlerFunc(func(e core.Event) {
		got = append(got, e)
	}), tracing)

	tracing.Handle(core.Event{Kind: core.EventCopyStarted, RunID: "run-1", Time: time.Now()})
	enriched.Handle(core.NewEvent(core.EventManifestLoaded, "run-1", core.ActionShortname))

	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	sc := tracing.ActiveSpanContext("run-1")
	if got[0].Payload["trace_id"] != sc.TraceID().String() {
		t.Errorf("trace_id = %v, want %s", got[0].Payload["trace_id"], sc.TraceID())
	}
	if got[0].Payload["span_id"] != sc.SpanID().String() {
		t.Errorf("span_id = %v, want %s", got[0].Payload["span_id"], sc.SpanID())
	}
}

func TestEnrichHandler_PassesThroughWithoutSpan(t *testing.T) {
	_, tp := newTestTracer()
	tracing := clipotel.NewTracingHandler(tp.Tracer("test"))

	var got core.Event
	enriched := clipotel.EnrichHandler(core.EventHandlerFunc(func(e core.Event) {
		got = e
	}), tracing)

	enriched.Handle(core.NewEvent(core.EventCopyStarted, "run-x", core.ActionPURL))

	if _, ok := got.Payload["trace_id"]; ok {
		t.Error("expected no trace_id without an active span")
	}
	if got.RunID != "run-x" {
		t.Errorf("RunID = %q", got.RunID)
	}
}
