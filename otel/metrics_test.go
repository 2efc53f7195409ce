package otel_test

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jswork/pkgclip/core"
	clipotel "github.com/jswork/pkgclip/otel"
)

// newTestMeter returns a meter provider backed by a manual reader.
func newTestMeter() (*metric.ManualReader, *metric.MeterProvider) {
	reader := metric.NewManualReader()
	mp := metric.NewMeterProvider(metric.WithReader(reader))
	return reader, mp
}

func collectMetrics(t *testing.T, reader *metric.ManualReader) *metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}
	return &rm
}

func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, scope := range rm.ScopeMetrics {
		for i := range scope.Metrics {
			if scope.Metrics[i].Name == name {
				return &scope.Metrics[i]
			}
		}
	}
	return nil
}

func TestMetricsHandler_FinishedIncrementsCopies(t *testing.T) {
	reader, mp := newTestMeter()
	h, err := clipotel.NewMetricsHandler(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetricsHandler: %v", err)
	}

	h.Handle(core.Event{Kind: core.EventCopyFinished, Action: core.ActionShortname, Elapsed: time.Millisecond})
	h.Handle(core.Event{Kind: core.EventCopyFinished, Action: core.ActionShortname, Elapsed: time.Millisecond})
	h.Handle(core.Event{Kind: core.EventCopyStarted, Action: core.ActionShortname})

	rm := collectMetrics(t, reader)

	copies := findMetric(rm, "pkgclip.copies")
	if copies == nil {
		t.Fatal("pkgclip.copies metric not found")
	}
	sum, ok := copies.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("expected Sum[int64], got %T", copies.Data)
	}
	if len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 2 {
		t.Fatalf("expected one data point with value 2, got %+v", sum.DataPoints)
	}

	dur := findMetric(rm, "pkgclip.copy.duration")
	if dur == nil {
		t.Fatal("pkgclip.copy.duration metric not found")
	}
	hist, ok := dur.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("expected Histogram[float64], got %T", dur.Data)
	}
	if len(hist.DataPoints) != 1 || hist.DataPoints[0].Count != 2 {
		t.Fatalf("expected histogram count 2, got %+v", hist.DataPoints)
	}
}

func TestMetricsHandler_FailedIncrementsFailures(t *testing.T) {
	reader, mp := newTestMeter()
	h, err := clipotel.NewMetricsHandler(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetricsHandler: %v", err)
	}

	h.Handle(core.Event{Kind: core.EventCopyFailed, Action: core.ActionPURL})

	rm := collectMetrics(t, reader)
	failures := findMetric(rm, "pkgclip.failures")
	if failures == nil {
		t.Fatal("pkgclip.failures metric not found")
	}
	sum := failures.Data.(metricdata.Sum[int64])
	if len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 1 {
		t.Fatalf("expected failure count 1, got %+v", sum.DataPoints)
	}
	action, _ := sum.DataPoints[0].Attributes.Value("action")
	if action.AsString() != "purl" {
		t.Errorf("action attribute = %q, want purl", action.AsString())
	}
}
