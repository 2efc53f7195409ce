package main

import (
	"context"
	"log/slog"
	"os"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jswork/pkgclip/cli"
	clipotel "github.com/jswork/pkgclip/otel"
)

// Set via ldflags at build time.
var version = "dev"

const instrumentationName = "github.com/jswork/pkgclip"

func main() {
	os.Exit(run())
}

func run() int {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(clipotel.NewLogSpanProcessor(logger)),
	)
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	ctx := context.Background()
	defer func() {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
	}()

	metrics, err := clipotel.NewMetricsHandler(mp.Meter(instrumentationName))
	if err != nil {
		logger.Error("creating metrics", slog.Any("error", err))
		return 1
	}

	root := cli.NewRootCmd(cli.Deps{
		Version: version,
		Logger:  logger,
		Level:   level,
		Tracing: clipotel.NewTracingHandler(tp.Tracer(instrumentationName)),
		Metrics: metrics,
	})

	err = root.ExecuteContext(ctx)
	if err := clipotel.LogMetrics(ctx, reader, logger); err != nil {
		logger.Debug("collecting metrics", slog.Any("error", err))
	}
	return cli.ExitCode(err)
}
