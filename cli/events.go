package cli

import (
	"log/slog"
	"sort"

	"github.com/jswork/pkgclip/core"
	clipotel "github.com/jswork/pkgclip/otel"
)

// logHandler writes every event to logger at debug level. The run ID is
// expected on logger already.
func logHandler(logger *slog.Logger) core.EventHandler {
	return core.EventHandlerFunc(func(e core.Event) {
		keys := make([]string, 0, len(e.Payload))
		for k := range e.Payload {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		attrs := make([]any, 0, len(keys)+2)
		attrs = append(attrs, slog.String("action", e.Action.String()))
		if e.Elapsed > 0 {
			attrs = append(attrs, slog.Duration("elapsed", e.Elapsed))
		}
		for _, k := range keys {
			attrs = append(attrs, slog.Any(k, e.Payload[k]))
		}
		logger.Debug(e.Kind.String(), attrs...)
	})
}

// eventHandler assembles the handlers an invocation emits to.
func (d Deps) eventHandler(logger *slog.Logger) core.EventHandler {
	var log core.EventHandler = logHandler(logger)
	handlers := make([]core.EventHandler, 0, 3)
	if d.Tracing != nil {
		// The enriched log runs before tracing so finished events still see the span.
		handlers = append(handlers, clipotel.EnrichHandler(log, d.Tracing), d.Tracing)
	} else {
		handlers = append(handlers, log)
	}
	if d.Metrics != nil {
		handlers = append(handlers, d.Metrics)
	}
	return core.MultiHandler(handlers...)
}
