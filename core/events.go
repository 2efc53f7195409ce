package core

import "time"

// EventKind identifies the type of event emitted during a copy.
type EventKind string

const (
	// EventCopyStarted is emitted once the action has been chosen.
	EventCopyStarted EventKind = "copy.started"

	// EventManifestLoaded is emitted after the manifest is read and validated.
	EventManifestLoaded EventKind = "manifest.loaded"

	// EventCopyFinished is emitted after the text reached its destination.
	EventCopyFinished EventKind = "copy.finished"

	// EventCopyFailed is emitted when any step of the copy fails.
	EventCopyFailed EventKind = "copy.failed"
)

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	return string(k)
}

// Event is a small record of what happened during an invocation.
type Event struct {
	Kind EventKind

	// RunID identifies the invocation.
	RunID string

	Action Action
	Time   time.Time

	// Elapsed is set on finished and failed events.
	Elapsed time.Duration

	// Payload carries event specific values such as "package", "path" or "error".
	Payload map[string]any
}

// NewEvent creates an event stamped with the current time.
func NewEvent(kind EventKind, runID string, action Action) Event {
	return Event{
		Kind:    kind,
		RunID:   runID,
		Action:  action,
		Time:    time.Now(),
		Payload: map[string]any{},
	}
}

// WithPayload sets a payload value and returns the event.
func (e Event) WithPayload(key string, value any) Event {
	if e.Payload == nil {
		e.Payload = map[string]any{}
	}
	e.Payload[key] = value
	return e
}

// EventHandler receives events as they are emitted.
type EventHandler interface {
	Handle(e Event)
}

// EventHandlerFunc adapts a function to EventHandler.
type EventHandlerFunc func(e Event)

// Handle calls f(e).
func (f EventHandlerFunc) Handle(e Event) {
	f(e)
}

// MultiHandler fans an event out to each handler in order.
func MultiHandler(handlers ...EventHandler) EventHandler {
	return EventHandlerFunc(func(e Event) {
		for _, h := range handlers {
			if h != nil {
				h.Handle(e)
			}
		}
	})
}
