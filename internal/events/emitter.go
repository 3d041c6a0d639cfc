package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/phrazzld/scry-engine/internal/redact"
)

// InMemoryEmitter dispatches events synchronously to handlers registered in
// memory, in registration order.
type InMemoryEmitter struct {
	handlers []Handler
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewInMemoryEmitter creates an emitter with no handlers. A nil logger uses
// slog.Default.
func NewInMemoryEmitter(logger *slog.Logger) *InMemoryEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEmitter{
		logger: logger.With("component", "event_emitter"),
	}
}

// Register adds a handler.
func (e *InMemoryEmitter) Register(handler Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
	e.logger.Debug("registered event handler", "handler_count", len(e.handlers))
}

// Emit delivers event to every registered handler. A failing handler does not
// stop delivery; all handler errors are joined and returned.
func (e *InMemoryEmitter) Emit(ctx context.Context, event *Event) error {
	if event == nil {
		return errors.New("nil event")
	}

	e.mu.RLock()
	handlers := make([]Handler, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	if len(handlers) == 0 {
		e.logger.DebugContext(ctx, "no handlers registered for event",
			"event_id", event.ID,
			"event_type", event.Type)
		return nil
	}

	var errs []error
	for i, handler := range handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			e.logger.ErrorContext(ctx, "handler failed to process event",
				"error", redact.Error(err),
				"handler_index", i,
				"event_id", event.ID,
				"event_type", event.Type)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// LogHandler returns a Handler that records each event at info level.
func LogHandler(logger *slog.Logger) Handler {
	return HandlerFunc(func(ctx context.Context, event *Event) error {
		logger.InfoContext(ctx, "event",
			"event_id", event.ID,
			"event_type", event.Type,
			"payload", string(event.Payload))
		return nil
	})
}
