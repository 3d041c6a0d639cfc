package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TypeReviewCompleted is emitted once the learner has confirmed a quality and
// the card has been rescheduled. Its payload is a domain.SessionEvent.
const TypeReviewCompleted = "review.completed"

// Event is the envelope dispatched to handlers.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type tells handlers how to decode Payload
	Type string `json:"type"`

	Payload json.RawMessage `json:"payload"`

	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into v.
func (e *Event) UnmarshalPayload(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("decoding %s payload: %w", e.Type, err)
	}
	return nil
}

// NewEvent creates an Event with a fresh ID and the payload serialized as JSON.
func NewEvent(eventType string, payload any, now time.Time) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", eventType, err)
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: now.UTC(),
	}, nil
}

// Handler is implemented by components that consume events.
type Handler interface {
	// HandleEvent processes the event. Returning an error does not stop other
	// handlers from receiving it.
	HandleEvent(ctx context.Context, event *Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, event *Event) error

// HandleEvent calls f.
func (f HandlerFunc) HandleEvent(ctx context.Context, event *Event) error {
	return f(ctx, event)
}

// Emitter is implemented by components that dispatch events.
type Emitter interface {
	Emit(ctx context.Context, event *Event) error
}
