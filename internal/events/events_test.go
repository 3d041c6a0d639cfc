package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	t.Parallel()

	type payload struct {
		CardID uuid.UUID `json:"card_id"`
		Score  float64   `json:"score"`
	}

	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("CET", 3600))
	want := payload{CardID: uuid.New(), Score: 0.95}

	event, err := NewEvent(TypeReviewCompleted, want, now)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TypeReviewCompleted, event.Type)
	assert.True(t, now.Equal(event.CreatedAt))
	assert.Equal(t, time.UTC, event.CreatedAt.Location())

	var got payload
	require.NoError(t, event.UnmarshalPayload(&got))
	assert.Equal(t, want, got)

	other, err := NewEvent(TypeReviewCompleted, want, now)
	require.NoError(t, err)
	assert.NotEqual(t, event.ID, other.ID)
}

func TestNewEvent_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewEvent("bad", make(chan int), time.Now())
	assert.ErrorContains(t, err, "encoding bad payload")

	event, err := NewEvent("num", 42, time.Now())
	require.NoError(t, err)
	var s struct{}
	assert.ErrorContains(t, event.UnmarshalPayload(&s), "decoding num payload")
}

func TestHandlerFunc(t *testing.T) {
	t.Parallel()

	var seen *Event
	h := HandlerFunc(func(_ context.Context, e *Event) error {
		seen = e
		return nil
	})

	event := &Event{ID: uuid.New(), Type: "x"}
	require.NoError(t, h.HandleEvent(context.Background(), event))
	assert.Same(t, event, seen)
}
