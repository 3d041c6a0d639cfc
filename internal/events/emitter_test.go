package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/scry-engine/internal/platform/logger"
)

// recordingHandler implements Handler for tests.
type recordingHandler struct {
	mu     sync.Mutex
	events []*Event
	err    error
}

func (h *recordingHandler) HandleEvent(_ context.Context, event *Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return h.err
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.events)
}

func newTestEvent(t *testing.T) *Event {
	t.Helper()
	event, err := NewEvent(TypeReviewCompleted, map[string]string{"key": "value"}, time.Now())
	require.NoError(t, err)
	return event
}

func TestInMemoryEmitter(t *testing.T) {
	t.Parallel()

	t.Run("no handlers", func(t *testing.T) {
		t.Parallel()

		emitter := NewInMemoryEmitter(nil)
		assert.NoError(t, emitter.Emit(context.Background(), newTestEvent(t)))
	})

	t.Run("nil event", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, NewInMemoryEmitter(nil).Emit(context.Background(), nil))
	})

	t.Run("delivers to every handler", func(t *testing.T) {
		t.Parallel()

		log, _ := logger.NewTestLogger()
		emitter := NewInMemoryEmitter(log)
		h1, h2 := &recordingHandler{}, &recordingHandler{}
		emitter.Register(h1)
		emitter.Register(h2)

		event := newTestEvent(t)
		require.NoError(t, emitter.Emit(context.Background(), event))

		require.Equal(t, 1, h1.count())
		require.Equal(t, 1, h2.count())
		assert.Same(t, event, h1.events[0])
		assert.Same(t, event, h2.events[0])
	})

	t.Run("failing handlers do not stop delivery", func(t *testing.T) {
		t.Parallel()

		log, buf := logger.NewTestLogger()
		emitter := NewInMemoryEmitter(log)

		errA := errors.New("store down")
		errB := errors.New("password=hunter22 rejected")
		failA := &recordingHandler{err: errA}
		ok := &recordingHandler{}
		failB := &recordingHandler{err: errB}
		emitter.Register(failA)
		emitter.Register(ok)
		emitter.Register(failB)

		err := emitter.Emit(context.Background(), newTestEvent(t))
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
		assert.Equal(t, 1, ok.count())
		assert.Equal(t, 1, failB.count())

		assert.Contains(t, buf.String(), "handler failed to process event")
		assert.Contains(t, buf.String(), `"component":"event_emitter"`)
		assert.NotContains(t, buf.String(), "hunter22")
	})
}

func TestLogHandler(t *testing.T) {
	t.Parallel()

	log, buf := logger.NewTestLogger()
	event := newTestEvent(t)

	require.NoError(t, LogHandler(log).HandleEvent(context.Background(), event))

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, TypeReviewCompleted, entries[0]["event_type"])
	assert.Equal(t, event.ID.String(), entries[0]["event_id"])
}
