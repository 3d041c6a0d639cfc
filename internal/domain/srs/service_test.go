package srs

import (
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/scry-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)

func TestUpdateSchedule_GoodOnNewCard(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	prior := domain.ScheduleState{Ease: 2.5, IntervalDays: 1, Lapses: 0}
	next, err := svc.UpdateSchedule(prior, domain.QualityGood, testNow)
	require.NoError(t, err)

	assert.InDelta(t, 2.5, next.Ease, epsilon)
	assert.InDelta(t, 2.5, next.IntervalDays, epsilon)
	assert.Equal(t, 0, next.Lapses)
	require.NotNil(t, next.DueAt)
	assert.True(t, next.DueAt.Equal(testNow.Add(60*time.Hour)), "due at %v", next.DueAt)
}

func TestUpdateSchedule_AgainOnMatureCard(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	prior := domain.ScheduleState{Ease: 2.5, IntervalDays: 10, Lapses: 0}
	next, err := svc.UpdateSchedule(prior, domain.QualityAgain, testNow)
	require.NoError(t, err)

	assert.Equal(t, 1, next.Lapses)
	assert.InDelta(t, 1.0, next.IntervalDays, epsilon)
	assert.InDelta(t, 1.96, next.Ease, epsilon)
	assert.True(t, next.DueAt.Equal(testNow.Add(24*time.Hour)))
}

func TestUpdateSchedule_InvalidQuality(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	_, err := svc.UpdateSchedule(domain.NewScheduleState(), domain.Quality("perfect"), testNow)
	assert.True(t, errors.Is(err, domain.ErrInvalidQuality), "got %v", err)

	_, err = svc.UpdateSchedule(domain.NewScheduleState(), domain.Quality(""), testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidQuality)
}

func TestUpdateSchedule_InvalidPriorState(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	_, err := svc.UpdateSchedule(domain.ScheduleState{Ease: 2.5, IntervalDays: -3}, domain.QualityGood, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestUpdateSchedule_EaseNeverBelowFloor(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	for _, startEase := range []float64{1.3, 1.5, 2.5, 3.1} {
		state := domain.ScheduleState{Ease: startEase, IntervalDays: 1}
		// Every rating repeated, then a mixed sequence
		sequence := []domain.Quality{}
		for _, q := range domain.Qualities() {
			for i := 0; i < 5; i++ {
				sequence = append(sequence, q)
			}
		}
		sequence = append(sequence, domain.QualityAgain, domain.QualityEasy, domain.QualityHard, domain.QualityAgain)

		for i, q := range sequence {
			next, err := svc.UpdateSchedule(state, q, testNow)
			require.NoError(t, err)
			if next.Ease < domain.MinEase {
				t.Fatalf("start ease %v step %d (%s): ease %v below floor", startEase, i, q, next.Ease)
			}
			state = next
		}
	}
}

func TestUpdateSchedule_LapsesResetInterval(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	for _, q := range domain.Qualities() {
		grade, err := q.Grade()
		require.NoError(t, err)

		prior := domain.ScheduleState{Ease: 2.1, IntervalDays: 12, Lapses: 3}
		next, err := svc.UpdateSchedule(prior, q, testNow)
		require.NoError(t, err)

		if grade < 3 {
			assert.InDelta(t, 1.0, next.IntervalDays, epsilon, "quality %s", q)
			assert.Equal(t, 4, next.Lapses, "quality %s", q)
		} else {
			assert.InDelta(t, 12*2.1, next.IntervalDays, epsilon, "quality %s", q)
			assert.Equal(t, 3, next.Lapses, "quality %s", q)
		}
	}
}

func TestUpdateSchedule_NewCardLeavesNewState(t *testing.T) {
	t.Parallel()

	prior := domain.NewScheduleState()
	require.True(t, prior.IsDue(testNow))

	next, err := UpdateSchedule(prior, domain.QualityEasy, testNow)
	require.NoError(t, err)
	assert.False(t, next.IsNew())
	assert.False(t, next.IsDue(testNow))
	assert.InDelta(t, 2.6, next.Ease, epsilon)
}

func TestUpdateSchedule_CustomParams(t *testing.T) {
	t.Parallel()
	svc := NewServiceWithParams(NewParams(ParamsConfig{MinEaseFactor: 2.0}))

	next, err := svc.UpdateSchedule(domain.ScheduleState{Ease: 2.1, IntervalDays: 3}, domain.QualityAgain, testNow)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, next.Ease, epsilon)
}

func TestPostponeReview(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	due := testNow.Add(48 * time.Hour)
	state := domain.ScheduleState{Ease: 2.5, IntervalDays: 2, Lapses: 1, DueAt: &due}

	next, err := svc.PostponeReview(state, 3, testNow)
	require.NoError(t, err)
	require.NotNil(t, next.DueAt)
	assert.True(t, next.DueAt.Equal(due.AddDate(0, 0, 3)))
	assert.Equal(t, state.IntervalDays, next.IntervalDays)
	assert.Equal(t, state.Lapses, next.Lapses)
	assert.True(t, state.DueAt.Equal(due), "original state must not change")
}

func TestPostponeReview_NewCardFromNow(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	next, err := svc.PostponeReview(domain.NewScheduleState(), 1, testNow)
	require.NoError(t, err)
	assert.True(t, next.DueAt.Equal(testNow.AddDate(0, 0, 1)))
}

func TestPostponeReview_InvalidDays(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	_, err := svc.PostponeReview(domain.NewScheduleState(), 0, testNow)
	assert.ErrorIs(t, err, ErrInvalidDays)
}

func TestUpdateSchedule_RepeatedEasyStaysInFuture(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	state := domain.NewScheduleState()
	now := testNow
	prevInterval := 0.0
	for i := 1; i <= 40; i++ {
		next, err := svc.UpdateSchedule(state, domain.QualityEasy, now)
		require.NoError(t, err)
		require.NotNil(t, next.DueAt)

		assert.True(t, next.DueAt.After(now), "review %d: due %v is not after %v", i, next.DueAt, now)
		assert.LessOrEqual(t, next.IntervalDays, float64(DefaultMaxIntervalDays), "review %d", i)
		assert.GreaterOrEqual(t, next.IntervalDays, prevInterval, "review %d", i)

		prevInterval = next.IntervalDays
		state = next
		now = *next.DueAt
	}

	assert.InDelta(t, float64(DefaultMaxIntervalDays), state.IntervalDays, epsilon)
}

func TestUpdateSchedule_CustomMaxInterval(t *testing.T) {
	t.Parallel()
	svc := NewServiceWithParams(NewParams(ParamsConfig{MaxIntervalDays: 30}))

	next, err := svc.UpdateSchedule(domain.ScheduleState{Ease: 2.5, IntervalDays: 20}, domain.QualityGood, testNow)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, next.IntervalDays, epsilon)
	assert.True(t, next.DueAt.Equal(testNow.AddDate(0, 0, 30)))
}
