package domain

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestNewScheduleState(t *testing.T) {
	t.Parallel()

	s := NewScheduleState()
	if s.Ease != 2.5 || s.IntervalDays != 1 || s.Lapses != 0 || s.DueAt != nil {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if !s.IsNew() {
		t.Error("new state should report IsNew")
	}
	if !s.IsDue(time.Time{}) {
		t.Error("new state should always be due")
	}
}

func TestScheduleStateIsDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(time.Hour)
	s := ScheduleState{Ease: 2.5, IntervalDays: 1, DueAt: &due}

	if s.IsDue(now) {
		t.Error("card due in an hour should not be due now")
	}
	if !s.IsDue(due) {
		t.Error("card should be due exactly at its due time")
	}
}

func TestScheduleStateValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		state   ScheduleState
		wantErr bool
	}{
		{"defaults", NewScheduleState(), false},
		{"zero value", ScheduleState{}, false},
		{"negative interval", ScheduleState{Ease: 2.5, IntervalDays: -1}, true},
		{"negative lapses", ScheduleState{Ease: 2.5, IntervalDays: 1, Lapses: -1}, true},
		{"NaN ease", ScheduleState{Ease: math.NaN(), IntervalDays: 1}, true},
		{"infinite interval", ScheduleState{Ease: 2.5, IntervalDays: math.Inf(1)}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.state.Validate()
			if tc.wantErr && !errors.Is(err, ErrInvalidState) {
				t.Errorf("Expected ErrInvalidState, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	t.Parallel()

	cases := map[float64]float64{-0.5: 0, 0: 0, 0.42: 0.42, 1: 1, 7: 1}
	for in, want := range cases {
		if got := Clamp01(in); got != want {
			t.Errorf("Clamp01(%v) = %v, want %v", in, got, want)
		}
	}
	if got := Clamp01(math.NaN()); got != 0 {
		t.Errorf("Clamp01(NaN) = %v, want 0", got)
	}
	if got := ScorePercent(0.85); math.Abs(got-85) > 1e-9 {
		t.Errorf("ScorePercent(0.85) = %v, want 85", got)
	}
}
