package domain

import (
	"fmt"
	"math"
	"time"
)

// Defaults for a card that has never been reviewed.
const (
	DefaultEase         = 2.5
	DefaultIntervalDays = 1.0
	MinEase             = 1.3
)

// ScheduleState holds the scheduling columns of a card. It is owned by the
// storage collaborator and only changed through the srs scheduler's output.
type ScheduleState struct {
	Ease         float64    `json:"ease"`          // Ease factor, never below MinEase
	IntervalDays float64    `json:"interval_days"` // Days until the next review
	Lapses       int        `json:"lapses"`        // Failed recalls, never decreases
	DueAt        *time.Time `json:"due_at"`        // nil for new cards
}

// NewScheduleState returns the state of a never-reviewed card.
func NewScheduleState() ScheduleState {
	return ScheduleState{
		Ease:         DefaultEase,
		IntervalDays: DefaultIntervalDays,
		Lapses:       0,
		DueAt:        nil,
	}
}

// IsNew reports whether the card has never been scheduled.
func (s ScheduleState) IsNew() bool {
	return s.DueAt == nil
}

// IsDue reports whether the card should be shown at now. New cards are
// always due.
func (s ScheduleState) IsDue(now time.Time) bool {
	if s.DueAt == nil {
		return true
	}
	return !s.DueAt.After(now)
}

// Validate checks that the state can be fed to the scheduler.
// A zero ease is accepted and means "use the default".
func (s ScheduleState) Validate() error {
	if math.IsNaN(s.Ease) || math.IsInf(s.Ease, 0) || s.Ease < 0 {
		return fmt.Errorf("%w: ease %v", ErrInvalidState, s.Ease)
	}
	if math.IsNaN(s.IntervalDays) || math.IsInf(s.IntervalDays, 0) || s.IntervalDays < 0 {
		return fmt.Errorf("%w: interval %v", ErrInvalidState, s.IntervalDays)
	}
	if s.Lapses < 0 {
		return fmt.Errorf("%w: lapses %d", ErrInvalidState, s.Lapses)
	}
	return nil
}
