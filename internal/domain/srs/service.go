package srs

import (
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/scry-engine/internal/domain"
)

// Common errors
var (
	ErrInvalidDays = errors.New("postpone days must be at least 1")
)

// Service defines the interface for SM-2 scheduling operations
type Service interface {
	// UpdateSchedule computes the card's next state for a confirmed quality.
	// Returns domain.ErrInvalidQuality for unknown ratings and
	// domain.ErrInvalidState when prior cannot be scheduled.
	UpdateSchedule(
		prior domain.ScheduleState,
		quality domain.Quality,
		now time.Time,
	) (domain.ScheduleState, error)

	// PostponeReview pushes the next review time forward by a specified number of days
	PostponeReview(
		state domain.ScheduleState,
		days int,
		now time.Time,
	) (domain.ScheduleState, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new SRS service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new SRS service with custom parameters
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultService{
		params: params,
	}
}

// UpdateSchedule implements Service.
func (s *defaultService) UpdateSchedule(
	prior domain.ScheduleState,
	quality domain.Quality,
	now time.Time,
) (domain.ScheduleState, error) {
	grade, err := quality.Grade()
	if err != nil {
		return domain.ScheduleState{}, err
	}

	if err := prior.Validate(); err != nil {
		return domain.ScheduleState{}, err
	}

	return calculateNextState(prior, grade, now, s.params), nil
}

// PostponeReview implements Service. Unscheduled cards are postponed
// relative to now.
func (s *defaultService) PostponeReview(
	state domain.ScheduleState,
	days int,
	now time.Time,
) (domain.ScheduleState, error) {
	if days < 1 {
		return domain.ScheduleState{}, fmt.Errorf("%w: got %d", ErrInvalidDays, days)
	}

	if err := state.Validate(); err != nil {
		return domain.ScheduleState{}, err
	}

	base := now
	if state.DueAt != nil {
		base = *state.DueAt
	}
	due := base.AddDate(0, 0, days)

	next := state
	next.DueAt = &due

	return next, nil
}

// UpdateSchedule runs the default scheduler. It is the package-level entry
// point for callers that do not tune parameters.
func UpdateSchedule(
	prior domain.ScheduleState,
	quality domain.Quality,
	now time.Time,
) (domain.ScheduleState, error) {
	return defaultScheduler.UpdateSchedule(prior, quality, now)
}

var defaultScheduler = NewDefaultService()
