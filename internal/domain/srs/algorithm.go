package srs

import (
	"math"
	"time"

	"github.com/phrazzld/scry-engine/internal/domain"
)

// day is the length of one interval unit.
const day = 24 * time.Hour

// calculateNewEaseFactor applies the SM-2 ease update for a review grade:
//
//	ease' = ease + (0.1 - (5-q) * (0.08 + (5-q) * 0.02))
//
// The ease factor controls how fast intervals grow: a card answered easily
// gets a higher ease and its intervals stretch faster, while a card the
// learner keeps missing drifts down towards the floor.
//
// Parameters:
//   - currentEF: The ease factor in effect before this review
//   - grade: The numeric SM-2 grade of the confirmed quality (1, 3, 4 or 5)
//   - params: Configuration parameters for the scheduler
//
// Returns:
//   - The new ease factor, never below params.MinEaseFactor
//
// Algorithm behavior:
//   - "Again" (1) lowers the ease by 0.54
//   - "Hard" (3) lowers the ease by 0.14
//   - "Good" (4) leaves the ease unchanged
//   - "Easy" (5) raises the ease by 0.1
func calculateNewEaseFactor(currentEF float64, grade int, params *Params) float64 {
	miss := float64(5 - grade)
	newEF := currentEF + (0.1 - miss*(0.08+miss*0.02))

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	return newEF
}

// calculateNewInterval returns the next interval in days.
//
// Parameters:
//   - currentInterval: The interval in days before this review
//   - easeFactor: The ease factor in effect before this review
//   - grade: The numeric SM-2 grade of the confirmed quality
//   - params: Configuration parameters for the scheduler
//
// Returns:
//   - The new interval in days, at most params.MaxIntervalDays
//
// Algorithm behavior:
//   - A lapse (grade below params.LapseGradeThreshold) resets the interval
//     to params.LapseInterval
//   - Otherwise the previous interval, floored at one day, is multiplied by
//     the ease factor
//   - Growth stops at params.MaxIntervalDays so long runs of easy reviews
//     keep producing a representable due date
func calculateNewInterval(currentInterval, easeFactor float64, grade int, params *Params) float64 {
	if grade < params.LapseGradeThreshold {
		return params.LapseInterval
	}

	if currentInterval < 1 {
		currentInterval = 1
	}

	next := currentInterval * easeFactor
	if params.MaxIntervalDays > 0 && next > params.MaxIntervalDays {
		next = params.MaxIntervalDays
	}

	return next
}

// calculateDueAt converts a fractional interval in days into a timestamp.
//
// Whole days are added with AddDate and only the fractional remainder goes
// through time.Duration, which cannot represent spans beyond ~292 years.
// The result is never earlier than now.
func calculateDueAt(interval float64, now time.Time) time.Time {
	if interval <= 0 || math.IsNaN(interval) {
		return now
	}

	whole, frac := math.Modf(interval)
	return now.AddDate(0, 0, int(whole)).Add(time.Duration(frac * float64(day)))
}

// calculateNextState creates a new ScheduleState from the prior one.
//
// Parameters:
//   - prior: The card's schedule before this review
//   - grade: The numeric SM-2 grade of the confirmed quality
//   - now: The time the review was confirmed
//   - params: Configuration parameters for the scheduler
//
// Returns:
//   - A new ScheduleState; prior is never modified
//
// Algorithm behavior:
//   - Zero-valued ease and interval, as read from a freshly created storage
//     row, fall back to the initial parameters
//   - Lapses are incremented on a lapse grade and carried otherwise
//   - The interval grows by the ease in effect before this review, then the
//     ease is updated
//   - DueAt is now plus the new interval
func calculateNextState(
	prior domain.ScheduleState,
	grade int,
	now time.Time,
	params *Params,
) domain.ScheduleState {
	ease := prior.Ease
	if ease == 0 {
		ease = params.InitialEaseFactor
	}
	interval := prior.IntervalDays
	if interval == 0 {
		interval = params.InitialInterval
	}

	next := domain.ScheduleState{
		Lapses: prior.Lapses,
	}

	if grade < params.LapseGradeThreshold {
		next.Lapses++
	}

	next.IntervalDays = calculateNewInterval(interval, ease, grade, params)
	next.Ease = calculateNewEaseFactor(ease, grade, params)

	due := calculateDueAt(next.IntervalDays, now)
	next.DueAt = &due

	return next
}
